package render

import "github.com/san-kum/atomsim/internal/atom"

type OpKind int

const (
	OpStrokeCircle OpKind = iota
	OpFillCircle
	OpText
)

// Op is one recorded draw primitive. Fields not used by the op kind stay
// zero.
type Op struct {
	Kind   OpKind
	Center atom.Vector2
	Radius float64
	Color  string
	Width  float64
	Text   string
	Size   float64
	Dy     float64
}

// Recorder captures draw calls in order. It backs tests and the frame
// export; nothing is rasterized.
type Recorder struct {
	Ops []Op
}

func NewRecorder() *Recorder {
	return &Recorder{Ops: make([]Op, 0, 16)}
}

func (r *Recorder) StrokeCircle(center atom.Vector2, radius float64, color string, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeCircle, Center: center, Radius: radius, Color: color, Width: width})
}

func (r *Recorder) FillCircle(center atom.Vector2, radius float64, color string) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, Center: center, Radius: radius, Color: color})
}

func (r *Recorder) Text(center atom.Vector2, s string, size, dy float64, color string) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Center: center, Text: s, Size: size, Dy: dy, Color: color})
}

func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
