package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/atomsim/internal/atom"
)

type Observer interface {
	OnStep(w *World, t float64)
}

type Metric interface {
	Name() string
	Observe(w *World, t float64)
	Value() float64
	Reset()
}

type Config struct {
	Dt            float64
	Duration      float64
	Seed          int64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.016,
		Duration:      10.0,
		ValidateState: true,
	}
}

type Result struct {
	Times      []float64
	Frames     [][]atom.Vector2
	Metrics    map[string]float64
	Errors     []error
	StepsTaken int
}

type SimError struct {
	Time    float64
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}

// Runner drives a world through discrete frames, feeding observers and
// metrics on every step.
type Runner struct {
	world     *World
	metrics   []Metric
	observers []Observer
}

func NewRunner(w *World) *Runner {
	return &Runner{
		world:     w,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:   make([]float64, 0, steps+1),
		Frames:  make([][]atom.Vector2, 0, steps+1),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	result.Times = append(result.Times, t)
	result.Frames = append(result.Frames, r.world.Snapshot())

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, m := range r.metrics {
			m.Observe(r.world, t)
		}
		for _, obs := range r.observers {
			obs.OnStep(r.world, t)
		}

		r.world.Step(cfg.Dt)
		t += cfg.Dt
		result.StepsTaken++

		if cfg.ValidateState && !r.world.Valid() {
			err := SimError{Time: t, Step: i, Message: "invalid state (NaN/Inf)"}
			result.Errors = append(result.Errors, err)
			break
		}

		result.Times = append(result.Times, t)
		result.Frames = append(result.Frames, r.world.Snapshot())
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback steps the world until the duration elapses, the context
// is canceled, or the callback returns false.
func (r *Runner) RunWithCallback(ctx context.Context, cfg Config, callback func(w *World, t float64) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	t := 0.0
	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(r.world, t) {
			return nil
		}

		r.world.Step(cfg.Dt)
		t += cfg.Dt

		if cfg.ValidateState && !r.world.Valid() {
			return fmt.Errorf("invalid state at t=%.4f", t)
		}
	}

	return nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
