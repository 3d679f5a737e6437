// Package render provides drawing surfaces for the atom model: a Recorder
// that captures the primitive call sequence, and a braille-cell terminal
// Canvas for live views.
package render

import "github.com/san-kum/atomsim/internal/atom"

var (
	_ atom.Surface = (*Recorder)(nil)
	_ atom.Surface = (*Canvas)(nil)
)
