// Package viz renders a running context in the terminal.
//
// A braille [Canvas] gives each character cell 2x4 sub-pixels. [Model] is a
// Bubble Tea program that ticks the context once per frame and draws every
// body with its trail, optionally following one body and drawing its
// predicted path.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset to the initial scenario
//	Tab   - Follow the next body
//	P     - Toggle trajectory prediction
//	+/-   - Zoom
//	[]    - Step through recent ticks
//	T     - Cycle color themes
package viz
