// Package viz provides the terminal host for the vector-field renderer.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Canvas]: colored Braille pixel canvas for high-fidelity rendering
//   - [CanvasSurface]: adapts the canvas to the engine's drawing surface
//   - [Model]: the Bubble Tea program driving the frame loop
//
// # Key Bindings
//
//	Space - Pause/Resume rendering
//	T     - Cycle color themes
//	R     - Clear the pointer (field goes quiet)
//	G     - Toggle GIF recording
//	?     - Show help overlay
//
// # Recording
//
// Sessions can be recorded as GIF animations with the G key. Recordings are
// saved to the current directory.
package viz
