// Package field provides the pure math core of the vector-field visualizer.
//
// The field is sampled on a uniform grid and evaluated per frame against the
// current pointer position:
//
//   - [Grid]: uniform sample-point generation for a viewport
//   - [Eval]: inverse-distance attraction toward the pointer
//   - [Params]: tunable falloff constants
//
// All functions are deterministic and free of side effects; identical inputs
// produce identical outputs. Rendering, scheduling and theme selection live
// elsewhere (internal/engine, internal/palette).
package field
