// Package engine orchestrates per-frame rendering of the vector field.
//
//   - [Surface]: drawing target supplied by the host (terminal canvas,
//     raylib window, SVG or raster exporter)
//   - [RenderFrame]: draws one complete frame from scratch
//   - [Controller]: owns grid, pointer state and lifecycle
//
// The controller is deliberately loop-less: the host's frame pump (a
// bubbletea tick, the raylib draw loop, or a plain for loop in exporters)
// calls [Controller.Frame] once per tick. Each call does bounded work
// proportional to the grid size and returns.
//
// # Thread Safety
//
// Controller instances are NOT thread-safe. All methods must be called from
// the host's event loop; a frame renders with the most recent pointer and
// grid values observed before it began, which the single-threaded model
// guarantees without locking.
package engine
