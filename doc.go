// Package scenic is a retained-scene rendering pipeline for UI toolkits.
//
// A frame is produced in three stages. An item tree (rectangles, borders,
// images, text, paths, shadows, clips) is walked by the render package's
// item renderer, which lowers every visible item into an ordered list of
// vector draw operations held in a scene buffer. The scene buffer is then
// submitted to a pluggable graphics backend (backend and backend/wgpu
// packages) that rasterizes it and presents the result to a window surface.
//
// This root package holds the shared vocabulary of the pipeline: colors,
// geometry, brushes, gradients, pixel buffers, image sources, fit
// computation, and the module-wide logger.
package scenic
