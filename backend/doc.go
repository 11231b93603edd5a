// Package backend defines the graphics backend contract of the rendering
// pipeline and a registry for backend selection.
//
// A backend consumes complete scene buffers and owns rasterization and
// presentation. Two implementations ship with the module: the software
// backend in this package (CPU rasterization into a pixmap) and the wgpu
// backend in the wgpu subpackage (GPU presentation through gpucontext).
// Backends register themselves from init functions; Default picks the
// best available one, preferring wgpu over software.
package backend
