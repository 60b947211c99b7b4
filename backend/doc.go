// Package backend selects the device a cg.Context draws through.
//
// Backends register a Factory under a name, usually from an init function.
// The software backend is registered on import of this package; the GPU
// backend registers itself when its package is imported:
//
//	import (
//		"github.com/gogpu/cg/backend"
//		_ "github.com/gogpu/cg/backend/wgpu"
//	)
//
// # Backend Selection
//
// Open tries the registered backends in priority order, wgpu before
// software, and returns the first device that opens:
//
//	dev, name, err := backend.Open(800, 600)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ctx := cg.NewContext(0, 0, cg.WithDevice(dev))
//
// OpenNamed requests a specific backend:
//
//	dev, err := backend.OpenNamed(backend.BackendSoftware, 800, 600)
//
// # Available Backends
//
//   - "software": CPU rasterizer running the programs' Go kernels
//   - "wgpu": GPU device on gogpu/wgpu's HAL (backend/wgpu)
package backend
