package backend

import (
	"github.com/gogpu/cg"
	"github.com/gogpu/cg/gpucore"
)

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, NewSoftwareDevice)
}

// NewSoftwareDevice opens a SoftwareDevice drawing into a new transparent
// pixmap. It never fails.
func NewSoftwareDevice(width, height int) (gpucore.Device, error) {
	return cg.NewSoftwareDevice(cg.NewPixmap(max(width, 1), max(height, 1))), nil
}
