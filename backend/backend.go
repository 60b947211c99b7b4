package backend

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/cg"
	"github.com/gogpu/cg/gpucore"
	"github.com/gogpu/gpucontext"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// registered or none could be opened.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU device drawing into a Pixmap.
	BackendSoftware = "software"
	// BackendWGPU is the name of the GPU device on gogpu/wgpu's HAL.
	BackendWGPU = "wgpu"
)

// Factory opens a device with a render target of the given size.
type Factory func(width, height int) (gpucore.Device, error)

// Priority order for backend selection (first available wins).
var backendPriority = []string{BackendWGPU, BackendSoftware}

var registry = gpucontext.NewRegistry[Factory](gpucontext.WithPriority(backendPriority...))

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registry.Register(name, func() Factory { return factory })
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registry.Unregister(name)
}

// Available returns the registered backend names in selection order.
func Available() []string {
	names := registry.Available()
	slices.SortFunc(names, func(a, b string) int {
		pa, pb := priority(a), priority(b)
		if pa != pb {
			return pa - pb
		}
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	})
	return names
}

func priority(name string) int {
	if i := slices.Index(backendPriority, name); i >= 0 {
		return i
	}
	return len(backendPriority)
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	return registry.Has(name)
}

// Get returns the factory registered under name, or nil.
func Get(name string) Factory {
	return registry.Get(name)
}

// Default returns the name of the best registered backend, or "" when none
// is registered.
func Default() string {
	return registry.BestName()
}

// OpenNamed opens a device with the named backend.
func OpenNamed(name string, width, height int) (gpucore.Device, error) {
	f := Get(name)
	if f == nil {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	dev, err := f(width, height)
	if err != nil {
		return nil, fmt.Errorf("backend %s: %w", name, err)
	}
	return dev, nil
}

// Open opens a device with the first backend, in selection order, that
// succeeds. Backends that fail are logged and skipped.
func Open(width, height int) (gpucore.Device, string, error) {
	var errs []error
	for _, name := range Available() {
		dev, err := OpenNamed(name, width, height)
		if err == nil {
			cg.Logger().Debug("backend: opened", "name", name, "width", width, "height", height)
			return dev, name, nil
		}
		cg.Logger().Warn("backend: open failed", "name", name, "err", err)
		errs = append(errs, err)
	}
	return nil, "", errors.Join(append([]error{ErrBackendNotAvailable}, errs...)...)
}
