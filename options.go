package citro3d

import "github.com/go3ds/citro3d/backend"

// DefaultCmdBufSize is the native library's default command buffer size in
// bytes.
const DefaultCmdBufSize = 0x40000

// Option configures an Instance during creation.
//
// Example:
//
//	// Default command buffer, best available backend
//	inst, err := citro3d.New()
//
//	// Larger command buffer for heavy scenes
//	inst, err := citro3d.New(citro3d.WithCmdBufSize(0x80000))
type Option func(*instanceOptions)

// instanceOptions holds optional configuration for Instance creation.
type instanceOptions struct {
	cmdBufSize int
	backend    backend.Backend
}

// defaultOptions returns the default instance options.
func defaultOptions() instanceOptions {
	return instanceOptions{
		cmdBufSize: DefaultCmdBufSize,
		backend:    nil, // resolved via backend.Default if nil
	}
}

// WithCmdBufSize sets the native command buffer size in bytes. The value
// is passed verbatim to the native init call.
func WithCmdBufSize(size int) Option {
	return func(o *instanceOptions) {
		o.cmdBufSize = size
	}
}

// WithBackend injects a specific backend instead of the registry default.
// Use this for dependency injection in tests or to force the headless
// backend off-device:
//
//	inst, err := citro3d.New(citro3d.WithBackend(headless.New()))
func WithBackend(b backend.Backend) Option {
	return func(o *instanceOptions) {
		o.backend = b
	}
}
