package citro3d

import "fmt"

// LightEnv is a block of lighting state referenced by pointer from the
// native pipeline. The block is allocated by the backend at a stable
// address: it never moves while it exists, so the pointer the native side
// retains on bind stays valid until the block is deleted.
type LightEnv struct {
	raw    uintptr
	inst   *Instance
	closed bool
}

// NewLightEnv allocates and initializes a light environment block.
// The block starts unbound; install it with BindLightEnv.
func (inst *Instance) NewLightEnv() (*LightEnv, error) {
	if inst.closed {
		return nil, ErrInstanceClosed
	}
	raw := inst.backend.LightEnvCreate()
	if raw == 0 {
		return nil, fmt.Errorf("%w: light environment", ErrFailedToInitialize)
	}
	return &LightEnv{raw: raw, inst: inst}, nil
}

// Raw returns the stable address of the native block.
func (e *LightEnv) Raw() uintptr { return e.raw }

// Close deletes the native block. The environment must not be bound; unbind
// it first by binding a replacement or nil. Close is idempotent.
func (e *LightEnv) Close() error {
	if e.closed {
		return nil
	}
	if e.inst.lightEnv == e {
		return fmt.Errorf("citro3d: light environment is still bound")
	}
	e.closed = true
	e.inst.backend.LightEnvDelete(e.raw)
	return nil
}

// BindLightEnv installs env as the current light environment and returns
// the previously bound one, if any. Passing nil clears the binding. The
// native side is informed of the new block's stable address (or null when
// clearing).
func (inst *Instance) BindLightEnv(env *LightEnv) *LightEnv {
	prev := inst.lightEnv
	inst.lightEnv = env

	var raw uintptr
	if env != nil {
		raw = env.raw
	}
	inst.backend.LightEnvBind(raw)
	return prev
}

// LightEnv returns the currently bound light environment, or nil.
func (inst *Instance) LightEnv() *LightEnv {
	return inst.lightEnv
}
