package backend_test

import (
	"slices"
	"testing"

	"github.com/go3ds/citro3d/backend"
	"github.com/go3ds/citro3d/backend/headless"
)

func TestRegisterAndGet(t *testing.T) {
	const name = "test-registry"
	backend.Register(name, func() backend.Backend { return headless.New() })
	defer backend.Unregister(name)

	if !backend.IsRegistered(name) {
		t.Fatal("backend not registered")
	}
	if !slices.Contains(backend.Available(), name) {
		t.Errorf("Available() = %v, missing %q", backend.Available(), name)
	}

	b := backend.Get(name)
	if b == nil {
		t.Fatal("Get returned nil for a registered backend")
	}
	if b.Name() != backend.BackendHeadless {
		t.Errorf("Name = %q, want %q", b.Name(), backend.BackendHeadless)
	}
}

func TestGetUnknown(t *testing.T) {
	if b := backend.Get("no-such-backend"); b != nil {
		t.Errorf("Get of unknown backend = %v, want nil", b)
	}
}

func TestUnregister(t *testing.T) {
	const name = "test-unregister"
	backend.Register(name, func() backend.Backend { return headless.New() })
	backend.Unregister(name)

	if backend.IsRegistered(name) {
		t.Fatal("backend still registered after Unregister")
	}
	if b := backend.Get(name); b != nil {
		t.Errorf("Get after Unregister = %v, want nil", b)
	}
}

func TestDefaultPrefersPriorityOrder(t *testing.T) {
	// Importing the headless package registered it; without the hardware
	// backend linked in, it is the default.
	b := backend.Default()
	if b == nil {
		t.Fatal("Default returned nil with headless registered")
	}
	if b.Name() != backend.BackendHeadless {
		t.Errorf("Default = %q, want %q", b.Name(), backend.BackendHeadless)
	}
}

func TestDefaultSkipsUnusableFactories(t *testing.T) {
	// A factory returning nil means "registered but unusable"; Default must
	// fall through to a usable one.
	backend.Register(backend.BackendCtru, func() backend.Backend { return nil })
	defer backend.Unregister(backend.BackendCtru)

	b := backend.Default()
	if b == nil {
		t.Fatal("Default returned nil")
	}
	if b.Name() != backend.BackendHeadless {
		t.Errorf("Default = %q, want fallback %q", b.Name(), backend.BackendHeadless)
	}
}
