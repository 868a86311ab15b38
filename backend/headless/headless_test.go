package headless

import (
	"testing"

	"github.com/go3ds/citro3d/backend"
)

func TestInitFini(t *testing.T) {
	b := New()
	if b.Initialized() {
		t.Fatal("fresh backend must not be initialized")
	}
	if !b.Init(0x40000) {
		t.Fatal("Init failed")
	}
	if !b.Initialized() || b.CmdBufSize() != 0x40000 {
		t.Errorf("state = {init %v, size %#x}", b.Initialized(), b.CmdBufSize())
	}
	b.Fini()
	if b.Initialized() || b.FiniCalls() != 1 {
		t.Errorf("state after Fini = {init %v, calls %d}", b.Initialized(), b.FiniCalls())
	}
}

func TestFailInit(t *testing.T) {
	b := New()
	b.FailInit = true
	if b.Init(0x1000) {
		t.Fatal("Init must fail with FailInit set")
	}
	if b.Initialized() {
		t.Fatal("failed Init must leave the backend uninitialized")
	}
}

func TestTargetLifecycle(t *testing.T) {
	b := New()
	b.Init(0x1000)

	h := b.RenderTargetCreate(400, 240, 1, -1)
	if h == 0 {
		t.Fatal("RenderTargetCreate failed")
	}
	if b.TargetCount() != 1 {
		t.Fatalf("TargetCount = %d, want 1", b.TargetCount())
	}

	b.RenderTargetSetOutput(h, 0, 1, 0x1100)
	state, ok := b.Target(h)
	if !ok {
		t.Fatal("target not recorded")
	}
	if state.Width != 400 || state.Height != 240 || state.ColorFormat != 1 || state.DepthFormat != -1 {
		t.Errorf("state = %+v", state)
	}
	if state.Screen != 0 || state.Side != 1 || state.TransferFlags != 0x1100 {
		t.Errorf("output routing = %+v", state)
	}

	b.RenderTargetDelete(h)
	if b.TargetCount() != 0 {
		t.Errorf("TargetCount = %d after delete, want 0", b.TargetCount())
	}
	if _, ok := b.Target(h); ok {
		t.Error("deleted target still recorded")
	}
}

func TestCreateRejectsBadDimensions(t *testing.T) {
	b := New()
	if h := b.RenderTargetCreate(0, 240, 0, -1); h != 0 {
		t.Errorf("zero width accepted: %#x", h)
	}
	if h := b.RenderTargetCreate(400, -1, 0, -1); h != 0 {
		t.Errorf("negative height accepted: %#x", h)
	}
}

func TestFrameScope(t *testing.T) {
	b := New()
	b.Init(0x1000)
	h := b.RenderTargetCreate(10, 10, 0, -1)

	b.FrameBegin(0)
	if !b.InFrame() || b.FramesBegun() != 1 {
		t.Fatalf("state = {in %v, begun %d}", b.InFrame(), b.FramesBegun())
	}

	if b.FrameDrawOn(0xBAD) {
		t.Error("FrameDrawOn must fail for unknown targets")
	}
	if !b.FrameDrawOn(h) {
		t.Fatal("FrameDrawOn failed for a live target")
	}
	if b.CurrentTarget() != h {
		t.Errorf("CurrentTarget = %#x, want %#x", b.CurrentTarget(), h)
	}

	b.FrameEnd(0)
	if b.InFrame() || b.CurrentTarget() != 0 || b.FramesEnded() != 1 {
		t.Errorf("state after end = {in %v, cur %#x, ended %d}",
			b.InFrame(), b.CurrentTarget(), b.FramesEnded())
	}
}

func TestFailDrawOn(t *testing.T) {
	b := New()
	b.Init(0x1000)
	h := b.RenderTargetCreate(10, 10, 0, -1)
	b.FailDrawOn = func(target uintptr) bool { return target == h }

	b.FrameBegin(0)
	if b.FrameDrawOn(h) {
		t.Error("FrameDrawOn must honor the failure hook")
	}
	if b.CurrentTarget() != 0 {
		t.Error("failed FrameDrawOn must not set the current target")
	}
	b.FrameEnd(0)
}

func TestClearBits(t *testing.T) {
	b := New()
	h := b.RenderTargetCreate(10, 10, 0, 0)

	b.RenderTargetClear(h, 1, 0xAABBCCDD, 99)
	state, _ := b.Target(h)
	if !state.ColorCleared || state.Color != 0xAABBCCDD {
		t.Errorf("color clear not recorded: %+v", state)
	}
	if state.DepthCleared || state.Depth != 0 {
		t.Errorf("color-only clear touched depth: %+v", state)
	}

	b.RenderTargetClear(h, 2, 0, 99)
	state, _ = b.Target(h)
	if !state.DepthCleared || state.Depth != 99 {
		t.Errorf("depth clear not recorded: %+v", state)
	}
	if state.Color != 0xAABBCCDD {
		t.Errorf("depth-only clear touched color: %+v", state)
	}

	// Clears on unknown targets are dropped.
	b.RenderTargetClear(0xBAD, 3, 1, 1)
}

func TestRecordedDrawState(t *testing.T) {
	b := New()
	b.Init(0x1000)

	b.SetBufInfo([]backend.VertexBuffer{{Base: 0x100, Stride: 20, AttribCount: 2, Permutation: 0x10}})
	b.SetAttrInfo([]backend.Attribute{{Register: 0, Format: 3, Count: 3}})
	b.BindProgram(0x500)
	b.SetFloatUniform(0, 4, [][4]float32{{1, 2, 3, 4}})

	if got := b.VertexBuffers(); len(got) != 1 || got[0].Base != 0x100 {
		t.Errorf("VertexBuffers = %+v", got)
	}
	if got := b.Attributes(); len(got) != 1 || got[0].Format != 3 {
		t.Errorf("Attributes = %+v", got)
	}
	if b.BoundProgram() != 0x500 {
		t.Errorf("BoundProgram = %#x", b.BoundProgram())
	}
	rows, ok := b.FloatUniform(0, 4)
	if !ok || len(rows) != 1 || rows[0] != [4]float32{1, 2, 3, 4} {
		t.Errorf("FloatUniform = %v, %v", rows, ok)
	}
	if _, ok := b.FloatUniform(1, 4); ok {
		t.Error("uniform keys must be per shader stage")
	}

	b.DrawArrays(0, 0, 3)
	b.DrawElements(0, 6, 1, 0x200)
	if b.DrawCalls() != 2 {
		t.Errorf("DrawCalls = %d, want 2", b.DrawCalls())
	}
}

func TestLightEnvHandles(t *testing.T) {
	b := New()
	h := b.LightEnvCreate()
	if h == 0 {
		t.Fatal("LightEnvCreate failed")
	}
	b.LightEnvBind(h)
	if b.BoundLightEnv() != h {
		t.Errorf("BoundLightEnv = %#x, want %#x", b.BoundLightEnv(), h)
	}
	b.LightEnvBind(0)
	if b.BoundLightEnv() != 0 {
		t.Errorf("BoundLightEnv = %#x, want 0", b.BoundLightEnv())
	}
	b.LightEnvDelete(h)
}

func TestDraw2DRequiresFrameTarget(t *testing.T) {
	b := New()
	b.Init(0x1000)
	h := b.RenderTargetCreate(10, 10, 0, -1)

	if b.DrawRectSolid(0, 0, 0, 5, 5, 0xFF) {
		t.Error("2D draw outside a frame must fail")
	}

	b.FrameBegin(0)
	if b.DrawRectSolid(0, 0, 0, 5, 5, 0xFF) {
		t.Error("2D draw without a current target must fail")
	}
	if !b.FrameDrawOn(h) {
		t.Fatal("FrameDrawOn failed")
	}
	if !b.DrawRectSolid(0, 0, 0, 5, 5, 0xFF) {
		t.Error("2D draw on the current target must succeed")
	}
	if !b.DrawLine(0, 0, 0xFF, 5, 5, 0xFF, 1, 0) {
		t.Error("2D line draw must succeed")
	}
	b.FrameEnd(0)

	if b.Draw2DCalls() != 2 {
		t.Errorf("Draw2DCalls = %d, want 2", b.Draw2DCalls())
	}
}

func TestTargetClear2D(t *testing.T) {
	b := New()
	h := b.RenderTargetCreate(10, 10, 0, -1)
	b.TargetClear(h, 0x11223344)
	state, _ := b.Target(h)
	if !state.ColorCleared || state.Color != 0x11223344 {
		t.Errorf("TargetClear not recorded: %+v", state)
	}
}
