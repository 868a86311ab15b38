package citro3d_test

import (
	"errors"
	"testing"

	"github.com/go3ds/citro3d"
	"github.com/go3ds/citro3d/gfx"
)

func TestClearSelectsBuffers(t *testing.T) {
	inst, hb, display := newTestInstance(t)

	target, err := inst.CreateScreenTarget(10, 10, display.Top(), citro3d.Depth16)
	if err != nil {
		t.Fatalf("target: %v", err)
	}
	defer closeTarget(t, target)

	target.Clear(citro3d.ClearAll, 0xFF0000FF, 0)
	state, ok := hb.Target(target.Raw())
	if !ok {
		t.Fatal("target not recorded")
	}
	if !state.ColorCleared || !state.DepthCleared {
		t.Fatal("ClearAll must clear both buffers")
	}
	if state.Color != 0xFF0000FF || state.Depth != 0 {
		t.Errorf("state = {color %#x, depth %d}, want {0xFF0000FF, 0}", state.Color, state.Depth)
	}

	// A color-only clear leaves the depth value alone.
	target.Clear(citro3d.ClearColor, 0x00FF00FF, 42)
	state, _ = hb.Target(target.Raw())
	if state.Color != 0x00FF00FF {
		t.Errorf("color = %#x, want 0x00FF00FF", state.Color)
	}
	if state.Depth != 0 {
		t.Errorf("depth = %d, want untouched 0", state.Depth)
	}

	// And the converse for a depth-only clear.
	target.Clear(citro3d.ClearDepth, 0x12345678, 7)
	state, _ = hb.Target(target.Raw())
	if state.Color != 0x00FF00FF {
		t.Errorf("color = %#x, want untouched 0x00FF00FF", state.Color)
	}
	if state.Depth != 7 {
		t.Errorf("depth = %d, want 7", state.Depth)
	}
}

func TestTargetDerivesScreenFormat(t *testing.T) {
	inst, hb, display := newTestInstance(t)

	// The default framebuffer format is BGR8, which renders through RGB8.
	target, err := inst.CreateScreenTarget(400, 240, display.Top(), citro3d.Depth24Stencil8)
	if err != nil {
		t.Fatalf("target: %v", err)
	}
	defer closeTarget(t, target)

	if target.ColorFormat() != citro3d.ColorRGB8 {
		t.Errorf("ColorFormat = %v, want RGB8 for a BGR8 screen", target.ColorFormat())
	}
	if target.DepthFormat() != citro3d.Depth24Stencil8 {
		t.Errorf("DepthFormat = %v, want Depth24Stencil8", target.DepthFormat())
	}
	if target.Raw() == 0 {
		t.Error("Raw must be a live native handle")
	}
	if target.Width() != 400 || target.Height() != 240 {
		t.Errorf("size = %dx%d, want 400x240", target.Width(), target.Height())
	}
	if target.Screen() != display.Top() {
		t.Error("Screen must return the backing screen")
	}

	state, ok := hb.Target(target.Raw())
	if !ok {
		t.Fatal("target not recorded")
	}
	if state.ColorFormat != uint32(citro3d.ColorRGB8) {
		t.Errorf("native color format = %d, want %d", state.ColorFormat, uint32(citro3d.ColorRGB8))
	}
	if state.DepthFormat != int32(citro3d.Depth24Stencil8) {
		t.Errorf("native depth format = %d, want %d", state.DepthFormat, int32(citro3d.Depth24Stencil8))
	}
	if state.Screen != display.Top().ID() {
		t.Errorf("output screen = %d, want %d", state.Screen, display.Top().ID())
	}
}

func TestFormatMappingCoverage(t *testing.T) {
	inst, hb, _ := newTestInstance(t)

	tests := []struct {
		format gfx.FramebufferFormat
		want   citro3d.ColorFormat
	}{
		{gfx.Rgba8, citro3d.ColorRGBA8},
		{gfx.Rgb565, citro3d.ColorRGB565},
		{gfx.Rgb5A1, citro3d.ColorRGBA5551},
		{gfx.Rgba4, citro3d.ColorRGBA4},
		{gfx.Bgr8, citro3d.ColorRGB8},
	}
	for _, tt := range tests {
		display := gfx.New(gfx.WithTopFormat(tt.format))
		target, err := inst.CreateScreenTarget(10, 10, display.Top(), citro3d.DepthNone)
		if err != nil {
			t.Fatalf("%v: target: %v", tt.format, err)
		}
		if target.ColorFormat() != tt.want {
			t.Errorf("%v: ColorFormat = %v, want %v", tt.format, target.ColorFormat(), tt.want)
		}
		if state, ok := hb.Target(target.Raw()); !ok || state.ColorFormat != uint32(tt.want) {
			t.Errorf("%v: native color format = %d, want %d", tt.format, state.ColorFormat, uint32(tt.want))
		}
		closeTarget(t, target)
	}
}

func TestStaleHandlesDoNotReachBackend(t *testing.T) {
	inst, hb, display := newTestInstance(t)

	target, err := inst.CreateScreenTarget(10, 10, display.Top(), citro3d.DepthNone)
	if err != nil {
		t.Fatalf("target: %v", err)
	}
	defer closeTarget(t, target)

	var stale *citro3d.RenderTarget
	target, err = inst.RenderToTarget(target, func(inst *citro3d.Instance, active *citro3d.RenderTarget) (*citro3d.RenderTarget, error) {
		stale = active

		// While the target is active, the passive handle is stale.
		target.Clear(citro3d.ClearColor, 0xAAAAAAAA, 0)
		if state, _ := hb.Target(target.Raw()); state.ColorCleared {
			t.Error("clear through a stale passive handle must be dropped")
		}
		return active, nil
	})
	if err != nil {
		t.Fatalf("RenderToTarget: %v", err)
	}

	// After the frame, the retained active handle is the stale one.
	stale.Clear(citro3d.ClearColor, 0xBBBBBBBB, 0)
	if state, _ := hb.Target(target.Raw()); state.ColorCleared {
		t.Error("clear through a stale render target handle must be dropped")
	}

	// The fresh passive handle still works.
	target.Clear(citro3d.ClearColor, 0xCCCCCCCC, 0)
	if state, _ := hb.Target(target.Raw()); !state.ColorCleared || state.Color != 0xCCCCCCCC {
		t.Error("clear through the fresh passive handle must reach the backend")
	}
}

func TestDrawArraysRequiresFrame(t *testing.T) {
	inst, hb, display := newTestInstance(t)

	var info citro3d.BufferInfo
	vbo, err := info.Add(0x1000, 3, 12, 1, 0x0)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := inst.DrawArrays(citro3d.PrimTriangles, vbo); !errors.Is(err, citro3d.ErrOutsideFrame) {
		t.Fatalf("DrawArrays outside frame = %v, want ErrOutsideFrame", err)
	}
	if hb.DrawCalls() != 0 {
		t.Fatal("no draw may be submitted outside a frame")
	}

	target, err := inst.CreateScreenTarget(10, 10, display.Top(), citro3d.DepthNone)
	if err != nil {
		t.Fatalf("target: %v", err)
	}
	defer closeTarget(t, target)

	target, err = inst.RenderToTarget(target, func(inst *citro3d.Instance, active *citro3d.RenderTarget) (*citro3d.RenderTarget, error) {
		if err := inst.DrawArrays(citro3d.PrimTriangleStrip, vbo); err != nil {
			t.Errorf("DrawArrays: %v", err)
		}
		return active, nil
	})
	if err != nil {
		t.Fatalf("RenderToTarget: %v", err)
	}

	if hb.DrawCalls() != 1 {
		t.Errorf("DrawCalls = %d, want 1", hb.DrawCalls())
	}
	buffers := hb.VertexBuffers()
	if len(buffers) != 1 || buffers[0].Base != 0x1000 || buffers[0].Stride != 12 {
		t.Errorf("recorded buffers = %+v", buffers)
	}
}

func TestDrawElements(t *testing.T) {
	inst, hb, display := newTestInstance(t)

	target, err := inst.CreateScreenTarget(10, 10, display.Top(), citro3d.DepthNone)
	if err != nil {
		t.Fatalf("target: %v", err)
	}
	defer closeTarget(t, target)

	var info citro3d.BufferInfo
	vbo, err := info.Add(0x1000, 4, 12, 1, 0x0)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	indices := citro3d.IndicesU16([]uint16{0, 1, 2, 2, 1, 3})

	if err := inst.DrawElements(citro3d.PrimTriangles, vbo, indices); !errors.Is(err, citro3d.ErrOutsideFrame) {
		t.Fatalf("DrawElements outside frame = %v, want ErrOutsideFrame", err)
	}

	target, err = inst.RenderToTarget(target, func(inst *citro3d.Instance, active *citro3d.RenderTarget) (*citro3d.RenderTarget, error) {
		return active, inst.DrawElements(citro3d.PrimTriangles, vbo, indices)
	})
	if err != nil {
		t.Fatalf("RenderToTarget: %v", err)
	}
	if hb.DrawCalls() != 1 {
		t.Errorf("DrawCalls = %d, want 1", hb.DrawCalls())
	}
}

func TestAttrInfoReachesBackend(t *testing.T) {
	inst, hb, _ := newTestInstance(t)

	var info citro3d.AttrInfo
	if err := info.AddLoader(0, citro3d.FormatFloat, 3); err != nil {
		t.Fatalf("AddLoader: %v", err)
	}
	if err := info.AddLoader(1, citro3d.FormatUnsignedByte, 4); err != nil {
		t.Fatalf("AddLoader: %v", err)
	}
	inst.SetAttrInfo(&info)

	attrs := hb.Attributes()
	if len(attrs) != 2 {
		t.Fatalf("recorded attrs = %d, want 2", len(attrs))
	}
	if attrs[0].Register != 0 || attrs[0].Format != uint32(citro3d.FormatFloat) || attrs[0].Count != 3 {
		t.Errorf("attr 0 = %+v", attrs[0])
	}
	if attrs[1].Register != 1 || attrs[1].Format != uint32(citro3d.FormatUnsignedByte) || attrs[1].Count != 4 {
		t.Errorf("attr 1 = %+v", attrs[1])
	}
}

func TestBindUniforms(t *testing.T) {
	inst, hb, _ := newTestInstance(t)

	inst.BindVertexUniform(4, citro3d.Vec4(1, 2, 3, 4))
	rows, ok := hb.FloatUniform(uint32(citro3d.ShaderVertex), 4)
	if !ok || len(rows) != 1 || rows[0] != [4]float32{1, 2, 3, 4} {
		t.Errorf("vertex uniform rows = %v, %v", rows, ok)
	}

	inst.BindGeometryUniform(0, citro3d.Identity())
	rows, ok = hb.FloatUniform(uint32(citro3d.ShaderGeometry), 0)
	if !ok || len(rows) != 4 {
		t.Fatalf("geometry uniform rows = %v, %v", rows, ok)
	}
	if rows[0] != [4]float32{1, 0, 0, 0} || rows[3] != [4]float32{0, 0, 0, 1} {
		t.Errorf("identity rows = %v", rows)
	}
}

func TestBindProgram(t *testing.T) {
	inst, hb, _ := newTestInstance(t)

	prog := citro3d.ProgramFromRaw(0xDEAD)
	inst.BindProgram(prog)
	if hb.BoundProgram() != 0xDEAD {
		t.Errorf("BoundProgram = %#x, want 0xDEAD", hb.BoundProgram())
	}
}

func TestTexEnvLazyInit(t *testing.T) {
	inst, hb, _ := newTestInstance(t)

	env, err := inst.TexEnv(0)
	if err != nil {
		t.Fatalf("TexEnv: %v", err)
	}
	if env.Stage() != 0 {
		t.Errorf("Stage = %d, want 0", env.Stage())
	}
	if hb.TexEnvInits(0) != 1 {
		t.Fatalf("stage 0 inits = %d, want 1", hb.TexEnvInits(0))
	}

	// A second access returns the same stage without reinitializing.
	again, err := inst.TexEnv(0)
	if err != nil {
		t.Fatalf("TexEnv: %v", err)
	}
	if again != env {
		t.Error("TexEnv must return the cached stage")
	}
	if hb.TexEnvInits(0) != 1 {
		t.Errorf("stage 0 inits after reaccess = %d, want 1", hb.TexEnvInits(0))
	}

	// An explicit Reset does reinitialize.
	env.Reset()
	if hb.TexEnvInits(0) != 2 {
		t.Errorf("stage 0 inits after Reset = %d, want 2", hb.TexEnvInits(0))
	}

	env.SetSrc(citro3d.TexEnvBoth, citro3d.SourcePrimaryColor, citro3d.SourcePrevious, citro3d.SourceConstant)
	env.SetFunc(citro3d.TexEnvRGB, citro3d.CombineModulate)
	env.SetColor(0xFFFFFFFF)

	if _, err := inst.TexEnv(citro3d.TexEnvStageCount); !errors.Is(err, citro3d.ErrInvalidStage) {
		t.Errorf("out-of-range stage = %v, want ErrInvalidStage", err)
	}
	if _, err := inst.TexEnv(-1); !errors.Is(err, citro3d.ErrInvalidStage) {
		t.Errorf("negative stage = %v, want ErrInvalidStage", err)
	}
}

func TestLightEnvLifecycle(t *testing.T) {
	inst, hb, _ := newTestInstance(t)

	env, err := inst.NewLightEnv()
	if err != nil {
		t.Fatalf("NewLightEnv: %v", err)
	}
	if env.Raw() == 0 {
		t.Fatal("Raw must be a live native handle")
	}
	if inst.LightEnv() != nil {
		t.Fatal("a new environment must start unbound")
	}

	if prev := inst.BindLightEnv(env); prev != nil {
		t.Errorf("first bind returned previous %v", prev)
	}
	if hb.BoundLightEnv() != env.Raw() {
		t.Errorf("native bound env = %#x, want %#x", hb.BoundLightEnv(), env.Raw())
	}
	if inst.LightEnv() != env {
		t.Error("LightEnv must report the bound environment")
	}

	// Closing while bound is refused.
	if err := env.Close(); err == nil {
		t.Fatal("Close of a bound environment must fail")
	}

	if prev := inst.BindLightEnv(nil); prev != env {
		t.Errorf("unbind returned %v, want the environment", prev)
	}
	if hb.BoundLightEnv() != 0 {
		t.Errorf("native bound env = %#x, want 0 after unbind", hb.BoundLightEnv())
	}

	if err := env.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := env.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
