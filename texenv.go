package citro3d

// TexEnvStageCount is the number of texture combiner stages.
const TexEnvStageCount = 6

// TexEnvMode selects the RGB and/or alpha half of a combiner stage.
type TexEnvMode uint32

const (
	// TexEnvRGB addresses the color half of the stage.
	TexEnvRGB TexEnvMode = 1 << 0

	// TexEnvAlpha addresses the alpha half of the stage.
	TexEnvAlpha TexEnvMode = 1 << 1

	// TexEnvBoth addresses both halves.
	TexEnvBoth TexEnvMode = TexEnvRGB | TexEnvAlpha
)

// TexEnvSource is a combiner input source, in the native encoding.
type TexEnvSource uint32

const (
	// SourcePrimaryColor is the interpolated vertex color.
	SourcePrimaryColor TexEnvSource = 0

	// SourceFragmentPrimaryColor is the primary lighting color.
	SourceFragmentPrimaryColor TexEnvSource = 1

	// SourceFragmentSecondaryColor is the secondary lighting color.
	SourceFragmentSecondaryColor TexEnvSource = 2

	// SourceTexture0 through SourceTexture3 are the texture units.
	SourceTexture0 TexEnvSource = 3
	SourceTexture1 TexEnvSource = 4
	SourceTexture2 TexEnvSource = 5
	SourceTexture3 TexEnvSource = 6

	// SourcePreviousBuffer is the previous stage buffer value.
	SourcePreviousBuffer TexEnvSource = 13

	// SourceConstant is the stage's constant color.
	SourceConstant TexEnvSource = 14

	// SourcePrevious is the previous stage result.
	SourcePrevious TexEnvSource = 15
)

// CombineFunc is a combiner function, in the native encoding.
type CombineFunc uint32

const (
	// CombineReplace passes the first source through.
	CombineReplace CombineFunc = 0

	// CombineModulate multiplies the first two sources.
	CombineModulate CombineFunc = 1

	// CombineAdd adds the first two sources.
	CombineAdd CombineFunc = 2

	// CombineAddSigned adds the first two sources with a -0.5 bias.
	CombineAddSigned CombineFunc = 3

	// CombineInterpolate blends the first two sources by the third.
	CombineInterpolate CombineFunc = 4

	// CombineSubtract subtracts the second source from the first.
	CombineSubtract CombineFunc = 5
)

// TexEnv is one texture combiner stage. Stages are owned by the Instance
// and obtained through Instance.TexEnv; the returned reference stays valid
// for the Instance's lifetime.
type TexEnv struct {
	stage int
	inst  *Instance
}

// TexEnv returns the combiner stage with the given index (0 to
// TexEnvStageCount-1), initializing it to the default state on first
// access.
func (inst *Instance) TexEnv(stage int) (*TexEnv, error) {
	if stage < 0 || stage >= TexEnvStageCount {
		return nil, ErrInvalidStage
	}
	if inst.closed {
		return nil, ErrInstanceClosed
	}
	if inst.texenvs[stage] == nil {
		inst.backend.TexEnvInit(stage)
		inst.texenvs[stage] = &TexEnv{stage: stage, inst: inst}
	}
	return inst.texenvs[stage], nil
}

// Stage returns the stage index.
func (e *TexEnv) Stage() int { return e.stage }

// Reset restores the stage to its default state.
func (e *TexEnv) Reset() {
	e.inst.backend.TexEnvInit(e.stage)
}

// SetSrc sets the three input sources of the halves selected by mode.
func (e *TexEnv) SetSrc(mode TexEnvMode, s0, s1, s2 TexEnvSource) {
	e.inst.backend.TexEnvSrc(e.stage, uint32(mode), uint32(s0), uint32(s1), uint32(s2))
}

// SetFunc sets the combiner function of the halves selected by mode.
func (e *TexEnv) SetFunc(mode TexEnvMode, fn CombineFunc) {
	e.inst.backend.TexEnvFunc(e.stage, uint32(mode), uint32(fn))
}

// SetColor sets the stage's constant color, packed 32-bit RGBA.
func (e *TexEnv) SetColor(color uint32) {
	e.inst.backend.TexEnvColor(e.stage, color)
}
