package citro3d

import "errors"

// Package errors. All fallible operations surface one of these values,
// possibly wrapped with context; match with errors.Is.
var (
	// ErrFailedToInitialize is returned when the native library cannot be
	// brought up. The process is left in the pre-init state and another
	// attempt may succeed.
	ErrFailedToInitialize = errors.New("citro3d: failed to initialize")

	// ErrTargetCreationFailed is returned when native render target
	// creation returns null or a dimension does not fit the native range.
	ErrTargetCreationFailed = errors.New("citro3d: render target creation failed")

	// ErrInvalidRenderTarget is returned when a target cannot be made the
	// draw destination (unsupported screen or malformed target).
	ErrInvalidRenderTarget = errors.New("citro3d: invalid render target")

	// ErrOverflow is returned when a numeric conversion exceeds the
	// representable range of the native type.
	ErrOverflow = errors.New("citro3d: numeric overflow")

	// ErrInstanceExists is returned by New while another Instance is still
	// live. The claim clears once the previous instance and all of its
	// targets are closed.
	ErrInstanceExists = errors.New("citro3d: an Instance already exists")

	// ErrInstanceClosed is returned when operating on a closed Instance.
	ErrInstanceClosed = errors.New("citro3d: instance is closed")

	// ErrFrameInProgress is returned when a frame scope would nest inside
	// an already open one.
	ErrFrameInProgress = errors.New("citro3d: frame already in progress")

	// ErrOutsideFrame is returned when a draw is submitted with no open
	// frame scope.
	ErrOutsideFrame = errors.New("citro3d: no frame in progress")

	// ErrTargetActive is returned when a passive-state operation is
	// attempted on a target that is currently the draw destination.
	ErrTargetActive = errors.New("citro3d: target is active")

	// ErrTargetClosed is returned when operating on a closed target.
	ErrTargetClosed = errors.New("citro3d: target is closed")

	// ErrBufferInfoFull is returned when adding a vertex buffer beyond the
	// native per-draw limit.
	ErrBufferInfoFull = errors.New("citro3d: buffer info is full")

	// ErrAttrInfoFull is returned when adding an attribute loader beyond
	// the native per-draw limit.
	ErrAttrInfoFull = errors.New("citro3d: attribute info is full")

	// ErrInvalidStage is returned for a texture combiner stage index
	// outside 0..TexEnvStageCount-1.
	ErrInvalidStage = errors.New("citro3d: texenv stage out of range")
)
