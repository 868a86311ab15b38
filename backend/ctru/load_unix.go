//go:build linux || darwin

package ctru

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Library names probed by load, in order.
var (
	lib3dNames = []string{"libcitro3d.so", "libcitro3d.dylib"}
	lib2dNames = []string{"libcitro2d.so", "libcitro2d.dylib"}
)

func dlopenFirst(names []string) (uintptr, error) {
	var firstErr error
	for _, name := range names {
		h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return h, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return 0, firstErr
}

// load resolves every symbol the backend needs. citro3d is required;
// citro2d is optional and only gates the 2D draw surface.
func (b *Backend) load() (err error) {
	// RegisterLibFunc panics on a missing symbol; report that as a load
	// error so the registry factory can fall through to another backend.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ctru: symbol resolution failed: %v", r)
		}
	}()

	lib3d, err := dlopenFirst(lib3dNames)
	if err != nil {
		return fmt.Errorf("ctru: %w", err)
	}

	purego.RegisterLibFunc(&b.c3dInit, lib3d, "C3D_Init")
	purego.RegisterLibFunc(&b.c3dFini, lib3d, "C3D_Fini")
	purego.RegisterLibFunc(&b.frameBegin, lib3d, "C3D_FrameBegin")
	purego.RegisterLibFunc(&b.frameDrawOn, lib3d, "C3D_FrameDrawOn")
	purego.RegisterLibFunc(&b.frameEnd, lib3d, "C3D_FrameEnd")
	purego.RegisterLibFunc(&b.renderTargetCreate, lib3d, "C3D_RenderTargetCreate")
	purego.RegisterLibFunc(&b.renderTargetSetOutput, lib3d, "C3D_RenderTargetSetOutput")
	purego.RegisterLibFunc(&b.renderTargetClear, lib3d, "C3D_RenderTargetClear")
	purego.RegisterLibFunc(&b.renderTargetDelete, lib3d, "C3D_RenderTargetDelete")
	purego.RegisterLibFunc(&b.getBufInfo, lib3d, "C3D_GetBufInfo")
	purego.RegisterLibFunc(&b.bufInfoInit, lib3d, "BufInfo_Init")
	purego.RegisterLibFunc(&b.bufInfoAdd, lib3d, "BufInfo_Add")
	purego.RegisterLibFunc(&b.getAttrInfo, lib3d, "C3D_GetAttrInfo")
	purego.RegisterLibFunc(&b.attrInfoInit, lib3d, "AttrInfo_Init")
	purego.RegisterLibFunc(&b.attrInfoAddLoader, lib3d, "AttrInfo_AddLoader")
	purego.RegisterLibFunc(&b.drawArrays, lib3d, "C3D_DrawArrays")
	purego.RegisterLibFunc(&b.drawElements, lib3d, "C3D_DrawElements")
	purego.RegisterLibFunc(&b.bindProgram, lib3d, "C3D_BindProgram")
	purego.RegisterLibFunc(&b.fvUnifWritePtr, lib3d, "C3D_FVUnifWritePtr")
	purego.RegisterLibFunc(&b.lightEnvInit, lib3d, "C3D_LightEnvInit")
	purego.RegisterLibFunc(&b.lightEnvBind, lib3d, "C3D_LightEnvBind")
	purego.RegisterLibFunc(&b.getTexEnv, lib3d, "C3D_GetTexEnv")
	purego.RegisterLibFunc(&b.texEnvInit, lib3d, "C3D_TexEnvInit")
	purego.RegisterLibFunc(&b.texEnvSrc, lib3d, "C3D_TexEnvSrc")
	purego.RegisterLibFunc(&b.texEnvFunc, lib3d, "C3D_TexEnvFunc")
	purego.RegisterLibFunc(&b.texEnvColor, lib3d, "C3D_TexEnvColor")

	purego.RegisterLibFunc(&b.malloc, purego.RTLD_DEFAULT, "malloc")
	purego.RegisterLibFunc(&b.free, purego.RTLD_DEFAULT, "free")

	if lib2d, err2 := dlopenFirst(lib2dNames); err2 == nil {
		purego.RegisterLibFunc(&b.c2dTargetClear, lib2d, "C2D_TargetClear")
		purego.RegisterLibFunc(&b.c2dRectangle, lib2d, "C2D_DrawRectangle")
		purego.RegisterLibFunc(&b.c2dRectSolid, lib2d, "C2D_DrawRectSolid")
		purego.RegisterLibFunc(&b.c2dTriangle, lib2d, "C2D_DrawTriangle")
		purego.RegisterLibFunc(&b.c2dEllipse, lib2d, "C2D_DrawEllipse")
		purego.RegisterLibFunc(&b.c2dEllipseSolid, lib2d, "C2D_DrawEllipseSolid")
		purego.RegisterLibFunc(&b.c2dCircle, lib2d, "C2D_DrawCircle")
		purego.RegisterLibFunc(&b.c2dCircleSolid, lib2d, "C2D_DrawCircleSolid")
		purego.RegisterLibFunc(&b.c2dLine, lib2d, "C2D_DrawLine")
		b.has2D = true
	}

	return nil
}
