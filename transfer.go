package citro3d

// transferFormat is the GX display-transfer pixel format. Its value order
// differs from the color buffer encoding, so the two must not be mixed.
type transferFormat uint32

const (
	transferRGBA8  transferFormat = 0
	transferRGB8   transferFormat = 1
	transferRGB565 transferFormat = 2
	transferRGB5A1 transferFormat = 3
	transferRGBA4  transferFormat = 4
)

// transferFormatFor converts a color buffer format to the matching GX
// transfer format.
func transferFormatFor(f ColorFormat) transferFormat {
	switch f {
	case ColorRGBA8:
		return transferRGBA8
	case ColorRGB8:
		return transferRGB8
	case ColorRGB565:
		return transferRGB565
	case ColorRGBA5551:
		return transferRGB5A1
	case ColorRGBA4:
		return transferRGBA4
	default:
		return transferRGBA8
	}
}

// transferFlags assembles the GX transfer control bitfield that routes a
// render target's color buffer to a screen framebuffer.
type transferFlags uint32

// Bit positions of the GX transfer control word.
const (
	transferFlipShift      = 0
	transferOutTiledShift  = 1
	transferRawCopyShift   = 3
	transferInFormatShift  = 8
	transferOutFormatShift = 12
	transferScalingShift   = 24
)

// inFormat sets the source pixel format of the transfer.
func (t transferFlags) inFormat(f transferFormat) transferFlags {
	return t | transferFlags(uint32(f)<<transferInFormatShift)
}

// outFormat sets the destination pixel format of the transfer.
func (t transferFlags) outFormat(f transferFormat) transferFlags {
	return t | transferFlags(uint32(f)<<transferOutFormatShift)
}

// bits returns the assembled control word.
func (t transferFlags) bits() uint32 {
	return uint32(t)
}
