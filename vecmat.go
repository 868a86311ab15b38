package citro3d

// FVec4 is a four-component vector of 32-bit floats, the unit of the GPU's
// floating-point uniform registers.
type FVec4 struct {
	X, Y, Z, W float32
}

// Vec4 builds an FVec4 from its components.
func Vec4(x, y, z, w float32) FVec4 {
	return FVec4{X: x, Y: y, Z: z, W: w}
}

// Matrix4 is a row-major 4x4 matrix of 32-bit floats.
type Matrix4 struct {
	rows [4]FVec4
}

// Identity returns the identity matrix.
func Identity() Matrix4 {
	return Matrix4{rows: [4]FVec4{
		{X: 1},
		{Y: 1},
		{Z: 1},
		{W: 1},
	}}
}

// MatrixFromRows builds a matrix from four row vectors.
func MatrixFromRows(r0, r1, r2, r3 FVec4) Matrix4 {
	return Matrix4{rows: [4]FVec4{r0, r1, r2, r3}}
}

// Rows returns the matrix rows.
func (m Matrix4) Rows() [4]FVec4 {
	return m.rows
}
