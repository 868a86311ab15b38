package citro3d

// ShaderType selects a programmable shader stage, in the native encoding.
type ShaderType uint32

const (
	// ShaderVertex is the vertex shader stage.
	ShaderVertex ShaderType = 0

	// ShaderGeometry is the geometry shader stage.
	ShaderGeometry ShaderType = 1
)

// UniformIndex addresses a floating-point uniform register of a shader
// stage.
type UniformIndex int

// Uniform is a value that can be bound to a shader uniform register.
// FVec4 occupies one register, Matrix4 four consecutive ones.
type Uniform interface {
	uniformRows() [][4]float32
}

func (v FVec4) uniformRows() [][4]float32 {
	return [][4]float32{{v.X, v.Y, v.Z, v.W}}
}

func (m Matrix4) uniformRows() [][4]float32 {
	rows := make([][4]float32, 0, 4)
	for _, r := range m.rows {
		rows = append(rows, [4]float32{r.X, r.Y, r.Z, r.W})
	}
	return rows
}

// BindVertexUniform binds a uniform to the given register of the vertex
// shader for the next draw call.
func (inst *Instance) BindVertexUniform(index UniformIndex, u Uniform) {
	inst.bindUniform(ShaderVertex, index, u)
}

// BindGeometryUniform binds a uniform to the given register of the
// geometry shader for the next draw call.
func (inst *Instance) BindGeometryUniform(index UniformIndex, u Uniform) {
	inst.bindUniform(ShaderGeometry, index, u)
}

func (inst *Instance) bindUniform(st ShaderType, index UniformIndex, u Uniform) {
	inst.backend.SetFloatUniform(uint32(st), int(index), u.uniformRows())
}
