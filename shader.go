package citro3d

// Program is a linked shader program. Loading and linking happen outside
// this package; a Program wraps the resulting native block.
type Program struct {
	raw uintptr
}

// ProgramFromRaw wraps a native shader program block. The block must
// outlive the Program and every draw call it is bound for.
func ProgramFromRaw(raw uintptr) *Program {
	return &Program{raw: raw}
}

// Raw returns the underlying native program block.
func (p *Program) Raw() uintptr { return p.raw }
