package gpucore

import "fmt"

// Program is a compiled program's bookkeeping: its source and the current
// value of every declared uniform.
type Program struct {
	ID       ProgramID
	Source   ProgramSource
	Uniforms Uniforms
}

// ProgramTable tracks compiled programs and their uniform values for a
// Device implementation. The zero value is ready to use.
type ProgramTable struct {
	next     ProgramID
	programs map[ProgramID]*Program
	current  *Program
}

// Add registers src and returns the new program with zeroed uniforms.
func (t *ProgramTable) Add(src ProgramSource) *Program {
	if t.programs == nil {
		t.programs = make(map[ProgramID]*Program)
	}
	t.next++
	p := &Program{ID: t.next, Source: src, Uniforms: make(Uniforms, len(src.Uniforms))}
	for _, d := range src.Uniforms {
		p.Uniforms[d.Name] = make([]float32, d.Floats())
	}
	t.programs[p.ID] = p
	return p
}

// Get returns the program with the given ID.
func (t *ProgramTable) Get(id ProgramID) (*Program, error) {
	p, ok := t.programs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProgram, id)
	}
	return p, nil
}

// Use makes the program current.
func (t *ProgramTable) Use(id ProgramID) (*Program, error) {
	p, err := t.Get(id)
	if err != nil {
		return nil, err
	}
	t.current = p
	return p, nil
}

// Current returns the program in use, or ErrNoProgram.
func (t *ProgramTable) Current() (*Program, error) {
	if t.current == nil {
		return nil, ErrNoProgram
	}
	return t.current, nil
}

// SetUniform stores value for the current program. Slots past len(value)
// are zeroed.
func (t *ProgramTable) SetUniform(name string, value []float32) (*Program, error) {
	p, err := t.Current()
	if err != nil {
		return nil, err
	}
	dst, ok := p.Uniforms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in program %q", ErrUnknownUniform, name, p.Source.Label)
	}
	if len(value) > len(dst) {
		return nil, fmt.Errorf("gpucore: uniform %q holds %d floats, got %d", name, len(dst), len(value))
	}
	n := copy(dst, value)
	clear(dst[n:])
	return p, nil
}

// Remove forgets a program and returns it, or nil for an unknown ID.
func (t *ProgramTable) Remove(id ProgramID) *Program {
	p, ok := t.programs[id]
	if !ok {
		return nil
	}
	delete(t.programs, id)
	if t.current == p {
		t.current = nil
	}
	return p
}

// Len returns the number of live programs.
func (t *ProgramTable) Len() int {
	return len(t.programs)
}

// Each calls fn for every live program.
func (t *ProgramTable) Each(fn func(*Program)) {
	for _, p := range t.programs {
		fn(p)
	}
}
