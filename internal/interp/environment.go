package interp

import "github.com/cbondurant/lockjaw/internal/ast"

// Environment is a stack of scope frames, each a mapping from symbol text to
// a resolved Value. Frame 0 is the global scope and always exists. Grounded
// verbatim on original_source/src/environment.rs — including its `get`
// discipline, which checks only the topmost frame and frame 0, never the
// frames in between.
type Environment struct {
	frames []map[string]ast.Value
}

// NewEnvironment builds an Environment holding a single, empty global frame.
func NewEnvironment() *Environment {
	return &Environment{frames: []map[string]ast.Value{{}}}
}

// Put inserts k->v into the topmost frame (a local binding).
func (e *Environment) Put(k string, v ast.Value) {
	e.frames[len(e.frames)-1][k] = v
}

// Def inserts k->v into frame 0, the global scope. This is how `def`
// implements its always-global semantics regardless of how deep the
// current call stack is.
func (e *Environment) Def(k string, v ast.Value) {
	e.frames[0][k] = v
}

// Get looks up k in the topmost frame, falling back to the global frame.
// Intermediate frames are never consulted: a curried function's captured
// arguments travel in its Curried slot, not by lexical closure over
// activation frames, so there is nothing to find there.
func (e *Environment) Get(k string) (ast.Value, bool) {
	top := e.frames[len(e.frames)-1]
	if v, ok := top[k]; ok {
		return v, true
	}
	v, ok := e.frames[0][k]
	return v, ok
}

// PushEnv opens a new local frame for a function activation.
func (e *Environment) PushEnv() {
	e.frames = append(e.frames, map[string]ast.Value{})
}

// PopEnv closes the most recently opened local frame.
func (e *Environment) PopEnv() {
	e.frames = e.frames[:len(e.frames)-1]
}
