package interpreter

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/leonardinius/tinylox/internal/loxerrors"
	"github.com/leonardinius/tinylox/internal/token"
)

// ScopeID indexes a scope in the Environment arena.
type ScopeID int

const (
	GlobalScope ScopeID = 0
	noScope     ScopeID = -1
)

type scope struct {
	enclosing ScopeID
	values    map[string]Value
}

// Environment maps names to values. Scopes live in one slice and point to
// their enclosing scope by index; scope 0 is the global scope and exists for
// the environment's whole life.
type Environment struct {
	scopes []scope
}

func NewEnvironment() *Environment {
	return &Environment{scopes: []scope{{enclosing: noScope}}}
}

// Push allocates a scope nested in enclosing.
func (e *Environment) Push(enclosing ScopeID) ScopeID {
	e.mustScope(enclosing)
	e.scopes = append(e.scopes, scope{enclosing: enclosing})
	return ScopeID(len(e.scopes) - 1)
}

// Enclosing returns the parent of id, false for the global scope.
func (e *Environment) Enclosing(id ScopeID) (ScopeID, bool) {
	parent := e.mustScope(id).enclosing
	return parent, parent != noScope
}

// Define binds name in scope id, replacing any previous binding there.
func (e *Environment) Define(id ScopeID, name string, value Value) {
	s := e.mustScope(id)
	if s.values == nil {
		s.values = make(map[string]Value)
	}
	s.values[name] = value
}

// Lookup resolves name starting at scope id and walking outwards.
func (e *Environment) Lookup(id ScopeID, name string) (Value, bool) {
	for id != noScope {
		s := e.mustScope(id)
		if value, ok := s.values[name]; ok {
			return value, true
		}
		id = s.enclosing
	}

	return nil, false
}

func (e *Environment) Get(id ScopeID, name *token.Token) (Value, error) {
	if value, ok := e.Lookup(id, name.Lexeme); ok {
		return value, nil
	}

	return nil, e.undefinedVariable(name)
}

// Names lists the names bound directly in scope id, sorted.
func (e *Environment) Names(id ScopeID) []string {
	names := maps.Keys(e.mustScope(id).values)
	slices.Sort(names)
	return names
}

func (e *Environment) mustScope(id ScopeID) *scope {
	if id < 0 || int(id) >= len(e.scopes) {
		panic(fmt.Sprintf("unknown scope %d", id))
	}
	return &e.scopes[id]
}

func (e *Environment) undefinedVariable(name *token.Token) error {
	return loxerrors.NewRuntimeError(name, loxerrors.ErrRuntimeUndefinedVariableName(name.Lexeme))
}

// String renders the global scope, e.g. "{a=1,b=nil}".
func (e *Environment) String() string {
	w := new(strings.Builder)
	w.WriteString("{")
	for idx, name := range e.Names(GlobalScope) {
		if idx > 0 {
			w.WriteString(",")
		}
		fmt.Fprintf(w, "%s=%v", name, e.scopes[GlobalScope].values[name])
	}
	w.WriteString("}")
	return w.String()
}

var _ fmt.Stringer = (*Environment)(nil)
