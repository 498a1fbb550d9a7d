// Package formula defines named expectation-value formulas and the sentinel
// errors for registering and combining them.
package formula

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for formula registration and combination.
var (
	// ErrDuplicateName indicates an expectation-value name is already taken.
	ErrDuplicateName = errors.New("formula: expectation value name already registered")
	// ErrIndexOutOfRange indicates a linear formula references a Pauli
	// product index that was never registered.
	ErrIndexOutOfRange = errors.New("formula: pauli product index out of range")
	// ErrSymbolicEval indicates the symbolic calculator rejected an expression.
	ErrSymbolicEval = errors.New("formula: symbolic expression evaluation failed")
)

// Kind selects how a formula reduces Pauli-product values: a linear
// combination (Linear) or a symbolic expression (Symbolic).
type Kind int

const (
	// Linear combines Pauli-product values as Σ coefficient·value.
	Linear Kind = iota
	// Symbolic evaluates an expression over pauli_product_i variables.
	Symbolic
)

// Formula describes how per-index Pauli-product values reduce into one
// named expectation value. Only scalar real expectation values are
// supported; complex or vector observables must be post-processed as
// separate components.
type Formula struct {
	kind       Kind
	linear     map[int]float64
	expression string
}

// NewLinear returns a linear formula over the given index→coefficient map.
// The map is copied; later caller mutation does not affect the formula.
func NewLinear(linear map[int]float64) Formula {
	cp := make(map[int]float64, len(linear))
	for i, c := range linear {
		cp[i] = c
	}

	return Formula{kind: Linear, linear: cp}
}

// NewSymbolic returns a symbolic formula holding the raw expression text.
// The text is stored uninterpreted; unresolved variables surface only at
// evaluation time.
func NewSymbolic(expression string) Formula {
	return Formula{kind: Symbolic, expression: expression}
}

// Kind reports whether the formula is Linear or Symbolic.
func (f Formula) Kind() Kind { return f.kind }

// Linear returns a copy of the index→coefficient map of a Linear formula
// (nil for Symbolic formulas).
func (f Formula) Linear() map[int]float64 {
	if f.linear == nil {
		return nil
	}
	cp := make(map[int]float64, len(f.linear))
	for i, c := range f.linear {
		cp[i] = c
	}

	return cp
}

// Expression returns the raw expression text of a Symbolic formula
// (empty for Linear formulas).
func (f Formula) Expression() string { return f.expression }

// Registry stores named expectation-value formulas. Names are unique
// across both kinds. The zero value is not usable; construct with
// NewRegistry.
type Registry struct {
	formulas map[string]Formula
}

// NewRegistry returns an empty formula registry.
func NewRegistry() *Registry {
	return &Registry{formulas: make(map[string]Formula)}
}

// AddLinear registers a linear formula under name.
// Fails with ErrDuplicateName when the name is already taken, leaving the
// registry unchanged. Referenced indices are not validated here; a stale
// index surfaces as ErrIndexOutOfRange during Combine.
func (r *Registry) AddLinear(name string, linear map[int]float64) error {
	if _, ok := r.formulas[name]; ok {
		return duplicateName(name)
	}
	r.formulas[name] = NewLinear(linear)

	return nil
}

// AddSymbolic registers a symbolic formula under name.
// Fails with ErrDuplicateName when the name is already taken, leaving the
// registry unchanged.
func (r *Registry) AddSymbolic(name, expression string) error {
	if _, ok := r.formulas[name]; ok {
		return duplicateName(name)
	}
	r.formulas[name] = NewSymbolic(expression)

	return nil
}

func duplicateName(name string) error {
	return fmt.Errorf("formula: %q: %w", name, ErrDuplicateName)
}

// Len reports the number of registered formulas.
func (r *Registry) Len() int { return len(r.formulas) }

// Get returns the formula registered under name.
func (r *Registry) Get(name string) (Formula, bool) {
	f, ok := r.formulas[name]

	return f, ok
}

// Names returns all registered names in ascending order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formulas))
	for name := range r.formulas {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
