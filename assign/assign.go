// Package assign implements VarMap, an order-preserving mapping from
// Domain variables to Bool, and Assignment, a VarMap augmented with the
// overflowing binary-counter increment used to drive exhaustive
// enumeration (package truthtable) and partial-evaluation lookups
// (package formula).
package assign

import "github.com/proplog/proplog/domain"

// VarMap is an order-preserving mapping from domain.Ref to bool. Unlike
// a plain Go map, iterating Vars returns variables in the order they
// were first inserted, which is load-bearing for Assignment's counter
// semantics and for Clause's literal ordering.
type VarMap struct {
	order []domain.Ref
	pos   map[domain.Ref]int
	vals  []bool
}

// NewVarMap returns an empty VarMap.
func NewVarMap() *VarMap {
	return &VarMap{pos: make(map[domain.Ref]int)}
}

// VarMapFromVars returns a VarMap over vars, each initially bound to
// false, in the given order.
func VarMapFromVars(vars []domain.Ref) *VarMap {
	vm := NewVarMap()
	for _, v := range vars {
		vm.Set(v, false)
	}
	return vm
}

// Set binds ref to val, appending ref to the insertion order the first
// time it is seen.
func (vm *VarMap) Set(ref domain.Ref, val bool) {
	if i, ok := vm.pos[ref]; ok {
		vm.vals[i] = val
		return
	}
	vm.pos[ref] = len(vm.order)
	vm.order = append(vm.order, ref)
	vm.vals = append(vm.vals, val)
}

// Get returns ref's bound value and whether ref is present.
func (vm *VarMap) Get(ref domain.Ref) (bool, bool) {
	i, ok := vm.pos[ref]
	if !ok {
		return false, false
	}
	return vm.vals[i], true
}

// Len returns the number of bound variables.
func (vm *VarMap) Len() int { return len(vm.order) }

// At returns the ref and value at insertion-order position i.
func (vm *VarMap) At(i int) (domain.Ref, bool) { return vm.order[i], vm.vals[i] }

// Vars returns the bound variables in insertion order.
func (vm *VarMap) Vars() []domain.Ref {
	out := make([]domain.Ref, len(vm.order))
	copy(out, vm.order)
	return out
}

// Clone returns an independent copy of vm.
func (vm *VarMap) Clone() *VarMap {
	out := &VarMap{
		order: append([]domain.Ref(nil), vm.order...),
		vals:  append([]bool(nil), vm.vals...),
		pos:   make(map[domain.Ref]int, len(vm.pos)),
	}
	for k, v := range vm.pos {
		out.pos[k] = v
	}
	return out
}

// Assignment is a VarMap plus the overflow flag of its binary counter.
// The overflow flag marks whether the last call to Increment wrapped
// the counter back to all-false; it is also used as a terminal
// sentinel value by Empty.
type Assignment struct {
	vm       *VarMap
	overflow bool
}

// Empty returns the terminal sentinel Assignment: no bound variables,
// overflow already set. It is the value a Stream of Assignments
// settles on once exhausted, not a valid starting point for
// enumeration (use FromVars for that).
func Empty() *Assignment {
	return &Assignment{vm: NewVarMap(), overflow: true}
}

// FromVars returns an Assignment over vars, all bound to false,
// overflow cleared.
func FromVars(vars []domain.Ref) *Assignment {
	return &Assignment{vm: VarMapFromVars(vars), overflow: false}
}

// FromVarMap returns an Assignment wrapping vm directly, overflow
// cleared. vm is taken by reference: callers should Clone it first if
// they intend to keep using their copy independently.
func FromVarMap(vm *VarMap) *Assignment {
	return &Assignment{vm: vm, overflow: false}
}

// Get returns ref's bound value and whether ref is present in a.
func (a *Assignment) Get(ref domain.Ref) (bool, bool) { return a.vm.Get(ref) }

// Set binds ref to val in a.
func (a *Assignment) Set(ref domain.Ref, val bool) { a.vm.Set(ref, val) }

// Len returns the number of variables bound in a.
func (a *Assignment) Len() int { return a.vm.Len() }

// At returns the ref and value at insertion-order position i.
func (a *Assignment) At(i int) (domain.Ref, bool) { return a.vm.At(i) }

// Vars returns a's bound variables in insertion order.
func (a *Assignment) Vars() []domain.Ref { return a.vm.Vars() }

// VarMap returns the Assignment's underlying VarMap.
func (a *Assignment) VarMap() *VarMap { return a.vm }

// Overflow reports whether the last Increment wrapped the counter.
func (a *Assignment) Overflow() bool { return a.overflow }

// Clone returns an independent copy of a.
func (a *Assignment) Clone() *Assignment {
	return &Assignment{vm: a.vm.Clone(), overflow: a.overflow}
}

// Increment advances a to its successor, treating its variables as a
// little-endian binary counter: bits flip from position 0 upward until
// the first 0->1 transition. If every bit was already 1, every bit is
// reset to false and Overflow becomes true.
func (a *Assignment) Increment() {
	for i := 0; i < a.vm.Len(); i++ {
		ref, val := a.vm.At(i)
		if !val {
			a.vm.Set(ref, true)
			a.overflow = false
			return
		}
		a.vm.Set(ref, false)
	}
	a.overflow = true
}
