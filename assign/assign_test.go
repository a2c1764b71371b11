package assign

import (
	"testing"

	"github.com/proplog/proplog/domain"
)

func vars(t *testing.T, d *domain.Domain, names ...string) []domain.Ref {
	t.Helper()
	out := make([]domain.Ref, len(names))
	for i, n := range names {
		r, err := d.Resolve(n)
		if err != nil {
			t.Fatal(err)
		}
		out[i] = r
	}
	return out
}

func TestEmptyIsTerminalSentinel(t *testing.T) {
	a := Empty()
	if !a.Overflow() {
		t.Errorf("Empty().Overflow() = false, want true")
	}
	if a.Len() != 0 {
		t.Errorf("Empty().Len() = %d, want 0", a.Len())
	}
}

func TestFromVarsStartsClear(t *testing.T) {
	d := domain.New()
	a := FromVars(vars(t, d, "x", "y"))
	if a.Overflow() {
		t.Errorf("FromVars().Overflow() = true, want false")
	}
	for _, ref := range a.Vars() {
		if v, ok := a.Get(ref); !ok || v {
			t.Errorf("expected all-false initial binding, got %v", v)
		}
	}
}

func TestIncrementCountsLikeBinary(t *testing.T) {
	d := domain.New()
	vs := vars(t, d, "x", "y")
	a := FromVars(vs)

	seen := make(map[[2]bool]bool)
	record := func() {
		v0, _ := a.Get(vs[0])
		v1, _ := a.Get(vs[1])
		seen[[2]bool{v0, v1}] = true
	}
	record()
	for i := 0; i < 3; i++ {
		a.Increment()
		if a.Overflow() {
			t.Fatalf("unexpected overflow at step %d", i)
		}
		record()
	}
	if len(seen) != 4 {
		t.Errorf("expected 4 distinct 2-bit assignments, saw %d", len(seen))
	}
	a.Increment()
	if !a.Overflow() {
		t.Errorf("expected overflow after 2^2 increments")
	}
	for _, ref := range a.Vars() {
		if v, _ := a.Get(ref); v {
			t.Errorf("expected overflowed counter to reset to all-false")
		}
	}
}

func TestIncrementWithNoVarsOverflowsImmediately(t *testing.T) {
	a := FromVars(nil)
	if a.Overflow() {
		t.Fatalf("zero-var assignment should not start overflowed")
	}
	a.Increment()
	if !a.Overflow() {
		t.Errorf("zero-var assignment should overflow on first Increment")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	d := domain.New()
	vs := vars(t, d, "x")
	a := FromVars(vs)
	b := a.Clone()
	b.Increment()
	if v, _ := a.Get(vs[0]); v {
		t.Errorf("mutating clone affected original")
	}
	if v, _ := b.Get(vs[0]); !v {
		t.Errorf("clone did not increment")
	}
}
