package optional

import (
	stderrors "errors"
	"strconv"
	"testing"

	"github.com/kbukum/streamkit/errors"
)

func TestOf(t *testing.T) {
	o := Of(42)
	v, ok := o.Get()
	if !ok || v != 42 {
		t.Errorf("got (%v, %v), want (42, true)", v, ok)
	}
	if !o.IsPresent() || o.IsEmpty() {
		t.Error("expected present")
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	var o Optional[string]
	if o.IsPresent() {
		t.Error("zero value must be empty")
	}
	if o.OrElse("none") != "none" {
		t.Errorf("expected fallback, got %q", o.OrElse("none"))
	}
}

func TestOfPtr(t *testing.T) {
	if OfPtr[int](nil).IsPresent() {
		t.Error("nil pointer must give empty")
	}
	n := 7
	if got := OfPtr(&n).OrElse(0); got != 7 {
		t.Errorf("got %d, want 7", got)
	}
}

func TestOrElseGet(t *testing.T) {
	called := false
	got := Of(1).OrElseGet(func() int { called = true; return 2 })
	if got != 1 || called {
		t.Errorf("present value must not call fallback (got %d, called %v)", got, called)
	}
	got = Empty[int]().OrElseGet(func() int { return 2 })
	if got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestOrError(t *testing.T) {
	sentinel := stderrors.New("missing employee")
	if _, err := Empty[int]().OrError(sentinel); err != sentinel {
		t.Errorf("expected sentinel, got %v", err)
	}
	if _, err := Empty[int]().OrError(nil); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
	if v, err := Of(3).OrError(sentinel); err != nil || v != 3 {
		t.Errorf("got (%v, %v), want (3, nil)", v, err)
	}
}

func TestIfPresentOrElse(t *testing.T) {
	var hit, miss int
	Of("x").IfPresentOrElse(func(string) { hit++ }, func() { miss++ })
	Empty[string]().IfPresentOrElse(func(string) { hit++ }, func() { miss++ })
	Empty[string]().IfPresent(func(string) { hit++ })
	if hit != 1 || miss != 1 {
		t.Errorf("hit=%d miss=%d, want 1/1", hit, miss)
	}
}

func TestFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	if !Of(4).Filter(even).IsPresent() {
		t.Error("4 should pass")
	}
	if Of(3).Filter(even).IsPresent() {
		t.Error("3 should not pass")
	}
	if Empty[int]().Filter(even).IsPresent() {
		t.Error("empty stays empty")
	}
}

func TestMapAndFlatMap(t *testing.T) {
	s := Map(Of(12), strconv.Itoa)
	if s.OrElse("") != "12" {
		t.Errorf("got %v", s)
	}
	if Map(Empty[int](), strconv.Itoa).IsPresent() {
		t.Error("mapping empty must stay empty")
	}
	half := func(n int) Optional[int] {
		if n%2 != 0 {
			return Empty[int]()
		}
		return Of(n / 2)
	}
	if FlatMap(Of(10), half).OrElse(-1) != 5 {
		t.Error("expected 5")
	}
	if FlatMap(Of(3), half).IsPresent() {
		t.Error("expected empty for odd")
	}
}

func TestString(t *testing.T) {
	if Of(5).String() != "Optional[5]" {
		t.Errorf("got %q", Of(5).String())
	}
	if Empty[int]().String() != "Optional.empty" {
		t.Errorf("got %q", Empty[int]().String())
	}
}
