// Package slicing implements Python-style slice arguments for sequences and text.
//
// A Bound is either a single end index (Upto) or a full start:stop:step range (Range).
// Indices may be negative, in which case they count from the end, and out-of-range
// values are clamped rather than rejected.
package slicing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/boxkit/boxkit/util"
	"github.com/samber/mo"
)

var (
	// ErrZeroStep is returned when a range has a step of 0.
	ErrZeroStep = errors.New("slice step cannot be zero")

	// ErrSyntax is returned by Parse for malformed bounds.
	ErrSyntax = errors.New("invalid slice syntax")
)

// Kind distinguishes the two forms of a Bound.
type Kind uint8

const (
	// KindUpto is a single end index, a[:n].
	KindUpto Kind = iota
	// KindRange is a start:stop:step range, a[start:stop:step].
	KindRange
)

// Bound is the slice argument accepted by Sequence.Slice and Text.Substring.
type Bound struct {
	kind  Kind
	start mo.Option[int]
	stop  mo.Option[int]
	step  mo.Option[int]
}

// Upto selects everything before index n.
func Upto(n int) Bound {
	return Bound{kind: KindUpto, stop: mo.Some(n)}
}

// Range selects start:stop:step. Absent parts take the usual defaults for the direction of step.
func Range(start, stop, step mo.Option[int]) Bound {
	return Bound{kind: KindRange, start: start, stop: stop, step: step}
}

// Between is a shorthand for Range(Some(start), Some(stop), None).
func Between(start, stop int) Bound {
	return Range(mo.Some(start), mo.Some(stop), mo.None[int]())
}

// Full selects the whole input.
func Full() Bound {
	return Range(mo.None[int](), mo.None[int](), mo.None[int]())
}

// Kind reports which form the bound was built with.
func (b Bound) Kind() Kind {
	return b.kind
}

// String renders the bound the way Parse reads it.
func (b Bound) String() string {
	part := func(o mo.Option[int]) string {
		if v, ok := o.Get(); ok {
			return strconv.Itoa(v)
		}
		return ""
	}

	if b.kind == KindUpto {
		return ":" + part(b.stop)
	}

	s := part(b.start) + ":" + part(b.stop)
	if b.step.IsPresent() {
		s += ":" + part(b.step)
	}
	return s
}

// Indices resolves the bound against a sequence of the given length.
// The returned start, stop and step can be walked with Walk.
func (b Bound) Indices(length int) (start, stop, step int, err error) {
	step = b.step.OrElse(1)
	if step == 0 {
		return 0, 0, 0, ErrZeroStep
	}

	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}

	resolve := func(o mo.Option[int], fallback int) int {
		v, ok := o.Get()
		if !ok {
			return fallback
		}
		if v < 0 {
			return util.Max(v+length, lower)
		}
		return util.Min(v, upper)
	}

	if step < 0 {
		start = resolve(b.start, upper)
		stop = resolve(b.stop, lower)
	} else {
		start = resolve(b.start, lower)
		stop = resolve(b.stop, upper)
	}

	return start, stop, step, nil
}

// Walk calls fn for every index selected by start, stop and step, in order.
func Walk(start, stop, step int, fn func(i int)) {
	if step > 0 {
		for i := start; i < stop; i += step {
			fn(i)
		}
		return
	}

	for i := start; i > stop; i += step {
		fn(i)
	}
}

// Apply returns a newly allocated slice holding the items selected by b.
func Apply[T any](items []T, b Bound) ([]T, error) {
	start, stop, step, err := b.Indices(len(items))
	if err != nil {
		return nil, err
	}

	result := make([]T, 0)
	Walk(start, stop, step, func(i int) {
		result = append(result, items[i])
	})

	return result, nil
}

// Parse reads a bound from its textual form.
// "3" and ":3" are Upto(3); "1:3", "::-1" and "1::2" are ranges.
func Parse(s string) (Bound, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Bound{}, fmt.Errorf("%w: empty bound", ErrSyntax)
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return Bound{}, fmt.Errorf("%w: %q has too many parts", ErrSyntax, s)
	}

	opts := make([]mo.Option[int], 3)
	for i := range opts {
		opts[i] = mo.None[int]()
	}

	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return Bound{}, fmt.Errorf("%w: %q is not an integer", ErrSyntax, part)
		}
		opts[i] = mo.Some(n)
	}

	switch {
	case len(parts) == 1:
		return Upto(opts[0].MustGet()), nil
	case len(parts) == 2 && !opts[0].IsPresent() && opts[1].IsPresent():
		return Upto(opts[1].MustGet()), nil
	default:
		return Range(opts[0], opts[1], opts[2]), nil
	}
}
