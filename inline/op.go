// Package inline provides the non-interactive execution mode: a list of operations applied to one container.
package inline

import (
	"errors"
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

var (
	// ErrUnknownOp is returned for operation names the container does not support.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrMissingArg is returned when an operation that needs an argument has none.
	ErrMissingArg = errors.New("missing argument")

	// ErrUnexpectedArg is returned when an operation that takes no argument has one.
	ErrUnexpectedArg = errors.New("unexpected argument")
)

// Op is a single parsed operation, written as "name" or "name=arg".
type Op struct {
	Name string
	Arg  mo.Option[string]
}

// ParseOp reads an operation from its textual form.
// Everything after the first '=' is the argument, verbatim.
func ParseOp(s string) (Op, error) {
	name, arg, hasArg := strings.Cut(s, "=")
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Op{}, fmt.Errorf("parse %q: empty operation name", s)
	}

	op := Op{Name: name, Arg: mo.None[string]()}
	if hasArg {
		op.Arg = mo.Some(arg)
	}
	return op, nil
}

// ParseOps parses every element of ops, failing on the first malformed one.
func ParseOps(ops []string) ([]Op, error) {
	parsed := make([]Op, 0, len(ops))
	for _, s := range ops {
		op, err := ParseOp(s)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, op)
	}
	return parsed, nil
}

// String returns the textual form accepted by ParseOp.
func (o Op) String() string {
	if arg, ok := o.Arg.Get(); ok {
		return o.Name + "=" + arg
	}
	return o.Name
}

// handler applies one operation to a container of type C.
type handler[C any] struct {
	takesArg bool
	apply    func(container C, arg string) (any, error)
}

// validate checks every op against the handler table before anything runs.
func validate[C any](ops []Op, handlers map[string]handler[C]) error {
	for _, op := range ops {
		h, ok := handlers[op.Name]
		if !ok {
			return errUnknownOp(op.Name, lo.Keys(handlers))
		}

		switch {
		case h.takesArg && op.Arg.IsAbsent():
			return fmt.Errorf("%s: %w", op.Name, ErrMissingArg)
		case !h.takesArg && op.Arg.IsPresent():
			return fmt.Errorf("%s: %w", op, ErrUnexpectedArg)
		}
	}
	return nil
}

func errUnknownOp(name string, known []string) error {
	slices.Sort(known)
	closest := lo.MinBy(known, func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return fmt.Errorf("%w %q, did you mean %q?", ErrUnknownOp, name, closest)
}

// SequenceOps returns the sorted names of the ops accepted by RunSequence.
func SequenceOps() []string {
	names := lo.Keys(sequenceHandlers)
	slices.Sort(names)
	return names
}

// TextOps returns the sorted names of the ops accepted by RunText.
func TextOps() []string {
	names := lo.Keys(textHandlers)
	slices.Sort(names)
	return names
}
