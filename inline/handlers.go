package inline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/boxkit/boxkit/sequence"
	"github.com/boxkit/boxkit/slicing"
	"github.com/boxkit/boxkit/text"
)

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid index: %s", s)
	}
	return i, nil
}

// sequenceHandlers are the ops accepted by RunSequence.
var sequenceHandlers = map[string]handler[*sequence.Sequence[string]]{
	"push": {takesArg: true, apply: func(s *sequence.Sequence[string], arg string) (any, error) {
		s.Push(arg)
		return nil, nil
	}},
	"pop": {apply: func(s *sequence.Sequence[string], _ string) (any, error) {
		return s.Pop()
	}},
	"shift": {apply: func(s *sequence.Sequence[string], _ string) (any, error) {
		return s.Shift()
	}},
	"unshift": {takesArg: true, apply: func(s *sequence.Sequence[string], arg string) (any, error) {
		s.Unshift(arg)
		return nil, nil
	}},
	"len": {apply: func(s *sequence.Sequence[string], _ string) (any, error) {
		return s.Len(), nil
	}},
	// insert=index,value
	"insert": {takesArg: true, apply: func(s *sequence.Sequence[string], arg string) (any, error) {
		index, value, ok := strings.Cut(arg, ",")
		if !ok {
			return nil, fmt.Errorf("insert expects index,value: %s", arg)
		}
		i, err := parseIndex(index)
		if err != nil {
			return nil, err
		}
		return nil, s.Insert(i, value)
	}},
	"delete": {takesArg: true, apply: func(s *sequence.Sequence[string], arg string) (any, error) {
		return nil, s.Delete(arg)
	}},
	"slice": {takesArg: true, apply: func(s *sequence.Sequence[string], arg string) (any, error) {
		b, err := slicing.Parse(arg)
		if err != nil {
			return nil, err
		}
		return s.Slice(b)
	}},
	"at": {takesArg: true, apply: func(s *sequence.Sequence[string], arg string) (any, error) {
		i, err := parseIndex(arg)
		if err != nil {
			return nil, err
		}
		return s.At(i)
	}},
}

// textHandlers are the ops accepted by RunText.
var textHandlers = map[string]handler[text.Text]{
	"concat": {takesArg: true, apply: func(t text.Text, arg string) (any, error) {
		return t.Concat(arg)
	}},
	"substring": {takesArg: true, apply: func(t text.Text, arg string) (any, error) {
		b, err := slicing.Parse(arg)
		if err != nil {
			return nil, err
		}
		return t.Substring(b)
	}},
	"len": {apply: func(t text.Text, _ string) (any, error) {
		return t.Len(), nil
	}},
	"indexof": {takesArg: true, apply: func(t text.Text, arg string) (any, error) {
		return t.IndexOf(arg)
	}},
}
