package inline

import (
	"fmt"
	"io"

	"github.com/boxkit/boxkit/sequence"
)

// Demo pushes e, a, 6, g, g onto an empty sequence, pops once and prints the result.
func Demo(out io.Writer) error {
	seq := sequence.New[string]()
	for _, v := range []string{"e", "a", "6", "g", "g"} {
		seq.Push(v)
	}

	if _, err := seq.Pop(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(out, seq)
	return err
}
