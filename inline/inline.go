package inline

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/boxkit/boxkit/icon"
	"github.com/boxkit/boxkit/log"
	"github.com/boxkit/boxkit/sequence"
	"github.com/boxkit/boxkit/style"
	"github.com/boxkit/boxkit/text"
	"github.com/boxkit/boxkit/util"
)

// Container kinds reported in Output.
const (
	KindSequence = "sequence"
	KindText     = "text"
)

// RunSequence applies options.Ops to seq and reports every step to options.Out.
func RunSequence(seq *sequence.Sequence[string], options *Options) error {
	output := &Output{Container: KindSequence, Initial: seq.Items()}
	return run(seq, sequenceHandlers, options, output, func() any { return seq.Items() })
}

// RunText applies options.Ops to t and reports every step to options.Out.
func RunText(t text.Text, options *Options) error {
	output := &Output{Container: KindText, Initial: t.String()}
	return run(t, textHandlers, options, output, func() any { return t.String() })
}

func run[C any](container C, handlers map[string]handler[C], options *Options, output *Output, snapshot func() any) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	if err := validate(options.Ops, handlers); err != nil {
		return err
	}

	var failed int
	for i, op := range options.Ops {
		entry := log.With(log.Fields{"container": output.Container, "step": i + 1, "op": op.String()})

		result, err := handlers[op.Name].apply(container, op.Arg.OrEmpty())
		step := &Step{Op: op.String()}
		if err != nil {
			failed++
			step.Error = err.Error()
			entry.WithError(err).Warn("operation failed")
		} else {
			step.Result = result
			entry.Debug("operation applied")
		}
		output.Steps = append(output.Steps, step)

		if err != nil && !options.KeepGoing {
			output.Final = snapshot()
			if werr := write(options, output); werr != nil {
				return werr
			}
			return fmt.Errorf("step %d (%s): %w", i+1, op, err)
		}
	}

	output.Final = snapshot()
	if err := write(options, output); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%s failed", util.Quantify(failed, "operation", "operations"))
	}
	return nil
}

func write(options *Options, output *Output) error {
	if options.Json {
		return writeJson(options.Out, output)
	}
	return writePlain(options.Out, output)
}

func writePlain(out io.Writer, output *Output) error {
	for _, step := range output.Steps {
		line := fmt.Sprintf("%s %s", icon.Get(icon.Arrow), style.Op(step.Op))
		switch {
		case step.Error != "":
			line += " " + style.Failure(step.Error)
		case step.Result != nil:
			line += " " + style.Result(format(step.Result))
		}

		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(out, format(output.Final))
	return err
}

// format renders a step result or container snapshot for plain output.
func format(v any) string {
	switch value := v.(type) {
	case string:
		return strconv.Quote(value)
	case []string:
		return sequence.From(value...).String()
	default:
		return fmt.Sprint(value)
	}
}
