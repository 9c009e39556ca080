package inline

import (
	"encoding/json"
	"io"
)

// Step is the outcome of one operation.
type Step struct {
	Op     string `json:"op" jsonschema:"description=Operation as given on the command line, e.g. push=e."`
	Result any    `json:"result,omitempty" jsonschema:"description=Value returned by the operation. Absent for operations that only mutate."`
	Error  string `json:"error,omitempty" jsonschema:"description=Error message when the operation failed."`
}

// Output is the report of an inline run.
type Output struct {
	Container string  `json:"container" jsonschema:"enum=sequence,enum=text"`
	Initial   any     `json:"initial" jsonschema:"description=Container contents before the first operation."`
	Steps     []*Step `json:"steps"`
	Final     any     `json:"final" jsonschema:"description=Container contents after the last applied operation."`
}

func writeJson(out io.Writer, output *Output) error {
	if output.Steps == nil {
		output.Steps = []*Step{}
	}

	data, err := json.Marshal(output)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = out.Write(data)
	return err
}
