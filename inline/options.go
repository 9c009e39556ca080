package inline

import "io"

type Options struct {
	// Out receives the report. Defaults to os.Stdout.
	Out io.Writer
	// Json switches the report to a single JSON document.
	Json bool
	// KeepGoing applies the remaining ops after one fails.
	KeepGoing bool
	// Ops are applied in order.
	Ops []Op
}
