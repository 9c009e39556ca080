package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/boxkit/boxkit/config"
	"github.com/boxkit/boxkit/inline"
	"github.com/boxkit/boxkit/key"
	"github.com/boxkit/boxkit/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func execute(args ...string) string {
	var buf bytes.Buffer
	demoCmd.SetOut(&buf)
	seqCmd.SetOut(&buf)
	textCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	lo.Must0(rootCmd.Execute())
	return buf.String()
}

func TestParseValue(t *testing.T) {
	Convey("parseValue", t, func() {
		Convey("Should convert to the default's type", func() {
			So(lo.Must(parseValue(config.Default[key.LogsLevel], []string{"debug"})), ShouldEqual, "debug")
			So(lo.Must(parseValue(config.Default[key.LogsWrite], []string{"true"})), ShouldEqual, true)
			So(lo.Must(parseValue(config.Field{Key: "n", Value: 1}, []string{"42"})), ShouldEqual, 42)
			So(lo.Must(parseValue(config.Field{Key: "s", Value: []string{}}, []string{"a", "b"})), ShouldResemble, []string{"a", "b"})
		})

		Convey("Should reject malformed values", func() {
			_, err := parseValue(config.Default[key.LogsWrite], []string{"maybe"})
			So(err, ShouldNotBeNil)
			_, err = parseValue(config.Field{Key: "n", Value: 1}, []string{"x"})
			So(err, ShouldNotBeNil)
			_, err = parseValue(config.Default[key.LogsLevel], nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLookupField(t *testing.T) {
	Convey("lookupField", t, func() {
		field, err := lookupField(key.IconsVariant)
		So(err, ShouldBeNil)
		So(field.Key, ShouldEqual, key.IconsVariant)

		_, err = lookupField("logs.writ")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, key.LogsWrite)
	})
}

func TestEnvNames(t *testing.T) {
	Convey("envNames should list every key plus the config path override", t, func() {
		names := envNames()
		So(names, ShouldContain, "BOXKIT_LOGS_WRITE")
		So(names, ShouldContain, "BOXKIT_INLINE_KEEP_GOING")
		So(names, ShouldContain, where.EnvConfigPath)
		So(names, ShouldHaveLength, len(config.EnvExposed)+1)
	})
}

func TestCommands(t *testing.T) {
	Convey("Commands", t, func() {
		Convey("demo should print the popped sequence", func() {
			So(execute("demo"), ShouldEqual, "['e', 'a', '6', 'g']\n")
		})

		Convey("seq should apply ops to the positional elements", func() {
			out := execute("seq", "a", "b", "c", "-o", "slice=::-1", "-o", "pop", "--json")

			var output inline.Output
			lo.Must0(json.Unmarshal([]byte(out), &output))
			So(output.Initial, ShouldResemble, []any{"a", "b", "c"})
			So(output.Steps[0].Result, ShouldResemble, []any{"c", "b", "a"})
			So(output.Steps[1].Result, ShouldEqual, "c")
			So(output.Final, ShouldResemble, []any{"a", "b"})
		})

		Convey("text should print plain results", func() {
			out := execute("text", "hello", "-o", "substring=1:3")
			So(out, ShouldContainSubstring, `"el"`)
		})
	})
}

func TestCompleteOps(t *testing.T) {
	Convey("completeOps", t, func() {
		So(completeOps(inline.SequenceOps(), "sh"), ShouldResemble, []string{"push", "shift", "unshift"})
		So(completeOps(inline.TextOps(), "IDX"), ShouldResemble, []string{"indexof"})
		So(completeOps(inline.SequenceOps(), "pop=ignored"), ShouldResemble, []string{"pop"})
		So(completeOps(inline.TextOps(), "zzz"), ShouldBeEmpty)
	})
}
