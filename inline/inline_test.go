package inline

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/boxkit/boxkit/key"
	"github.com/boxkit/boxkit/sequence"
	"github.com/boxkit/boxkit/text"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	viper.Set(key.IconsVariant, "plain")
}

func mustOps(ops ...string) []Op {
	return lo.Must(ParseOps(ops))
}

func decode(buf *bytes.Buffer) Output {
	var output Output
	lo.Must0(json.Unmarshal(buf.Bytes(), &output))
	return output
}

func TestParseOp(t *testing.T) {
	Convey("ParseOp", t, func() {
		Convey("Should read a bare name", func() {
			op := lo.Must(ParseOp("Pop"))
			So(op.Name, ShouldEqual, "pop")
			So(op.Arg.IsPresent(), ShouldBeFalse)
			So(op.String(), ShouldEqual, "pop")
		})

		Convey("Should keep everything after the first equals sign", func() {
			op := lo.Must(ParseOp("push=a=b"))
			So(op.Name, ShouldEqual, "push")
			So(op.Arg.MustGet(), ShouldEqual, "a=b")
			So(op.String(), ShouldEqual, "push=a=b")
		})

		Convey("Should accept an empty argument", func() {
			op := lo.Must(ParseOp("indexof="))
			So(op.Arg.MustGet(), ShouldEqual, "")
		})

		Convey("Should reject an empty name", func() {
			_, err := ParseOp("=x")
			So(err, ShouldNotBeNil)
			_, err = ParseOps([]string{"pop", " "})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestRunSequence(t *testing.T) {
	Convey("RunSequence", t, func() {
		var buf bytes.Buffer

		Convey("Should report every step as JSON", func() {
			seq := sequence.New[string]()
			err := RunSequence(seq, &Options{
				Out:  &buf,
				Json: true,
				Ops:  mustOps("push=e", "push=a", "push=6", "push=g", "push=g", "pop", "len", "slice=1:3", "at=-1"),
			})
			So(err, ShouldBeNil)

			output := decode(&buf)
			So(output.Container, ShouldEqual, KindSequence)
			So(output.Initial, ShouldResemble, []any{})
			So(output.Steps, ShouldHaveLength, 9)
			So(output.Steps[0].Result, ShouldBeNil)
			So(output.Steps[5].Result, ShouldEqual, "g")
			So(output.Steps[6].Result, ShouldEqual, 4.0)
			So(output.Steps[7].Result, ShouldResemble, []any{"a", "6"})
			So(output.Steps[8].Result, ShouldEqual, "g")
			So(output.Final, ShouldResemble, []any{"e", "a", "6", "g"})
			So(seq.Items(), ShouldResemble, []string{"e", "a", "6", "g"})
		})

		Convey("Should support insert, shift, unshift and delete", func() {
			seq := sequence.From("b", "c")
			err := RunSequence(seq, &Options{
				Out: &buf,
				Ops: mustOps("insert=0,a", "shift", "unshift=z", "delete=c"),
			})
			So(err, ShouldBeNil)
			So(seq.Items(), ShouldResemble, []string{"z", "b"})
			So(buf.String(), ShouldContainSubstring, `"a"`)
			So(buf.String(), ShouldEndWith, "['z', 'b']\n")
		})

		Convey("Should stop at the first failing op", func() {
			seq := sequence.New[string]()
			err := RunSequence(seq, &Options{
				Out:  &buf,
				Json: true,
				Ops:  mustOps("pop", "push=x"),
			})
			So(errors.Is(err, sequence.ErrEmpty), ShouldBeTrue)

			output := decode(&buf)
			So(output.Steps, ShouldHaveLength, 1)
			So(output.Steps[0].Error, ShouldContainSubstring, "empty")
			So(seq.Len(), ShouldEqual, 0)
		})

		Convey("Should continue past failures with KeepGoing", func() {
			seq := sequence.New[string]()
			err := RunSequence(seq, &Options{
				Out:       &buf,
				Json:      true,
				KeepGoing: true,
				Ops:       mustOps("pop", "delete=q", "push=x"),
			})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "2 operations failed")

			output := decode(&buf)
			So(output.Steps, ShouldHaveLength, 3)
			So(output.Final, ShouldResemble, []any{"x"})
		})

		Convey("Should reject invalid ops before running anything", func() {
			seq := sequence.New[string]()

			err := RunSequence(seq, &Options{Out: &buf, Ops: mustOps("push=a", "psh=b")})
			So(errors.Is(err, ErrUnknownOp), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, `did you mean "push"`)

			err = RunSequence(seq, &Options{Out: &buf, Ops: mustOps("push")})
			So(errors.Is(err, ErrMissingArg), ShouldBeTrue)

			err = RunSequence(seq, &Options{Out: &buf, Ops: mustOps("pop=1")})
			So(errors.Is(err, ErrUnexpectedArg), ShouldBeTrue)

			So(seq.Len(), ShouldEqual, 0)
			So(buf.Len(), ShouldEqual, 0)
		})

		Convey("Should report malformed arguments as step errors", func() {
			seq := sequence.From("a")
			err := RunSequence(seq, &Options{Out: &buf, Ops: mustOps("insert=x")})
			So(err, ShouldNotBeNil)

			err = RunSequence(seq, &Options{Out: &buf, Ops: mustOps("insert=9,x")})
			So(errors.Is(err, sequence.ErrIndex), ShouldBeTrue)
		})
	})
}

func TestRunText(t *testing.T) {
	Convey("RunText", t, func() {
		var buf bytes.Buffer

		Convey("Should apply every text op", func() {
			err := RunText(text.New("hello"), &Options{
				Out:  &buf,
				Json: true,
				Ops:  mustOps("indexof=ll", "indexof=", "substring=1:3", "substring=::-1", "concat= world", "len"),
			})
			So(err, ShouldBeNil)

			output := decode(&buf)
			So(output.Container, ShouldEqual, KindText)
			So(output.Steps[0].Result, ShouldEqual, 2.0)
			So(output.Steps[1].Result, ShouldEqual, 0.0)
			So(output.Steps[2].Result, ShouldEqual, "el")
			So(output.Steps[3].Result, ShouldEqual, "olleh")
			So(output.Steps[4].Result, ShouldEqual, "hello world")
			So(output.Steps[5].Result, ShouldEqual, 5.0)
			So(output.Final, ShouldEqual, "hello")
		})

		Convey("Should return -1 for an empty text", func() {
			err := RunText(text.New(""), &Options{Out: &buf, Json: true, Ops: mustOps("indexof=")})
			So(err, ShouldBeNil)
			So(decode(&buf).Steps[0].Result, ShouldEqual, -1.0)
		})

		Convey("Should print plain output", func() {
			err := RunText(text.New("hello"), &Options{Out: &buf, Ops: mustOps("substring=2")})
			So(err, ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, `"he"`)
			So(buf.String(), ShouldEndWith, "\"hello\"\n")
		})

		Convey("Should reject sequence ops", func() {
			err := RunText(text.New("hello"), &Options{Out: &buf, Ops: mustOps("push=x")})
			So(errors.Is(err, ErrUnknownOp), ShouldBeTrue)
		})
	})
}

func TestDemo(t *testing.T) {
	Convey("Demo", t, func() {
		var buf bytes.Buffer
		So(Demo(&buf), ShouldBeNil)
		So(buf.String(), ShouldEqual, "['e', 'a', '6', 'g']\n")
	})
}
