package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/boxkit/boxkit/filesystem"
	"github.com/boxkit/boxkit/key"
	"github.com/boxkit/boxkit/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Setup", t, func() {
		Reset(func() {
			viper.Reset()
			enabled = false
		})

		Convey("Should stay disabled by default", func() {
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeFalse)
		})

		Convey("Should create a log file when enabled", func() {
			viper.Set(key.LogsWrite, true)
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeTrue)

			Info("hello")
			entries := lo.Must(filesystem.API().ReadDir(where.Logs()))
			So(entries, ShouldNotBeEmpty)
		})
	})
}

func TestOutput(t *testing.T) {
	Convey("Output", t, func() {
		var buf bytes.Buffer
		Reset(func() {
			viper.Reset()
			enabled = false
		})

		Convey("Should write JSON entries with fields", func() {
			viper.Set(key.LogsJson, true)
			viper.Set(key.LogsLevel, "debug")
			enabled = true
			configure(&buf)

			With(Fields{"op": "push"}).Debug("applied")

			var entry map[string]any
			lo.Must0(json.Unmarshal(buf.Bytes(), &entry))
			So(entry["op"], ShouldEqual, "push")
			So(entry["msg"], ShouldEqual, "applied")
			So(entry["level"], ShouldEqual, "debug")
		})

		Convey("Should drop everything when disabled", func() {
			configure(&buf)
			enabled = false

			Error("nope")
			With(Fields{"a": 1}).Error("nope")
			So(buf.Len(), ShouldEqual, 0)
		})

		Convey("Should fall back to info on an unknown level", func() {
			viper.Set(key.LogsLevel, "loud")
			enabled = true
			configure(&buf)

			Debug("hidden")
			So(buf.Len(), ShouldEqual, 0)
			Info("shown")
			So(buf.String(), ShouldContainSubstring, "shown")
		})
	})
}
