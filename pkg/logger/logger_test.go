package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given the global logger", t, func() {
		So(Init(), ShouldBeNil)
		defer func() { So(Sync(), ShouldBeNil) }()

		So(Get(), ShouldNotBeNil)
		So(Named("test"), ShouldNotBeNil)

		Convey("An unknown format is rejected", func() {
			So(InitWithWriter(&bytes.Buffer{}, "xml"), ShouldNotBeNil)
		})
	})
}

func TestLoggerOutput(t *testing.T) {
	Convey("Given a JSON logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(InitWithWriter(&buf, "json"), ShouldBeNil)
		ctx := context.Background()

		Convey("Fields, names and the caller are recorded", func() {
			Get().Named("svc").With(String("program", "V5RC")).Info(ctx, "evaluated", Int("teams", 12), Bool("split", true))

			var entry map[string]any
			So(json.Unmarshal(buf.Bytes(), &entry), ShouldBeNil)
			So(entry["msg"], ShouldEqual, "evaluated")
			svc, ok := entry["svc"].(map[string]any)
			So(ok, ShouldBeTrue)
			So(svc["program"], ShouldEqual, "V5RC")
			So(svc["teams"], ShouldEqual, float64(12))
			So(svc["split"], ShouldEqual, true)
			So(svc["source"], ShouldContainSubstring, "logger_test.go")
		})

		Convey("Entries below the level are dropped", func() {
			So(SetLevelString("warn"), ShouldBeNil)
			defer func() { _ = SetLevelString("info") }()

			Get().Info(ctx, "hidden")
			Get().Warn(ctx, "shown")
			So(strings.Contains(buf.String(), "hidden"), ShouldBeFalse)
			So(strings.Contains(buf.String(), "shown"), ShouldBeTrue)
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level names", t, func() {
		for _, l := range []string{"debug", "INFO", "", "warn", "warning", "error"} {
			So(SetLevelString(l), ShouldBeNil)
		}
		So(SetLevelString("loud"), ShouldNotBeNil)
		_ = SetLevelString("info")
	})
}
