package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given a manager built with options", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(
			WithNamespace("test"),
			WithSubsystem("unit"),
			WithMetricPrefix("px"),
			WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
			WithRefreshInterval(5*time.Second),
			WithCustomLabels(map[string]string{"env": "test"}),
			WithPrometheusRegistry(registry),
		)

		Convey("Then the options are applied", func() {
			So(m.RefreshInterval(), ShouldEqual, 5*time.Second)
			So(m.Enabled(), ShouldBeTrue)

			m.RecordEvaluation("V5RC", true, 10, 3, 0.2)
			families, err := registry.Gather()
			So(err, ShouldBeNil)

			var names []string
			for _, f := range families {
				names = append(names, f.GetName())
			}
			So(names, ShouldContain, "test_unit_px_evaluations_total")
			for _, f := range families {
				if f.GetName() != "test_unit_px_evaluations_total" {
					continue
				}
				labels := f.GetMetric()[0].GetLabel()
				found := false
				for _, l := range labels {
					if l.GetName() == "env" && l.GetValue() == "test" {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			}
		})

		Convey("Then invalid options keep defaults", func() {
			d := NewManager(
				WithNamespace(""),
				WithRefreshInterval(-time.Second),
				WithHistogramBuckets(nil),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)
			So(d.namespace, ShouldEqual, "awards")
			So(d.RefreshInterval(), ShouldEqual, defaultRefreshInterval)
			So(d.histogramBuckets, ShouldResemble, prometheus.DefBuckets)
		})
	})
}

func TestManagerRecordEvaluation(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		m := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))

		Convey("When evaluations are recorded", func() {
			m.RecordEvaluation("VIQRC", false, 20, 4, 1.5)
			m.RecordEvaluation("VIQRC", false, 22, 5, 1.1)
			m.RecordEvaluation("VIQRC", true, 22, 5, 1.1)

			Convey("Then the counter is labelled by program and split", func() {
				So(testutil.ToFloat64(m.evaluations.WithLabelValues("VIQRC", "false")), ShouldEqual, 2)
				So(testutil.ToFloat64(m.evaluations.WithLabelValues("VIQRC", "true")), ShouldEqual, 1)
			})
		})

		Convey("When the manager is disabled", func() {
			d := NewManager(WithMetricsEnabled(false), WithPrometheusRegistry(prometheus.NewRegistry()))
			d.RecordEvaluation("ADC", true, 5, 1, 0.1)

			Convey("Then nothing is recorded", func() {
				So(testutil.ToFloat64(d.evaluations.WithLabelValues("ADC", "true")), ShouldEqual, 0)
			})
		})
	})
}

func TestGlobalRecorders(t *testing.T) {
	Convey("Given the global registry", t, func() {
		So(GetRegistry(), ShouldNotBeNil)

		Convey("Recording never panics", func() {
			So(func() {
				RecordEvaluation("V5RC", false, 8, 2, 0.3)
				RecordPoolSize("qualifying", 8)
				RecordEvaluationError("unknown_program")
				UpdateSnapshotsTotal(3)
				RecordSnapshotWrite(40)
				RecordSnapshotDelete()
				RecordSnapshotRejected()
				RecordHTTPRequest("/eligibility", "POST", "200")
				RecordHTTPRequestDuration("/eligibility", "POST", "200", 2.5)
				RecordErrorByType("validation", "warning")
				RecordErrorByEndpoint("/eligibility", "POST", "validation")
				RecordErrorLatency("api", "validation", 0.4)
				UpdateSystemMemoryUsage(1 << 20)
				UpdateSystemGoroutineCount(12)
				RecordSystemGCPauseTime(0.7)
			}, ShouldNotPanic)
		})

		Convey("Gauges reflect the last update", func() {
			UpdateSnapshotsTotal(7)
			So(testutil.ToFloat64(globalManager.snapshotsTotal), ShouldEqual, 7)
		})

		Convey("The exposition uses the awards namespace", func() {
			RecordSnapshotWrite(10)
			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
			ok := false
			for _, f := range families {
				if strings.HasPrefix(f.GetName(), "awards_eligibility_") {
					ok = true
				}
			}
			So(ok, ShouldBeTrue)
		})
	})
}
