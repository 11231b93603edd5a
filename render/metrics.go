package render

import (
	"time"

	"github.com/gogpu/scenic"
)

// metricsCollector counts rendered frames and reports throughput through
// the module logger.
type metricsCollector struct {
	label      string
	start      time.Time
	frames     uint64
	lastReport time.Time
}

const metricsReportInterval = 10 * time.Second

func newMetricsCollector(label string) *metricsCollector {
	now := time.Now()
	scenic.Logger().Debug("rendering metrics collection started", "renderer", label)
	return &metricsCollector{label: label, start: now, lastReport: now}
}

// measureFrame records one rendered frame and periodically logs the
// rolling frame rate.
func (m *metricsCollector) measureFrame() {
	m.frames++
	now := time.Now()
	if elapsed := now.Sub(m.lastReport); elapsed >= metricsReportInterval {
		fps := float64(m.frames) / now.Sub(m.start).Seconds()
		scenic.Logger().Debug("rendering throughput",
			"renderer", m.label, "frames", m.frames, "fps", fps)
		m.lastReport = now
	}
}

// report logs the final frame statistics.
func (m *metricsCollector) report() {
	elapsed := time.Since(m.start).Seconds()
	if elapsed <= 0 || m.frames == 0 {
		return
	}
	scenic.Logger().Info("rendering finished",
		"renderer", m.label, "frames", m.frames, "fps", float64(m.frames)/elapsed)
}
