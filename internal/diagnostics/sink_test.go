package diagnostics

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/Materials_Go/internal/metrics"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Reportf("material %s has no name.", "wood")
	c.Reportf("invalid %q %s for %s.", "salvaged_into", "plank", "wood")

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{
		"material wood has no name.",
		`invalid "salvaged_into" plank for wood.`,
	}, c.Messages())

	c.Reset()
	assert.Equal(t, 0, c.Len())
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	sink := NewLogSink(log)

	before := testutil.ToFloat64(metrics.DiagnosticsReported)
	sink.Reportf("material %s has no name.", "steel")

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "material steel has no name.")
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.DiagnosticsReported)-before)
}

func TestMulti(t *testing.T) {
	a, b := NewCollector(), NewCollector()
	Multi{a, b}.Reportf("x=%d", 1)

	assert.Equal(t, []string{"x=1"}, a.Messages())
	assert.Equal(t, []string{"x=1"}, b.Messages())
}
