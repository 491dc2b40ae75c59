package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveInstruction(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.ObserveInstruction("successful", "AP00", 5*time.Millisecond)
	c.ObserveInstruction("failed", "AC01", time.Millisecond)
	c.ObserveInstruction("failed", "AC01", time.Millisecond)

	if got := testutil.ToFloat64(c.processed.WithLabelValues("successful", "AP00")); got != 1 {
		t.Fatalf("expected 1 successful observation, got %v", got)
	}
	if got := testutil.ToFloat64(c.processed.WithLabelValues("failed", "AC01")); got != 2 {
		t.Fatalf("expected 2 failed observations, got %v", got)
	}
}
