package contentvalidator

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_RecordRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	res := NewResult()
	res.AddError("problem", "missing")
	res.AddError("problem", "missing again")
	res.AddWarning("patient", "extra middle name")

	m.RecordRun(true, 2*time.Millisecond, res)
	m.RecordRun(false, time.Millisecond, NewResult())

	if got := testutil.ToFloat64(m.Runs(true)); got != 1 {
		t.Errorf("runs{baseline=true} = %v; want 1", got)
	}
	if got := testutil.ToFloat64(m.Runs(false)); got != 1 {
		t.Errorf("runs{baseline=false} = %v; want 1", got)
	}
	if got := testutil.ToFloat64(m.Findings("problem", SeverityError)); got != 2 {
		t.Errorf("findings{problem,ERROR} = %v; want 2", got)
	}
	if got := testutil.ToFloat64(m.Findings("patient", SeverityWarning)); got != 1 {
		t.Errorf("findings{patient,WARNING} = %v; want 1", got)
	}

	count, err := testutil.GatherAndCount(reg, "ccda_compare_duration_seconds")
	if err != nil {
		t.Fatalf("GatherAndCount failed: %v", err)
	}
	if count != 1 {
		t.Errorf("duration metric count = %d; want 1", count)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.RecordRun(true, time.Second, NewResult())
}

func TestMetrics_Collectors(t *testing.T) {
	m := NewMetrics(nil)
	reg := prometheus.NewRegistry()
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}
}
