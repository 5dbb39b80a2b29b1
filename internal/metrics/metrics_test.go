package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.RelayFinished(OutcomeDelivered)
	m.RelayFinished(OutcomeDelivered)
	m.RelayFinished(OutcomeFetchFail)
	m.MediaSent("video", 2)
	m.MediaSent("photo", 0)
	m.CleanupFailed()
	m.StaleDirsRemoved(3)
	m.FetchObserved(1500*time.Millisecond, true)

	if got := testutil.ToFloat64(m.relays.WithLabelValues(OutcomeDelivered)); got != 2 {
		t.Errorf("relays{delivered} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.relays.WithLabelValues(OutcomeFetchFail)); got != 1 {
		t.Errorf("relays{fetch_failed} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.mediaSent.WithLabelValues("video")); got != 2 {
		t.Errorf("media_sent{video} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.cleanupFailures); got != 1 {
		t.Errorf("cleanup_failures = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.staleDirs); got != 3 {
		t.Errorf("stale_dirs_removed = %v, want 3", got)
	}
	if n := testutil.CollectAndCount(m.fetchDuration); n != 1 {
		t.Errorf("fetch_duration series = %d, want 1", n)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.RelayFinished(OutcomeDelivered)
	m.FetchObserved(time.Second, false)
	m.MediaSent("photo", 1)
	m.CleanupFailed()
	m.StaleDirsRemoved(1)
}
