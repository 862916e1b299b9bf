package metrics

import "time"

// RecordContentLoad records the outcome and duration of loading one content set
func RecordContentLoad(kind string, started time.Time, err error) {
	ContentLoadDuration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
	if err != nil {
		ContentLoadFailures.WithLabelValues(kind).Inc()
	}
}

// RecordReload records a registry reload outcome
func RecordReload(err error) {
	if err != nil {
		RegistryReloads.WithLabelValues(OutcomeFailure).Inc()
		return
	}
	RegistryReloads.WithLabelValues(OutcomeSuccess).Inc()
}
