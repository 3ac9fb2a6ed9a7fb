package hv

import "sync/atomic"

// Counters for framework calls that went through Check
var (
	callCount       uint64
	failureCount    uint64
	deniedErrors    uint64
	busyErrors      uint64
	argumentErrors  uint64
	resourceErrors  uint64
	unsupportedErrs uint64
	otherErrors     uint64
)

// Metrics is a snapshot of the call counters
type Metrics struct {
	Calls          uint64 `json:"calls"`
	Failures       uint64 `json:"failures"`
	DeniedErrors   uint64 `json:"denied_errors"`
	BusyErrors     uint64 `json:"busy_errors"`
	ArgumentErrors uint64 `json:"argument_errors"`
	ResourceErrors uint64 `json:"resource_errors"`
	Unsupported    uint64 `json:"unsupported_errors"`
	OtherErrors    uint64 `json:"other_errors"`
}

// GetMetrics returns the current counters
func GetMetrics() Metrics {
	return Metrics{
		Calls:          atomic.LoadUint64(&callCount),
		Failures:       atomic.LoadUint64(&failureCount),
		DeniedErrors:   atomic.LoadUint64(&deniedErrors),
		BusyErrors:     atomic.LoadUint64(&busyErrors),
		ArgumentErrors: atomic.LoadUint64(&argumentErrors),
		ResourceErrors: atomic.LoadUint64(&resourceErrors),
		Unsupported:    atomic.LoadUint64(&unsupportedErrs),
		OtherErrors:    atomic.LoadUint64(&otherErrors),
	}
}

// ResetMetrics clears all counters
func ResetMetrics() {
	for _, c := range []*uint64{
		&callCount, &failureCount, &deniedErrors, &busyErrors,
		&argumentErrors, &resourceErrors, &unsupportedErrs, &otherErrors,
	} {
		atomic.StoreUint64(c, 0)
	}
}

func recordCall(code uint32) {
	atomic.AddUint64(&callCount, 1)
	if code == HV_SUCCESS {
		return
	}
	atomic.AddUint64(&failureCount, 1)
	switch code {
	case HV_DENIED:
		atomic.AddUint64(&deniedErrors, 1)
	case HV_BUSY:
		atomic.AddUint64(&busyErrors, 1)
	case HV_BAD_ARGUMENT:
		atomic.AddUint64(&argumentErrors, 1)
	case HV_NO_RESOURCES, HV_NO_DEVICE:
		atomic.AddUint64(&resourceErrors, 1)
	case HV_UNSUPPORTED:
		atomic.AddUint64(&unsupportedErrs, 1)
	default:
		atomic.AddUint64(&otherErrors, 1)
	}
}
