package hv

import (
	"testing"
)

func TestMetrics(t *testing.T) {
	// Reset metrics for clean test
	ResetMetrics()
	t.Cleanup(ResetMetrics)

	// Verify initial state
	if m := GetMetrics(); m != (Metrics{}) {
		t.Fatalf("Expected zero metrics after reset, got %+v", m)
	}

	codes := []uint32{
		HV_SUCCESS,
		HV_SUCCESS,
		HV_DENIED,
		HV_BUSY,
		HV_BAD_ARGUMENT,
		HV_NO_RESOURCES,
		HV_NO_DEVICE,
		HV_UNSUPPORTED,
		HV_ILLEGAL_GUEST_STATE,
	}
	for _, code := range codes {
		_ = Check(code)
	}

	want := Metrics{
		Calls:          9,
		Failures:       7,
		DeniedErrors:   1,
		BusyErrors:     1,
		ArgumentErrors: 1,
		ResourceErrors: 2,
		Unsupported:    1,
		OtherErrors:    1,
	}
	if got := GetMetrics(); got != want {
		t.Errorf("GetMetrics() = %+v, want %+v", got, want)
	}

	t.Logf("Final metrics: %+v", GetMetrics())
}
