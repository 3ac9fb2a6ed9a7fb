//go:build !darwin || !(arm64 || amd64)

package hv

import (
	"errors"
	"testing"
)

func TestSupportedElsewhere(t *testing.T) {
	supported, err := Supported()
	if supported {
		t.Error("Supported() = true on a host without Hypervisor.framework")
	}
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Errorf("Supported() error = %v, want ErrUnsupportedPlatform", err)
	}
}
