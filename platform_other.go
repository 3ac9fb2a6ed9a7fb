//go:build !darwin || !(arm64 || amd64)

package hv

// Supported returns false on hosts without Hypervisor.framework.
func Supported() (bool, error) {
	return false, ErrUnsupportedPlatform
}
