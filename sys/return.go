//go:build darwin && (arm64 || amd64)

package sys

// Return is the framework status code (hv_return_t).
//
// The values are spelled out rather than taken from the headers: on x86_64
// they are macro expressions over err_common_hypervisor and do not survive
// every toolchain as constants.
type Return uint32

const (
	HV_SUCCESS             Return = 0x00000000
	HV_ERROR               Return = 0xfae94001
	HV_BUSY                Return = 0xfae94002
	HV_BAD_ARGUMENT        Return = 0xfae94003
	HV_ILLEGAL_GUEST_STATE Return = 0xfae94004
	HV_NO_RESOURCES        Return = 0xfae94005
	HV_NO_DEVICE           Return = 0xfae94006
	HV_DENIED              Return = 0xfae94007
	HV_UNSUPPORTED         Return = 0xfae9400f
)

// OK reports whether r is HV_SUCCESS.
func (r Return) OK() bool { return r == HV_SUCCESS }
