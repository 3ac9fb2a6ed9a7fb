// Package header runs the C toolchain over the Hypervisor.framework header
// dispatcher.
//
// It answers the questions a binding generator's operator has before cgo
// ever runs: which framework headers does the dispatcher select for a target,
// do they resolve on this machine, which hv_* functions and HV*/VM*/IRQ*
// macros end up in the translation unit, and does the SDK's exported symbol
// list agree with the headers.
//
// Build-time failures are reported as one of ErrArchUnsupported,
// ErrHeaderNotFound, ErrVersionSkew or ErrToolchain, carrying the
// toolchain's own diagnostics as error details.
package header
