// Package sys exposes the declarations of Apple's Hypervisor.framework to Go.
//
// The package has a single C entry point, hypervisor.h, which selects the
// framework headers for the target architecture:
//
//	arm64   <Hypervisor/Hypervisor.h>
//	x86_64  <Hypervisor/hv.h>, then <Hypervisor/hv_vmx.h>
//
// cgo translates whatever that header pulls in; the Go files of this package
// are thin, one-to-one wrappers over the selected surface. Every function
// returns the framework status unchanged as a Return. Use hv.Check to turn
// it into an error.
//
// On any other target the package is empty. Importing it there is not an
// error, but none of the framework declarations exist.
//
// Nothing here manages lifetimes. A process owns at most one VM, and a vCPU
// belongs to the OS thread that created it, so callers should hold
// runtime.LockOSThread around vCPU use.
package sys
