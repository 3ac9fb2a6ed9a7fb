// Package hv exposes Apple's Hypervisor.framework to Go with a single,
// architecture-appropriate set of declarations.
//
// The framework ships different public headers on its two architectures:
//
//   - Apple Silicon (arm64): the umbrella header Hypervisor/Hypervisor.h
//   - Intel (x86_64): Hypervisor/hv.h followed by Hypervisor/hv_vmx.h
//
// The sys subpackage includes exactly one header, sys/hypervisor.h, which
// dispatches on the target architecture and hands cgo one translation unit.
// On any other architecture the dispatcher contributes nothing and sys is an
// empty package.
//
// This package holds what is shared by every architecture: the dispatch
// table as data (Select), conversion of hv_return_t codes into errors
// (Check, HVError), call counters, and the host support query.
//
// # Requirements
//
//   - macOS on Apple Silicon or an Intel CPU with VMX
//   - Hypervisor entitlement: com.apple.security.hypervisor
//   - Code signing with entitlements
//
// # Basic Usage
//
// Check if hypervisor is supported:
//
//	supported, err := hv.Supported()
//	if err != nil || !supported {
//		log.Fatal("Hypervisor not supported on this system")
//	}
//
// Call the framework through sys and check the result (arm64 shown; on
// x86_64 VmCreate takes sys.HV_VM_DEFAULT):
//
//	if err := hv.Check(sys.VmCreate()); err != nil {
//		log.Fatal("Failed to create VM:", err)
//	}
//	defer sys.VmDestroy()
//
// Inspect the dispatch table:
//
//	sel := hv.Select(hv.ArchAMD64)
//	fmt.Println(sel.Predicate, sel.Headers) // __x86_64__ [Hypervisor/hv.h Hypervisor/hv_vmx.h]
//
// # Error Handling
//
// Framework errors are HVError values carrying the raw hv_return_t code.
// Set HV_ENV=production (or HV_DEBUG=false) to get terse messages.
//
// # Code Signing and Entitlements
//
// Applications must be code signed with hypervisor entitlement:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN"
//	    "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
//	<plist version="1.0">
//	<dict>
//	    <key>com.apple.security.hypervisor</key>
//	    <true/>
//	</dict>
//	</plist>
//
// Then sign your binary:
//
//	codesign --sign - --force --entitlements=hypervisor.entitlements ./your-app
package hv
