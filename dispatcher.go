package hv

import _ "embed"

//go:embed sys/hypervisor.h
var dispatcher []byte

// DispatcherName is the file name cgo and probes include.
const DispatcherName = "hypervisor.h"

// Dispatcher returns the source of the header dispatcher compiled into sys.
func Dispatcher() []byte {
	return append([]byte(nil), dispatcher...)
}
