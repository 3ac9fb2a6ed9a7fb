package hv

import (
	"runtime"
	"strings"
)

// Arch is a target CPU architecture as seen by the C toolchain.
type Arch int

const (
	ArchUnknown Arch = iota
	ArchARM64
	ArchAMD64
)

// String returns the toolchain spelling used with -arch.
func (a Arch) String() string {
	switch a {
	case ArchARM64:
		return "arm64"
	case ArchAMD64:
		return "x86_64"
	default:
		return "unknown"
	}
}

// ParseArch accepts both Go and toolchain spellings.
func ParseArch(s string) Arch {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "arm64", "aarch64":
		return ArchARM64
	case "amd64", "x86_64", "x86-64":
		return ArchAMD64
	default:
		return ArchUnknown
	}
}

// HostArch returns the architecture the running binary was built for.
func HostArch() Arch {
	return ParseArch(runtime.GOARCH)
}

// Selection is one row of the header dispatch table.
type Selection struct {
	Arch Arch
	// Predicate is the toolchain macro that activates the row. Empty for
	// architectures the dispatcher ignores.
	Predicate string
	// Headers are included in this order.
	Headers []string
}

// Supported reports whether the row pulls in any framework header.
func (s Selection) Supported() bool { return len(s.Headers) > 0 }

// Select returns the framework headers the dispatcher includes for arch.
// Any architecture other than arm64 and x86_64 selects nothing.
func Select(arch Arch) Selection {
	switch arch {
	case ArchARM64:
		return Selection{
			Arch:      arch,
			Predicate: "__arm64__",
			Headers:   []string{"Hypervisor/Hypervisor.h"},
		}
	case ArchAMD64:
		return Selection{
			Arch:      arch,
			Predicate: "__x86_64__",
			Headers:   []string{"Hypervisor/hv.h", "Hypervisor/hv_vmx.h"},
		}
	default:
		return Selection{Arch: arch}
	}
}

// Arches lists the architectures the dispatcher has a branch for.
func Arches() []Arch {
	return []Arch{ArchARM64, ArchAMD64}
}
