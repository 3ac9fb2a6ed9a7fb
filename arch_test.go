package hv

import (
	"bytes"
	"reflect"
	"runtime"
	"strings"
	"testing"
)

func TestParseArch(t *testing.T) {
	tests := []struct {
		in   string
		want Arch
	}{
		{"arm64", ArchARM64},
		{"aarch64", ArchARM64},
		{"AMD64", ArchAMD64},
		{"x86_64", ArchAMD64},
		{" x86-64 ", ArchAMD64},
		{"riscv64", ArchUnknown},
		{"", ArchUnknown},
	}
	for _, tt := range tests {
		if got := ParseArch(tt.in); got != tt.want {
			t.Errorf("ParseArch(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, a := range Arches() {
		if got := ParseArch(a.String()); got != a {
			t.Errorf("ParseArch(%q) = %v, want %v", a.String(), got, a)
		}
	}
}

func TestHostArch(t *testing.T) {
	switch runtime.GOARCH {
	case "arm64":
		if HostArch() != ArchARM64 {
			t.Errorf("HostArch() = %v on arm64", HostArch())
		}
	case "amd64":
		if HostArch() != ArchAMD64 {
			t.Errorf("HostArch() = %v on amd64", HostArch())
		}
	default:
		if HostArch() != ArchUnknown {
			t.Errorf("HostArch() = %v on %s", HostArch(), runtime.GOARCH)
		}
	}
}

func TestSelect(t *testing.T) {
	arm := Select(ArchARM64)
	if arm.Predicate != "__arm64__" || !reflect.DeepEqual(arm.Headers, []string{"Hypervisor/Hypervisor.h"}) {
		t.Errorf("Select(arm64) = %+v", arm)
	}

	x86 := Select(ArchAMD64)
	if x86.Predicate != "__x86_64__" || !reflect.DeepEqual(x86.Headers, []string{"Hypervisor/hv.h", "Hypervisor/hv_vmx.h"}) {
		t.Errorf("Select(x86_64) = %+v", x86)
	}

	if other := Select(ArchUnknown); other.Supported() || other.Predicate != "" {
		t.Errorf("Select(unknown) = %+v, want empty", other)
	}
}

// The embedded dispatcher and the table must describe the same branches.
func TestDispatcherMatchesSelect(t *testing.T) {
	src := Dispatcher()
	if len(src) == 0 {
		t.Fatal("dispatcher is empty")
	}
	for _, a := range Arches() {
		sel := Select(a)
		if !bytes.Contains(src, []byte("defined("+sel.Predicate+")")) {
			t.Errorf("dispatcher has no branch for %s", sel.Predicate)
		}
		last := -1
		for _, h := range sel.Headers {
			i := bytes.Index(src, []byte("#include <"+h+">"))
			if i < 0 {
				t.Fatalf("dispatcher does not include %s", h)
			}
			if i < last {
				t.Errorf("%s is included out of order", h)
			}
			last = i
		}
	}
	if strings.Contains(string(src), "#error") {
		t.Error("dispatcher must not raise diagnostics on other architectures")
	}

	// callers get a copy
	src[0] = 0
	if Dispatcher()[0] == 0 {
		t.Error("Dispatcher() returned the embedded buffer")
	}
}
