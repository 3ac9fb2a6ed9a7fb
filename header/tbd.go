package header

import (
	"io"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	hv "github.com/blacktop/go-hv"
)

// Stub is a TAPI text stub (.tbd) as shipped in the macOS SDK in place of
// the framework binary.
type Stub struct {
	InstallName string
	// Targets are the architectures the stub declares, normalized to the
	// spelling of hv.Arch.String.
	Targets []string
	// Exports maps an architecture to its exported symbol names, without
	// the leading underscore.
	Exports map[string][]string
}

type tbdSection struct {
	Targets []string `yaml:"targets"`
	Archs   []string `yaml:"archs"`
	Symbols []string `yaml:"symbols"`
}

type tbdDocument struct {
	InstallName string       `yaml:"install-name"`
	Targets     []string     `yaml:"targets"`
	Archs       []string     `yaml:"archs"`
	Exports     []tbdSection `yaml:"exports"`
}

// ParseStub reads every document of a .tbd file. Both the v4 "targets"
// layout and the older v2/v3 "archs" layout are understood.
func ParseStub(r io.Reader) (*Stub, error) {
	stub := &Stub{Exports: make(map[string][]string)}
	dec := yaml.NewDecoder(r)
	for i := 0; ; i++ {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errors.Wrapf(err, "failed to parse tbd document %d", i)
		}
		if len(node.Content) == 0 {
			continue
		}
		// The documents are tagged !tapi-tbd, which yaml refuses to decode
		// into a struct.
		node.Content[0].Tag = "!!map"

		var doc tbdDocument
		if err := node.Decode(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode tbd document %d", i)
		}
		if stub.InstallName == "" {
			stub.InstallName = doc.InstallName
		}
		for _, t := range append(doc.Targets, doc.Archs...) {
			if a := stubArch(t); !slices.Contains(stub.Targets, a) {
				stub.Targets = append(stub.Targets, a)
			}
		}
		for _, sec := range doc.Exports {
			for _, t := range append(sec.Targets, sec.Archs...) {
				a := stubArch(t)
				for _, sym := range sec.Symbols {
					stub.Exports[a] = append(stub.Exports[a], strings.TrimPrefix(sym, "_"))
				}
			}
		}
	}
	if stub.InstallName == "" && len(stub.Exports) == 0 {
		return nil, errors.New("no tbd documents found")
	}
	for a, syms := range stub.Exports {
		slices.Sort(syms)
		stub.Exports[a] = slices.Compact(syms)
	}
	return stub, nil
}

// stubArch turns "arm64e-macos" or "x86_64" into an hv.Arch spelling.
func stubArch(target string) string {
	arch, _, _ := strings.Cut(target, "-")
	if arch == "arm64e" {
		arch = "arm64"
	}
	if a := hv.ParseArch(arch); a != hv.ArchUnknown {
		return a.String()
	}
	return arch
}

// Exported returns the symbols exported for arch.
func (s *Stub) Exported(arch hv.Arch) []string {
	return s.Exports[arch.String()]
}

// Skew returns the functions declared by the headers that the framework
// does not export for arch. A non-empty result comes with an error marked
// ErrVersionSkew.
func Skew(syms Symbols, stub *Stub, arch hv.Arch) ([]string, error) {
	exported := stub.Exported(arch)
	if len(exported) == 0 {
		return nil, errors.WithHintf(
			errors.Wrapf(ErrArchUnsupported, "%s exports nothing for %s", stub.InstallName, arch),
			"the SDK stub lists: %s", strings.Join(stub.Targets, ", "))
	}
	var missing []string
	for _, fn := range syms.Functions {
		if _, found := slices.BinarySearch(exported, fn); !found {
			missing = append(missing, fn)
		}
	}
	if len(missing) > 0 {
		err := errors.Wrapf(ErrVersionSkew, "%d of %d declared functions are not exported for %s",
			len(missing), len(syms.Functions), arch)
		return missing, errors.WithHint(err,
			"the headers are newer than the framework; point --sdk at the SDK matching the deployment target")
	}
	return nil, nil
}
