package header

import (
	"regexp"
	"slices"
	"strings"
)

// Allowlist selects the declarations a binding generator should emit.
type Allowlist struct {
	Functions []*regexp.Regexp
	Macros    []*regexp.Regexp
}

// DefaultAllowlist matches the framework's public prefixes: hv_* functions
// and HV*, VM* and IRQ* constants.
var DefaultAllowlist = Allowlist{
	Functions: []*regexp.Regexp{regexp.MustCompile(`^hv_`)},
	Macros: []*regexp.Regexp{
		regexp.MustCompile(`^HV`),
		regexp.MustCompile(`^VM`),
		regexp.MustCompile(`^IRQ`),
	},
}

func matchAny(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// Symbols are the allowlisted names of a translation unit, sorted.
type Symbols struct {
	Functions []string
	Macros    []string
}

var funcDecl = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\s*\(`)

// ExtractSymbols collects allowlisted function names declared in u and the
// allowlisted names among macros. Include guards and type names are skipped.
func ExtractSymbols(u *Unit, macros []string, allow Allowlist) Symbols {
	var syms Symbols
	if u != nil {
		for _, m := range funcDecl.FindAllStringSubmatch(u.Source, -1) {
			name := m[1]
			if strings.HasSuffix(name, "_t") || !matchAny(allow.Functions, name) {
				continue
			}
			syms.Functions = append(syms.Functions, name)
		}
	}
	for _, name := range macros {
		if strings.HasSuffix(name, "_H") || strings.HasSuffix(name, "_H_") {
			continue
		}
		if matchAny(allow.Macros, name) {
			syms.Macros = append(syms.Macros, name)
		}
	}
	slices.Sort(syms.Functions)
	syms.Functions = slices.Compact(syms.Functions)
	slices.Sort(syms.Macros)
	syms.Macros = slices.Compact(syms.Macros)
	return syms
}
