package header

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"

	hv "github.com/blacktop/go-hv"
)

var (
	// ErrArchUnsupported means the target matches no dispatcher branch while
	// framework declarations were required.
	ErrArchUnsupported = errors.New("architecture unsupported by Hypervisor.framework")
	// ErrHeaderNotFound means a framework header is not on the include path.
	ErrHeaderNotFound = errors.New("framework header not found")
	// ErrVersionSkew means the headers declare symbols the framework does not export.
	ErrVersionSkew = errors.New("framework version skew")
	// ErrToolchain covers a missing or failing C toolchain.
	ErrToolchain = errors.New("C toolchain failure")
)

// HeaderNotFoundError names the header the toolchain could not resolve.
type HeaderNotFoundError struct {
	Header string
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("%s: %v", e.Header, ErrHeaderNotFound)
}

func (e *HeaderNotFoundError) Is(target error) bool {
	return target == ErrHeaderNotFound
}

var notFoundPatterns = []*regexp.Regexp{
	// clang
	regexp.MustCompile(`fatal error: '([^']+)' file not found`),
	// gcc
	regexp.MustCompile(`fatal error: ([^:\s]+): No such file or directory`),
}

// Diagnose classifies toolchain output. It returns nil if stderr carries no
// recognizable fatal diagnostic.
func Diagnose(stderr string) error {
	for _, re := range notFoundPatterns {
		if m := re.FindStringSubmatch(stderr); m != nil {
			var err error = &HeaderNotFoundError{Header: m[1]}
			err = errors.WithDetail(err, strings.TrimSpace(stderr))
			if strings.HasPrefix(m[1], "Hypervisor/") {
				err = errors.WithHint(err, "install Xcode or the Command Line Tools (xcode-select --install), or pass --sdk")
			}
			return err
		}
	}
	return nil
}

// RequireFramework fails when u contributes no framework declarations.
func RequireFramework(u *Unit) error {
	if u != nil && len(u.Framework) > 0 {
		return nil
	}
	arch := hv.ArchUnknown
	if u != nil {
		arch = u.Arch
	}
	err := errors.Wrapf(ErrArchUnsupported, "target %s", arch)
	return errors.WithHintf(err, "the dispatcher only has branches for %s and %s", hv.ArchARM64, hv.ArchAMD64)
}

func toolchainError(cc string, cause error, stderr string) error {
	if d := Diagnose(stderr); d != nil {
		return d
	}
	err := errors.Mark(errors.Wrapf(cause, "%s", cc), ErrToolchain)
	if s := strings.TrimSpace(stderr); s != "" {
		err = errors.WithDetail(err, s)
	}
	return err
}
