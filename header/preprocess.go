package header

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	hv "github.com/blacktop/go-hv"
)

// DefaultCC is the compiler used when Options.CC is empty.
const DefaultCC = "cc"

// IncludeDispatcher is the probe line that pulls in the dispatcher once.
const IncludeDispatcher = `#include "` + hv.DispatcherName + `"`

// Options select the compiler, the target and the header search path.
type Options struct {
	// CC is the C compiler, "cc" by default.
	CC string
	// Arch is the target architecture. ArchUnknown leaves the compiler default.
	Arch hv.Arch
	// Synthetic drops every predefined macro (-undef) and defines only the
	// dispatcher predicate for Arch. Any compiler can then play any target,
	// which is only meaningful against stub framework headers.
	Synthetic bool
	// SDKPath is a macOS SDK root. It sets -isysroot and adds the SDK's
	// framework directory.
	SDKPath string
	// FrameworkDirs are passed with -F.
	FrameworkDirs []string
	// IncludeDirs are passed with -I.
	IncludeDirs []string
	// ExtraArgs are appended verbatim before the input file.
	ExtraArgs []string
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

func (o Options) cc() string {
	if o.CC != "" {
		return o.CC
	}
	return DefaultCC
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// targetArgs returns the flags that pick the target and search path.
func (o Options) targetArgs() []string {
	var args []string
	if o.Synthetic {
		args = append(args, "-undef")
		if sel := hv.Select(o.Arch); sel.Predicate != "" {
			args = append(args, "-D"+sel.Predicate+"=1")
		}
	} else if o.Arch != hv.ArchUnknown {
		args = append(args, "-arch", o.Arch.String())
	}
	if o.SDKPath != "" {
		args = append(args, "-isysroot", o.SDKPath, "-F", FrameworkDir(o.SDKPath))
	}
	for _, dir := range o.FrameworkDirs {
		args = append(args, "-F", dir)
	}
	for _, dir := range o.IncludeDirs {
		args = append(args, "-I", dir)
	}
	return append(args, o.ExtraArgs...)
}

// Unit is a preprocessed translation unit.
type Unit struct {
	Arch hv.Arch
	// Source is the token stream without line markers or blank lines.
	Source string
	// Includes lists every file entered, in order.
	Includes []string
	// Framework lists the framework headers the dispatcher itself included,
	// in inclusion order, as "Hypervisor/<name>".
	Framework []string
}

// Empty reports whether preprocessing produced no tokens.
func (u *Unit) Empty() bool {
	return strings.TrimSpace(u.Source) == ""
}

// Preprocess runs the preprocessor over a probe made of lines. With no lines
// the probe includes the dispatcher once.
func Preprocess(ctx context.Context, opts Options, lines ...string) (*Unit, error) {
	out, err := run(ctx, opts, []string{"-E"}, lines)
	if err != nil {
		return nil, err
	}
	u := parseUnit(out)
	u.Arch = opts.Arch
	opts.logger().Debug("preprocessed dispatcher",
		"arch", opts.Arch,
		"framework", u.Framework,
		"includes", len(u.Includes),
	)
	return u, nil
}

// Compile checks that a probe made of lines compiles, without producing
// output. With no lines the probe includes the dispatcher once.
func Compile(ctx context.Context, opts Options, lines ...string) error {
	_, err := run(ctx, opts, []string{"-fsyntax-only"}, lines)
	return err
}

// Macros returns the names of the object-like macros defined after
// preprocessing the probe.
func Macros(ctx context.Context, opts Options, lines ...string) ([]string, error) {
	out, err := run(ctx, opts, []string{"-E", "-dM"}, lines)
	if err != nil {
		return nil, err
	}
	return parseMacros(out), nil
}

func run(ctx context.Context, opts Options, mode []string, lines []string) ([]byte, error) {
	dir, err := os.MkdirTemp("", "hv-probe-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create probe directory")
	}
	defer os.RemoveAll(dir)

	if err := os.WriteFile(filepath.Join(dir, hv.DispatcherName), hv.Dispatcher(), 0o644); err != nil {
		return nil, errors.Wrap(err, "failed to write dispatcher")
	}
	if len(lines) == 0 {
		lines = []string{IncludeDispatcher}
	}
	probe := filepath.Join(dir, "probe.c")
	if err := os.WriteFile(probe, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		return nil, errors.Wrap(err, "failed to write probe")
	}

	args := append(append([]string{}, mode...), opts.targetArgs()...)
	args = append(args, probe)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, opts.cc(), args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	opts.logger().Debug("running toolchain", "cc", opts.cc(), "args", args)
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			err = errors.WithHint(err, "install a C compiler or set --cc")
		}
		return nil, toolchainError(opts.cc(), err, stderr.String())
	}
	return stdout.Bytes(), nil
}

// lineMarker is a preprocessor "# <line> "<file>" <flags>" directive.
type lineMarker struct {
	file  string
	enter bool
	leave bool
}

func parseLineMarker(line string) (lineMarker, bool) {
	rest, ok := strings.CutPrefix(line, "# ")
	if !ok {
		rest, ok = strings.CutPrefix(line, "#line ")
	}
	if !ok {
		return lineMarker{}, false
	}
	num, rest, ok := strings.Cut(rest, " ")
	if !ok {
		return lineMarker{}, false
	}
	if _, err := strconv.Atoi(num); err != nil {
		return lineMarker{}, false
	}
	if !strings.HasPrefix(rest, `"`) {
		return lineMarker{}, false
	}
	end := strings.LastIndex(rest, `"`)
	if end <= 0 {
		return lineMarker{}, false
	}
	m := lineMarker{file: rest[1:end]}
	for _, flag := range strings.Fields(rest[end+1:]) {
		switch flag {
		case "1":
			m.enter = true
		case "2":
			m.leave = true
		}
	}
	return m, true
}

func parseUnit(out []byte) *Unit {
	var (
		u     Unit
		src   strings.Builder
		stack []string
		seen  = map[string]bool{}
	)
	sc := bufio.NewScanner(bytes.NewReader(out))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if m, ok := parseLineMarker(line); ok {
			switch {
			case m.enter:
				if n := len(stack); n > 0 && filepath.Base(stack[n-1]) == hv.DispatcherName {
					if name := frameworkName(m.file); name != "" && !seen[name] {
						seen[name] = true
						u.Framework = append(u.Framework, name)
					}
				}
				stack = append(stack, m.file)
				if !strings.HasPrefix(m.file, "<") {
					u.Includes = append(u.Includes, displayName(m.file))
				}
			case m.leave:
				for len(stack) > 0 && stack[len(stack)-1] != m.file {
					stack = stack[:len(stack)-1]
				}
			case len(stack) == 0 && !strings.HasPrefix(m.file, "<"):
				stack = append(stack, m.file)
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		src.WriteString(line)
		src.WriteByte('\n')
	}
	u.Source = src.String()
	return &u
}

// frameworkName maps a resolved path to the spelling used in #include.
func frameworkName(path string) string {
	path = filepath.ToSlash(path)
	if _, after, ok := strings.Cut(path, "Hypervisor.framework/Headers/"); ok {
		return "Hypervisor/" + after
	}
	if i := strings.LastIndex(path, "/Hypervisor/"); i >= 0 {
		return path[i+1:]
	}
	if strings.HasPrefix(path, "Hypervisor/") {
		return path
	}
	return ""
}

func displayName(path string) string {
	if name := frameworkName(path); name != "" {
		return name
	}
	if filepath.Base(path) == hv.DispatcherName {
		return hv.DispatcherName
	}
	return path
}

func parseMacros(out []byte) []string {
	var names []string
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		rest, ok := strings.CutPrefix(sc.Text(), "#define ")
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(rest, " ")
		if strings.Contains(name, "(") {
			continue // function-like
		}
		names = append(names, name)
	}
	return names
}
