/*
Copyright © 2025 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	hv "github.com/blacktop/go-hv"
	"github.com/blacktop/go-hv/header"
)

var (
	cfgFile string
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "hv",
	Short: "Inspect Hypervisor.framework headers, symbols and host support",
	Long: `hv resolves the per-architecture Hypervisor.framework headers the way the
Go bindings see them, checks them against the SDK's exported symbols and
reports what the host supports.

Every flag can also be set from the environment (HV_CC, HV_SDK,
HV_LOG_LEVEL, ...) or from a config file passed with --config.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		return setupLogger(cmd.ErrOrStderr())
	},
}

// Execute runs the root command and reports any error with its hints.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		slog.Error(err.Error())
		for _, hint := range errors.GetAllHints(err) {
			slog.Info("hint: " + hint)
		}
		if detail := errors.FlattenDetails(err); detail != "" {
			slog.Debug("detail", "output", detail)
		}
	}
	return err
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text, json)")
	pf.String("cc", header.DefaultCC, "C compiler used to preprocess the headers")
	pf.String("sdk", "", "macOS SDK root (default: xcrun --sdk macosx --show-sdk-path)")
	pf.StringSliceP("include", "I", nil, "extra include directories")
	pf.StringSliceP("framework", "F", nil, "extra framework directories")
	pf.Bool("synthetic", false, "emulate the target with -undef and only its predicate macro")

	if err := v.BindPFlags(pf); err != nil {
		panic(err)
	}
	v.SetEnvPrefix("HV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
}

func initConfig() error {
	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config %s", cfgFile)
	}
	return nil
}

func setupLogger(w io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return errors.Wrap(err, "invalid --log-level")
	}
	switch format := v.GetString("log-format"); format {
	case "json":
		slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})))
	case "text", "":
		slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{Level: level})))
	default:
		return errors.Newf("invalid --log-format %q (text, json)", format)
	}
	return nil
}

func addArchFlag(cmd *cobra.Command) {
	cmd.Flags().String("arch", "", "target architecture: arm64 or x86_64 (default: host)")
}

// targetArch reads --arch. Unknown names are allowed and select no branch.
func targetArch(cmd *cobra.Command) hv.Arch {
	name, _ := cmd.Flags().GetString("arch")
	if name == "" {
		return hv.HostArch()
	}
	arch := hv.ParseArch(name)
	if arch == hv.ArchUnknown {
		slog.Warn("architecture has no dispatcher branch", "arch", name)
	}
	return arch
}

// headerOptions builds preprocessor options from flags, environment and config.
func headerOptions(ctx context.Context, arch hv.Arch) header.Options {
	opts := header.Options{
		CC:            v.GetString("cc"),
		Arch:          arch,
		Synthetic:     v.GetBool("synthetic"),
		SDKPath:       v.GetString("sdk"),
		FrameworkDirs: v.GetStringSlice("framework"),
		IncludeDirs:   v.GetStringSlice("include"),
		Logger:        slog.Default(),
	}
	if opts.SDKPath == "" && !opts.Synthetic && runtime.GOOS == "darwin" {
		sdk, err := header.SDKPath(ctx)
		if err != nil {
			slog.Warn("macOS SDK not found, using compiler defaults", "err", err)
		} else {
			opts.SDKPath = sdk
		}
	}
	if !opts.Synthetic && runtime.GOOS != "darwin" && arch != hv.ArchUnknown {
		// -arch is an Apple toolchain flag.
		opts.Synthetic = true
		slog.Debug("not on darwin, emulating target", "arch", arch)
	}
	slog.Debug("header options",
		"cc", opts.CC,
		"arch", opts.Arch,
		"sdk", opts.SDKPath,
		"synthetic", opts.Synthetic,
	)
	return opts
}
