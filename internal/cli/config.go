package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/bjaus/mufmt/internal/report"
)

const defaultConfigFile = ".mufmt.toml"

// ErrConfig is returned for unusable configuration.
var ErrConfig = errors.New("invalid configuration")

// Options are the settings of a mufmt invocation.
type Options struct {
	Strict   bool
	Newline  bool
	Color    string
	Report   string
	LogLevel string
}

// DefaultOptions returns the settings used when neither the config file nor
// a flag sets them.
func DefaultOptions() Options {
	return Options{
		Color:    "auto",
		Report:   string(report.Table),
		LogLevel: "warn",
	}
}

// Validate checks the enumerated settings.
func (o Options) Validate() error {
	switch o.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("%w: color %q (want auto, on or off)", ErrConfig, o.Color)
	}
	if _, err := report.ParseFormat(o.Report); err != nil {
		return fmt.Errorf("%w: report: %w", ErrConfig, err)
	}
	if _, ok := parseLevel(o.LogLevel); !ok {
		return fmt.Errorf("%w: log level %q", ErrConfig, o.LogLevel)
	}
	return nil
}

// .mufmt.toml key mapping.
type fileConfig struct {
	Strict   bool   `toml:"strict"`
	Newline  bool   `toml:"newline"`
	Color    string `toml:"color"`
	Report   string `toml:"report"`
	LogLevel string `toml:"log_level"`
}

// loadConfig overlays the keys the file at path defines onto opts. A
// missing file is only an error when the path was given explicitly.
func loadConfig(path string, explicit bool, opts *Options) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && !explicit {
		return nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load mufmt config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q in %s", ErrConfig, undecoded[0].String(), path)
	}

	if meta.IsDefined("strict") {
		opts.Strict = raw.Strict
	}
	if meta.IsDefined("newline") {
		opts.Newline = raw.Newline
	}
	if meta.IsDefined("color") {
		opts.Color = strings.TrimSpace(raw.Color)
	}
	if meta.IsDefined("report") {
		opts.Report = strings.TrimSpace(raw.Report)
	}
	if meta.IsDefined("log_level") {
		opts.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	return nil
}

// applyFlags overrides opts with every flag set on the command line.
func applyFlags(cmd *cobra.Command, opts *Options) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("strict") {
		if opts.Strict, err = flags.GetBool("strict"); err != nil {
			return err
		}
	}
	if flags.Changed("newline") {
		if opts.Newline, err = flags.GetBool("newline"); err != nil {
			return err
		}
	}
	if flags.Changed("color") {
		if opts.Color, err = flags.GetString("color"); err != nil {
			return err
		}
	}
	if flags.Changed("report") {
		if opts.Report, err = flags.GetString("report"); err != nil {
			return err
		}
	}
	if flags.Changed("log-level") {
		if opts.LogLevel, err = flags.GetString("log-level"); err != nil {
			return err
		}
	}
	return nil
}
