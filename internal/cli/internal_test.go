package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/mufmt"
)

// --- Logging ---

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		raw    string
		want   zerolog.Level
		wantOK bool
	}{
		"empty":      {raw: "", want: zerolog.WarnLevel},
		"debug":      {raw: "debug", want: zerolog.DebugLevel, wantOK: true},
		"mixed case": {raw: " Info ", want: zerolog.InfoLevel, wantOK: true},
		"warning":    {raw: "warning", want: zerolog.WarnLevel, wantOK: true},
		"off":        {raw: "off", want: zerolog.Disabled, wantOK: true},
		"unknown":    {raw: "loud", want: zerolog.WarnLevel},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseLevel(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestParseBool(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		raw    string
		want   bool
		wantOK bool
	}{
		"empty":   {raw: ""},
		"true":    {raw: "true", want: true, wantOK: true},
		"one":     {raw: " 1 ", want: true, wantOK: true},
		"false":   {raw: "false", wantOK: true},
		"garbage": {raw: "maybe"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseBool(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestNewLoggerLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	assert.Equal(t, zerolog.ErrorLevel, newLogger(&bytes.Buffer{}, "error").GetLevel())
	assert.Equal(t, zerolog.WarnLevel, newLogger(&bytes.Buffer{}, "bogus").GetLevel())
}

func TestNewLoggerEnvOverride(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogNoColor, "true")
	var buf bytes.Buffer
	log := newLogger(&buf, "error")
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())

	log.Debug().Str("k", "v").Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "app=mufmt")
	assert.NotContains(t, buf.String(), "\x1b[")
}

// --- Config ---

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "mufmt.toml")
	require.NoError(t, os.WriteFile(path, []byte("color = \" off \"\nlog_level = \"debug\"\n"), 0o600))

	opts := DefaultOptions()
	opts.Strict = true
	require.NoError(t, loadConfig(path, true, &opts))
	assert.Equal(t, Options{
		Strict:   true,
		Color:    "off",
		Report:   "table",
		LogLevel: "debug",
	}, opts)
}

func TestLoadConfigMissing(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "absent.toml")

	opts := DefaultOptions()
	require.NoError(t, loadConfig(path, false, &opts))
	assert.Equal(t, DefaultOptions(), opts)

	assert.ErrorIs(t, loadConfig(path, true, &opts), os.ErrNotExist)
	assert.NoError(t, loadConfig("", true, &opts))
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		mutate  func(*Options)
		wantErr bool
	}{
		"defaults":  {mutate: func(*Options) {}},
		"color on":  {mutate: func(o *Options) { o.Color = "on" }},
		"bad color": {mutate: func(o *Options) { o.Color = "yes" }, wantErr: true},
		"yaml":      {mutate: func(o *Options) { o.Report = "yaml" }},
		"xml":       {mutate: func(o *Options) { o.Report = "xml" }, wantErr: true},
		"off":       {mutate: func(o *Options) { o.LogLevel = "off" }},
		"empty":     {mutate: func(o *Options) { o.LogLevel = "" }, wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			opts := DefaultOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// --- Arguments ---

func TestConvertArgs(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		raw    []string
		want   []mufmt.Arg
	}{
		"signed":         {format: "%d", raw: []string{"-7"}, want: []mufmt.Arg{mufmt.Int(-7)}},
		"large unsigned": {format: "%i", raw: []string{"18446744073709551615"}, want: []mufmt.Arg{mufmt.Uint(18446744073709551615)}},
		"hex input":      {format: "%x", raw: []string{"0xff"}, want: []mufmt.Arg{mufmt.Uint(255)}},
		"negative octal": {format: "%o", raw: []string{"-8"}, want: []mufmt.Arg{mufmt.Int(-8)}},
		"binary input":   {format: "%b", raw: []string{"0b101"}, want: []mufmt.Arg{mufmt.Uint(5)}},
		"float":          {format: "%.2f", raw: []string{"1e3"}, want: []mufmt.Arg{mufmt.Float(1000)}},
		"char":           {format: "%c", raw: []string{"xyz"}, want: []mufmt.Arg{mufmt.Char('x')}},
		"pointer":        {format: "%p", raw: []string{"0x10"}, want: []mufmt.Arg{mufmt.Ptr(16)}},
		"string":         {format: "%-4s", raw: []string{"12"}, want: []mufmt.Arg{mufmt.Str("12")}},
		"skips percent":  {format: "%%%d", raw: []string{"3"}, want: []mufmt.Arg{mufmt.Int(3)}},
		"skips unknown":  {format: "%q%d", raw: []string{"3"}, want: []mufmt.Arg{mufmt.Int(3)}},
		"surplus":        {format: "%d", raw: []string{"1", "2"}, want: []mufmt.Arg{mufmt.Int(1), mufmt.Str("2")}},
		"no directives":  {format: "plain", raw: []string{"5"}, want: []mufmt.Arg{mufmt.Str("5")}},
		"fewer args":     {format: "%d %d", raw: []string{"5"}, want: []mufmt.Arg{mufmt.Int(5)}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := convertArgs(tt.format, tt.raw)
			require.NoError(t, err)
			describe := func(args []mufmt.Arg) []string {
				out := make([]string, len(args))
				for i, a := range args {
					out[i] = a.String()
				}
				return out
			}
			if diff := cmp.Diff(describe(tt.want), describe(got)); diff != "" {
				t.Errorf("convertArgs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvertArgsError(t *testing.T) {
	t.Parallel()
	_, err := convertArgs("%s %d", []string{"a", "b"})
	require.ErrorIs(t, err, ErrBadArgument)
	assert.Contains(t, err.Error(), `"b" for %d`)
}

// --- Directives ---

func TestScanDirectives(t *testing.T) {
	t.Parallel()
	three := 3
	got := scanDirectives("x%#08.3e%%%c%")
	want := []directiveInfo{
		{Offset: 1, Directive: "%#08.3e", Flags: "#0", Width: 8, Precision: &three, Verb: "e", Arg: 1},
		{Offset: 8, Directive: "%%", Verb: "%"},
		{Offset: 10, Directive: "%c", Verb: "c", Arg: 2},
		{Offset: 12, Directive: "%", Verb: "(end)"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scanDirectives() mismatch (-want +got):\n%s", diff)
	}
}

func TestScanDirectivesUpper(t *testing.T) {
	t.Parallel()
	got := scanDirectives("%X")
	require.Len(t, got, 1)
	assert.Equal(t, "X", got[0].Verb)
	assert.Equal(t, "U", got[0].Flags)
	assert.Equal(t, 1, got[0].Arg)
}
