package mufmt_test

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/mufmt"
)

func render(format string, args ...mufmt.Arg) (string, int) {
	n := mufmt.Render(mufmt.Discard, format, args...)
	b := mufmt.NewBuffer(make([]byte, n))
	count := mufmt.Render(b, format, args...)
	return b.String(), count
}

// --- Render ---

func TestRender(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		args   []mufmt.Arg
		want   string
	}{
		"empty":            {format: "", want: ""},
		"literal":          {format: "no directives", want: "no directives"},
		"percent":          {format: "100%%", want: "100%"},
		"char":             {format: "[%c]", args: []mufmt.Arg{mufmt.Char('q')}, want: "[q]"},
		"string":           {format: "%s!", args: []mufmt.Arg{mufmt.Str("hi")}, want: "hi!"},
		"signed":           {format: "%d", args: []mufmt.Arg{mufmt.Int(-42)}, want: "-42"},
		"signed from uint": {format: "%d", args: []mufmt.Arg{mufmt.Uint(math.MaxUint64)}, want: "-1"},
		"binary":           {format: "%b", args: []mufmt.Arg{mufmt.Uint(5)}, want: "101"},
		"octal":            {format: "%o", args: []mufmt.Arg{mufmt.Uint(8)}, want: "10"},
		"hex":              {format: "%x", args: []mufmt.Arg{mufmt.Uint(255)}, want: "ff"},
		"hex upper":        {format: "%X", args: []mufmt.Arg{mufmt.Uint(255)}, want: "FF"},
		"pointer":          {format: "%p", args: []mufmt.Arg{mufmt.Ptr(0xdead)}, want: "0xdead"},
		"pointer zero":     {format: "%p", args: []mufmt.Arg{mufmt.Ptr(0)}, want: "0"},
		"fixed":            {format: "%.3f", args: []mufmt.Arg{mufmt.Float(2.5)}, want: "2.500"},
		"scientific":       {format: "%.1e", args: []mufmt.Arg{mufmt.Float(250)}, want: "2.5e+02"},
		"scientific upper": {format: "%.1E", args: []mufmt.Arg{mufmt.Float(0.5)}, want: "5.0E-01"},
		"negative zero":    {format: "%.1f", args: []mufmt.Arg{mufmt.Float(math.Copysign(0, -1))}, want: "0.0"},
		"sequence": {
			format: "%s=%d (%#x)",
			args:   []mufmt.Arg{mufmt.Str("n"), mufmt.Int(10), mufmt.Uint(10)},
			want:   "n=10 (0xa)",
		},
		"unknown verb":       {format: "<%q>", args: []mufmt.Arg{mufmt.Int(1)}, want: "<>"},
		"unknown keeps arg":  {format: "%y%d", args: []mufmt.Arg{mufmt.Int(1)}, want: "1"},
		"dangling percent":   {format: "50%", want: "50"},
		"dangling flags":     {format: "x%-08.", want: "x"},
		"missing argument":   {format: "%d|%s|", want: "||"},
		"string for integer": {format: "%d", args: []mufmt.Arg{mufmt.Str("7")}, want: ""},
		"integer for string": {format: "%s", args: []mufmt.Arg{mufmt.Int(7)}, want: ""},
		"invalid arg":        {format: "%d", args: []mufmt.Arg{{}}, want: ""},
		"float for integer":  {format: "%x", args: []mufmt.Arg{mufmt.Float(1)}, want: ""},
		"mismatch consumes": {
			format: "%s %d",
			args:   []mufmt.Arg{mufmt.Float(1), mufmt.Int(2)},
			want:   " 2",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, n := render(tt.format, tt.args...)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), n)
		})
	}
}

func TestRenderWidthSaturates(t *testing.T) {
	t.Parallel()
	got, n := render("%300d", mufmt.Int(1))
	assert.Equal(t, mufmt.MaxWidth, n)
	assert.Equal(t, byte('1'), got[len(got)-1])

	got, n = render("%.999d", mufmt.Int(1))
	assert.Equal(t, mufmt.MaxPrecision, n)
	assert.Equal(t, byte('0'), got[0])
}

func TestRenderCountMatchesSink(t *testing.T) {
	t.Parallel()
	formats := []string{
		"%d", "%+5d", "%-8.3d", "%#o", "%#10b", "%08x", "%c", "%-4c",
		"%s", "%.2s", "%10s", "%f", "%.0f", "%#012.4f", "%e", "%-+14.3E",
	}
	args := map[byte]mufmt.Arg{
		'd': mufmt.Int(-1234),
		'o': mufmt.Uint(511),
		'b': mufmt.Uint(6),
		'x': mufmt.Uint(0xbeef),
		'c': mufmt.Char('k'),
		's': mufmt.Str("sink"),
		'f': mufmt.Float(-12.625),
		'e': mufmt.Float(12345.678),
		'E': mufmt.Float(0.00042),
	}
	for _, format := range formats {
		t.Run(format, func(t *testing.T) {
			t.Parallel()
			arg := args[format[len(format)-1]]
			var emitted []byte
			n := mufmt.Render(mufmt.SinkFunc(func(c byte) int {
				emitted = append(emitted, c)
				return 1
			}), format, arg)
			assert.Len(t, emitted, n)
			assert.Equal(t, n, mufmt.Render(mufmt.Discard, format, arg))
		})
	}
}

func TestRenderCountIgnoresSinkResult(t *testing.T) {
	t.Parallel()
	refuse := mufmt.SinkFunc(func(byte) int { return 0 })
	assert.Equal(t, 5, mufmt.Render(refuse, "%5d", mufmt.Int(3)))
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()
	args := []mufmt.Arg{mufmt.Float(9.99), mufmt.Str("x"), mufmt.Int(-7)}
	first, n1 := render("%08.1e %3s %+.4d", args...)
	second, n2 := render("%08.1e %3s %+.4d", args...)
	assert.Equal(t, first, second)
	assert.Equal(t, n1, n2)
	assert.Equal(t, "01.0e+01   x -0007", first)
}

func TestRenderZeroAllocs(t *testing.T) {
	b := mufmt.NewBuffer(make([]byte, 128))
	args := []mufmt.Arg{mufmt.Int(-42), mufmt.Str("abc"), mufmt.Float(3.25), mufmt.Float(1e-7), mufmt.Uint(0xff)}
	allocs := testing.AllocsPerRun(100, func() {
		b.Reset()
		mufmt.Render(b, "%5d|%-6s|%.2f|%e|%#x", args...)
	})
	assert.Zero(t, allocs)
	assert.Equal(t, "  -42|abc   |3.25|1.000000e-07|0xff", b.String())
}

// --- Printf / ArgOf ---

type celsius float64

func (c celsius) String() string { return fmt.Sprintf("%.1fC", float64(c)) }

func TestPrintf(t *testing.T) {
	t.Parallel()
	b := mufmt.NewBuffer(make([]byte, 64))
	n := mufmt.Printf(b, "%d %s %c %.1f %x %s", 3, "go", byte('!'), 0.25, uint16(0xab), celsius(21.5))
	assert.Equal(t, "3 go ! 0.3 ab 21.5C", b.String())
	assert.Equal(t, b.Len(), n)
}

func TestArgOf(t *testing.T) {
	t.Parallel()
	var x int
	tests := map[string]struct {
		in   any
		want mufmt.Kind
	}{
		"int":            {in: 1, want: mufmt.KindInt},
		"int8":           {in: int8(1), want: mufmt.KindInt},
		"int16":          {in: int16(1), want: mufmt.KindInt},
		"rune":           {in: 'a', want: mufmt.KindInt},
		"int64":          {in: int64(1), want: mufmt.KindInt},
		"uint":           {in: uint(1), want: mufmt.KindUint},
		"byte":           {in: byte(1), want: mufmt.KindChar},
		"uint16":         {in: uint16(1), want: mufmt.KindUint},
		"uint32":         {in: uint32(1), want: mufmt.KindUint},
		"uint64":         {in: uint64(1), want: mufmt.KindUint},
		"uintptr":        {in: uintptr(1), want: mufmt.KindPointer},
		"unsafe pointer": {in: unsafe.Pointer(&x), want: mufmt.KindPointer},
		"float32":        {in: float32(1), want: mufmt.KindFloat},
		"float64":        {in: 1.0, want: mufmt.KindFloat},
		"bool":           {in: true, want: mufmt.KindInt},
		"string":         {in: "s", want: mufmt.KindString},
		"bytes":          {in: []byte("s"), want: mufmt.KindString},
		"error":          {in: errors.New("e"), want: mufmt.KindString},
		"stringer":       {in: celsius(1), want: mufmt.KindString},
		"arg":            {in: mufmt.Char('c'), want: mufmt.KindChar},
		"nil":            {in: nil, want: mufmt.KindInvalid},
		"struct":         {in: struct{}{}, want: mufmt.KindInvalid},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mufmt.ArgOf(tt.in).Kind())
		})
	}
}

func TestArgsOfEmpty(t *testing.T) {
	t.Parallel()
	assert.Nil(t, mufmt.ArgsOf())
	require.Len(t, mufmt.ArgsOf(1, "a"), 2)
}

func TestArgString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		arg  mufmt.Arg
		want string
	}{
		"int":     {arg: mufmt.Int(-3), want: "int(-3)"},
		"uint":    {arg: mufmt.Uint(3), want: "uint(3)"},
		"float":   {arg: mufmt.Float(0.5), want: "float(0.5)"},
		"string":  {arg: mufmt.Str("a b"), want: `string("a b")`},
		"char":    {arg: mufmt.Char('x'), want: "char('x')"},
		"pointer": {arg: mufmt.Ptr(255), want: "pointer(0xff)"},
		"invalid": {arg: mufmt.Arg{}, want: "invalid"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.arg.String())
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "int", mufmt.KindInt.String())
	assert.Equal(t, "pointer", mufmt.KindPointer.String())
	assert.Equal(t, "invalid", mufmt.KindInvalid.String())
}
