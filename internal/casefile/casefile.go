// Package casefile loads rendering test vectors from YAML.
//
// A case file holds a list of cases:
//
//	cases:
//	  - name: negative with precision
//	    format: "%10.5d"
//	    args: [{int: -1}]
//	    want: "    -00001"
//
// Each argument is a one-key map naming its kind: int, uint, float, str,
// char or ptr. A char may be given as a number or a one-byte string. When
// count is omitted the expected count is the length of want.
package casefile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"fortio.org/safecast"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/mufmt"
)

// ErrInvalidCase is returned for malformed case files.
var ErrInvalidCase = errors.New("invalid case")

// File is the top-level document of a case file.
type File struct {
	Cases []Case `yaml:"cases"`
}

// Case is one rendering test vector.
type Case struct {
	Name   string  `yaml:"name" json:"name"`
	Format string  `yaml:"format" json:"format"`
	Args   []Value `yaml:"args,omitempty" json:"args,omitempty"`
	Want   string  `yaml:"want" json:"want"`
	Count  *int    `yaml:"count,omitempty" json:"count,omitempty"`
}

// Value is one typed argument of a case.
type Value struct {
	Arg mufmt.Arg
}

// String describes the value, e.g. "int(-1)".
func (v Value) String() string { return v.Arg.String() }

// MarshalText makes values readable in JSON and YAML reports.
func (v Value) MarshalText() ([]byte, error) { return []byte(v.Arg.String()), nil }

// UnmarshalYAML decodes a one-key map such as {int: -1}.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("%w: line %d: argument must be a one-key map like {int: 1}", ErrInvalidCase, node.Line)
	}
	key, val := node.Content[0].Value, node.Content[1]
	arg, err := decodeArg(key, val)
	if err != nil {
		return fmt.Errorf("%w: line %d: %s: %w", ErrInvalidCase, node.Line, key, err)
	}
	v.Arg = arg
	return nil
}

func decodeArg(kind string, node *yaml.Node) (mufmt.Arg, error) {
	switch kind {
	case "int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return mufmt.Arg{}, err
		}
		return mufmt.Int(i), nil
	case "uint":
		var u uint64
		if err := node.Decode(&u); err != nil {
			return mufmt.Arg{}, err
		}
		return mufmt.Uint(u), nil
	case "float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return mufmt.Arg{}, err
		}
		return mufmt.Float(f), nil
	case "str":
		var s string
		if err := node.Decode(&s); err != nil {
			return mufmt.Arg{}, err
		}
		return mufmt.Str(s), nil
	case "char":
		if node.Tag == "!!str" {
			if len(node.Value) != 1 {
				return mufmt.Arg{}, fmt.Errorf("%q is not a single byte", node.Value)
			}
			return mufmt.Char(node.Value[0]), nil
		}
		var i int64
		if err := node.Decode(&i); err != nil {
			return mufmt.Arg{}, err
		}
		c, err := safecast.Conv[byte](i)
		if err != nil {
			return mufmt.Arg{}, err
		}
		return mufmt.Char(c), nil
	case "ptr":
		var u uint64
		if err := node.Decode(&u); err != nil {
			return mufmt.Arg{}, err
		}
		p, err := safecast.Conv[uintptr](u)
		if err != nil {
			return mufmt.Arg{}, err
		}
		return mufmt.Ptr(p), nil
	default:
		return mufmt.Arg{}, errors.New("unknown argument kind")
	}
}

// Parse decodes a case file. Cases without a name are named after their
// format.
func Parse(data []byte) ([]Case, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		if errors.Is(err, ErrInvalidCase) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidCase, err)
	}
	for i := range f.Cases {
		if f.Cases[i].Name == "" {
			f.Cases[i].Name = f.Cases[i].Format
		}
	}
	return f.Cases, nil
}

// Load reads and parses the case file at path.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("case file load failed (%s): %w", path, err)
	}
	cases, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("case file parse failed (%s): %w", path, err)
	}
	return cases, nil
}

// MufmtArgs returns the case arguments ready for [mufmt.Render].
func (c Case) MufmtArgs() []mufmt.Arg {
	args := make([]mufmt.Arg, len(c.Args))
	for i, v := range c.Args {
		args[i] = v.Arg
	}
	return args
}

// WantCount is the count the render call must return.
func (c Case) WantCount() int {
	if c.Count != nil {
		return *c.Count
	}
	return len(c.Want)
}

// ArgList describes the arguments on one line, e.g. "int(-1), str("a")".
func (c Case) ArgList() string {
	parts := make([]string, len(c.Args))
	for i, v := range c.Args {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

// Result is the outcome of running one case.
type Result struct {
	Case  Case   `json:"case" yaml:"case"`
	Got   string `json:"got" yaml:"got"`
	Count int    `json:"count" yaml:"count"`
	Pass  bool   `json:"pass" yaml:"pass"`
}

// Run renders the case and compares output and count with the
// expectation.
func (c Case) Run() Result {
	args := c.MufmtArgs()
	n := mufmt.Render(mufmt.Discard, c.Format, args...)
	b := mufmt.NewBuffer(make([]byte, n))
	count := mufmt.Render(b, c.Format, args...)
	got := b.String()
	return Result{
		Case:  c,
		Got:   got,
		Count: count,
		Pass:  got == c.Want && count == c.WantCount(),
	}
}

// RunAll runs every case in order.
func RunAll(cases []Case) []Result {
	out := make([]Result, len(cases))
	for i, c := range cases {
		out[i] = c.Run()
	}
	return out
}
