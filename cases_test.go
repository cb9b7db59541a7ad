package mufmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/mufmt/internal/casefile"
)

func TestCaseFile(t *testing.T) {
	t.Parallel()
	cases, err := casefile.Load("testdata/cases.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	seen := make(map[string]bool, len(cases))
	for _, c := range cases {
		require.False(t, seen[c.Name], "duplicate case name %q", c.Name)
		seen[c.Name] = true
		t.Run(c.Name, func(t *testing.T) {
			t.Parallel()
			r := c.Run()
			assert.Equal(t, c.Want, r.Got, "format %q args %s", c.Format, c.ArgList())
			assert.Equal(t, c.WantCount(), r.Count)
			assert.True(t, r.Pass)
		})
	}
}
