package bfmt_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/bfmt"
)

type goldenCase struct {
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
	Args     []any  `yaml:"args"`
	Want     string `yaml:"want"`
}

// The golden corpus keeps end-to-end renderings in one reviewable place.
// YAML decodes integers as int, floats as float64, and booleans as bool,
// which all dispatch natively.
func TestGoldenCases(t *testing.T) {
	t.Parallel()

	raw, err := os.ReadFile(filepath.Join("testdata", "cases.yaml"))
	require.NoError(t, err)

	var cases []goldenCase
	require.NoError(t, yaml.Unmarshal(raw, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			out, err := bfmt.Marshal(tc.Template, tc.Args...)
			require.NoError(t, err)
			assert.Equal(t, tc.Want, string(out))
		})
	}
}
