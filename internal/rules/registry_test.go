package rules

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRegistry = `{
  "permissions": [
    {"name": "commercial-use", "label": "Commercial use", "description": "May be used for commercial purposes."},
    {"name": "modifications", "label": "Modification", "description": "May be modified."}
  ],
  "conditions": [
    {"name": "include-copyright", "label": "License and copyright notice", "description": "A copy of the license and copyright notice must be included."}
  ],
  "limitations": [
    {"name": "liability", "label": "Liability", "description": "Includes a limitation of liability."},
    {"name": "warranty", "label": "Warranty", "description": "Does not provide any warranty."}
  ]
}`

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	reg, err := Load(writeRegistry(t, testRegistry))
	require.NoError(t, err)

	assert.True(t, reg.Has(CategoryPermissions, "commercial-use"))
	assert.True(t, reg.Has(CategoryLimitations, "warranty"))
	assert.False(t, reg.Has(CategoryPermissions, "warranty"), "names are scoped per category")

	rule, ok := reg.Get(CategoryConditions, "include-copyright")
	require.True(t, ok)
	assert.Equal(t, "License and copyright notice", rule.Label)

	assert.Equal(t, []string{"commercial-use", "modifications"}, reg.Names(CategoryPermissions))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadDuplicateName(t *testing.T) {
	_, err := Load(writeRegistry(t, `{
  "permissions": [
    {"name": "commercial-use", "label": "a", "description": ""},
    {"name": "commercial-use", "label": "b", "description": ""}
  ]
}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate rule name")
}

func TestTranslate(t *testing.T) {
	reg, err := Load(writeRegistry(t, testRegistry))
	require.NoError(t, err)

	tests := []struct {
		label string
		cat   Category
		want  string
	}{
		{"commercial-use", CategoryPermissions, "commercial-use"},
		{"Commercial Use", CategoryPermissions, "commercial-use"},
		{"commercial use", CategoryPermissions, "commercial-use"},
		{"  modifications ", CategoryPermissions, "modifications"},
		{"include copyright", CategoryConditions, "include-copyright"},
	}
	for _, tt := range tests {
		got, err := reg.Translate(tt.cat, tt.label)
		require.NoError(t, err, "label %q", tt.label)
		assert.Equal(t, tt.want, got, "label %q", tt.label)
	}
}

func TestTranslateUnknownLabel(t *testing.T) {
	reg, err := Load(writeRegistry(t, testRegistry))
	require.NoError(t, err)

	_, err = reg.Translate(CategoryPermissions, "quantum-use")
	require.Error(t, err)

	var unknown *UnknownRuleLabelError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, CategoryPermissions, unknown.Category)
	assert.Equal(t, "quantum-use", unknown.Label)
}
