package merge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontmatter(t *testing.T) {
	meta, ok, err := parseFrontmatter([]byte(`---
title: MIT License
spdx-id: MIT
description: Short and permissive.
permissions:
  - commercial-use
---
License body here.
`))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "MIT", meta.SPDXID)
	assert.Equal(t, "MIT License", meta.Title)
	assert.Equal(t, "Short and permissive.", meta.Description)
	assert.Equal(t, []string{"commercial-use"}, meta.Permissions)
}

func TestParseFrontmatterAbsent(t *testing.T) {
	_, ok, err := parseFrontmatter([]byte("Plain license text without metadata.\n"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseFrontmatterInvalidYAML(t *testing.T) {
	_, _, err := parseFrontmatter([]byte("---\n\t{bad yaml\n---\n"))
	assert.Error(t, err)
}

func TestLoadChooseALicense(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mit.txt"), []byte(`---
spdx-id: MIT
permissions:
  - commercial-use
---
`), 0644))
	// No spdx-id: skipped, not an error.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "no-license.txt"), []byte(`---
title: Choosing a license
---
`), 0644))
	// Not a license file extension: ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("readme"), 0644))

	licenses, err := LoadChooseALicense(dir)
	require.NoError(t, err)
	require.Len(t, licenses, 1)

	meta, ok := licenses["mit"]
	require.True(t, ok, "index is keyed by lowercased SPDX ID")
	assert.Equal(t, "MIT", meta.SPDXID)
	assert.Equal(t, "Mit", meta.Title, "title falls back to the filename stem")
}

func TestLoadChooseALicenseMissingDir(t *testing.T) {
	_, err := LoadChooseALicense(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
