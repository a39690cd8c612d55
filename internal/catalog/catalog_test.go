package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLicense(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func setupCatalogDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeLicense(t, dir, "MIT.json", `{
  "spdx": {"id": "MIT", "title": "MIT License", "url": "https://spdx.org/licenses/MIT.html"},
  "categorized": true,
  "permissions": ["commercial-use", "modifications"],
  "conditions": ["include-copyright"],
  "limitations": ["liability", "warranty"],
  "summary": "A short and simple permissive license."
}`)
	writeLicense(t, dir, "Apache-2.0.json", `{
  "spdx": {"id": "Apache-2.0", "title": "Apache License 2.0", "url": "https://spdx.org/licenses/Apache-2.0.html"},
  "categorized": true,
  "permissions": ["commercial-use", "patent-use"],
  "conditions": ["include-copyright", "document-changes"],
  "limitations": ["liability", "trademark-use", "warranty"]
}`)
	writeLicense(t, dir, "GPL-3.0-only.json", `{
  "spdx": {"id": "GPL-3.0-only", "title": "GNU General Public License v3.0 only", "url": "https://spdx.org/licenses/GPL-3.0-only.html"},
  "categorized": false,
  "permissions": [],
  "conditions": [],
  "limitations": []
}`)
	return dir
}

func TestLoadAndCount(t *testing.T) {
	c, err := Load(setupCatalogDir(t))
	require.NoError(t, err)

	counts := c.Count()
	assert.Equal(t, 3, counts.Total)
	assert.Equal(t, 2, counts.Categorized)
	assert.Equal(t, 1, counts.Uncategorized)
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	c, err := Load(setupCatalogDir(t))
	require.NoError(t, err)

	all := slices.Collect(c.List(FilterAll))
	assert.Equal(t, []string{"Apache-2.0", "GPL-3.0-only", "MIT"}, all, "ordinal sort by SPDX ID")

	categorized := slices.Collect(c.List(FilterCategorized))
	assert.Equal(t, []string{"Apache-2.0", "MIT"}, categorized)

	uncategorized := slices.Collect(c.List(FilterUncategorized))
	assert.Equal(t, []string{"GPL-3.0-only"}, uncategorized)

	assert.Equal(t, c.Count().Total, len(all))
	assert.Equal(t, len(all), len(categorized)+len(uncategorized))
}

func TestSummarize(t *testing.T) {
	c, err := Load(setupCatalogDir(t))
	require.NoError(t, err)

	s := c.Summarize()
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Categorized)
	// MIT + Apache-2.0: {commercial-use, modifications, patent-use}
	assert.Equal(t, 3, s.DistinctPermissions)
	// {include-copyright, document-changes}
	assert.Equal(t, 2, s.DistinctConditions)
	// {liability, warranty, trademark-use}
	assert.Equal(t, 3, s.DistinctLimitations)
}

func TestGetCaseInsensitive(t *testing.T) {
	c, err := Load(setupCatalogDir(t))
	require.NoError(t, err)

	lower, err := c.Get("mit")
	require.NoError(t, err)
	upper, err := c.Get("MIT")
	require.NoError(t, err)

	assert.Same(t, lower, upper)
	assert.Equal(t, "MIT", lower.SPDX.ID, "ID returned as stored")
	assert.Equal(t, []string{"commercial-use", "modifications"}, lower.Permissions)
	assert.Equal(t, "A short and simple permissive license.", lower.Summary)
}

func TestGetNotFound(t *testing.T) {
	c, err := Load(setupCatalogDir(t))
	require.NoError(t, err)

	_, err = c.Get("not-a-real-id")
	require.Error(t, err)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "not-a-real-id", notFound.ID)
}

func TestLoadMalformedJSON(t *testing.T) {
	dir := setupCatalogDir(t)
	writeLicense(t, dir, "Broken.json", `{not json`)

	_, err := Load(dir)
	require.Error(t, err)

	var malformed *MalformedRecordError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "invalid JSON", malformed.Reason)
}

func TestLoadMissingSPDXID(t *testing.T) {
	dir := t.TempDir()
	writeLicense(t, dir, "NoID.json", `{"categorized": false, "permissions": [], "conditions": [], "limitations": []}`)

	_, err := Load(dir)
	var malformed *MalformedRecordError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "missing spdx.id", malformed.Reason)
}

func TestLoadUncategorizedWithRules(t *testing.T) {
	dir := t.TempDir()
	writeLicense(t, dir, "Bad.json", `{
  "spdx": {"id": "Bad"},
  "categorized": false,
  "permissions": ["commercial-use"],
  "conditions": [],
  "limitations": []
}`)

	_, err := Load(dir)
	var malformed *MalformedRecordError
	require.True(t, errors.As(err, &malformed))
}

func TestLoadSkipsNonJSON(t *testing.T) {
	dir := setupCatalogDir(t)
	writeLicense(t, dir, "README.md", "# not a license record")

	c, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Count().Total)
}
