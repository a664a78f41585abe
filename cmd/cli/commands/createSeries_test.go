package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPlanFile(t *testing.T) {
	path := writePlan(t, `- title: Hagar
  passage: Genesis 16:1-16
- title: Ruth
  passage: Ruth 1:1-22
`)

	entries, err := loadPlanFile(path)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "Hagar", entries[0].Title)
	assert.Equal(t, "Ruth 1:1-22", entries[1].Passage)
}

func TestLoadPlanFile_MissingPassage(t *testing.T) {
	path := writePlan(t, "- title: Hagar\n")

	_, err := loadPlanFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no passage")
}

func TestLoadPlanFile_Empty(t *testing.T) {
	path := writePlan(t, "")

	_, err := loadPlanFile(path)
	assert.Error(t, err)
}

func TestLoadPlanFile_Missing(t *testing.T) {
	_, err := loadPlanFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
