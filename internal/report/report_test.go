package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/followcheck/internal/diff"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"txt", FormatText, false},
		{"csv", FormatCSV, false},
		{"TXT", FormatText, false},
		{"CSV", FormatCSV, false},
		{"json", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "ParseFormat(%q)", tt.input)
			continue
		}
		require.NoError(t, err, "ParseFormat(%q)", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestWriteText(t *testing.T) {
	outDir := t.TempDir()
	result := diff.Result{
		NotFollowingBack:  []string{"dave", "erin"},
		YouDontFollowBack: []string{"alice"},
	}

	paths, err := Write(outDir, result, FormatText)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outDir, "not_following_back.txt"), paths.NotFollowingBack)
	assert.Equal(t, filepath.Join(outDir, "you_dont_follow_back.txt"), paths.YouDontFollowBack)

	assert.Equal(t, "dave\nerin\n", readFile(t, paths.NotFollowingBack))
	assert.Equal(t, "alice\n", readFile(t, paths.YouDontFollowBack))
}

func TestWriteTextEmptyList(t *testing.T) {
	outDir := t.TempDir()

	paths, err := Write(outDir, diff.Result{}, FormatText)
	require.NoError(t, err)

	// Empty list means an empty file: no trailing newline, no content.
	assert.Equal(t, "", readFile(t, paths.NotFollowingBack))
	assert.Equal(t, "", readFile(t, paths.YouDontFollowBack))
}

func TestWriteCSV(t *testing.T) {
	outDir := t.TempDir()
	result := diff.Result{
		NotFollowingBack:  []string{"dave"},
		YouDontFollowBack: nil,
	}

	paths, err := Write(outDir, result, FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outDir, "not_following_back.csv"), paths.NotFollowingBack)
	assert.Equal(t, "username\ndave\n", readFile(t, paths.NotFollowingBack))
	assert.Equal(t, "username\n", readFile(t, paths.YouDontFollowBack))
}

func TestWriteCreatesOutDir(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "out")

	_, err := Write(outDir, diff.Result{NotFollowingBack: []string{"a"}}, FormatText)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, "not_following_back.txt"))
	assert.NoError(t, err)
}

func TestWriteOverwritesPreviousRun(t *testing.T) {
	outDir := t.TempDir()

	_, err := Write(outDir, diff.Result{NotFollowingBack: []string{"old_a", "old_b"}}, FormatText)
	require.NoError(t, err)

	paths, err := Write(outDir, diff.Result{NotFollowingBack: []string{"new"}}, FormatText)
	require.NoError(t, err)

	assert.Equal(t, "new\n", readFile(t, paths.NotFollowingBack))
}

func TestWriteIsIdempotent(t *testing.T) {
	outDir := t.TempDir()
	result := diff.Result{
		NotFollowingBack:  []string{"a", "b"},
		YouDontFollowBack: []string{"c"},
	}

	paths1, err := Write(outDir, result, FormatCSV)
	require.NoError(t, err)
	first := readFile(t, paths1.NotFollowingBack) + readFile(t, paths1.YouDontFollowBack)

	paths2, err := Write(outDir, result, FormatCSV)
	require.NoError(t, err)
	second := readFile(t, paths2.NotFollowingBack) + readFile(t, paths2.YouDontFollowBack)

	assert.Equal(t, first, second, "unchanged input must produce byte-identical outputs")
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
