package vocabulary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeVocabFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeVocabFile(t, "Hello\nWorld\n\nmillion\n.\n")

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, s.Len())
	assert.True(t, s.Contains("hello"))
	assert.True(t, s.Contains("HELLO"))
	assert.True(t, s.Contains("World"))
	assert.True(t, s.Contains("."))
	assert.False(t, s.Contains("nope"))
	assert.False(t, s.Contains(""))
}

func TestLoadMmapMatchesLoad(t *testing.T) {
	content := "alpha\nBeta\ngamma\r\ndelta"
	path := writeVocabFile(t, content)

	plain, err := Load(path)
	require.NoError(t, err)
	mapped, err := LoadMmap(path)
	require.NoError(t, err)

	assert.Equal(t, plain.Len(), mapped.Len())
	for _, w := range []string{"alpha", "beta", "GAMMA", "delta"} {
		assert.Truef(t, mapped.Contains(w), "mmap store missing %q", w)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestAddRemove(t *testing.T) {
	s := New()
	assert.False(t, s.Contains("Word"))

	s.Add("Word")
	assert.True(t, s.Contains("word"))
	assert.True(t, s.Contains("WORD"))
	assert.Equal(t, 1, s.Len())

	s.Remove("wOrd")
	assert.False(t, s.Contains("word"))
	assert.Equal(t, 0, s.Len())
}
