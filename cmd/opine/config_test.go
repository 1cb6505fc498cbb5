package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, "utf-8", cfg.Encoding)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 20, cfg.Number)
		assert.Empty(t, cfg.Normalization)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("OPINE_LANGUAGE", "de")
		t.Setenv("OPINE_ENCODING", "iso-8859-1")
		t.Setenv("OPINE_NUMBER", "5")
		t.Setenv("OPINE_NORMALIZATION", "normalization.yaml")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "de", cfg.Language)
		assert.Equal(t, "iso-8859-1", cfg.Encoding)
		assert.Equal(t, 5, cfg.Number)
		assert.Equal(t, "normalization.yaml", cfg.Normalization)
	})

	t.Run("negative number", func(t *testing.T) {
		t.Setenv("OPINE_NUMBER", "-1")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "must not be negative")
	})

	t.Run("malformed number", func(t *testing.T) {
		t.Setenv("OPINE_NUMBER", "many")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadNormalization(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		normalization, err := LoadNormalization("")
		require.NoError(t, err)

		opts, err := normalization.MinerOpts("utf-8", zap.NewNop())
		require.NoError(t, err)
		assert.Len(t, opts, 4)
	})

	t.Run("file", func(t *testing.T) {
		path := writeFile(t, "normalization.yaml", `synonyms:
  escalope: schnitzel
abbreviations:
  approx: approximately
unify_emoticons: false
`)
		normalization, err := LoadNormalization(path)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{"escalope": "schnitzel"}, normalization.Synonyms)
		assert.Equal(t, map[string]string{"approx": "approximately"}, normalization.Abbreviations)
		require.NotNil(t, normalization.UnifyEmoticons)
		assert.False(t, *normalization.UnifyEmoticons)

		opts, err := normalization.MinerOpts("utf-8", zap.NewNop())
		require.NoError(t, err)
		assert.Len(t, opts, 3)
	})

	t.Run("custom emoticons", func(t *testing.T) {
		emoticons := writeFile(t, "emoticons.csv", "<3,red heart,very good\n")
		normalization := &Normalization{Emoticons: emoticons}

		opts, err := normalization.MinerOpts("utf-8", zap.NewNop())
		require.NoError(t, err)
		assert.Len(t, opts, 4)

		normalization.Emoticons = filepath.Join(t.TempDir(), "missing.csv")
		_, err = normalization.MinerOpts("utf-8", zap.NewNop())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("broken YAML", func(t *testing.T) {
		path := writeFile(t, "broken.yaml", "synonyms: [not, a, map]\n")
		_, err := LoadNormalization(path)
		assert.ErrorContains(t, err, "error parsing normalization file")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadNormalization(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
