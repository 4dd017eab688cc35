package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
)

func TestDefaults(t *testing.T) {
	t.Setenv("EXIFCLEAN_CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultLevel, cfg.Level)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.False(t, cfg.Backup)
	assert.Equal(t, model.LevelStandard, cfg.PrivacyLevel())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EXIFCLEAN_CONFIG_DIR", dir)

	content := "level: strict\nbackup: true\nexiftool: /opt/bin/exiftool\ntimeout: 45s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte(content), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "strict", cfg.Level)
	assert.True(t, cfg.Backup)
	assert.Equal(t, "/opt/bin/exiftool", cfg.ExifTool)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.Equal(t, model.LevelStrict, cfg.PrivacyLevel())
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EXIFCLEAN_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("level: minimal\n"), 0o600))

	t.Setenv("EXIFCLEAN_LEVEL", "paranoid")
	t.Setenv("EXIFCLEAN_TIMEOUT", "2m")
	t.Setenv("EXIFCLEAN_BACKUP", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "paranoid", cfg.Level)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.True(t, cfg.Backup)
}

func TestInvalidLevelRejected(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EXIFCLEAN_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("level: extreme\n"), 0o600))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extreme")
}

func TestInvalidTimeoutRejected(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EXIFCLEAN_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("timeout: soon\n"), 0o600))

	_, err := Load()
	require.Error(t, err)
}

func TestMalformedYAMLRejected(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EXIFCLEAN_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("level: [unclosed\n"), 0o600))

	_, err := Load()
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("EXIFCLEAN_CONFIG_DIR", filepath.Join(t.TempDir(), "nested"))

	want := &Config{
		Level:    "strict",
		Backup:   true,
		ExifTool: "/usr/local/bin/exiftool",
		Timeout:  90 * time.Second,
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want.Level, got.Level)
	assert.Equal(t, want.Backup, got.Backup)
	assert.Equal(t, want.ExifTool, got.ExifTool)
	assert.Equal(t, want.Timeout, got.Timeout)
}
