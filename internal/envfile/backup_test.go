package envfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/henvdall/internal/envfile"
)

func TestBackupPath(t *testing.T) {
	assert.Equal(t, "/project/.env.bak", envfile.BackupPath("/project/.env"))
}

func TestBackupCopiesBytes(t *testing.T) {
	dir := t.TempDir()
	content := "A=1\r\n# comment without newline"
	src := writeFile(t, dir, ".env", content)
	dst := envfile.BackupPath(src)

	ok, err := envfile.Backup(src, dst)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, content, readFile(t, dst))
}

func TestBackupOverwritesPreviousBackup(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, ".env", "NEW=1\n")
	dst := writeFile(t, dir, ".env.bak", "OLD=1\nOLDER=2\n")

	ok, err := envfile.Backup(src, dst)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "NEW=1\n", readFile(t, dst))
}

func TestBackupKeepsPermissions(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(src, []byte("A=1\n"), 0600))
	dst := writeFile(t, dir, ".env.bak", "stale")
	require.NoError(t, os.Chmod(dst, 0644))

	_, err := envfile.Backup(src, dst)
	require.NoError(t, err)

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestBackupMissingSource(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, ".env.bak")

	ok, err := envfile.Backup(filepath.Join(dir, ".env"), dst)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoFileExists(t, dst)
}

func TestBackupUnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, ".env", "A=1\n")

	_, err := envfile.Backup(src, filepath.Join(dir, "no-such-dir", ".env.bak"))
	assert.Error(t, err)
}
