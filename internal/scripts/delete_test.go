package scripts_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"ssf/internal/config"
	"ssf/internal/scripts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeleteFixture(t *testing.T) (*scripts.DeleteScript, string) {
	t.Helper()
	workDir := t.TempDir()
	return scripts.NewDelete(config.Default(), workDir), workDir
}

func TestDeleteRequiresAPattern(t *testing.T) {
	script, workDir := newDeleteFixture(t)
	writeSource(t, workDir, "precious.txt", "x")

	res := script.Execute(scripts.Params{})

	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "pattern is required")
	assert.FileExists(t, filepath.Join(workDir, "precious.txt"))
}

func TestDeleteDryRunKeepsFiles(t *testing.T) {
	script, workDir := newDeleteFixture(t)
	writeSource(t, workDir, "a.tmp", "x")
	writeSource(t, workDir, "b.tmp", "x")

	res := script.Execute(scripts.Params{Pattern: "*.tmp", DryRun: true})

	require.True(t, res.Success)
	assert.Equal(t, 2, res.Processed)
	for _, o := range res.Outcomes {
		assert.Equal(t, "preview", o.Action)
	}
	assert.FileExists(t, filepath.Join(workDir, "a.tmp"))
	assert.FileExists(t, filepath.Join(workDir, "b.tmp"))
}

func TestDeleteCommitRemovesMatchedOnly(t *testing.T) {
	script, workDir := newDeleteFixture(t)
	writeSource(t, workDir, "a.tmp", "x")
	writeSource(t, workDir, "b.tmp", "x")
	writeSource(t, workDir, "keep.txt", "x")

	res := script.Execute(scripts.Params{Pattern: "*.tmp"})

	require.True(t, res.Success)
	assert.Equal(t, 2, res.Processed)
	assert.NoFileExists(t, filepath.Join(workDir, "a.tmp"))
	assert.NoFileExists(t, filepath.Join(workDir, "b.tmp"))
	assert.FileExists(t, filepath.Join(workDir, "keep.txt"))
}

func TestDeleteHonorsExclusions(t *testing.T) {
	script, workDir := newDeleteFixture(t)
	writeSource(t, workDir, "a.tmp", "x")
	writeSource(t, workDir, "important.tmp", "x")

	res := script.Execute(scripts.Params{
		Pattern: "*.tmp",
		Exclude: []string{"important.*"},
	})

	require.True(t, res.Success)
	assert.Equal(t, 1, res.Processed)
	assert.NoFileExists(t, filepath.Join(workDir, "a.tmp"))
	assert.FileExists(t, filepath.Join(workDir, "important.tmp"))
}

func TestDeleteEmptyMatchIsSuccess(t *testing.T) {
	script, _ := newDeleteFixture(t)

	res := script.Execute(scripts.Params{Pattern: "*.doc"})

	assert.True(t, res.Success)
	assert.Zero(t, res.Total)
	assert.Contains(t, res.Message, "no files matched")
}

func TestDeletePerFileErrorDoesNotAbortBatch(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions do not bind root")
	}
	script, workDir := newDeleteFixture(t)
	sub := filepath.Join(workDir, "locked")
	require.NoError(t, os.MkdirAll(sub, 0755))
	writeSource(t, sub, "stuck.tmp", "x")
	writeSource(t, workDir, "free.tmp", "x")

	// make the subdirectory read-only so the unlink inside it fails
	require.NoError(t, os.Chmod(sub, 0555))
	t.Cleanup(func() { _ = os.Chmod(sub, 0755) })

	res := script.Execute(scripts.Params{Pattern: "*.tmp", Recursive: true})

	assert.False(t, res.Success)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 1, res.Processed)
	assert.NoFileExists(t, filepath.Join(workDir, "free.tmp"))
	assert.FileExists(t, filepath.Join(sub, "stuck.tmp"))
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Error, "failed to delete file")
}

func TestDeleteNeverBacksUpImplicitly(t *testing.T) {
	script, workDir := newDeleteFixture(t)
	writeSource(t, workDir, "a.tmp", "x")

	res := script.Execute(scripts.Params{Pattern: "*.tmp"})

	require.True(t, res.Success)
	assert.NoDirExists(t, filepath.Join(workDir, ".backup"))
}

func TestBackupCopiesWithTimestampedName(t *testing.T) {
	script, workDir := newDeleteFixture(t)
	src := writeSource(t, workDir, "notes.txt", "keep me")

	info, err := os.Stat(src)
	require.NoError(t, err)

	backupPath, err := script.Backup(src, "")
	require.NoError(t, err)

	wantName := fmt.Sprintf("notes_backup_%d.txt", info.ModTime().Unix())
	assert.Equal(t, filepath.Join(workDir, ".backup", wantName), backupPath)

	data, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))

	// the source survives
	assert.FileExists(t, src)
}

func TestBackupMissingSource(t *testing.T) {
	script, workDir := newDeleteFixture(t)

	_, err := script.Backup(filepath.Join(workDir, "ghost.txt"), "")
	assert.Error(t, err)
}
