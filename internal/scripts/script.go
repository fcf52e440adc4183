// Package scripts implements the batch file operations: a shared
// Script contract, the rename and delete implementations, and the
// registry that dispatches operation names to them.
package scripts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"ssf/internal/config"
	"ssf/internal/errors"
	"ssf/internal/files"
	"ssf/pkg/types"
)

// Params carries one batch invocation. Zero values fall back to the
// configured defaults where the field documents one.
type Params struct {
	Pattern   string            // glob pattern, default "*"
	Prefix    string            // rename: prepended to the stem
	Suffix    string            // rename: appended to the stem
	Replace   map[string]string // rename: literal old->new substitutions
	Format    string            // rename: stem template, e.g. "{date}_{stem}"
	OutputDir string            // rename: overrides the output_dir config key
	DryRun    bool              // preview only, never touch the filesystem
	Recursive bool              // match the full subtree
	Exclude   []string          // glob patterns dropped from the match set
}

// Script is the contract every batch operation satisfies. Execute
// validates first, then matches files, then plans and either reports
// or commits each file independently; one file's failure never aborts
// the batch.
type Script interface {
	Name() string
	Description() string
	Validate(p Params) error
	Execute(p Params) *types.Result
	SupportedExtensions() []string
	ConfigKeys() []string
}

// base carries the state every script shares: the merged config and
// the directory the invocation runs in.
type base struct {
	cfg     *config.Config
	workDir string
}

// findFiles matches the pattern under the working directory and
// applies the exclusion filter.
func (b *base) findFiles(pattern string, recursive bool, exclude []string) ([]types.FileInfo, error) {
	if pattern == "" {
		pattern = "*"
	}
	matched, err := files.Match(b.workDir, pattern, recursive)
	if err != nil {
		return nil, err
	}
	return files.Exclude(matched, exclude), nil
}

// Backup copies path into backupDir, naming the copy after the stem
// and the source's modification time. It is a standalone capability:
// no script chains it implicitly, delete included.
func (b *base) Backup(path, backupDir string) (string, error) {
	if backupDir == "" {
		backupDir = filepath.Join(b.workDir, ".backup")
	}
	file, err := types.StatFileInfo(path)
	if err != nil {
		return "", errors.NewFileError("cannot back up file", path, errors.FileNotFound, err)
	}
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", errors.NewFileError("failed to create backup directory", backupDir, errors.FileOperationFailed, err)
	}

	name := fmt.Sprintf("%s_backup_%d%s", file.Stem, file.ModTime.Unix(), file.Ext)
	backupPath := filepath.Join(backupDir, name)

	if err := copyFile(path, backupPath); err != nil {
		return "", err
	}
	return backupPath, nil
}

// copyFile copies src to dest, preserving mode and modification time.
func copyFile(src, dest string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return errors.NewFileError("source file error", src, errors.FileNotFound, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return errors.NewFileError("failed to open source file", src, errors.FileOperationFailed, err)
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return errors.NewFileError("failed to create file", dest, errors.FileOperationFailed, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.NewFileError("failed to copy file contents", dest, errors.FileOperationFailed, err)
	}
	if err := out.Close(); err != nil {
		return errors.NewFileError("failed to flush file", dest, errors.FileOperationFailed, err)
	}

	if err := os.Chmod(dest, srcInfo.Mode()); err != nil {
		return errors.NewFileError("failed to set file mode", dest, errors.FileOperationFailed, err)
	}
	if err := os.Chtimes(dest, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		return errors.NewFileError("failed to set file times", dest, errors.FileOperationFailed, err)
	}
	return nil
}

// aggregate fills the summary fields of a result from its per-file
// outcomes. future and past are the verb forms used in the summary
// message ("rename"/"renamed").
func aggregate(res *types.Result, matched int, future, past string, dryRun bool) *types.Result {
	res.Total = matched
	res.Processed = len(res.Outcomes)
	res.Failed = len(res.Errors)
	res.Success = res.Failed == 0
	switch {
	case dryRun:
		res.Message = fmt.Sprintf("preview: would %s %d file(s)", future, res.Processed)
	case res.Success:
		res.Message = fmt.Sprintf("%s %d file(s)", past, res.Processed)
	default:
		res.Message = fmt.Sprintf("%s %d file(s), %d failed", past, res.Processed, res.Failed)
	}
	return res
}
