package scripts

import (
	"fmt"
	"os"

	"ssf/internal/config"
	"ssf/internal/errors"
	"ssf/internal/log"
	"ssf/pkg/types"
)

// DeleteScript batch-deletes matched files. Deletion is irreversible
// and nothing here chains the Backup helper first; callers who want a
// safety copy invoke it themselves.
type DeleteScript struct {
	base
}

// NewDelete creates the delete script for one invocation.
func NewDelete(cfg *config.Config, workDir string) *DeleteScript {
	return &DeleteScript{base{cfg: cfg, workDir: workDir}}
}

func (d *DeleteScript) Name() string { return "delete" }

func (d *DeleteScript) Description() string {
	return "Batch delete files matching a pattern"
}

func (d *DeleteScript) SupportedExtensions() []string { return []string{"*"} }

func (d *DeleteScript) ConfigKeys() []string {
	return []string{"file_processing.exclude_patterns"}
}

// Validate requires an explicit pattern: deleting everything by
// default would be a trap.
func (d *DeleteScript) Validate(p Params) error {
	if p.Pattern == "" {
		return errors.NewValidationError("a file pattern is required for delete")
	}
	return nil
}

// Execute matches files and deletes each one independently; per-file
// failures are collected and the batch continues. With DryRun the
// candidate list is reported without touching the filesystem.
func (d *DeleteScript) Execute(p Params) *types.Result {
	res := &types.Result{Script: d.Name()}

	if err := d.Validate(p); err != nil {
		res.Message = err.Error()
		return res
	}

	matched, err := d.findFiles(p.Pattern, p.Recursive, p.Exclude)
	if err != nil {
		res.Message = err.Error()
		return res
	}
	if len(matched) == 0 {
		res.Success = true
		res.Message = fmt.Sprintf("no files matched %q", p.Pattern)
		return res
	}
	log.Info("matched %d file(s)", len(matched))

	for _, file := range matched {
		outcome := types.FileOutcome{Path: file.Path, Name: file.Name, File: file}

		if p.DryRun {
			outcome.Action = "preview"
			log.Info("preview: would delete %s", file.Name)
			res.Outcomes = append(res.Outcomes, outcome)
			continue
		}

		if err := os.Remove(file.Path); err != nil {
			outcome.Error = errors.NewFileError("failed to delete file", file.Path, errors.FileOperationFailed, err).Error()
			log.Error("delete failed for %s: %v", file.Name, err)
			res.Errors = append(res.Errors, outcome)
			continue
		}
		outcome.Action = "deleted"
		log.Info("deleted: %s", file.Name)
		res.Outcomes = append(res.Outcomes, outcome)
	}
	return aggregate(res, len(matched), "delete", "deleted", p.DryRun)
}
