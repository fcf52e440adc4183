package scripts

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"ssf/internal/config"
	"ssf/internal/errors"
	"ssf/internal/log"
	"ssf/pkg/types"
)

// placeholderRe matches {name}-style references in format templates.
var placeholderRe = regexp.MustCompile(`\{([a-zA-Z]+)\}`)

// RenameScript batch-renames matched files by composing, in order:
// literal substitutions, prefix/suffix, and an optional format
// template. Commits copy into the output directory; source files are
// never deleted.
type RenameScript struct {
	base
}

// NewRename creates the rename script for one invocation.
func NewRename(cfg *config.Config, workDir string) *RenameScript {
	return &RenameScript{base{cfg: cfg, workDir: workDir}}
}

func (r *RenameScript) Name() string { return "rename" }

func (r *RenameScript) Description() string {
	return "Batch rename files with prefix, suffix, substitution and format rules"
}

func (r *RenameScript) SupportedExtensions() []string { return []string{"*"} }

func (r *RenameScript) ConfigKeys() []string {
	return []string{"output_dir", "rename_config.conflict_resolution", "rename_config.date_format"}
}

// Validate requires at least one rename rule. It never touches the
// filesystem.
func (r *RenameScript) Validate(p Params) error {
	if p.Prefix == "" && p.Suffix == "" && len(p.Replace) == 0 && p.Format == "" {
		return errors.NewValidationError("at least one rename rule is required (prefix, suffix, replace, format)")
	}
	return nil
}

// Execute matches files and plans a new name for each. With DryRun the
// old/new pairs are only reported; otherwise each file is copied into
// the output directory, disambiguating name collisions with a single
// timestamp suffix.
func (r *RenameScript) Execute(p Params) *types.Result {
	res := &types.Result{Script: r.Name()}

	if err := r.Validate(p); err != nil {
		res.Message = err.Error()
		return res
	}

	matched, err := r.findFiles(p.Pattern, p.Recursive, p.Exclude)
	if err != nil {
		res.Message = err.Error()
		return res
	}
	if len(matched) == 0 {
		res.Success = true
		res.Message = fmt.Sprintf("no files matched %q", patternOrStar(p.Pattern))
		return res
	}
	log.Info("matched %d file(s)", len(matched))

	outputDir := p.OutputDir
	if outputDir == "" {
		outputDir = r.cfg.OutputDir
	}
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(r.workDir, outputDir)
	}

	for i, file := range matched {
		outcome := r.planFile(file, i+1, p, outputDir)
		if outcome.Error != "" {
			res.Errors = append(res.Errors, outcome)
		} else {
			res.Outcomes = append(res.Outcomes, outcome)
		}
	}
	return aggregate(res, len(matched), "rename", "renamed", p.DryRun)
}

// planFile computes the candidate name for one file and either
// reports or commits it.
func (r *RenameScript) planFile(file types.FileInfo, index int, p Params, outputDir string) types.FileOutcome {
	newStem := file.Stem

	if len(p.Replace) > 0 {
		// Apply substitutions in sorted key order so batches are
		// deterministic.
		keys := make([]string, 0, len(p.Replace))
		for k := range p.Replace {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, old := range keys {
			newStem = strings.ReplaceAll(newStem, old, p.Replace[old])
		}
	}

	newStem = p.Prefix + newStem + p.Suffix

	if p.Format != "" {
		formatted, err := applyFormat(p.Format, file, newStem, index)
		if err != nil {
			// A bad template fails only the formatting step; the
			// pre-format stem stands.
			log.Warn("format template for %s: %v", file.Name, err)
		} else {
			newStem = formatted
		}
	}

	newName := newStem + file.Ext
	dest := filepath.Join(outputDir, newName)

	// Single disambiguation pass: a second collision within the same
	// timestamp granularity is an accepted limitation.
	if _, err := os.Stat(dest); err == nil {
		log.Warn("name conflict: %s", newName)
		newStem = newStem + "_" + time.Now().Format(r.dateFormat())
		newName = newStem + file.Ext
		dest = filepath.Join(outputDir, newName)
	}

	outcome := types.FileOutcome{
		Path:    file.Path,
		Name:    file.Name,
		NewPath: dest,
		NewName: newName,
		File:    file,
	}

	if p.DryRun {
		outcome.Action = "preview"
		log.Info("preview: %s -> %s", file.Name, newName)
		return outcome
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		outcome.Error = errors.NewFileError("failed to create output directory", outputDir, errors.FileOperationFailed, err).Error()
		return outcome
	}
	if err := copyFile(file.Path, dest); err != nil {
		outcome.Error = err.Error()
		log.Error("copy failed for %s: %v", file.Name, err)
		return outcome
	}

	outcome.Action = "copied"
	log.Info("copied: %s -> %s", file.Name, newName)
	return outcome
}

func (r *RenameScript) dateFormat() string {
	if f := r.cfg.RenameConfig.DateFormat; f != "" {
		return f
	}
	return "20060102_150405"
}

// applyFormat renders a stem template. Supported placeholders: name,
// ext, date, time, datetime, index, stem. An unknown placeholder
// fails the whole template.
func applyFormat(format string, file types.FileInfo, stem string, index int) (string, error) {
	now := time.Now()
	vars := map[string]string{
		"name":     file.Stem,
		"ext":      file.Ext,
		"date":     now.Format("20060102"),
		"time":     now.Format("150405"),
		"datetime": now.Format("20060102_150405"),
		"index":    fmt.Sprintf("%03d", index),
		"stem":     stem,
	}

	var unknown string
	result := placeholderRe.ReplaceAllStringFunc(format, func(match string) string {
		key := match[1 : len(match)-1]
		if v, ok := vars[key]; ok {
			return v
		}
		if unknown == "" {
			unknown = key
		}
		return match
	})
	if unknown != "" {
		return "", fmt.Errorf("unknown placeholder {%s}", unknown)
	}
	return result, nil
}

func patternOrStar(pattern string) string {
	if pattern == "" {
		return "*"
	}
	return pattern
}
