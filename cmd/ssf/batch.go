package main

import (
	"ssf/internal/display"
	"ssf/internal/scripts"
	"ssf/pkg/types"

	"github.com/spf13/cobra"
)

// batchFlags is the flag surface shared by the batch commands.
type batchFlags struct {
	pattern   string
	dryRun    bool
	recursive bool
	exclude   []string
}

func (f *batchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.pattern, "pattern", "p", "", "glob pattern to match files")
	cmd.Flags().BoolVarP(&f.dryRun, "dry-run", "n", false, "preview without changing the filesystem")
	cmd.Flags().BoolVarP(&f.recursive, "recursive", "r", false, "match files in subdirectories")
	cmd.Flags().StringArrayVarP(&f.exclude, "exclude", "e", nil, "glob pattern to exclude (repeatable)")
}

// params merges the flags with the configured file_processing
// defaults: flags the user did not pass fall back to config values,
// and the configured exclude patterns always apply.
func (f *batchFlags) params(cmd *cobra.Command) scripts.Params {
	p := scripts.Params{
		Pattern:   f.pattern,
		DryRun:    f.dryRun,
		Recursive: f.recursive,
	}
	if !cmd.Flags().Changed("dry-run") {
		p.DryRun = cfg.FileProcessing.DefaultDryRun
	}
	if !cmd.Flags().Changed("recursive") {
		p.Recursive = cfg.FileProcessing.DefaultRecursive
	}
	p.Exclude = append(append([]string{}, cfg.FileProcessing.ExcludePatterns...), f.exclude...)
	return p
}

// NewRenameCmd creates the rename command
func NewRenameCmd() *cobra.Command {
	var (
		flags   batchFlags
		prefix  string
		suffix  string
		replace map[string]string
		format  string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Batch rename files into the output directory",
		Long: `Rename matched files by applying substitutions, prefix/suffix, and
an optional format template. Commits copy into the output directory;
source files are left in place. Format placeholders: {name} {ext}
{date} {time} {datetime} {index} {stem}.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := flags.params(cmd)
			p.Prefix = prefix
			p.Suffix = suffix
			if !cmd.Flags().Changed("prefix") {
				p.Prefix = cfg.RenameConfig.DefaultPrefix
			}
			if !cmd.Flags().Changed("suffix") {
				p.Suffix = cfg.RenameConfig.DefaultSuffix
			}
			p.Replace = replace
			p.Format = format
			p.OutputDir = output

			registry := scripts.NewRegistry(cfg, workingDir())
			return reportResult(registry.Execute("rename", p))
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&prefix, "prefix", "", "prefix prepended to each stem")
	cmd.Flags().StringVar(&suffix, "suffix", "", "suffix appended to each stem")
	cmd.Flags().StringToStringVar(&replace, "replace", nil, "literal substitution old=new (repeatable)")
	cmd.Flags().StringVar(&format, "format", "", "stem format template, e.g. \"{date}_{stem}\"")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory (default from output_dir config key)")

	return cmd
}

// NewDeleteCmd creates the delete command
func NewDeleteCmd() *cobra.Command {
	var (
		flags  batchFlags
		backup bool
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Batch delete files matching a pattern",
		Long: `Delete matched files. A pattern is required and there is no
implicit safety copy; pass --backup to copy candidates into .backup
before they are removed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := flags.params(cmd)
			wd := workingDir()

			script := scripts.NewDelete(cfg, wd)
			if backup && !p.DryRun {
				if err := backupCandidates(script, p); err != nil {
					display.Error("%v", err)
					return err
				}
			}
			return reportResult(script.Execute(p))
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&backup, "backup", "b", false, "back up each file before deleting it")

	return cmd
}

// backupCandidates copies every file the delete would remove into the
// backup directory, using a dry-run pass to enumerate them.
func backupCandidates(script *scripts.DeleteScript, p scripts.Params) error {
	preview := p
	preview.DryRun = true

	res := script.Execute(preview)
	for _, outcome := range res.Outcomes {
		backupPath, err := script.Backup(outcome.Path, "")
		if err != nil {
			return err
		}
		display.Info("backed up %s -> %s", outcome.Name, backupPath)
	}
	return nil
}

// NewScriptsCmd creates the scripts command
func NewScriptsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scripts",
		Short: "List the available batch operations",
		Run: func(cmd *cobra.Command, args []string) {
			registry := scripts.NewRegistry(cfg, workingDir())
			rows := make([][]string, 0)
			for _, info := range registry.List() {
				rows = append(rows, []string{
					info.Name,
					info.Description,
					display.JoinOrDash(info.SupportedExtensions),
					display.JoinOrDash(info.ConfigKeys),
				})
			}
			display.Table("Batch Operations", []string{"Name", "Description", "Extensions", "Config Keys"}, rows)
		},
	}
}

// reportResult renders a batch result and returns an error for a
// failed invocation so the process exits non-zero.
func reportResult(res *types.Result) error {
	for _, outcome := range res.Outcomes {
		switch {
		case outcome.NewName != "" && outcome.Action == "preview":
			display.Info("%s -> %s", outcome.Name, outcome.NewName)
		case outcome.NewName != "":
			display.Info("%s -> %s", outcome.Name, outcome.NewPath)
		case outcome.Action == "preview":
			display.Info("would delete %s", outcome.Name)
		default:
			display.Info("deleted %s", outcome.Name)
		}
	}
	for _, outcome := range res.Errors {
		display.Error("%s: %s", outcome.Name, outcome.Error)
	}

	if !res.Success {
		display.Error("%s", res.Message)
		return batchError{res.Message}
	}
	display.Success("%s", res.Message)
	return nil
}

type batchError struct{ msg string }

func (e batchError) Error() string { return e.msg }
