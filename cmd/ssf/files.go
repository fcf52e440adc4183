package main

import (
	"fmt"
	"path/filepath"

	"ssf/internal/display"
	"ssf/internal/files"
	"ssf/pkg/types"

	"github.com/spf13/cobra"
)

// displayLimit caps how many rows the listing commands print.
const displayLimit = 50

// NewFilesCmd creates the files command
func NewFilesCmd() *cobra.Command {
	var (
		path    string
		pattern string
	)

	cmd := &cobra.Command{
		Use:   "files {list|find|count|size}",
		Short: "List, find, count, or size files",
		Long: `Bulk file inspection: list direct children, find recursively,
count entries, or total a directory's size.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"list", "find", "count", "size"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "list":
				return listFiles(path, pattern)
			case "find":
				return findFiles(path, pattern)
			case "count":
				return countFiles(path, pattern)
			case "size":
				return directorySize(path)
			default:
				return fmt.Errorf("unknown files action %q", args[0])
			}
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", ".", "directory path")
	cmd.Flags().StringVar(&pattern, "pattern", "*", "glob pattern")

	return cmd
}

func listFiles(path, pattern string) error {
	entries, err := files.ListEntries(path, pattern, false)
	if err != nil {
		display.Error("%v", err)
		return err
	}
	if len(entries) == 0 {
		display.Info("no entries in %s match %q", path, pattern)
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range capEntries(entries) {
		kind, size := "file", fmt.Sprintf("%d bytes", entry.Size)
		if entry.IsDir {
			kind, size = "directory", "-"
		}
		rows = append(rows, []string{entry.Name, kind, size})
	}
	display.Table(fmt.Sprintf("Files - %s", path), []string{"Name", "Type", "Size"}, rows)
	noteTruncation(len(entries))
	return nil
}

func findFiles(path, pattern string) error {
	matched, err := files.ListEntries(path, pattern, true)
	if err != nil {
		display.Error("%v", err)
		return err
	}
	if len(matched) == 0 {
		display.Info("nothing under %s matches %q", path, pattern)
		return nil
	}

	rows := make([][]string, 0, len(matched))
	for _, entry := range capEntries(matched) {
		rel, relErr := filepath.Rel(path, entry.Path)
		if relErr != nil {
			rel = entry.Path
		}
		size := fmt.Sprintf("%d bytes", entry.Size)
		if entry.IsDir {
			size = "-"
		}
		rows = append(rows, []string{rel, size})
	}
	display.Table(fmt.Sprintf("Search - %s", pattern), []string{"Path", "Size"}, rows)
	noteTruncation(len(matched))
	return nil
}

func countFiles(path, pattern string) error {
	matched, err := files.ListEntries(path, pattern, true)
	if err != nil {
		display.Error("%v", err)
		return err
	}

	fileCount, dirCount := 0, 0
	for _, entry := range matched {
		if entry.IsDir {
			dirCount++
		} else {
			fileCount++
		}
	}
	display.Info("%s: %d file(s), %d directory(ies), %d total", path, fileCount, dirCount, len(matched))
	return nil
}

func directorySize(path string) error {
	matched, err := files.Match(path, "*", true)
	if err != nil {
		display.Error("%v", err)
		return err
	}

	var total int64
	for _, entry := range matched {
		total += entry.Size
	}
	display.Info("%s: %s across %d file(s)", path, humanSize(total), len(matched))
	return nil
}

func capEntries(entries []types.FileInfo) []types.FileInfo {
	if len(entries) > displayLimit {
		return entries[:displayLimit]
	}
	return entries
}

func noteTruncation(total int) {
	if total > displayLimit {
		display.Info("showing the first %d of %d entries", displayLimit, total)
	}
}

func humanSize(bytes int64) string {
	const (
		mb = 1 << 20
		gb = 1 << 30
	)
	if bytes >= gb {
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(gb))
	}
	return fmt.Sprintf("%.2f MB", float64(bytes)/float64(mb))
}
