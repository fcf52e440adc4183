package main

import (
	"os"

	"ssf/internal/config"
	"ssf/internal/display"
	"ssf/internal/log"
	"ssf/internal/sysinfo"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	cfgStore  *config.Store
	cfg       *config.Config
	flagDebug bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ssf",
		Short:         "Scaffold projects, manage layered config, and batch-process files",
		Long:          `SSF scaffolds projects, manages three-tier configuration, and runs pattern-driven batch file operations with dry-run previews.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			cfgStore, err = config.NewStore()
			if err != nil {
				log.Warn("cannot resolve config locations: %v, using defaults", err)
				cfg = config.Default()
			} else {
				cfg = cfgStore.Load()
			}

			log.SetLevel(cfg.LogLevel)
			if flagDebug || cfg.Debug {
				log.SetDebug(true)
			}
			if cfg.Verbose && cfg.LogFile != "" {
				if err := log.SetOutputFile(cfg.LogFile); err != nil {
					log.Warn("cannot open log file %s: %v", cfg.LogFile, err)
				}
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug output")

	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewRenameCmd())
	rootCmd.AddCommand(NewDeleteCmd())
	rootCmd.AddCommand(NewScriptsCmd())
	rootCmd.AddCommand(NewFilesCmd())
	rootCmd.AddCommand(NewCreateCmd())
	rootCmd.AddCommand(NewFetchCmd())
	rootCmd.AddCommand(NewSystemCmd())
	rootCmd.AddCommand(NewInfoCmd())

	return rootCmd
}

// NewInfoCmd creates the info command
func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show tool and environment information",
		Run: func(cmd *cobra.Command, args []string) {
			display.Banner()
			host := sysinfo.Collect()
			display.Table("SSF", []string{"Item", "Value"}, [][]string{
				{"Version", version},
				{"Platform", host.OS + "/" + host.Arch},
				{"Working directory", host.WorkingDir},
				{"Global config", configPathOr(cfgStore.GlobalPath)},
				{"Local config", configPathOr(cfgStore.LocalPath)},
			})
		},
	}
}

func configPathOr(get func() string) string {
	if cfgStore == nil {
		return "(unavailable)"
	}
	return get()
}

// workingDir resolves the directory batch commands operate on.
func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
