package main

import (
	"ssf/internal/display"
	"ssf/internal/scaffold"

	"github.com/spf13/cobra"
)

// NewCreateCmd creates the create command
func NewCreateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "create <template> <name>",
		Short: "Scaffold a new project from a template",
		Long:  `Create a project directory from a static template. Templates: python, web, cli.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, name := args[0], args[1]
			if dir == "" {
				dir = workingDir()
			}

			created, err := scaffold.Create(kind, name, dir)
			if err != nil {
				display.Error("%v", err)
				return err
			}

			for _, path := range created {
				display.Info("created %s", path)
			}
			display.Success("project %q created (%s)", name, scaffold.Describe(kind))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "parent directory (default: current directory)")

	return cmd
}
