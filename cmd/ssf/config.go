package main

import (
	"fmt"

	"ssf/internal/config"
	"ssf/internal/display"

	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	var (
		key   string
		value string
	)

	cmd := &cobra.Command{
		Use:   "config {show|init|global|local}",
		Short: "Show or modify the layered configuration",
		Long: `Manage the three-tier configuration: builtin defaults, the global
file in your home directory, and the local file in the current
directory. Local values win over global, both win over builtin.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"show", "init", "global", "local"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgStore == nil {
				return fmt.Errorf("config locations are unavailable")
			}

			switch args[0] {
			case "show":
				showConfig()
				return nil
			case "init":
				if err := cfgStore.Init(); err != nil {
					display.Error("%v", err)
					return err
				}
				display.Success("config files created")
				return nil
			case "global":
				return setAndSave(config.ScopeGlobal, key, value)
			case "local":
				return setAndSave(config.ScopeLocal, key, value)
			default:
				return fmt.Errorf("unknown config action %q", args[0])
			}
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "configuration key")
	cmd.Flags().StringVarP(&value, "value", "v", "", "configuration value")

	return cmd
}

func showConfig() {
	rows := make([][]string, 0, len(config.Schema()))
	for _, field := range config.Schema() {
		rows = append(rows, []string{
			field.Key,
			config.FormatValue(field.Get(cfg)),
			field.Description,
		})
	}
	display.Table("SSF Configuration", []string{"Key", "Value", "Description"}, rows)

	display.Info("config files:")
	display.Info("  builtin: (builtin)")
	display.Info("  global:  %s", cfgStore.GlobalPath())
	display.Info("  local:   %s", cfgStore.LocalPath())

	for _, warning := range cfgStore.Warnings() {
		display.Warning("%s", warning)
	}
}

// setAndSave applies one key/value mutation to the merged config and
// persists the full result to the given scope.
func setAndSave(scope config.Scope, key, value string) error {
	if key == "" || value == "" {
		err := fmt.Errorf("setting %s config requires --key and --value", scope)
		display.Error("%v", err)
		return err
	}

	if err := config.Set(cfg, key, value); err != nil {
		display.Error("%v", err)
		return err
	}
	if err := cfgStore.Save(scope, cfg); err != nil {
		display.Error("%v", err)
		return err
	}

	field, _ := config.Lookup(key)
	display.Success("%s config updated: %s = %s", scope, key, config.FormatValue(field.Get(cfg)))
	return nil
}
