package main

import (
	"fmt"

	"ssf/internal/display"
	"ssf/internal/sysinfo"

	"github.com/spf13/cobra"
)

// NewSystemCmd creates the system command
func NewSystemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "system",
		Short: "Show a host and runtime snapshot",
		Run: func(cmd *cobra.Command, args []string) {
			info := sysinfo.Collect()
			display.Table("System", []string{"Item", "Value"}, [][]string{
				{"OS", info.OS},
				{"Architecture", info.Arch},
				{"CPUs", fmt.Sprintf("%d", info.CPUs)},
				{"Go version", info.GoVersion},
				{"Hostname", info.Hostname},
				{"Working directory", info.WorkingDir},
				{"Home directory", info.HomeDir},
				{"PID", fmt.Sprintf("%d", info.PID)},
			})
		},
	}
}
