// Package sysinfo collects the host and runtime snapshot shown by the
// system command.
package sysinfo

import (
	"os"
	"runtime"
)

// Info is a point-in-time snapshot of the host environment.
type Info struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	CPUs       int    `json:"cpus"`
	GoVersion  string `json:"go_version"`
	Hostname   string `json:"hostname"`
	WorkingDir string `json:"working_dir"`
	HomeDir    string `json:"home_dir"`
	PID        int    `json:"pid"`
}

// Collect gathers the snapshot. Fields whose lookup fails are left
// empty rather than failing the display.
func Collect() Info {
	info := Info{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		CPUs:      runtime.NumCPU(),
		GoVersion: runtime.Version(),
		PID:       os.Getpid(),
	}
	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}
	if wd, err := os.Getwd(); err == nil {
		info.WorkingDir = wd
	}
	if home, err := os.UserHomeDir(); err == nil {
		info.HomeDir = home
	}
	return info
}
