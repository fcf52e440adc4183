package main

import (
	"os"
)

// Entry point for the application
func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
