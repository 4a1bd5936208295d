package main

import (
	"os"

	"github.com/shellkit/shellkit/cmd/shellkit"
	"github.com/shellkit/shellkit/pkg/ui"
)

func main() {
	rootCmd := shellkit.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		ui.RenderError(os.Stderr, ui.DetectFormat(os.Stderr), err)
		os.Exit(1)
	}
}
