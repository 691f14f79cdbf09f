// Command modelbox runs the ModelBox metadata and artifact service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "modelbox",
		Short: "ModelBox metadata and artifact service",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "modelbox.yaml", "path to the YAML configuration file")
	root.AddCommand(newServerCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
