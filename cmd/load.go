package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"asset-reconciler/core/container"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var loadJSON bool

// loadCmd imports a manifest and prints the resulting container.
var loadCmd = &cobra.Command{
	Use:   "load <path>",
	Short: "Import a versioned manifest and print the container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		r, err := a.reconciler(container.NewSession(), nil, "")
		if err != nil {
			return err
		}

		c, err := r.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		var data []byte
		if loadJSON {
			data, err = json.MarshalIndent(c, "", "  ")
		} else {
			data, err = yaml.Marshal(c)
		}
		if err != nil {
			return fmt.Errorf("failed to encode container: %w", err)
		}
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	},
}

func init() {
	loadCmd.Flags().BoolVar(&loadJSON, "json", false, "Print JSON instead of YAML")
	RootCmd.AddCommand(loadCmd)
}
