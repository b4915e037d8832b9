package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentic-research/assetgen/internal/catalog"
	"github.com/agentic-research/assetgen/internal/store"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print image sets as JSON")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list <catalog>",
	Short: "List the image sets an asset catalog would expose",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		s := store.NewOS()
		c, err := catalog.Load(s.FS(), s, root)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		sets, err := c.ImageSets()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if listJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(sets)
		}
		fmt.Fprintln(out, c)
		for _, set := range sets {
			fmt.Fprintf(out, "  %s\t%q [%s]\n", set.Accessor, set.Name, strings.Join(set.Filenames, ", "))
		}
		return nil
	},
}
