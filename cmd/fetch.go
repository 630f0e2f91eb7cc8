package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/urdoggydeewata-star/dexbattle/internal/data"
	"github.com/urdoggydeewata-star/dexbattle/internal/pokeapi"
)

var fetchCmd = &cobra.Command{
	Use:    "fetch",
	Short:  "Download move, ability and item data from PokeAPI",
	Long:   `Bootstraps a local data directory by fetching PokeAPI records, mapping them to registry YAML, and storing them for offline use. Names already covered by the built-in tables keep their hand-tuned behavior unless --force is given.`,
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		dataDir, _ := cmd.Flags().GetString("data_dir_local")
		if dataDir == "" {
			rootDir, _ := os.Getwd()
			dataDir = filepath.Join(rootDir, "data")
		}

		force, _ := cmd.Flags().GetBool("force")

		fmt.Printf("Fetching PokeAPI data to: %s\n", dataDir)

		client := pokeapi.NewClient(dataDir, force)

		total, err := client.Total()
		if err != nil {
			fmt.Printf("Error sizing the download: %v\n", err)
			os.Exit(1)
		}

		bar := progressbar.Default(int64(total), "Downloading records")
		if err := client.Sync(data.NewRegistry(), func() { bar.Add(1) }); err != nil {
			fmt.Printf("\nError fetching data: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("\nData bootstrap complete!")
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().Bool("force", false, "Refetch records the built-in tables already cover")
	fetchCmd.Flags().String("data_dir_local", "", "Local data directory to save files to")
}
