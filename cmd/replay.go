/*
Copyright © 2026 dexbattle authors
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/urdoggydeewata-star/dexbattle/internal/replay"
)

// replayCmd represents the replay command
var replayCmd = &cobra.Command{
	Use:   "replay [battle_id]",
	Short: "List recorded battles or print one battle's transcript",
	Long: `Reads the replay log and either lists every recorded battle header
or, given a battle id, prints that battle's full transcript. The header
carries the generation and seed, so the battle can be re-run with
'simulate --generation N --seed S' and compared line by line.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("replay")

		store, err := replay.NewStore(path)
		if err != nil {
			fmt.Printf("Error opening replay log: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		headers, entries, err := store.Load()
		if err != nil {
			fmt.Printf("Error reading replay log: %v\n", err)
			os.Exit(1)
		}

		if len(args) == 0 {
			if len(headers) == 0 {
				fmt.Println("No battles recorded.")
				return
			}
			for _, h := range headers {
				fmt.Printf("%s  gen %d  seed %d", h.BattleID, h.Generation, h.Seed)
				if h.Script != "" {
					fmt.Printf("  %s", h.Script)
				}
				fmt.Println()
			}
			return
		}

		battleID := args[0]
		found := false
		for _, h := range headers {
			if h.BattleID == battleID {
				found = true
				fmt.Printf("Battle %s | Gen %d | seed %d\n", h.BattleID, h.Generation, h.Seed)
				break
			}
		}
		if !found {
			fmt.Printf("No battle %s in %s\n", battleID, path)
			os.Exit(1)
		}

		turn := 0
		for _, e := range entries {
			if e.BattleID != battleID {
				continue
			}
			if e.Turn != turn {
				turn = e.Turn
				fmt.Printf("\n--- Turn %d ---\n", turn)
			}
			for _, line := range e.Result.Lines {
				fmt.Println(line)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().String("replay", "battles.jsonl", "replay log to read")
}
