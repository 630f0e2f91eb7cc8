/*
Copyright © 2026 dexbattle authors
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/urdoggydeewata-star/dexbattle/internal/logging"
	"github.com/urdoggydeewata-star/dexbattle/internal/replay"
	"github.com/urdoggydeewata-star/dexbattle/internal/roster"
	"github.com/urdoggydeewata-star/dexbattle/internal/script"
	"github.com/urdoggydeewata-star/dexbattle/internal/session"
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate [roster.yaml] [script.bt]",
	Short: "Run a scripted battle and print the transcript",
	Long: `Loads a roster and a battle script, resolves every declared turn
under the selected generation's mechanics, and prints the narrative
transcript. Each resolved action is appended to the replay log, so the
battle can be re-run from its recorded seed and byte-compared.

A script is a sequence of statements:

	turn red: thunderbolt and blue: earthquake
	weather: rain
	turn red: protect and blue: surf`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSimulate(cmd, args[0], args[1]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runSimulate(cmd *cobra.Command, rosterPath, scriptPath string) error {
	opts, err := settings()
	if err != nil {
		return err
	}

	r, err := roster.Load(rosterPath)
	if err != nil {
		return err
	}
	parsed, err := script.ParseFile(scriptPath)
	if err != nil {
		return err
	}
	parsed.Normalize()

	replayPath, _ := cmd.Flags().GetString("replay")
	var store *replay.Store
	if replayPath != "" {
		store, err = replay.NewStore(replayPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	var sess *session.Session
	if store != nil {
		sess, err = session.New(opts, r, store)
	} else {
		sess, err = session.New(opts, r, nil)
	}
	if err != nil {
		return err
	}
	logging.L().Debugw("battle starting",
		"battle_id", sess.BattleID(),
		"generation", sess.Generation(),
		"seed", sess.Seed(),
	)

	fmt.Printf("Battle %s | Gen %d | seed %d\n\n", sess.BattleID(), sess.Generation(), sess.Seed())

	lines, err := sess.Start(rosterPath, scriptPath)
	if err != nil {
		return err
	}
	printLines(lines)

	for _, st := range parsed.Statements {
		report, err := sess.ExecuteStatement(st)
		if err != nil {
			return err
		}
		if st.Turn != nil {
			fmt.Printf("\n--- Turn %d ---\n", report.Turn)
		}
		printLines(report.Lines)
		if sess.Over() {
			break
		}
	}

	fmt.Println()
	if winner := sess.Winner(); winner != "" {
		fmt.Printf("%s wins!\n", winner)
	} else if sess.Over() {
		fmt.Println("The battle ended in a draw!")
	} else {
		fmt.Println("The script ended with both sides standing.")
	}
	for _, side := range sess.Sides() {
		c, _ := sess.Combatant(side)
		fmt.Printf("  %s: %s %d/%d HP\n", side, c.Species, c.CurHP, c.MaxHP)
	}
	return nil
}

func printLines(lines []string) {
	for _, l := range lines {
		fmt.Println(l)
	}
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().String("replay", "battles.jsonl", "replay log to append the transcript to, empty disables")
}
