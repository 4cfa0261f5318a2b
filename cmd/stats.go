package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtutor/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a user's problem statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("user")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.ProgressRepo()

		u, err := repo.GetOrCreateUser(ctx, name)
		if err != nil {
			return fmt.Errorf("look up user: %w", err)
		}

		stats, err := repo.Stats(ctx, u.ID)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Printf("%s has no attempts yet.\n", u.Name)
			return nil
		}

		fmt.Printf("Stats for %s:\n", u.Name)
		fmt.Println("problem  attempts  correct  success")
		for _, s := range stats {
			fmt.Printf("%7d  %8d  %7d  %6.0f%%\n",
				s.ProblemNumber, s.TotalAttempts, s.CorrectAttempts, s.SuccessRate*100)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("user", "", "User display name (required)")
	_ = statsCmd.MarkFlagRequired("user")
}
