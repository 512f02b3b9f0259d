package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wegbereiter/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show results per lesson and recent runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		st, err := e.openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()
		out := cmd.OutOrStdout()

		stats, err := repo.LessonStats(ctx)
		if err != nil {
			return fmt.Errorf("load lesson stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Fprintln(out, "Noch keine Ergebnisse. Starte mit: wegbereiter play")
			return nil
		}

		fmt.Fprintf(out, "%-32s  %5s  %8s  %8s  %9s\n", "Lektion", "Runs", "Bestwert", "Zuletzt", "Antworten")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, s := range stats {
			fmt.Fprintf(out, "%-32s  %5d  %7d%%  %7d%%  %4d/%-4d\n",
				e.lessonTitle(s.LessonID), s.Runs, s.BestPercentage, s.LastPercentage,
				s.CorrectAnswers, s.Answers)
		}

		limit, _ := cmd.Flags().GetInt("limit")
		runs, err := repo.RecentRuns(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("load recent runs: %w", err)
		}
		if len(runs) == 0 {
			return nil
		}

		fmt.Fprintf(out, "\nLetzte Durchgänge\n")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, r := range runs {
			fmt.Fprintf(out, "%s  %-32s  %d/%d  %3d%%\n",
				r.Timestamp.Local().Format("2006-01-02 15:04"),
				e.lessonTitle(r.LessonID), r.Score, r.Total, r.Percentage)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of recent runs to show (0 = all)")
}

// lessonTitle returns the title for id, falling back to the ID for lessons
// no longer in the catalogue.
func (e *env) lessonTitle(id string) string {
	l, ok := e.catalog.Lesson(id)
	if !ok {
		return id
	}
	title := []rune(l.Title)
	if len(title) > 32 {
		return string(title[:29]) + "..."
	}
	return l.Title
}
