package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wegbereiter/internal/content"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons [id]",
	Short: "List the lessons, or the exercises of one lesson",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			l, ok := e.catalog.Lesson(args[0])
			if !ok {
				return fmt.Errorf("%w: %q", content.ErrUnknownLesson, args[0])
			}
			printLesson(cmd, l)
			return nil
		}

		fmt.Fprintf(out, "%-12s  %-40s  %9s  %s\n", "ID", "Titel", "Übungen", "Beispiele")
		fmt.Fprintln(out, strings.Repeat("─", 78))
		for _, l := range e.catalog.Lessons() {
			title := l.Title
			if len([]rune(title)) > 40 {
				title = string([]rune(title)[:37]) + "..."
			}
			examples := 0
			for _, c := range l.ExampleCategories {
				examples += len(c.Examples)
			}
			fmt.Fprintf(out, "%-12s  %-40s  %9d  %d\n", l.ID, title, l.ExerciseCount(), examples)
		}
		fmt.Fprintf(out, "\n%d Lektionen\n", e.catalog.Len())
		return nil
	},
}

func printLesson(cmd *cobra.Command, l content.Lesson) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s\n%s\n\n", l.ID, l.Title, l.Description)
	for i, ex := range l.Exercises {
		switch e := ex.(type) {
		case content.Identify:
			verdict := "richtig"
			if !e.IsCorrect {
				verdict = "falsch"
			}
			fmt.Fprintf(out, "%2d. [%s] %s  (%s: %s)\n", i+1, e.Kind(), e.Sentence, e.Word, verdict)
		case content.Complete:
			fmt.Fprintf(out, "%2d. [%s] %s  (%s / %s → %s)\n", i+1, e.Kind(), e.Sentence,
				e.Options[0], e.Options[1], e.Word())
		}
	}
}
