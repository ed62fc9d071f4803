package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"feedbackservice/internal/model"
	"feedbackservice/internal/tui"
)

type itemAnalyzer interface {
	Analyze(ctx context.Context, id int64) (*model.FeedbackItem, error)
}

// analyzePending analyzes every unanalyzed item one request at a time and
// replaces it in place. Failed rows stay unanalyzed.
func analyzePending(ctx context.Context, a itemAnalyzer, items []*model.FeedbackItem, progress io.Writer) map[int64]error {
	failed := make(map[int64]error)
	for i, item := range items {
		if item.IsAnalyzed() {
			continue
		}
		if err := ctx.Err(); err != nil {
			failed[item.ID] = err
			continue
		}
		updated, err := a.Analyze(ctx, item.ID)
		if err != nil {
			failed[item.ID] = err
			fmt.Fprintf(progress, "analysis of #%d failed: %v\n", item.ID, err)
			continue
		}
		items[i] = updated
		fmt.Fprintf(progress, "analyzed #%d\n", item.ID)
	}
	return failed
}

func listCmd(opts *options) *cobra.Command {
	var (
		filter    model.Filter
		noAnalyze bool
		width     int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show feedback cards, analyzing unanalyzed rows first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := opts.client()

			items, err := client.ListFeedback(ctx)
			if err != nil {
				return err
			}
			if !noAnalyze {
				analyzePending(ctx, client, items, cmd.ErrOrStderr())
			}

			shown := filter.Apply(items)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, tui.RenderStats(model.ComputePanelStats(items)))
			fmt.Fprintln(out, tui.RenderCards(shown, width))
			fmt.Fprintln(out, lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).
				Render(fmt.Sprintf("%d of %d shown", len(shown), len(items))))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Source, "source", model.FilterAll, "Filter by source")
	cmd.Flags().StringVar(&filter.Urgency, "urgency", model.FilterAll, "Filter by urgency (high, medium, low)")
	cmd.Flags().StringVar(&filter.Sentiment, "sentiment", model.FilterAll, "Filter by sentiment (positive, negative, neutral)")
	cmd.Flags().BoolVar(&noAnalyze, "no-analyze", false, "Skip analysis of unanalyzed rows")
	cmd.Flags().IntVar(&width, "width", 80, "Card width")

	return cmd
}
