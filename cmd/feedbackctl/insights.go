package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"feedbackservice/internal/model"
	"feedbackservice/internal/tui"
)

var errNothingAnalyzed = errors.New("insights unavailable: no feedback has been analyzed yet")

func insightsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Generate an executive summary and send the digest to Discord",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := opts.client()

			items, err := client.ListFeedback(ctx)
			if err != nil {
				return err
			}
			if model.ComputePanelStats(items).Analyzed == 0 {
				return errNothingAnalyzed
			}

			m := tui.NewInsightsModel(ctx, client)
			if _, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(cmd.OutOrStdout())).Run(); err != nil {
				return fmt.Errorf("insights view: %w", err)
			}
			return m.Err()
		},
	}
}
