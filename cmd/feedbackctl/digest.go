package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func digestCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Inspect digest runs",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "status [id]",
		Short: "Show the state of a digest run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := opts.client().GetDigest(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run:     %s\n", inst.ID)
			fmt.Fprintf(out, "Status:  %s\n", inst.Status)
			if inst.Trigger != "" {
				fmt.Fprintf(out, "Trigger: %s\n", inst.Trigger)
			}
			fmt.Fprintf(out, "Steps:   %v\n", inst.Steps)
			if inst.Error != "" {
				fmt.Fprintf(out, "Error:   %s\n", inst.Error)
			}
			if len(inst.Output) > 0 {
				var pretty any
				if json.Unmarshal(inst.Output, &pretty) == nil {
					data, _ := json.MarshalIndent(pretty, "", "  ")
					fmt.Fprintf(out, "Output:\n%s\n", data)
				}
			}
			return nil
		},
	})
	return cmd
}

func backfillCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "backfill",
		Short: "Analyze every unanalyzed row on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := opts.client().Backfill(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Analyzed: %d\n", len(report.Analyzed))
			ids := make([]int64, 0, len(report.Failed))
			for id := range report.Failed {
				ids = append(ids, id)
			}
			sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
			for _, id := range ids {
				fmt.Fprintf(out, "Failed #%d: %s\n", id, report.Failed[id])
			}
			return nil
		},
	}
}
