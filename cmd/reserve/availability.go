package main

import "github.com/spf13/cobra"

func newAvailabilityCmd(opts *options) *cobra.Command {
	var checkIn, checkOut string

	cmd := &cobra.Command{
		Use:     "availability <accommodation>",
		Aliases: []string{"check"},
		Short:   "Check whether dates are available",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := opts.newWorkflow(cmd, args[0])
			if err != nil {
				return err
			}
			defer wf.Close()

			state, err := wf.CheckAvailability(cmd.Context(), checkIn, checkOut)
			return report(cmd.OutOrStdout(), "availability", state, err)
		},
	}

	cmd.Flags().StringVar(&checkIn, "check-in", "", "check-in date")
	cmd.Flags().StringVar(&checkOut, "check-out", "", "check-out date")

	return cmd
}
