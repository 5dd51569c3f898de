package main

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ReservationClient/internal/domain"
)

func newCreateCmd(opts *options) *cobra.Command {
	var (
		checkIn  string
		checkOut string
		hour     int
		guests   int
	)

	cmd := &cobra.Command{
		Use:     "create <accommodation>",
		Aliases: []string{"add", "new"},
		Short:   "Create a reservation",
		Long: `Create a reservation for an accommodation.

Dates are YYYY-MM-DD with an optional time (YYYY-MM-DDTHH:MM). Without a
date today is used; check-out without a time defaults to 15:00.

    reserve create 65a1f0 --check-in 2025-10-20 --check-out 2025-10-22 --time 14 --guests 2
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := opts.newWorkflow(cmd, args[0])
			if err != nil {
				return err
			}
			defer wf.Close()

			form := domain.ReservationForm{
				CheckInDate:  checkIn,
				CheckOutDate: checkOut,
			}
			// незаданный флаг означает незаполненное поле формы
			if cmd.Flags().Changed("time") {
				form.CheckInTime = &hour
			}
			if cmd.Flags().Changed("guests") {
				form.GuestCount = &guests
			}

			state, err := wf.Submit(cmd.Context(), form)
			return report(cmd.OutOrStdout(), "reservation", state, err)
		},
	}

	cmd.Flags().StringVar(&checkIn, "check-in", "", "check-in date")
	cmd.Flags().StringVar(&checkOut, "check-out", "", "check-out date")
	cmd.Flags().IntVar(&hour, "time", 0, "check-in hour, 1-24")
	cmd.Flags().IntVar(&guests, "guests", 0, "number of guests")

	return cmd
}
