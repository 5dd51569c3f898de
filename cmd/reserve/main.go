package main

import (
	"fmt"
	"os"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ReservationClient/internal/config"
	"github.com/m04kA/SMC-ReservationClient/internal/integrations/reservationservice"
	"github.com/m04kA/SMC-ReservationClient/internal/usecase/reservation_workflow"
	"github.com/m04kA/SMC-ReservationClient/pkg/logger"
	"github.com/m04kA/SMC-ReservationClient/pkg/metrics"
)

const (
	envURL   = "RESERVE_URL"
	envToken = "RESERVE_TOKEN"
)

// options общие флаги всех команд
type options struct {
	url      string
	token    string
	timeout  time.Duration
	logLevel string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{
		url:      os.Getenv(envURL),
		token:    os.Getenv(envToken),
		logLevel: "error",
	}

	root := &cobra.Command{
		Use:   "reserve",
		Short: "Reserve an accommodation",
		Long: `Create a reservation or check availability of an accommodation

environment:
    RESERVE_URL    base URL of the reservation service
    RESERVE_TOKEN  bearer token forwarded to the reservation service
    CONFIG_PATH    TOML config; services.reservation and workflow sections are used
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.url, "url", opts.url, "base URL of the reservation service (default from config)")
	root.PersistentFlags().StringVar(&opts.token, "token", opts.token, "bearer token")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "request timeout (default from config)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "log level: debug, info, warn, error")

	root.AddCommand(newCreateCmd(opts), newAvailabilityCmd(opts))

	return root
}

// load читает конфиг; флаги и переменные окружения имеют приоритет
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		return err
	}
	o.cfg = cfg

	if o.url == "" {
		o.url = cfg.Services.Reservation.URL
	}
	if !cmd.Flags().Changed("timeout") {
		o.timeout = cfg.Services.Reservation.TimeoutDuration()
	}

	return nil
}

// newWorkflow workflow для одной команды; вызывающий обязан закрыть его
func (o *options) newWorkflow(cmd *cobra.Command, accommodationID string) (*reservation_workflow.Workflow, error) {
	if o.url == "" {
		return nil, fmt.Errorf("reservation service URL not set")
	}

	log := logger.NewWithWriter(cmd.ErrOrStderr(), o.logLevel, nil)
	client := reservationservice.NewClient(o.url, o.timeout, log, metrics.Nop{})

	return reservation_workflow.NewWorkflow(
		"cli",
		accommodationID,
		o.token,
		client,
		clock.New(),
		reservation_workflow.Config{
			FeedbackWindow: o.cfg.Workflow.FeedbackWindow(),
			CheckOutTime:   o.cfg.Workflow.CheckOutTime,
		},
		log,
		metrics.Nop{},
	), nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
