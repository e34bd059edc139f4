// Command hqd-lead submits an inquiry to the HQ.D API and checks its health.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"hqd-api/config"
	"hqd-api/leads/gateway"
	"hqd-api/models"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		backend string
		timeout time.Duration
	)
	root := &cobra.Command{
		Use:          "hqd-lead",
		Short:        "Send inquiries to the HQ.D lead API",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&backend, "backend", "", "API base URL (defaults to BACKEND_URL)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", gateway.DefaultTimeout, "request timeout")

	client := func() (*gateway.Client, error) {
		url := backend
		if url == "" {
			cfg, err := config.Load()
			if err != nil {
				return nil, err
			}
			url = cfg.BackendURL
		}
		return gateway.New(url, gateway.WithTimeout(timeout))
	}

	root.AddCommand(newSubmitCmd(client), newHealthCmd(client))
	return root
}

func newSubmitCmd(client func() (*gateway.Client, error)) *cobra.Command {
	var sub models.LeadSubmission
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit one inquiry",
		Long: `Submit one inquiry to POST /api/leads.

The request is sent once. On failure nothing is retried or saved;
run the command again or reach the team on WhatsApp.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			ack, err := c.SubmitLead(cmd.Context(), sub)
			if err != nil {
				return describeSubmitError(err)
			}
			return writeAck(cmd.OutOrStdout(), ack)
		},
	}
	f := cmd.Flags()
	f.StringVar(&sub.Name, "name", "", "your name (required)")
	f.StringVar(&sub.Email, "email", "", "e-mail (required)")
	f.StringVar(&sub.Phone, "phone", "", "phone (required)")
	f.StringVar(&sub.EventType, "event-type", "", "e.g. Wedding, Sangeet (required)")
	f.StringVar(&sub.EventDate, "event-date", "", "event date")
	f.StringVar(&sub.City, "city", "", "city")
	f.StringVar(&sub.Venue, "venue", "", "venue")
	f.StringVar(&sub.GuestCount, "guests", "", "guest range, e.g. 100-200")
	f.StringVar(&sub.Duration, "duration", "", "e.g. 4-5 hours")
	f.StringVar(&sub.BarType, "bar-type", models.DefaultBarType, "both, cocktail or mocktail")
	f.StringVar(&sub.Theme, "theme", "", "theme")
	f.StringVar(&sub.BudgetRange, "budget", "", "budget range")
	f.StringVar(&sub.Message, "message", "", "anything else")
	f.StringVar(&sub.SetupInterest, "setup", "", "setup slug you liked")
	return cmd
}

func newHealthCmd(client func() (*gateway.Client, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show API status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			hs := c.Health(cmd.Context())
			if hs.Placeholder {
				fmt.Fprintln(cmd.ErrOrStderr(), "backend unreachable, showing default status")
			}
			return writeJSON(cmd.OutOrStdout(), hs)
		},
	}
}

func describeSubmitError(err error) error {
	var (
		verr *gateway.ValidationError
		serr *gateway.StatusError
		nerr *gateway.NetworkError
	)
	switch {
	case errors.As(err, &verr):
		return fmt.Errorf("please fill in: %v", verr.Fields)
	case errors.As(err, &serr):
		return fmt.Errorf("the API rejected the inquiry (HTTP %d); try again or message us on WhatsApp", serr.StatusCode)
	case errors.As(err, &nerr):
		if errors.Is(err, context.DeadlineExceeded) {
			return errors.New("the API did not answer in time; try again or message us on WhatsApp")
		}
		return fmt.Errorf("could not reach the API: %w", nerr.Err)
	}
	return err
}

// writeAck prints the backend's acknowledgment. JSON is indented, anything
// else is printed as sent.
func writeAck(w io.Writer, ack []byte) error {
	ack = bytes.TrimSpace(ack)
	switch {
	case len(ack) == 0:
		_, err := fmt.Fprintln(w, "submitted")
		return err
	case json.Valid(ack):
		var buf bytes.Buffer
		if err := json.Indent(&buf, ack, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err := buf.WriteTo(w)
		return err
	}
	_, err := fmt.Fprintf(w, "submitted: %s\n", ack)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
