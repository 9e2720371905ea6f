// Package commands holds the demo CLI: one sign-up submission driven from the
// terminal, printing every presentation-state transition the UI would render.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"enroll/internal/signup"
	"enroll/internal/signup/gateway"
	"enroll/internal/signup/metrics"
	"enroll/internal/signup/service"
	"enroll/internal/signup/state"
	"enroll/pkg/platform/sentinel"
)

var (
	serverURL string
	name      string
	emailAddr string
	phone     string
)

func Execute() error {
	root := &cobra.Command{
		Use:          "signup",
		Short:        "Submit a sign-up against the enroll demo server",
		SilenceUsage: true,
		RunE:         runSubmit,
	}

	root.Flags().StringVar(&serverURL, "server", "http://127.0.0.1:8080", "base URL of the sign-up server")
	root.Flags().StringVar(&name, "name", "", "name to sign up with")
	root.Flags().StringVar(&emailAddr, "email", "", "sign up with this email address")
	root.Flags().StringVar(&phone, "phone", "", "sign up with this phone number")

	return root.Execute()
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	kind := signup.KindEmail
	rawID := emailAddr
	if phone != "" {
		if emailAddr != "" {
			return errors.New("use exactly one of --email and --phone")
		}
		kind = signup.KindPhone
		rawID = phone
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	store := state.NewStore()
	client := gateway.NewClient(serverURL, nil, logger)
	svc := service.New(client, store, logger, metrics.New())

	// Print transitions the way a form screen would re-render them.
	snapshots, cancel := store.Subscribe()
	var done sync.WaitGroup
	done.Add(1)
	go func() {
		defer done.Done()
		for form := range snapshots {
			printForm(cmd, form)
		}
	}()

	res, err := svc.Submit(context.Background(), name, rawID, kind)
	cancel()
	done.Wait()

	if err != nil {
		if errors.Is(err, sentinel.ErrInFlight) {
			return errors.New("a submission is already running")
		}
		return err
	}

	if token, ok := res.Value(); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "signed up, token: %s\n", token.Value)
		return nil
	}

	submitErr, _ := res.Error()
	return fmt.Errorf("sign-up failed: %w", submitErr)
}

func printForm(cmd *cobra.Command, f state.Form) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "[busy=%v kind=%s]", f.Busy, f.Kind)
	if f.Message != "" {
		fmt.Fprintf(out, " message=%q", f.Message)
	}
	if f.Name.Error != "" {
		fmt.Fprintf(out, " name_error=%q", f.Name.Error)
	}
	if f.ID.Error != "" {
		fmt.Fprintf(out, " id_error=%q", f.ID.Error)
	}
	fmt.Fprintln(out)
}
