package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/digital_khata_client/internal/apperrors"
	"github.com/SscSPs/digital_khata_client/internal/dto"
	"github.com/SscSPs/digital_khata_client/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func offlineCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offline",
		Short: "Manage invoices captured while the backend was unreachable",
	}
	cmd.AddCommand(offlineEnqueueCmd(opts), offlineListCmd(opts), offlineSyncCmd(opts))
	return cmd
}

// withQueue boots the core with the offline queue and fails when none is configured.
func withQueue(cmd *cobra.Command, opts *rootOptions, run func(a *app) error) error {
	a, err := newApp(cmd.Context(), opts, bootOptions{offlineQueue: true, echo: cmd.OutOrStdout()})
	if err != nil {
		return err
	}
	defer a.close()
	if a.services.Offline == nil {
		return fmt.Errorf("PGSQL_URL is not set: %w", apperrors.ErrNotConfigured)
	}
	return run(a)
}

func offlineEnqueueCmd(opts *rootOptions) *cobra.Command {
	var customer, amount, date, notes, items string

	cmd := &cobra.Command{
		Use:   "enqueue",
		Short: "Queue an invoice for the next sync",
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}
			req := dto.EnqueueInvoiceRequest{Customer: customer, Amount: amt, Notes: notes}
			if date != "" {
				d, err := time.Parse(time.DateOnly, date)
				if err != nil {
					return fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", date, err)
				}
				req.Date = &d
			}
			if items != "" {
				if !json.Valid([]byte(items)) {
					return fmt.Errorf("items must be valid JSON")
				}
				req.Items = json.RawMessage(items)
			}

			return withQueue(cmd, opts, func(a *app) error {
				inv, err := a.services.Offline.Enqueue(cmd.Context(), req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Queued invoice %d (%s) for %s, %s\n",
					inv.ID, inv.ClientRef, inv.Customer, utils.FormatINR(inv.Amount))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "Customer name")
	cmd.Flags().StringVar(&amount, "amount", "0", "Invoice amount")
	cmd.Flags().StringVar(&date, "date", "", "Invoice date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&items, "items", "", "Line items as JSON")
	_ = cmd.MarkFlagRequired("customer")
	return cmd
}

func offlineListCmd(opts *rootOptions) *cobra.Command {
	var params dto.ListOfflineInvoicesParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List queued invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withQueue(cmd, opts, func(a *app) error {
				invoices, err := a.services.Offline.List(cmd.Context(), params)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tCUSTOMER\tDATE\tAMOUNT\tSTATUS")
				for _, inv := range invoices {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
						inv.ID, inv.Customer, inv.Date.Format(time.DateOnly), utils.FormatINR(inv.Amount), inv.Status)
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&params.Customer, "customer", "", "Only invoices for this customer")
	cmd.Flags().StringVar(&params.Status, "status", "", "Only invoices with this status (pending)")
	return cmd
}

func offlineSyncCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Send queued invoices to the backend now",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withQueue(cmd, opts, func(a *app) error {
				res, err := a.services.Offline.Sync(cmd.Context())
				if err != nil {
					return err
				}
				if res.Skipped {
					fmt.Fprintln(cmd.OutOrStdout(), "Backend unreachable, nothing sent")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Sent %d, failed %d\n", res.Sent, res.Failed)
				return nil
			})
		},
	}
}
