package commands

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	portssvc "github.com/kessan-app/kessan_backend/internal/core/ports/services"
	"github.com/kessan-app/kessan_backend/internal/dto"
	"github.com/kessan-app/kessan_backend/internal/platform/config"
)

func newPeriodCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "period",
		Short: "Manage fiscal periods",
	}

	cmd.AddCommand(newPeriodCreateCommand())
	cmd.AddCommand(newPeriodListCommand())
	cmd.AddCommand(newPeriodCloseCommand())

	return cmd
}

func newPeriodCreateCommand() *cobra.Command {
	var companyID, name, startStr, endStr, userID string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a fiscal period",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse(dateLayout, startStr)
			if err != nil {
				return fmt.Errorf("invalid --start date: %w", err)
			}
			end, err := time.Parse(dateLayout, endStr)
			if err != nil {
				return fmt.Errorf("invalid --end date: %w", err)
			}
			return withServices(cmd.Context(), func(ctx context.Context, svcs *portssvc.ServiceContainer, cfg *config.Config) error {
				period, err := svcs.Period.CreatePeriod(ctx, companyID, dto.CreatePeriodRequest{
					Name:      name,
					StartDate: start,
					EndDate:   end,
				}, userID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created period %s (%s).\n", period.PeriodID, period.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company ID (required)")
	_ = cmd.MarkFlagRequired("company")
	cmd.Flags().StringVar(&name, "name", "", "period name, e.g. FY2025 (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&startStr, "start", "", "period start (YYYY-MM-DD, required)")
	_ = cmd.MarkFlagRequired("start")
	cmd.Flags().StringVar(&endStr, "end", "", "period end (YYYY-MM-DD, required)")
	_ = cmd.MarkFlagRequired("end")
	cmd.Flags().StringVar(&userID, "user", "cli", "acting user ID for the audit trail")

	return cmd
}

func newPeriodListCommand() *cobra.Command {
	var companyID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a company's fiscal periods",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, svcs *portssvc.ServiceContainer, cfg *config.Config) error {
				periods, err := svcs.Period.ListPeriods(ctx, companyID)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "PERIOD ID\tNAME\tSTART\tEND\tCLOSED")
				for _, p := range periods {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n",
						p.PeriodID, p.Name,
						p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"),
						p.Closed)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company ID (required)")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func newPeriodCloseCommand() *cobra.Command {
	var companyID string
	var userID string

	cmd := &cobra.Command{
		Use:   "close <period-id>",
		Short: "Close a fiscal period (irreversible)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			periodID := args[0]
			return withServices(cmd.Context(), func(ctx context.Context, svcs *portssvc.ServiceContainer, cfg *config.Config) error {
				if err := svcs.Period.ClosePeriod(ctx, companyID, periodID, userID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Period %s closed.\n", periodID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company ID (required)")
	_ = cmd.MarkFlagRequired("company")
	cmd.Flags().StringVar(&userID, "user", "cli", "acting user ID for the audit trail")

	return cmd
}
