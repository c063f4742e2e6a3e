package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	portssvc "github.com/kessan-app/kessan_backend/internal/core/ports/services"
	"github.com/kessan-app/kessan_backend/internal/dto"
	"github.com/kessan-app/kessan_backend/internal/platform/config"
)

func newAdjustCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Plan and apply period-end adjustments",
	}

	cmd.AddCommand(newDepreciationPlanCommand())
	cmd.AddCommand(newDepreciationApplyCommand())
	cmd.AddCommand(newAllowancePlanCommand())
	cmd.AddCommand(newAllowanceApplyCommand())

	return cmd
}

func newDepreciationPlanCommand() *cobra.Command {
	var companyID string

	cmd := &cobra.Command{
		Use:   "plan-depreciation <period-id>",
		Short: "Show the proposed depreciation for a period without posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			periodID := args[0]
			return withServices(cmd.Context(), func(ctx context.Context, svcs *portssvc.ServiceContainer, cfg *config.Config) error {
				plan, err := svcs.Adjustment.PlanDepreciation(ctx, companyID, periodID)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ASSET\tNAME\tMONTHS\tPERIOD AMOUNT\tCUMULATIVE\tBOOK VALUE\tRECORDED")
				for _, row := range plan.Rows {
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%t\n",
						row.AssetNumber, row.AssetName, row.MonthsInPeriod,
						row.PeriodAmount, row.CumulativeAmount, row.BookValue,
						row.AlreadyRecorded)
				}
				if err := w.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Total: %s\n", plan.TotalDepreciation)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company ID (required)")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func newDepreciationApplyCommand() *cobra.Command {
	var companyID, userID, expenseAccountID, accumulatedAccountID, memo string

	cmd := &cobra.Command{
		Use:   "apply-depreciation <period-id>",
		Short: "Post the depreciation adjustment entry for a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			periodID := args[0]
			return withServices(cmd.Context(), func(ctx context.Context, svcs *portssvc.ServiceContainer, cfg *config.Config) error {
				entry, warnings, err := svcs.Adjustment.ApplyDepreciation(ctx, companyID, periodID, dto.ApplyDepreciationRequest{
					ExpenseAccountID:     expenseAccountID,
					AccumulatedAccountID: accumulatedAccountID,
					Memo:                 memo,
				}, userID)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Posted entry %s with %d lines.\n", entry.EntryID, len(entry.Lines))
				for _, warning := range warnings {
					fmt.Fprintf(cmd.ErrOrStderr(), "WARNING: asset %s: %s\n", warning.AssetID, warning.Reason)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company ID (required)")
	_ = cmd.MarkFlagRequired("company")
	cmd.Flags().StringVar(&expenseAccountID, "expense-account", "", "depreciation expense account ID (required)")
	_ = cmd.MarkFlagRequired("expense-account")
	cmd.Flags().StringVar(&accumulatedAccountID, "accumulated-account", "", "accumulated depreciation account ID (required)")
	_ = cmd.MarkFlagRequired("accumulated-account")
	cmd.Flags().StringVar(&memo, "memo", "", "entry memo override")
	cmd.Flags().StringVar(&userID, "user", "cli", "acting user ID for the audit trail")

	return cmd
}

func newAllowancePlanCommand() *cobra.Command {
	var companyID string

	cmd := &cobra.Command{
		Use:   "plan-allowance <period-id>",
		Short: "Show the proposed doubtful-accounts allowance adjustment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			periodID := args[0]
			return withServices(cmd.Context(), func(ctx context.Context, svcs *portssvc.ServiceContainer, cfg *config.Config) error {
				plan, err := svcs.Adjustment.PlanAllowance(ctx, companyID, periodID)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ACCOUNT\tBALANCE")
				for _, receivable := range plan.Receivables {
					fmt.Fprintf(w, "%s\t%s\n", receivable.AccountName, receivable.Balance)
				}
				if err := w.Flush(); err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Total receivables: %s\n", plan.TotalReceivables)
				fmt.Fprintf(out, "Required allowance (rate %s): %s\n", plan.AllowanceRate, plan.RequiredAllowance)
				fmt.Fprintf(out, "Previous allowance: %s\n", plan.PreviousAllowance)
				if plan.IsReversal {
					fmt.Fprintf(out, "Reversal amount: %s\n", plan.EntryAmount)
				} else {
					fmt.Fprintf(out, "Provision amount: %s\n", plan.EntryAmount)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company ID (required)")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func newAllowanceApplyCommand() *cobra.Command {
	var companyID, userID, expenseAccountID, allowanceAccountID, incomeAccountID, memo string

	cmd := &cobra.Command{
		Use:   "apply-allowance <period-id>",
		Short: "Post the doubtful-accounts allowance adjustment entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			periodID := args[0]
			return withServices(cmd.Context(), func(ctx context.Context, svcs *portssvc.ServiceContainer, cfg *config.Config) error {
				entry, err := svcs.Adjustment.ApplyAllowance(ctx, companyID, periodID, dto.ApplyAllowanceRequest{
					ExpenseAccountID:   expenseAccountID,
					AllowanceAccountID: allowanceAccountID,
					IncomeAccountID:    incomeAccountID,
					Memo:               memo,
				}, userID)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Posted entry %s.\n", entry.EntryID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company ID (required)")
	_ = cmd.MarkFlagRequired("company")
	cmd.Flags().StringVar(&expenseAccountID, "expense-account", "", "bad debt expense account ID (required)")
	_ = cmd.MarkFlagRequired("expense-account")
	cmd.Flags().StringVar(&allowanceAccountID, "allowance-account", "", "allowance account ID (required)")
	_ = cmd.MarkFlagRequired("allowance-account")
	cmd.Flags().StringVar(&incomeAccountID, "income-account", "", "allowance reversal income account ID (required)")
	_ = cmd.MarkFlagRequired("income-account")
	cmd.Flags().StringVar(&memo, "memo", "", "entry memo override")
	cmd.Flags().StringVar(&userID, "user", "cli", "acting user ID for the audit trail")

	return cmd
}
