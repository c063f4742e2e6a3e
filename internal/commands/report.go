package commands

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	portssvc "github.com/kessan-app/kessan_backend/internal/core/ports/services"
	"github.com/kessan-app/kessan_backend/internal/platform/config"
)

const dateLayout = "2006-01-02"

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Produce financial reports",
	}

	cmd.AddCommand(newTrialBalanceCommand())
	cmd.AddCommand(newProfitAndLossCommand())
	cmd.AddCommand(newBalanceSheetCommand())
	cmd.AddCommand(newAccountLedgerCommand())

	return cmd
}

func newAccountLedgerCommand() *cobra.Command {
	var companyID, accountID, fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Print one account's ledger book with running balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.Parse(dateLayout, fromStr)
			if err != nil {
				return fmt.Errorf("invalid --from date: %w", err)
			}
			to, err := time.Parse(dateLayout, toStr)
			if err != nil {
				return fmt.Errorf("invalid --to date: %w", err)
			}
			return withServices(cmd.Context(), func(ctx context.Context, svcs *portssvc.ServiceContainer, cfg *config.Config) error {
				report, err := svcs.Reporting.AccountLedger(ctx, companyID, accountID, from, to)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (%s)\n", report.AccountName, report.AccountType)
				fmt.Fprintf(out, "Opening balance: %s\n", report.OpeningBalance)

				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "DATE\tMEMO\tDEBIT\tCREDIT\tBALANCE")
				for _, row := range report.Rows {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						row.Date.Format(dateLayout), row.Memo, row.Debit, row.Credit, row.Balance)
				}
				if err := w.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(out, "Closing balance: %s\n", report.ClosingBalance)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company ID (required)")
	_ = cmd.MarkFlagRequired("company")
	cmd.Flags().StringVar(&accountID, "account", "", "account ID (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&fromStr, "from", "", "range start (YYYY-MM-DD, required)")
	_ = cmd.MarkFlagRequired("from")
	cmd.Flags().StringVar(&toStr, "to", "", "range end (YYYY-MM-DD, required)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newTrialBalanceCommand() *cobra.Command {
	var companyID, asOfStr string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Print the trial balance as of a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf, err := time.Parse(dateLayout, asOfStr)
			if err != nil {
				return fmt.Errorf("invalid --as-of date: %w", err)
			}
			return withServices(cmd.Context(), func(ctx context.Context, svcs *portssvc.ServiceContainer, cfg *config.Config) error {
				rows, err := svcs.Reporting.TrialBalance(ctx, companyID, asOf)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ACCOUNT\tTYPE\tDEBIT\tCREDIT")
				for _, row := range rows {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.AccountName, row.AccountType, row.Debit, row.Credit)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company ID (required)")
	_ = cmd.MarkFlagRequired("company")
	cmd.Flags().StringVar(&asOfStr, "as-of", time.Now().Format(dateLayout), "report date (YYYY-MM-DD)")

	return cmd
}

func newProfitAndLossCommand() *cobra.Command {
	var companyID, fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "profit-and-loss",
		Short: "Print the profit and loss statement for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.Parse(dateLayout, fromStr)
			if err != nil {
				return fmt.Errorf("invalid --from date: %w", err)
			}
			to, err := time.Parse(dateLayout, toStr)
			if err != nil {
				return fmt.Errorf("invalid --to date: %w", err)
			}
			return withServices(cmd.Context(), func(ctx context.Context, svcs *portssvc.ServiceContainer, cfg *config.Config) error {
				report, err := svcs.Reporting.ProfitAndLoss(ctx, companyID, from, to)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "SECTION\tACCOUNT\tAMOUNT")
				for _, row := range report.Revenue {
					fmt.Fprintf(w, "Revenue\t%s\t%s\n", row.AccountName, row.NetAmount)
				}
				for _, row := range report.Expenses {
					fmt.Fprintf(w, "Expense\t%s\t%s\n", row.AccountName, row.NetAmount)
				}
				if err := w.Flush(); err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Total revenue: %s\n", report.TotalRevenue)
				fmt.Fprintf(out, "Total expenses: %s\n", report.TotalExpenses)
				fmt.Fprintf(out, "Net profit: %s\n", report.NetProfit)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company ID (required)")
	_ = cmd.MarkFlagRequired("company")
	cmd.Flags().StringVar(&fromStr, "from", "", "range start (YYYY-MM-DD, required)")
	_ = cmd.MarkFlagRequired("from")
	cmd.Flags().StringVar(&toStr, "to", "", "range end (YYYY-MM-DD, required)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newBalanceSheetCommand() *cobra.Command {
	var companyID, asOfStr string

	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Print the balance sheet as of a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf, err := time.Parse(dateLayout, asOfStr)
			if err != nil {
				return fmt.Errorf("invalid --as-of date: %w", err)
			}
			return withServices(cmd.Context(), func(ctx context.Context, svcs *portssvc.ServiceContainer, cfg *config.Config) error {
				report, err := svcs.Reporting.BalanceSheet(ctx, companyID, asOf)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "SECTION\tACCOUNT\tAMOUNT")
				for _, row := range report.Assets {
					fmt.Fprintf(w, "Assets\t%s\t%s\n", row.AccountName, row.NetAmount)
				}
				for _, row := range report.Liabilities {
					fmt.Fprintf(w, "Liabilities\t%s\t%s\n", row.AccountName, row.NetAmount)
				}
				for _, row := range report.Equity {
					fmt.Fprintf(w, "Equity\t%s\t%s\n", row.AccountName, row.NetAmount)
				}
				if err := w.Flush(); err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Total assets: %s\n", report.TotalAssets)
				fmt.Fprintf(out, "Total liabilities: %s\n", report.TotalLiabilities)
				fmt.Fprintf(out, "Total equity: %s\n", report.TotalEquity)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company ID (required)")
	_ = cmd.MarkFlagRequired("company")
	cmd.Flags().StringVar(&asOfStr, "as-of", time.Now().Format(dateLayout), "report date (YYYY-MM-DD)")

	return cmd
}
