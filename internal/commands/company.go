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

func newCompanyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Manage companies",
	}

	cmd.AddCommand(newCompanyCreateCommand())
	cmd.AddCommand(newCompanyListCommand())

	return cmd
}

func newCompanyCreateCommand() *cobra.Command {
	var name, currencyCode, description, userID string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, svcs *portssvc.ServiceContainer, cfg *config.Config) error {
				company, err := svcs.Company.CreateCompany(ctx, dto.CreateCompanyRequest{
					Name:         name,
					CurrencyCode: currencyCode,
					Description:  description,
				}, userID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created company %s (%s).\n", company.CompanyID, company.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "company name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&currencyCode, "currency", "JPY", "ledger currency code")
	cmd.Flags().StringVar(&description, "description", "", "company description")
	cmd.Flags().StringVar(&userID, "user", "cli", "acting user ID for the audit trail")

	return cmd
}

func newCompanyListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List companies",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, svcs *portssvc.ServiceContainer, cfg *config.Config) error {
				companies, err := svcs.Company.ListCompanies(ctx)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "COMPANY ID\tNAME\tCURRENCY")
				for _, c := range companies {
					fmt.Fprintf(w, "%s\t%s\t%s\n", c.CompanyID, c.Name, c.CurrencyCode)
				}
				return w.Flush()
			})
		},
	}

	return cmd
}
