package cli

import (
	"github.com/spf13/cobra"

	"github.com/iho/gobank/internal/usecase"
)

// Commands returns the session operations as cobra commands. A fresh set is
// built on every call so flag values never leak between invocations.
func (h *Handler) Commands() []*cobra.Command {
	return []*cobra.Command{
		h.createCustomerCmd(),
		h.createAccountCmd(),
		h.depositCmd(),
		h.withdrawCmd(),
		h.statementCmd(),
		h.listAccountsCmd(),
		h.statsCmd(),
	}
}

func (h *Handler) createCustomerCmd() *cobra.Command {
	var input usecase.CreateCustomerInput

	cmd := &cobra.Command{
		Use:     "create-customer",
		Aliases: []string{"new-customer"},
		Short:   "Register a new customer",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.CreateCustomer(cmd.Context(), input)
		},
	}

	cmd.Flags().StringVar(&input.TaxID, "tax-id", "", "Customer tax id (digits only)")
	cmd.Flags().StringVar(&input.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&input.BirthDate, "birth-date", "", "Birth date (dd-mm-yyyy)")
	cmd.Flags().StringVar(&input.Address, "address", "", "Address (street, number - district - city/state)")
	_ = cmd.MarkFlagRequired("tax-id")

	return cmd
}

func (h *Handler) createAccountCmd() *cobra.Command {
	var taxID string

	cmd := &cobra.Command{
		Use:     "create-account",
		Aliases: []string{"new-account"},
		Short:   "Open a current account for a customer",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.CreateAccount(cmd.Context(), taxID)
		},
	}

	cmd.Flags().StringVar(&taxID, "tax-id", "", "Customer tax id")
	_ = cmd.MarkFlagRequired("tax-id")

	return cmd
}

func (h *Handler) depositCmd() *cobra.Command {
	var taxID, amount string

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit into the customer's account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.Deposit(cmd.Context(), taxID, amount)
		},
	}

	cmd.Flags().StringVar(&taxID, "tax-id", "", "Customer tax id")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to deposit")
	_ = cmd.MarkFlagRequired("tax-id")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func (h *Handler) withdrawCmd() *cobra.Command {
	var taxID, amount string

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw from the customer's account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.Withdraw(cmd.Context(), taxID, amount)
		},
	}

	cmd.Flags().StringVar(&taxID, "tax-id", "", "Customer tax id")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to withdraw")
	_ = cmd.MarkFlagRequired("tax-id")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func (h *Handler) statementCmd() *cobra.Command {
	var taxID, kind string

	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Show the customer's account statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.Statement(cmd.Context(), taxID, kind)
		},
	}

	cmd.Flags().StringVar(&taxID, "tax-id", "", "Customer tax id")
	cmd.Flags().StringVar(&kind, "kind", "", "Only show deposit or withdrawal entries")
	_ = cmd.MarkFlagRequired("tax-id")

	return cmd
}

func (h *Handler) listAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-accounts",
		Short: "List every account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.ListAccounts(cmd.Context())
		},
	}
}

func (h *Handler) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show operation counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.Stats()
		},
	}
}
