package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/learnloop/academy/internal/config"
	"github.com/learnloop/academy/internal/services"
	"github.com/learnloop/academy/pkg/listquery"
)

func newAdminsCmd(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admins",
		Short: "Manage the admins table",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "grant USER_ID",
			Short: "Grant admin rights to a user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				st, err := openStore(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				defer func() { _ = st.Close() }()

				admin, err := services.NewAdminService(st).Grant(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("granted"), admin.UserID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "revoke USER_ID",
			Short: "Revoke admin rights from a user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				st, err := openStore(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				defer func() { _ = st.Close() }()

				if err := services.NewAdminService(st).Revoke(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.YellowString("revoked"), args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List admins",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				st, err := openStore(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				defer func() { _ = st.Close() }()

				result, err := services.NewAdminService(st).List(cmd.Context(), listquery.All(nil))
				if err != nil {
					return err
				}

				if result.Total == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), color.HiBlackString("no admins"))
					return nil
				}

				bold := color.New(color.Bold)
				for _, a := range result.Items {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", bold.Sprint(a.UserID), a.CreatedAt.Format(time.RFC3339))
				}
				return nil
			},
		},
	)
	return cmd
}
