package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	appdb "github.com/Flarenzy/inetstore/internal/db"
)

func newSchemaCmd(opts *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "schema",
		Short: "manages the addresses table",
	}
	c.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "creates the addresses table if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()
			if err := s.schema.CreateTable(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", appdb.AddressesTable)
			return nil
		},
	})
	c.AddCommand(&cobra.Command{
		Use:   "drop",
		Short: "drops the addresses table if it exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()
			if err := s.schema.DropTable(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dropped %s\n", appdb.AddressesTable)
			return nil
		},
	})
	return c
}
