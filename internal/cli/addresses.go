package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Flarenzy/inetstore/internal/domain"
)

func newSaveCmd(opts *options) *cobra.Command {
	var (
		id     string
		asNull bool
	)
	c := &cobra.Command{
		Use:   "save [--id ID] (VALUE | --null)",
		Short: "inserts a row, or overwrites the row with --id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := saveInput(args, asNull)
			if err != nil {
				return err
			}

			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			var address domain.Address
			if id == "" {
				address, err = s.service.CreateAddress(cmd.Context(), input)
			} else {
				address, err = s.service.UpdateAddress(cmd.Context(), domain.AddressID(id), input)
			}
			if err != nil {
				return err
			}
			printAddress(cmd, address)
			return nil
		},
	}
	c.Flags().StringVar(&id, "id", "", "overwrite the row with this id")
	c.Flags().BoolVar(&asNull, "null", false, "store NULL")
	return c
}

func saveInput(args []string, asNull bool) (domain.SaveAddressInput, error) {
	switch {
	case asNull && len(args) > 0:
		return domain.SaveAddressInput{}, errors.New("pass either VALUE or --null, not both")
	case asNull:
		return domain.SaveAddressInput{}, nil
	case len(args) == 0:
		return domain.SaveAddressInput{}, errors.New("missing VALUE; use --null to store NULL")
	}
	value := args[0]
	return domain.SaveAddressInput{IPAddress: &value}, nil
}

func newFirstCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "first",
		Short: "prints the earliest saved row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			address, err := s.service.FirstAddress(cmd.Context())
			if err != nil {
				return err
			}
			printAddress(cmd, address)
			return nil
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "lists all rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			addresses, err := s.service.ListAddresses(cmd.Context())
			if err != nil {
				return err
			}
			for _, a := range addresses {
				printAddress(cmd, a)
			}
			return nil
		},
	}
}

func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "prints one row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			address, err := s.service.GetAddress(cmd.Context(), domain.AddressID(args[0]))
			if err != nil {
				return err
			}
			printAddress(cmd, address)
			return nil
		},
	}
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "deletes one row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.service.DeleteAddress(cmd.Context(), domain.AddressID(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func printAddress(cmd *cobra.Command, a domain.Address) {
	value := a.IPAddress.String()
	if !a.IPAddress.IsValid() {
		value = "NULL"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", a.ID, value, a.CreatedAt.Format(time.RFC3339))
}
