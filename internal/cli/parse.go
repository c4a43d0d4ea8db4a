package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Flarenzy/inetstore/internal/inet"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse VALUE...",
		Short: "prints the canonical form of each value without touching the database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				ip, err := inet.Parse(arg)
				if err != nil {
					return err
				}
				r := ip.Range()
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s-%s\n", ip, ip.Family(), ip.Network(), r.From(), r.To())
			}
			return nil
		},
	}
}
