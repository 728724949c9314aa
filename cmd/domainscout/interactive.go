package main

import (
	"os"

	"github.com/function61/domainscout/pkg/session"
	"github.com/function61/gokit/logex"
	"github.com/function61/gokit/osutil"
	"github.com/spf13/cobra"
)

func interactiveEntry() *cobra.Command {
	backend := ""

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive domain checking session",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			rootLogger := logex.StandardLogger()

			osutil.ExitIfError(func() error {
				whois, err := makeWhoisService(backend)
				if err != nil {
					return err
				}

				_, err = session.NewRunner(whois, logex.Prefix("session", rootLogger)).Run(
					osutil.CancelOnInterruptOrTerminate(rootLogger),
					os.Stdin,
					os.Stdout)
				return err
			}())
		},
	}

	addBackendFlag(cmd, &backend)

	return cmd
}
