package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/function61/domainscout/pkg/availability"
	"github.com/function61/domainscout/pkg/domainvalidate"
	"github.com/function61/domainscout/pkg/duration"
	"github.com/function61/gokit/jsonfile"
	"github.com/function61/gokit/logex"
	"github.com/function61/gokit/osutil"
	"github.com/scylladb/termtables"
	"github.com/spf13/cobra"
)

func checkEntry() *cobra.Command {
	backend := ""
	jsonOutput := false
	verbose := false

	cmd := &cobra.Command{
		Use:   "check [domain...]",
		Short: "Check availability of the given domains",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			rootLogger := logex.StandardLogger()

			osutil.ExitIfError(checkDomains(
				osutil.CancelOnInterruptOrTerminate(rootLogger),
				args,
				backend,
				jsonOutput,
				verbose))
		},
	}

	addBackendFlag(cmd, &backend)
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", jsonOutput, "Output as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", verbose, "Show relative expiry times")

	return cmd
}

func checkDomains(ctx context.Context, domains []string, backend string, jsonOutput bool, verbose bool) error {
	whois, err := makeWhoisService(backend)
	if err != nil {
		return err
	}

	verdicts := []availability.Verdict{}
	lookupTrouble := false

	for i, domain := range domains {
		domain = strings.ToLower(strings.TrimSpace(domain))

		if !domainvalidate.Valid(domain) {
			return fmt.Errorf("invalid domain format: %s", domain)
		}

		if i > 0 { // throttle between successive queries
			time.Sleep(500 * time.Millisecond)
		}

		rec, lookupErr := whois.Lookup(ctx, domain)
		verdict := availability.Classify(domain, rec, lookupErr, time.Now())

		switch verdict.Outcome {
		case availability.OutcomeLookupAmbiguous, availability.OutcomeLookupFailed:
			lookupTrouble = true
		}

		verdicts = append(verdicts, verdict)
	}

	if jsonOutput {
		if err := jsonfile.Marshal(os.Stdout, verdicts); err != nil {
			return err
		}
	} else {
		tbl := termtables.CreateTable()
		tbl.AddHeaders("Domain", "Available", "Details")

		for _, verdict := range verdicts {
			tbl.AddRow(verdict.Domain, yesNo(verdict.Available), details(verdict, verbose))
		}

		fmt.Println(tbl.Render())
	}

	if lookupTrouble {
		return fmt.Errorf("lookup failed for one or more domains")
	}

	return nil
}

func details(verdict availability.Verdict, verbose bool) string {
	if verbose && verdict.Expires != nil {
		return fmt.Sprintf(
			"%s (expiry %s)",
			verdict.Message,
			duration.Humanize(time.Until(*verdict.Expires)))
	}

	return verdict.Message
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
