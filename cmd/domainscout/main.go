package main

import (
	"fmt"
	"os"
	"time"

	"github.com/function61/domainscout/pkg/whoisquery"
	"github.com/function61/domainscout/pkg/whoisquery/whoisquerylikexian"
	"github.com/function61/domainscout/pkg/whoisquery/whoisqueryxmlapi"
	"github.com/function61/gokit/envvar"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	app := &cobra.Command{
		Use:     os.Args[0],
		Short:   "Domainscout checks domain name availability over WHOIS",
		Version: version,
	}

	commands := []*cobra.Command{
		checkEntry(),
		interactiveEntry(),
		serverEntry(),
	}

	for _, cmd := range commands {
		app.AddCommand(cmd)
	}

	if err := app.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func makeWhoisService(backend string) (whoisquery.Service, error) {
	switch backend {
	case "whois":
		return whoisquerylikexian.New(10 * time.Second), nil
	case "whoisxmlapi":
		apiKey, err := envvar.Required("WHOISXMLAPI_KEY")
		if err != nil {
			return nil, err
		}

		return whoisqueryxmlapi.New(apiKey), nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", backend)
	}
}

func addBackendFlag(cmd *cobra.Command, backend *string) {
	cmd.Flags().StringVarP(backend, "backend", "b", "whois", "WHOIS backend (whois | whoisxmlapi)")
}
