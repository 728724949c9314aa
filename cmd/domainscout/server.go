package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/function61/domainscout/pkg/availability"
	"github.com/function61/domainscout/pkg/domainvalidate"
	"github.com/function61/domainscout/pkg/whoisquery"
	"github.com/function61/gokit/httputils"
	"github.com/function61/gokit/jsonfile"
	"github.com/function61/gokit/logex"
	"github.com/function61/gokit/osutil"
	"github.com/function61/gokit/taskrunner"
	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

func serverEntry() *cobra.Command {
	backend := ""
	listenAddr := ":8080"

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Serve availability checks over HTTP",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			rootLogger := logex.StandardLogger()

			osutil.ExitIfError(runServer(
				osutil.CancelOnInterruptOrTerminate(rootLogger),
				listenAddr,
				backend,
				rootLogger))
		},
	}

	addBackendFlag(cmd, &backend)
	cmd.Flags().StringVarP(&listenAddr, "listen", "l", listenAddr, "Address to listen on")

	return cmd
}

func runServer(ctx context.Context, listenAddr string, backend string, logger *log.Logger) error {
	whois, err := makeWhoisService(backend)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    listenAddr,
		Handler: serverHandler(whois, logex.Levels(logger)),
	}

	tasks := taskrunner.New(ctx, logger)

	tasks.Start("listener "+srv.Addr, func(_ context.Context) error {
		return httputils.RemoveGracefulServerClosedError(srv.ListenAndServe())
	})

	tasks.Start("listenershutdowner", httputils.ServerShutdownTask(srv))

	return tasks.Wait()
}

func serverHandler(whois whoisquery.Service, logl *logex.Leveled) http.Handler {
	routes := mux.NewRouter()

	routes.HandleFunc("/check/{domain}", func(w http.ResponseWriter, r *http.Request) {
		domain := strings.ToLower(mux.Vars(r)["domain"])

		if !domainvalidate.Valid(domain) {
			http.Error(w, "invalid domain format: "+domain, http.StatusBadRequest)
			return
		}

		rec, lookupErr := whois.Lookup(r.Context(), domain)
		verdict := availability.Classify(domain, rec, lookupErr, time.Now())

		logl.Info.Printf("%s => %s", domain, verdict.Outcome)

		w.Header().Set("Content-Type", "application/json")
		_ = jsonfile.Marshal(w, verdict)
	}).Methods(http.MethodGet)

	return routes
}
