package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/function61/domainscout/pkg/whoisquery"
	"github.com/function61/gokit/assert"
	"github.com/function61/gokit/logex"
)

type staticWhois struct {
	rec *whoisquery.Record
	err error
}

func (s *staticWhois) Lookup(_ context.Context, _ string) (*whoisquery.Record, error) {
	return s.rec, s.err
}

func TestServerHandlerRegistered(t *testing.T) {
	handler := serverHandler(&staticWhois{
		rec: &whoisquery.Record{DomainName: "example.com", Registrar: "ExampleRegistrar"},
	}, logex.Levels(logex.Discard))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/check/example.com", nil))

	assert.Assert(t, rec.Code == http.StatusOK)
	assert.Assert(t, strings.Contains(rec.Body.String(), `"available": false`))
	assert.Assert(t, strings.Contains(rec.Body.String(), `"outcome": "registered"`))
}

func TestServerHandlerAvailable(t *testing.T) {
	handler := serverHandler(&staticWhois{
		err: &whoisquery.LookupError{
			Kind:    whoisquery.KindNoRecord,
			Message: "No match for domain FREE.COM.",
		},
	}, logex.Levels(logex.Discard))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/check/free.com", nil))

	assert.Assert(t, rec.Code == http.StatusOK)
	assert.Assert(t, strings.Contains(rec.Body.String(), `"available": true`))
}

func TestServerHandlerRejectsBadSyntax(t *testing.T) {
	handler := serverHandler(&staticWhois{}, logex.Levels(logex.Discard))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/check/not..a..domain", nil))

	assert.Assert(t, rec.Code == http.StatusBadRequest)
}
