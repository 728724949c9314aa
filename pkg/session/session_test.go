package session

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/function61/domainscout/pkg/whoisquery"
	"github.com/function61/gokit/assert"
)

type fakeWhois struct {
	records map[string]*whoisquery.Record
	errs    map[string]error
}

func (f *fakeWhois) Lookup(_ context.Context, domain string) (*whoisquery.Record, error) {
	if err, has := f.errs[domain]; has {
		return nil, err
	}

	return f.records[domain], nil
}

func newTestRunner(whois whoisquery.Service) *Runner {
	runner := NewRunner(whois, nil)
	runner.Throttle = 0
	return runner
}

func TestRun(t *testing.T) {
	whois := &fakeWhois{
		records: map[string]*whoisquery.Record{
			"example.com": {
				DomainName: "example.com",
				Registrar:  "ExampleRegistrar",
			},
		},
	}

	input := strings.NewReader("not-a-domain\nexample.com\nquit\n")
	output := &bytes.Buffer{}

	sess, err := newTestRunner(whois).Run(context.Background(), input, output)
	assert.Assert(t, err == nil)

	// invalid syntax is reported but does not count as checked
	assert.Assert(t, sess.Checked == 1)
	assert.Assert(t, len(sess.Available) == 0)

	printed := output.String()
	assert.Assert(t, strings.Contains(printed, "Invalid domain format: not-a-domain"))
	assert.Assert(t, strings.Contains(printed, "Domain example.com is registered (Registrar: ExampleRegistrar)"))
}

func TestRunTracksAvailableDomainsInOrder(t *testing.T) {
	whois := &fakeWhois{
		records: map[string]*whoisquery.Record{
			"taken.com": {DomainName: "taken.com", Registrar: "ExampleRegistrar"},
			"free.com":  {},
		},
		errs: map[string]error{
			"alsofree.net": &whoisquery.LookupError{
				Kind:    whoisquery.KindNoRecord,
				Message: "No match for domain ALSOFREE.NET.",
			},
		},
	}

	input := strings.NewReader("free.com\ntaken.com\nalsofree.net\nexit\n")
	output := &bytes.Buffer{}

	sess, err := newTestRunner(whois).Run(context.Background(), input, output)
	assert.Assert(t, err == nil)

	assert.Assert(t, sess.Checked == 3)
	assert.Assert(t, len(sess.Available) == 2)
	assert.EqualString(t, sess.Available[0], "free.com")
	assert.EqualString(t, sess.Available[1], "alsofree.net")

	assert.Assert(t, strings.Contains(output.String(), "Available domains:"))
}

func TestRunUppercaseAndWhitespaceInputIsNormalized(t *testing.T) {
	whois := &fakeWhois{
		records: map[string]*whoisquery.Record{
			"example.com": {},
		},
	}

	input := strings.NewReader("  EXAMPLE.COM  \nQUIT\n")
	output := &bytes.Buffer{}

	sess, err := newTestRunner(whois).Run(context.Background(), input, output)
	assert.Assert(t, err == nil)

	assert.Assert(t, sess.Checked == 1)
	assert.EqualString(t, sess.Available[0], "example.com")
}

func TestRunEndOfInputStillSummarizes(t *testing.T) {
	input := strings.NewReader("") // EOF right away
	output := &bytes.Buffer{}

	sess, err := newTestRunner(&fakeWhois{}).Run(context.Background(), input, output)
	assert.Assert(t, err == nil)

	assert.Assert(t, sess.Checked == 0)
	assert.Assert(t, strings.Contains(output.String(), "Domain Lookup Summary"))
}

func TestRunCancellationStillSummarizes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// reader that never yields a line
	input := blockingReader{}
	output := &bytes.Buffer{}

	sess, err := newTestRunner(&fakeWhois{}).Run(ctx, input, output)
	assert.Assert(t, err == nil)

	assert.Assert(t, sess.Checked == 0)

	printed := output.String()
	assert.Assert(t, strings.Contains(printed, "Search interrupted by user."))
	assert.Assert(t, strings.Contains(printed, "Domain Lookup Summary"))
}

type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) {
	select {} // block forever
}
