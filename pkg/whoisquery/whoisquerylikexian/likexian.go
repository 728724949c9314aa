// WHOIS-over-TCP backend. Raw registry responses go through
// likexian/whois-parser, whose structured output we flatten into a Record.
package whoisquerylikexian

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/function61/domainscout/pkg/whoisquery"
	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
)

func New(timeout time.Duration) whoisquery.Service {
	return &service{
		client: whois.NewClient().SetTimeout(timeout),
	}
}

type service struct {
	client *whois.Client
}

func (s *service) Lookup(ctx context.Context, domain string) (*whoisquery.Record, error) {
	raw, err := s.client.Whois(domain)
	if err != nil {
		return nil, &whoisquery.LookupError{
			Kind:    whoisquery.KindGeneric,
			Message: fmt.Sprintf("whois query: %v", err),
		}
	}

	parsed, err := whoisparser.Parse(raw)
	if err != nil {
		return nil, parseErrorToLookupError(err, raw)
	}

	return normalize(parsed), nil
}

// the parser signals "registry has nothing on this domain" as an error. we
// carry the registry's own words forward so classification can cite them.
func parseErrorToLookupError(err error, raw string) *whoisquery.LookupError {
	kind := whoisquery.KindGeneric
	if err == whoisparser.ErrNotFoundDomain {
		kind = whoisquery.KindNoRecord
	}

	message := responseHead(raw)
	if message == "" {
		message = err.Error()
	}

	return &whoisquery.LookupError{Kind: kind, Message: message}
}

// first non-empty line of the raw response, e.g. "No match for domain FOO.COM."
func responseHead(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}

	return ""
}

func normalize(parsed whoisparser.WhoisInfo) *whoisquery.Record {
	rec := &whoisquery.Record{}

	if parsed.Domain != nil {
		rec.DomainName = parsed.Domain.Domain
		rec.Created = whoisquery.Single(parsed.Domain.CreatedDate)
		rec.Expires = whoisquery.Single(parsed.Domain.ExpirationDate)
		rec.NameServers = whoisquery.Multiple(parsed.Domain.NameServers)
		rec.Statuses = whoisquery.Multiple(parsed.Domain.Status)
	}

	if parsed.Registrar != nil {
		rec.Registrar = parsed.Registrar.Name
	}

	return rec
}
