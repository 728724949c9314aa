package whoisquerylikexian

import (
	"testing"

	"github.com/function61/domainscout/pkg/whoisquery"
	"github.com/function61/gokit/assert"
	whoisparser "github.com/likexian/whois-parser"
)

func TestNormalize(t *testing.T) {
	rec := normalize(whoisparser.WhoisInfo{
		Domain: &whoisparser.Domain{
			Domain:         "example.com",
			CreatedDate:    "1995-08-14T04:00:00Z",
			ExpirationDate: "2026-08-13T04:00:00Z",
			NameServers:    []string{"a.iana-servers.net", "b.iana-servers.net"},
			Status:         []string{"clientDeleteProhibited", "clientTransferProhibited"},
		},
		Registrar: &whoisparser.Contact{
			Name: "RESERVED-Internet Assigned Numbers Authority",
		},
	})

	assert.EqualString(t, rec.DomainName, "example.com")
	assert.EqualString(t, rec.Registrar, "RESERVED-Internet Assigned Numbers Authority")

	created, ok := rec.Created.First()
	assert.Assert(t, ok)
	assert.EqualString(t, created, "1995-08-14T04:00:00Z")

	assert.Assert(t, rec.NameServers.Count() == 2)
	assert.Assert(t, rec.Statuses.Count() == 2)
}

func TestNormalizeEmpty(t *testing.T) {
	rec := normalize(whoisparser.WhoisInfo{})

	assert.EqualString(t, rec.DomainName, "")
	assert.Assert(t, !rec.Created.Present())
	assert.Assert(t, !rec.NameServers.Present())
}

func TestParseErrorToLookupError(t *testing.T) {
	notFound := parseErrorToLookupError(
		whoisparser.ErrNotFoundDomain,
		"No match for domain EXAMPLE-FREE.COM.\n\n>>> Last update of whois database <<<")

	assert.Assert(t, notFound.Kind == whoisquery.KindNoRecord)
	assert.EqualString(t, notFound.Message, "No match for domain EXAMPLE-FREE.COM.")

	generic := parseErrorToLookupError(whoisparser.ErrDomainDataInvalid, "")

	assert.Assert(t, generic.Kind == whoisquery.KindGeneric)
	assert.EqualString(t, generic.Message, whoisparser.ErrDomainDataInvalid.Error())
}
