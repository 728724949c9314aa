// WHOIS lookup abstraction. Registries answer with wildly inconsistent
// shapes, so backends normalize everything into Record before anyone else
// gets to see it.
package whoisquery

import (
	"context"
)

type Record struct {
	// empty DomainName means the registry answered but knows no such record
	DomainName  string
	Created     Values
	Expires     Values
	Registrar   string
	NameServers Values
	Statuses    Values
}

type Service interface {
	// returns either a Record or an error. *LookupError is the expected
	// failure shape; anything else is an unexpected fault in the backend.
	Lookup(ctx context.Context, domain string) (*Record, error)
}

type ErrorKind int

const (
	// registry-side "we have nothing on this domain" style failure
	KindNoRecord ErrorKind = iota
	// transport, rate limit, unparseable response etc.
	KindGeneric
)

type LookupError struct {
	Kind    ErrorKind
	Message string
}

func (e *LookupError) Error() string {
	return e.Message
}
