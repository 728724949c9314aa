// Turns a WHOIS lookup result into an availability verdict. This is where
// all the interpretation of inconsistent registry answers lives - the rest
// of the program is plumbing around this.
package availability

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/function61/domainscout/pkg/whoisquery"
)

type Outcome int

const (
	OutcomeNoRecord Outcome = iota
	OutcomeExpired
	OutcomeRegistered
	OutcomeRegisteredOpaque
	OutcomeRegisteredPrivate
	OutcomeLookupAmbiguous
	OutcomeLookupFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoRecord:
		return "no-record"
	case OutcomeExpired:
		return "expired"
	case OutcomeRegistered:
		return "registered"
	case OutcomeRegisteredOpaque:
		return "registered-opaque"
	case OutcomeRegisteredPrivate:
		return "registered-private"
	case OutcomeLookupAmbiguous:
		return "lookup-ambiguous"
	default:
		return "lookup-failed"
	}
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return []byte(`"` + o.String() + `"`), nil
}

type Verdict struct {
	Domain    string     `json:"domain"`
	Available bool       `json:"available"`
	Outcome   Outcome    `json:"outcome"`
	Message   string     `json:"message"`
	Expires   *time.Time `json:"expires,omitempty"`
}

// phrases (lowercase) whose presence in a lookup error means the registry
// told us the domain does not exist
var notFoundPhrases = []string{
	"no match for",
	"no entries found",
	"not found",
	"no data found",
	"no match",
	"domain not found",
	"domain available",
}

// phrases meaning the domain exists but its record is withheld
var privacyPhrases = []string{
	"redacted for privacy",
	"registration private",
	"data protected",
}

const dateFormat = "2006-01-02"

// registries and backends hand us dates in at least these shapes
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 UTC",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Classify never fails - ambiguous input degrades towards "not available",
// so a malformed registry answer can't masquerade as a free domain. Pure
// function; now is the reference time for expiry comparison.
func Classify(domain string, rec *whoisquery.Record, lookupErr error, now time.Time) Verdict {
	if lookupErr == nil && rec == nil { // backend broke its contract
		lookupErr = errors.New("lookup returned neither record nor error")
	}

	if lookupErr != nil {
		return classifyLookupError(domain, lookupErr)
	}

	if rec.DomainName == "" {
		return Verdict{
			Domain:    domain,
			Available: true,
			Outcome:   OutcomeNoRecord,
			Message:   fmt.Sprintf("Domain %s appears to be available (No domain record found)", domain),
		}
	}

	fragments := []string{}
	var expiry *time.Time

	if createdRaw, has := rec.Created.First(); has {
		if created, ok := parseDate(createdRaw); ok {
			fragments = append(fragments, "Created: "+created.Format(dateFormat))
		}
	}

	if expiresRaw, has := rec.Expires.First(); has {
		if expires, ok := parseDate(expiresRaw); ok {
			fragments = append(fragments, "Expires: "+expires.Format(dateFormat))
			expiry = &expires

			if expires.Before(now) {
				return Verdict{
					Domain:    domain,
					Available: true,
					Outcome:   OutcomeExpired,
					Message: fmt.Sprintf(
						"Domain %s expired on %s and may be available for registration",
						domain,
						expires.Format(dateFormat)),
					Expires: expiry,
				}
			}
		}
	}

	if rec.Registrar != "" {
		fragments = append(fragments, "Registrar: "+rec.Registrar)
	}

	if rec.NameServers.Present() {
		fragments = append(fragments, fmt.Sprintf("Nameservers: %d configured", rec.NameServers.Count()))
	}

	if rec.Statuses.Present() {
		fragments = append(fragments, "Status: "+summarizeStatuses(rec.Statuses))
	}

	if len(fragments) > 0 {
		return Verdict{
			Domain:  domain,
			Outcome: OutcomeRegistered,
			Message: fmt.Sprintf("Domain %s is registered (%s)", domain, strings.Join(fragments, " | ")),
			Expires: expiry,
		}
	}

	// record exists but carried nothing we could cite
	return Verdict{
		Domain:  domain,
		Outcome: OutcomeRegisteredOpaque,
		Message: fmt.Sprintf("Domain %s appears to be registered, but limited details are available", domain),
	}
}

func classifyLookupError(domain string, lookupErr error) Verdict {
	le, expectedShape := lookupErr.(*whoisquery.LookupError)
	if !expectedShape {
		// backend fault outside the lookup-error contract
		return Verdict{
			Domain:  domain,
			Outcome: OutcomeLookupFailed,
			Message: fmt.Sprintf("Error checking %s: %T - %v", domain, lookupErr, lookupErr),
		}
	}

	lower := strings.ToLower(le.Message)

	for _, phrase := range notFoundPhrases {
		if strings.Contains(lower, phrase) {
			return Verdict{
				Domain:    domain,
				Available: true,
				Outcome:   OutcomeNoRecord,
				Message: fmt.Sprintf(
					"Domain %s appears to be available (WHOIS response: %s)",
					domain,
					beforeFirstPeriod(le.Message)),
			}
		}
	}

	for _, phrase := range privacyPhrases {
		if strings.Contains(lower, phrase) {
			return Verdict{
				Domain:  domain,
				Outcome: OutcomeRegisteredPrivate,
				Message: fmt.Sprintf("Domain %s is registered with privacy protection", domain),
			}
		}
	}

	// neither phrase set matched. this is not evidence of registration, but
	// we also can't call the domain available.
	return Verdict{
		Domain:  domain,
		Outcome: OutcomeLookupAmbiguous,
		Message: fmt.Sprintf("Error checking %s: %s", domain, le.Message),
	}
}

// "clientDelete, clientTransfer and 3 more"
func summarizeStatuses(statuses whoisquery.Values) string {
	items := statuses.Items()
	if len(items) <= 2 {
		return strings.Join(items, ", ")
	}

	return fmt.Sprintf("%s and %d more", strings.Join(items[:2], ", "), len(items)-2)
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func beforeFirstPeriod(s string) string {
	if idx := strings.Index(s, "."); idx >= 0 {
		return s[:idx]
	}

	return s
}
