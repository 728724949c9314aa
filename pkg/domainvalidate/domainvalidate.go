// Syntax gate for candidate domain names, so we never send garbage to a
// WHOIS server.
package domainvalidate

import (
	"regexp"
)

// one or more labels (alphanumeric-bounded, hyphens allowed inside, max 63
// chars) followed by an all-alphabetic TLD of 2-10 chars
var domainRe = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,10}$`)

func Valid(domain string) bool {
	return domainRe.MatchString(domain)
}
