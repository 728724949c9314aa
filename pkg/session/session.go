// Interactive check session: reads candidate domains one line at a time,
// runs them through validation -> lookup -> classification and keeps the
// running tally for the end-of-session summary.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/function61/domainscout/pkg/availability"
	"github.com/function61/domainscout/pkg/domainvalidate"
	"github.com/function61/domainscout/pkg/whoisquery"
	"github.com/function61/gokit/logex"
	"github.com/scylladb/termtables"
)

// pause before each WHOIS query so an eager user doesn't hammer the registry
const throttle = 500 * time.Millisecond

var sentinels = []string{"quit", "exit", "q"}

// Session is the per-run tally. Verdicts themselves are not retained - only
// the domains that turned out to be available, in discovery order.
type Session struct {
	Checked   int
	Available []string
}

type Runner struct {
	Whois    whoisquery.Service
	Now      func() time.Time
	Throttle time.Duration
	logl     *logex.Leveled
}

func NewRunner(whois whoisquery.Service, logger *log.Logger) *Runner {
	if logger == nil {
		logger = logex.Discard
	}

	return &Runner{
		Whois:    whois,
		Now:      time.Now,
		Throttle: throttle,
		logl:     logex.Levels(logger),
	}
}

// Run blocks until a sentinel line, end of input or context cancellation.
// The summary is printed in every one of those cases.
func (r *Runner) Run(ctx context.Context, input io.Reader, output io.Writer) (*Session, error) {
	sess := &Session{}

	fmt.Fprintln(output, colored("\n=== Domain Availability Checker ===", ansiCyan))
	fmt.Fprintln(output, "Enter domain names to check (type 'quit' or 'exit' to finish)")
	fmt.Fprintln(output, "Press Ctrl+C to exit at any time")

	lines := readLines(input)

loop:
	for {
		fmt.Fprint(output, "\nEnter domain to check (e.g., example.com): ")

		select {
		case <-ctx.Done():
			fmt.Fprintln(output, colored("\n\nSearch interrupted by user.", ansiYellow))
			break loop
		case line, more := <-lines:
			if !more {
				break loop
			}

			if done := r.step(ctx, sess, line, output); done {
				break loop
			}
		}
	}

	r.printSummary(sess, output)

	return sess, nil
}

// one line of input => at most one verdict. returns true when the user asked
// to stop.
func (r *Runner) step(ctx context.Context, sess *Session, line string, output io.Writer) bool {
	domain := strings.ToLower(strings.TrimSpace(line))

	for _, sentinel := range sentinels {
		if domain == sentinel {
			return true
		}
	}

	if domain == "" {
		fmt.Fprintln(output, "Please enter a domain name")
		return false
	}

	if !domainvalidate.Valid(domain) {
		fmt.Fprintln(output, colored("Invalid domain format: "+domain, ansiRed))
		fmt.Fprintln(output, "Domain should match pattern: example.com, sub.example.net, etc.")
		return false
	}

	fmt.Fprintln(output, colored("Checking "+domain+"...", ansiYellow))
	sess.Checked++

	time.Sleep(r.Throttle)

	r.logl.Debug.Printf("whois lookup: %s", domain)

	rec, err := r.Whois.Lookup(ctx, domain)
	verdict := availability.Classify(domain, rec, err, r.Now())

	if verdict.Available {
		fmt.Fprintln(output, colored("✓ "+verdict.Message, ansiGreen))
		sess.Available = append(sess.Available, domain)
	} else {
		fmt.Fprintln(output, colored("✗ "+verdict.Message, ansiRed))
	}

	return false
}

func (r *Runner) printSummary(sess *Session, output io.Writer) {
	fmt.Fprintln(output, colored("\n=== Domain Lookup Summary ===", ansiCyan))

	tbl := termtables.CreateTable()
	tbl.AddHeaders("Domains checked", "Available found")
	tbl.AddRow(sess.Checked, len(sess.Available))
	fmt.Fprintln(output, tbl.Render())

	if len(sess.Available) > 0 {
		fmt.Fprintln(output, colored("Available domains:", ansiGreen))
		for _, domain := range sess.Available {
			fmt.Fprintf(output, "  - %s\n", domain)
		}
	}

	fmt.Fprintln(output, colored("\nThank you for using the Domain Availability Checker!", ansiCyan))
}

// feeds input lines to a channel so the main loop can also react to
// cancellation. the reading goroutine may stay blocked on a final read; that
// is fine for a process-lifetime stdin.
func readLines(input io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	return lines
}
