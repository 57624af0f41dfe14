package export

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

const (
	icsStampLayout = "20060102T150405Z"
	icsDateLayout  = "20060102"
)

var icsEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	",", `\,`,
	";", `\;`,
)

// Calendar renders the obligations of loanID as an iCalendar document, one event
// per obligation that has a due moment. Lines end with CRLF.
func (s *Service) Calendar(ctx context.Context, loanID int64) ([]byte, error) {
	loan, obligations, err := s.loanWithObligations(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("export calendar: %w", err)
	}

	stamp := s.now().Truncate(time.Second).Format(icsStampLayout)
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//CovenantOps//EN",
		"CALSCALE:GREGORIAN",
		"X-WR-CALNAME:" + icsEscaper.Replace(loan.Title) + " Obligations",
	}

	events := 0
	for _, o := range obligations {
		dueAt, ok := o.DueAt()
		if !ok {
			continue
		}

		var start string
		if o.NextDueAt == nil {
			start = "DTSTART;VALUE=DATE:" + dueAt.Format(icsDateLayout)
		} else {
			start = "DTSTART:" + dueAt.UTC().Format(icsStampLayout)
		}

		rule := "N/A"
		if o.DueRule != nil && *o.DueRule != "" {
			rule = *o.DueRule
		}
		description := fmt.Sprintf("Type: %s | Status: %s | Rule: %s", o.ObligationType, o.Status, rule)

		lines = append(lines,
			"BEGIN:VEVENT",
			"UID:obligation-"+strconv.FormatInt(o.ID, 10)+"@covenantops.local",
			"DTSTAMP:"+stamp,
			start,
			"SUMMARY:"+icsEscaper.Replace(o.Name),
			"DESCRIPTION:"+icsEscaper.Replace(description),
			"END:VEVENT",
		)
		events++
	}
	lines = append(lines, "END:VCALENDAR")

	s.log.DebugContext(ctx, "calendar exported",
		slog.Int64("loan_id", loanID),
		slog.Int("events", events),
	)

	return []byte(strings.Join(lines, "\r\n") + "\r\n"), nil
}
