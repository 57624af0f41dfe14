package domain

import "time"

// Loan is the root financial agreement that owns obligations.
type Loan struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// LoanSummary tallies a loan's obligations per status.
type LoanSummary struct {
	Total     int `json:"total"`
	DueSoon   int `json:"due_soon"`
	Overdue   int `json:"overdue"`
	OnTrack   int `json:"on_track"`
	Completed int `json:"completed"`
}

// LoanDetail is a loan together with its computed summary.
type LoanDetail struct {
	Loan
	Summary LoanSummary `json:"summary"`
}

// Summarize counts obligations per status in a single pass. Total counts every
// obligation; statuses outside the known four land in no bucket.
func Summarize(obligations []Obligation) LoanSummary {
	summary := LoanSummary{Total: len(obligations)}
	for _, o := range obligations {
		switch o.Status {
		case StatusDueSoon:
			summary.DueSoon++
		case StatusOverdue:
			summary.Overdue++
		case StatusOnTrack:
			summary.OnTrack++
		case StatusCompleted:
			summary.Completed++
		}
	}
	return summary
}
