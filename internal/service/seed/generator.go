package seed

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

const day = 24 * time.Hour

// Generator produces randomized demo records. It is safe for concurrent use.
type Generator struct {
	mu         sync.Mutex
	rnd        *rand.Rand
	pathPrefix string
}

// NewGenerator returns a Generator drawing from a PCG source seeded with seed.
// A zero seed picks a time-based one.
func NewGenerator(seed uint64, pathPrefix string) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewGeneratorFromSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15), pathPrefix)
}

// NewGeneratorFromSource returns a Generator drawing from src.
func NewGeneratorFromSource(src rand.Source, pathPrefix string) *Generator {
	return &Generator{rnd: rand.New(src), pathPrefix: pathPrefix}
}

// Dataset builds a fresh demo dataset: two loans with 8 to 12 obligations each
// and evidence on roughly 30% of the obligations. Ids start at 1 per collection.
func (g *Generator) Dataset(now time.Time) domain.Dataset {
	g.mu.Lock()
	defer g.mu.Unlock()

	var ds domain.Dataset
	for i, title := range loanTitles {
		loan := domain.Loan{
			ID:        int64(i + 1),
			Title:     title,
			CreatedAt: g.before(now, 30*day),
		}
		ds.Loans = append(ds.Loans, loan)

		count := 8 + g.rnd.IntN(5)
		for _, o := range g.obligations(loan.ID, count, now) {
			o.ID = int64(len(ds.Obligations) + 1)
			ds.Obligations = append(ds.Obligations, o)
		}
	}

	g.coverStatuses(ds.Obligations, now)
	ds.Evidence = g.evidence(ds.Obligations, now)
	return ds
}

// Obligations returns count generated obligations for loanID without ids.
func (g *Generator) Obligations(loanID int64, count int, now time.Time) []domain.Obligation {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.obligations(loanID, count, now)
}

func (g *Generator) obligations(loanID int64, count int, now time.Time) []domain.Obligation {
	out := make([]domain.Obligation, 0, count)
	for i := range count {
		t := templates[i%len(templates)]
		name := t.name
		if i >= len(templates) {
			name = fmt.Sprintf("%s (%d)", t.name, i/len(templates)+1)
		}
		dueRule := t.dueRule

		o := domain.Obligation{
			LoanID:           loanID,
			Name:             name,
			ObligationType:   t.kind,
			Description:      t.description,
			PartyResponsible: t.party,
			Frequency:        t.frequency,
			DueRule:          &dueRule,
			Status:           domain.AllStatuses[g.rnd.IntN(len(domain.AllStatuses))],
			CreatedAt:        g.before(now, 7*day),
			UpdatedAt:        g.before(now, 2*day),
		}
		if o.UpdatedAt.Before(o.CreatedAt) {
			o.UpdatedAt = o.CreatedAt
		}
		g.schedule(&o, now)

		if g.rnd.Float64() < 0.7 {
			c := math.Round((0.7+g.rnd.Float64()*0.3)*100) / 100
			o.Confidence = &c
		}
		if g.rnd.Float64() < 0.5 {
			excerpt := `"` + truncate(t.description, 50) + `..."`
			o.SourceExcerpt = &excerpt
		}
		if g.rnd.Float64() < 0.5 {
			page := 1 + g.rnd.IntN(50)
			o.SourcePage = &page
		}
		out = append(out, o)
	}
	return out
}

// schedule sets the due dates of o to agree with its status. Completed
// obligations carry no due dates.
func (g *Generator) schedule(o *domain.Obligation, now time.Time) {
	var offset int
	switch o.Status {
	case domain.StatusOverdue:
		offset = -(g.rnd.IntN(30) + 1)
	case domain.StatusDueSoon:
		offset = g.rnd.IntN(7) + 1
	case domain.StatusOnTrack:
		offset = g.rnd.IntN(60) + 8
	default:
		o.NextDueAt = nil
		o.DueDate = nil
		return
	}
	next := now.Add(time.Duration(offset) * day).UTC()
	date := next.Format(domain.DateLayout)
	o.NextDueAt = &next
	o.DueDate = &date
}

// coverStatuses makes sure every status appears at least once by moving
// obligations off statuses that occur more than once.
func (g *Generator) coverStatuses(obligations []domain.Obligation, now time.Time) {
	counts := make(map[domain.ObligationStatus]int, len(domain.AllStatuses))
	for _, o := range obligations {
		counts[o.Status]++
	}
	for _, missing := range domain.AllStatuses {
		if counts[missing] > 0 {
			continue
		}
		for i := len(obligations) - 1; i >= 0; i-- {
			o := &obligations[i]
			if counts[o.Status] < 2 {
				continue
			}
			counts[o.Status]--
			counts[missing]++
			o.Status = missing
			g.schedule(o, now)
			break
		}
	}
}

// evidence attaches 1 to 3 files to each of max(3, 30%) distinct obligations.
func (g *Generator) evidence(obligations []domain.Obligation, now time.Time) []domain.Evidence {
	n := len(obligations)
	k := min(n, max(3, int(math.Round(0.3*float64(n)))))
	picked := g.rnd.Perm(n)[:k]
	slices.Sort(picked)

	var out []domain.Evidence
	for _, idx := range picked {
		files := 1 + g.rnd.IntN(3)
		for range files {
			name := evidenceFilenames[g.rnd.IntN(len(evidenceFilenames))]
			e := domain.Evidence{
				ID:           int64(len(out) + 1),
				ObligationID: obligations[idx].ID,
				Filename:     name,
				FilePath:     g.pathPrefix + name,
				UploadedAt:   g.before(now, 14*day),
			}
			if g.rnd.Float64() < 0.5 {
				note := evidenceNotes[g.rnd.IntN(len(evidenceNotes))]
				e.Note = &note
			}
			out = append(out, e)
		}
	}
	return out
}

// before returns a moment uniformly within span before now, at millisecond precision.
func (g *Generator) before(now time.Time, span time.Duration) time.Time {
	back := time.Duration(g.rnd.Int64N(int64(span)))
	return now.Add(-back).UTC().Truncate(time.Millisecond)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
