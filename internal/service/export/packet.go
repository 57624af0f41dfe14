package export

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

//go:embed templates/packet.html.tmpl
var templatesFS embed.FS

var packetTmpl = template.Must(template.ParseFS(templatesFS, "templates/packet.html.tmpl"))

const (
	generatedLayout = "2006-01-02 15:04 UTC"
	noDue           = "—"
)

type packetView struct {
	Title       string
	GeneratedAt string
	Items       []packetItem
}

type packetItem struct {
	Name        string
	Description string
	DueRule     string
	Type        string
	Frequency   string
	Due         string
	Status      string
	Evidence    []packetEvidence
}

type packetEvidence struct {
	Href       string
	Filename   string
	UploadedAt string
	Note       string
}

// CompliancePacket renders a printable HTML summary of loanID: every obligation
// with its evidence. Evidence links point at apiBase.
func (s *Service) CompliancePacket(ctx context.Context, loanID int64, apiBase string) ([]byte, error) {
	loan, obligations, err := s.loanWithObligations(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("export packet: %w", err)
	}

	apiBase = strings.TrimRight(apiBase, "/")
	view := packetView{
		Title:       loan.Title,
		GeneratedAt: s.now().Format(generatedLayout),
		Items:       make([]packetItem, 0, len(obligations)),
	}

	for _, o := range obligations {
		files, err := s.evidence.ListByObligation(ctx, o.ID)
		if err != nil {
			return nil, fmt.Errorf("export packet: %w", err)
		}
		view.Items = append(view.Items, newPacketItem(o, files, apiBase))
	}

	var buf bytes.Buffer
	if err := packetTmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render packet: %w", err)
	}

	s.log.DebugContext(ctx, "compliance packet exported",
		slog.Int64("loan_id", loanID),
		slog.Int("obligations", len(view.Items)),
	)
	return buf.Bytes(), nil
}

func newPacketItem(o domain.Obligation, files []domain.Evidence, apiBase string) packetItem {
	item := packetItem{
		Name:        o.Name,
		Description: o.Description,
		Type:        string(o.ObligationType),
		Frequency:   string(o.Frequency),
		Status:      string(o.Status),
		Due:         noDue,
	}
	if o.DueRule != nil {
		item.DueRule = *o.DueRule
	}
	switch {
	case o.NextDueAt != nil:
		item.Due = o.NextDueAt.UTC().Format(time.RFC3339)
	case o.DueDate != nil:
		item.Due = *o.DueDate
	}

	for _, e := range files {
		pe := packetEvidence{
			Href:       apiBase + "/evidence/" + strconv.FormatInt(e.ID, 10) + "/download",
			Filename:   e.Filename,
			UploadedAt: e.UploadedAt.UTC().Format(time.RFC3339),
		}
		if e.Note != nil {
			pe.Note = *e.Note
		}
		item.Evidence = append(item.Evidence, pe)
	}
	return item
}
