package domain

import "time"

// DateLayout is the wire layout of Obligation.DueDate.
const DateLayout = "2006-01-02"

// Obligation is a compliance item tracked against a loan.
type Obligation struct {
	ID               int64            `json:"id"`
	LoanID           int64            `json:"loan_id"`
	Name             string           `json:"name"`
	ObligationType   ObligationType   `json:"obligation_type"`
	Description      string           `json:"description"`
	PartyResponsible string           `json:"party_responsible"`
	Frequency        Frequency        `json:"frequency"`
	DueDate          *string          `json:"due_date"`
	DueRule          *string          `json:"due_rule"`
	NextDueAt        *time.Time       `json:"next_due_at"`
	Status           ObligationStatus `json:"status"`
	Confidence       *float64         `json:"confidence"`
	SourceExcerpt    *string          `json:"source_excerpt"`
	SourcePage       *int             `json:"source_page"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ObligationPatch carries caller-supplied obligation fields. For create it is the full
// field set (absent fields take defaults); for update only present fields are merged.
// Pointer fields use nil for "absent"; nullable fields use Optional so that an explicit
// null clears the stored value.
type ObligationPatch struct {
	Name             *string             `json:"name,omitempty"`
	ObligationType   *ObligationType     `json:"obligation_type,omitempty"`
	Description      *string             `json:"description,omitempty"`
	PartyResponsible *string             `json:"party_responsible,omitempty"`
	Frequency        *Frequency          `json:"frequency,omitempty"`
	DueDate          Optional[string]    `json:"due_date"`
	DueRule          Optional[string]    `json:"due_rule"`
	NextDueAt        Optional[time.Time] `json:"next_due_at"`
	Status           *ObligationStatus   `json:"status,omitempty"`
	Confidence       Optional[float64]   `json:"confidence"`
	SourceExcerpt    Optional[string]    `json:"source_excerpt"`
	SourcePage       Optional[int]       `json:"source_page"`
}

// NewObligation builds an obligation for loanID from p, filling defaults for
// everything p leaves out. Timestamps are set to now; the id is left zero.
func NewObligation(loanID int64, p ObligationPatch, now time.Time) Obligation {
	o := Obligation{
		LoanID:         loanID,
		ObligationType: ObligationTypeReporting,
		Frequency:      FrequencyOnce,
		Status:         StatusOnTrack,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	p.ApplyTo(&o)
	if o.ObligationType == "" {
		o.ObligationType = ObligationTypeReporting
	}
	if o.Frequency == "" {
		o.Frequency = FrequencyOnce
	}
	if o.Status == "" {
		o.Status = StatusOnTrack
	}
	return o
}

// ApplyTo merges the present fields of p over o. It never touches ids or timestamps.
func (p ObligationPatch) ApplyTo(o *Obligation) {
	if p.Name != nil {
		o.Name = *p.Name
	}
	if p.ObligationType != nil {
		o.ObligationType = *p.ObligationType
	}
	if p.Description != nil {
		o.Description = *p.Description
	}
	if p.PartyResponsible != nil {
		o.PartyResponsible = *p.PartyResponsible
	}
	if p.Frequency != nil {
		o.Frequency = *p.Frequency
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	p.DueDate.applyTo(&o.DueDate)
	p.DueRule.applyTo(&o.DueRule)
	p.NextDueAt.applyTo(&o.NextDueAt)
	p.Confidence.applyTo(&o.Confidence)
	p.SourceExcerpt.applyTo(&o.SourceExcerpt)
	p.SourcePage.applyTo(&o.SourcePage)
}

// Fields returns the present fields keyed by their wire names, for audit details.
func (p ObligationPatch) Fields() map[string]any {
	fields := make(map[string]any)
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.ObligationType != nil {
		fields["obligation_type"] = string(*p.ObligationType)
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.PartyResponsible != nil {
		fields["party_responsible"] = *p.PartyResponsible
	}
	if p.Frequency != nil {
		fields["frequency"] = string(*p.Frequency)
	}
	if p.Status != nil {
		fields["status"] = string(*p.Status)
	}
	if p.DueDate.Set {
		fields["due_date"] = p.DueDate.detail()
	}
	if p.DueRule.Set {
		fields["due_rule"] = p.DueRule.detail()
	}
	if p.NextDueAt.Set {
		fields["next_due_at"] = p.NextDueAt.detail()
	}
	if p.Confidence.Set {
		fields["confidence"] = p.Confidence.detail()
	}
	if p.SourceExcerpt.Set {
		fields["source_excerpt"] = p.SourceExcerpt.detail()
	}
	if p.SourcePage.Set {
		fields["source_page"] = p.SourcePage.detail()
	}
	return fields
}

// IsEmpty reports whether p carries no fields at all.
func (p ObligationPatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// DueAt returns the moment an obligation falls due: NextDueAt when present, otherwise
// the end of DueDate in UTC. ok is false when neither is set or DueDate does not parse.
func (o Obligation) DueAt() (at time.Time, ok bool) {
	if o.NextDueAt != nil {
		return *o.NextDueAt, true
	}
	if o.DueDate == nil {
		return time.Time{}, false
	}
	d, err := time.Parse(DateLayout, *o.DueDate)
	if err != nil {
		return time.Time{}, false
	}
	return d.Add(23*time.Hour + 59*time.Minute + 59*time.Second), true
}
