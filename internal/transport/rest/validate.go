package rest

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

const maxNameLen = 255

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		return domain.NewValidationError("title", "required")
	case utf8.RuneCountInString(title) > maxNameLen:
		return domain.NewValidationError("title", "must be at most 255 characters")
	}
	return nil
}

// validatePatch checks the fields present in p. create additionally requires a name;
// an update must carry at least one field.
func validatePatch(p domain.ObligationPatch, create bool) error {
	if !create && p.IsEmpty() {
		return domain.NewValidationError("body", "no fields to update")
	}

	var errs []domain.FieldError
	add := func(field, msg string) {
		errs = append(errs, domain.FieldError{Field: field, Message: msg})
	}

	switch {
	case p.Name == nil && create:
		add("name", "required")
	case p.Name != nil && strings.TrimSpace(*p.Name) == "":
		add("name", "must not be empty")
	case p.Name != nil && utf8.RuneCountInString(*p.Name) > maxNameLen:
		add("name", "must be at most 255 characters")
	}
	if p.ObligationType != nil && !p.ObligationType.IsValid() {
		add("obligation_type", "unknown obligation type")
	}
	if p.Frequency != nil && !p.Frequency.IsValid() {
		add("frequency", "unknown frequency")
	}
	if p.Status != nil && !p.Status.IsValid() {
		add("status", "unknown status")
	}
	if p.DueDate.Value != nil {
		if _, err := time.Parse(domain.DateLayout, *p.DueDate.Value); err != nil {
			add("due_date", "must be YYYY-MM-DD")
		}
	}
	if c := p.Confidence.Value; c != nil && (*c < 0 || *c > 1) {
		add("confidence", "must be between 0 and 1")
	}
	if pg := p.SourcePage.Value; pg != nil && *pg < 1 {
		add("source_page", "must be positive")
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
