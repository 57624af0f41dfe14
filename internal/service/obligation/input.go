package obligation

import "github.com/heartmarshall/covenantops-backend/internal/domain"

// CreateObligationInput holds the parameters for creating an obligation.
type CreateObligationInput struct {
	LoanID int64
	Fields domain.ObligationPatch
}

// UpdateObligationInput holds a partial update for one obligation.
type UpdateObligationInput struct {
	ObligationID int64
	Fields       domain.ObligationPatch
}

// Validate enforces the strict status policy. Other fields are trusted as given.
func (i UpdateObligationInput) Validate(p Policy) error {
	if p.StrictStatusTransitions && i.Fields.Status != nil {
		return domain.NewValidationError("status", "use complete or reopen to change status")
	}
	return nil
}
