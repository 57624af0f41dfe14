package evidence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

// UploadEvidence records metadata for a file attached to an obligation. Unless
// the strict reference policy is on, the obligation id is stored unchecked.
func (s *Service) UploadEvidence(ctx context.Context, input UploadEvidenceInput) (*domain.Evidence, error) {
	now := s.now()

	var created *domain.Evidence
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if s.policy.StrictReferences {
			if _, err := s.obligations.GetByID(txCtx, input.ObligationID); err != nil {
				return fmt.Errorf("upload evidence: %w", err)
			}
		}

		var createErr error
		created, createErr = s.evidence.Create(txCtx, &domain.Evidence{
			ObligationID: input.ObligationID,
			Filename:     input.Filename,
			FilePath:     s.FilePath(input.Filename),
			UploadedAt:   now,
			Note:         input.Note,
		})
		if createErr != nil {
			return fmt.Errorf("upload evidence: %w", createErr)
		}

		details := map[string]any{
			"filename":      input.Filename,
			"obligation_id": input.ObligationID,
		}
		if input.Note != nil {
			details["note"] = *input.Note
		}
		if input.SizeBytes > 0 {
			details["size_bytes"] = input.SizeBytes
		}
		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			EntityType: domain.EntityTypeEvidence,
			EntityID:   created.ID,
			Action:     domain.AuditActionUploaded,
			Details:    details,
			At:         now,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "evidence uploaded",
		slog.Int64("evidence_id", created.ID),
		slog.Int64("obligation_id", created.ObligationID),
		slog.String("filename", created.Filename),
	)

	return created, nil
}
