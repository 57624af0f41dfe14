package evidence

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

type evidenceRepo interface {
	ListByObligation(ctx context.Context, obligationID int64) ([]domain.Evidence, error)
	Create(ctx context.Context, e *domain.Evidence) (*domain.Evidence, error)
}

type obligationRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Obligation, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DefaultPathPrefix is the virtual directory evidence paths are derived under.
const DefaultPathPrefix = "/demo/evidence/"

// Policy tunes evidence reference checks and path derivation.
type Policy struct {
	// StrictReferences makes UploadEvidence fail with ErrNotFound for an unknown obligation.
	StrictReferences bool
	// PathPrefix is prepended to the file name to form file_path.
	PathPrefix string
}

// Service provides evidence operations.
type Service struct {
	evidence    evidenceRepo
	obligations obligationRepo
	audit       auditLogger
	tx          txManager
	policy      Policy
	clock       func() time.Time
	log         *slog.Logger
}

// NewService creates a new Evidence service.
func NewService(
	log *slog.Logger,
	evidence evidenceRepo,
	obligations obligationRepo,
	audit auditLogger,
	tx txManager,
	clock func() time.Time,
	policy Policy,
) *Service {
	if policy.PathPrefix == "" {
		policy.PathPrefix = DefaultPathPrefix
	}
	return &Service{
		evidence:    evidence,
		obligations: obligations,
		audit:       audit,
		tx:          tx,
		policy:      policy,
		clock:       clock,
		log:         log.With("service", "evidence"),
	}
}

// FilePath derives the stored path for filename.
func (s *Service) FilePath(filename string) string {
	return s.policy.PathPrefix + filename
}

func (s *Service) now() time.Time {
	return s.clock().UTC()
}
