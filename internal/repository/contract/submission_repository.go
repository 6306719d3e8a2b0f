package contract

import (
	"context"

	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *entity.Submission) error
	UpdatePayload(ctx context.Context, id uuid.UUID, payload []byte) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Submission, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Submission, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Delete(ctx context.Context, specs ...specification.Specification) (int64, error)
}
