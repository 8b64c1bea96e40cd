package repository

import (
	"context"

	"github.com/diillson/auditaxs-dashboard-go/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/audit_repository_mock.go -package=mocks . AuditRepository

// AuditRepository defines the interface for the remote Auditaxs API.
type AuditRepository interface {
	ListAudits(ctx context.Context) ([]entity.Audit, error)
	GetAudit(ctx context.Context, id string) (entity.Audit, error)

	// Details
	GetDetails(ctx context.Context, id string, page, pageSize int) (entity.PaginatedDetails, error)
	GetAllDetails(ctx context.Context, id string) ([]entity.DetailsRow, error)

	DeleteAudit(ctx context.Context, id string) error
}
