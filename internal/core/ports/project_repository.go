package ports

import (
	"context"

	"github.com/atelieranj/client-portal/internal/core/domain"
)

// ProjectFilter scopes project listings. ClientID empty means no scoping
// (staff view); non-empty restricts to that client's projects (RBAC is
// enforced by the service layer, the repository just applies the filter).
type ProjectFilter struct {
	ClientID string
	Status   domain.ProjectStatus // optional: filter by lifecycle stage
}

// ProjectRepository defines persistence for the project aggregate. Update is
// full replace-on-write: the workflow engine operates on a read copy and
// writes the whole record back. Projects are never deleted.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
}
