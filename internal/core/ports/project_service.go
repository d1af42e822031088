package ports

import (
	"context"

	"github.com/atelieranj/client-portal/internal/core/domain"
)

// BriefInput is the client's initial project brief.
type BriefInput struct {
	ProjectTitle      string
	ProjectLocation   string
	ProjectType       string
	Budget            float64
	Timeline          string
	Requirements      string
	InspirationImages []string
}

// BookAppointmentInput carries a consultation booking request.
type BookAppointmentInput struct {
	ProjectID string
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
}

// SendProposalInput carries a staff proposal submission.
type SendProposalInput struct {
	ProjectID string
	Amount    float64
	File      string
}

// RecordPaymentInput carries a (simulated) gateway payment notification.
type RecordPaymentInput struct {
	ProjectID     string
	Amount        float64
	Gateway       string
	TransactionID string
}

// ShareConceptInput carries a design concept submission.
type ShareConceptInput struct {
	ProjectID string
	Files     []string
	Link      string
}

// SiteUpdateInput carries a construction progress entry.
type SiteUpdateInput struct {
	ProjectID          string
	Title              string
	Notes              string
	ProgressImages     []string
	ProgressPercentage int
}

// ProjectService is the workflow engine's operation surface. Every call
// authorizes the actor, loads the aggregate, applies the pure transition, and
// writes the full record back.
type ProjectService interface {
	CreateProject(ctx context.Context, actor domain.Actor, brief BriefInput) (*domain.Project, error)
	GetProject(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, actor domain.Actor) ([]*domain.Project, error)

	BookAppointment(ctx context.Context, actor domain.Actor, in BookAppointmentInput) (*domain.Project, error)
	ConfirmAppointment(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error)

	SendProposal(ctx context.Context, actor domain.Actor, in SendProposalInput) (*domain.Project, error)
	ApproveProposal(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error)
	AcceptProposal(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error)
	RequestProposalRevision(ctx context.Context, actor domain.Actor, projectID, notes string) (*domain.Project, error)

	RecordPayment(ctx context.Context, actor domain.Actor, in RecordPaymentInput) (*domain.Project, error)
	VerifyPayment(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error)

	ShareConcept(ctx context.Context, actor domain.Actor, in ShareConceptInput) (*domain.Project, error)
	ApproveConcept(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error)
	ApproveClientConcept(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error)

	PostSiteUpdate(ctx context.Context, actor domain.Actor, in SiteUpdateInput) (*domain.Project, error)
	ApproveSiteUpdate(ctx context.Context, actor domain.Actor, projectID, updateID string) (*domain.Project, error)

	FinalizeHandover(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error)

	// ApprovalQueue derives the set of projects with anything pending
	// superadmin action by scanning; it is never a stored field.
	ApprovalQueue(ctx context.Context, actor domain.Actor) ([]domain.PendingApprovals, error)
}
