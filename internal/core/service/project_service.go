package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/atelieranj/client-portal/internal/core/domain"
	"github.com/atelieranj/client-portal/internal/core/policy"
	"github.com/atelieranj/client-portal/internal/core/ports"
)

// PaymentDedup abstracts the receipt idempotency store (Redis). The simulated
// gateway retries notifications; replays of the same transaction id must not
// append duplicate payment records.
type PaymentDedup interface {
	IsDuplicate(ctx context.Context, projectID, transactionID string) (bool, error)
	Mark(ctx context.Context, projectID, transactionID string) error
}

// ProjectService orchestrates the workflow engine: authorize, read, apply the
// pure transition, write the full record back. The repositories are the only
// I/O; the transition rules live on the domain aggregate.
type ProjectService struct {
	projects     ports.ProjectRepository
	users        ports.UserRepository
	availability ports.AvailabilityRepository
	dedup        PaymentDedup     // optional; nil disables replay protection
	dispatcher   ports.Dispatcher // optional; nil disables side channels
	log          zerolog.Logger
	now          func() time.Time
}

func NewProjectService(
	projects ports.ProjectRepository,
	users ports.UserRepository,
	availability ports.AvailabilityRepository,
	dedup PaymentDedup,
	dispatcher ports.Dispatcher,
	log zerolog.Logger,
) *ProjectService {
	return &ProjectService{
		projects:     projects,
		users:        users,
		availability: availability,
		dedup:        dedup,
		dispatcher:   dispatcher,
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CreateProject opens a project from a client brief. The brief satisfies the
// Initial Form stage, so the project starts at Appointment Needed.
func (s *ProjectService) CreateProject(ctx context.Context, actor domain.Actor, brief ports.BriefInput) (*domain.Project, error) {
	if err := policy.Authorize(actor, policy.ActionCreateProject, nil); err != nil {
		return nil, err
	}
	if brief.ProjectTitle == "" {
		return nil, fmt.Errorf("%w: project title is required", domain.ErrValidation)
	}

	now := s.now()
	form := domain.InitialForm{
		ProjectTitle:      brief.ProjectTitle,
		ProjectLocation:   brief.ProjectLocation,
		ProjectType:       brief.ProjectType,
		Budget:            brief.Budget,
		Timeline:          brief.Timeline,
		Requirements:      brief.Requirements,
		InspirationImages: brief.InspirationImages,
		SubmittedAt:       now,
	}
	project := domain.NewProject(uuid.NewString(), actor.ID, form, now)

	if err := s.projects.Create(ctx, project); err != nil {
		s.log.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	// Record ownership on the client account. The project is already
	// persisted; a failure here is logged, not fatal.
	if owner, err := s.users.FindByID(ctx, actor.ID); err == nil {
		owner.OwnedProjects = append(owner.OwnedProjects, project.ID)
		if err := s.users.Update(ctx, owner); err != nil {
			s.log.Warn().Err(err).Str("user_id", actor.ID).Msg("failed to record project ownership")
		}
		s.enqueue(ports.SideChannelJob{Kind: ports.JobSyncBrief, User: owner, Brief: &form, Project: project})
	}

	s.log.Info().Str("project_id", project.ID).Str("client_id", actor.ID).Msg("project created")
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error) {
	return s.load(ctx, actor, policy.ActionViewProject, projectID)
}

// ListProjects returns all projects for staff and only owned projects for a
// client, by pushing the client filter into the repository query.
func (s *ProjectService) ListProjects(ctx context.Context, actor domain.Actor) ([]*domain.Project, error) {
	filter := ports.ProjectFilter{}
	if !policy.IsStaff(actor.Role) {
		filter.ClientID = actor.ID
	}
	return s.projects.List(ctx, filter)
}

// BookAppointment attaches a pending consultation booking after checking the
// requested slot against the availability schedule.
func (s *ProjectService) BookAppointment(ctx context.Context, actor domain.Actor, in ports.BookAppointmentInput) (*domain.Project, error) {
	project, err := s.load(ctx, actor, policy.ActionBookAppointment, in.ProjectID)
	if err != nil {
		return nil, err
	}

	override, err := s.availability.FindByDate(ctx, in.Date)
	if err != nil {
		return nil, fmt.Errorf("book appointment: %w", err)
	}
	day := domain.Availability(in.Date, override)
	if !day.Available || !containsSlot(day.Slots, in.Time) {
		return nil, domain.ErrSlotUnavailable
	}

	if err := project.BookAppointment(uuid.NewString(), in.Date, in.Time, s.now()); err != nil {
		return nil, err
	}
	return s.save(ctx, project, "appointment booked")
}

func (s *ProjectService) ConfirmAppointment(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error) {
	project, err := s.load(ctx, actor, policy.ActionConfirmAppointment, projectID)
	if err != nil {
		return nil, err
	}
	if err := project.ConfirmAppointment(); err != nil {
		return nil, err
	}
	s.enqueueEmail(project, "appointment_confirmed")
	return s.save(ctx, project, "appointment confirmed")
}

func (s *ProjectService) SendProposal(ctx context.Context, actor domain.Actor, in ports.SendProposalInput) (*domain.Project, error) {
	project, err := s.load(ctx, actor, policy.ActionSendProposal, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if err := project.AttachProposal(uuid.NewString(), actor.ID, actor.Role, in.Amount, in.File, s.now()); err != nil {
		return nil, err
	}
	if project.Proposal.Status == domain.ProposalSent {
		s.enqueueEmail(project, "proposal_sent")
	}
	return s.save(ctx, project, "proposal submitted")
}

func (s *ProjectService) ApproveProposal(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error) {
	project, err := s.load(ctx, actor, policy.ActionApproveProposal, projectID)
	if err != nil {
		return nil, err
	}
	if err := project.ApproveProposal(); err != nil {
		return nil, err
	}
	s.enqueueEmail(project, "proposal_sent")
	return s.save(ctx, project, "proposal approved")
}

func (s *ProjectService) AcceptProposal(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error) {
	project, err := s.load(ctx, actor, policy.ActionAcceptProposal, projectID)
	if err != nil {
		return nil, err
	}
	if err := project.AcceptProposal(); err != nil {
		return nil, err
	}
	return s.save(ctx, project, "proposal accepted")
}

func (s *ProjectService) RequestProposalRevision(ctx context.Context, actor domain.Actor, projectID, notes string) (*domain.Project, error) {
	project, err := s.load(ctx, actor, policy.ActionRequestRevision, projectID)
	if err != nil {
		return nil, err
	}
	if err := project.RequestProposalRevision(notes); err != nil {
		return nil, err
	}
	return s.save(ctx, project, "proposal revision requested")
}

// RecordPayment handles a notification from the simulated gateway. Replays of
// the same transaction id return the current project state without appending
// a second record.
func (s *ProjectService) RecordPayment(ctx context.Context, actor domain.Actor, in ports.RecordPaymentInput) (*domain.Project, error) {
	project, err := s.load(ctx, actor, policy.ActionRecordPayment, in.ProjectID)
	if err != nil {
		return nil, err
	}

	if s.dedup != nil && in.TransactionID != "" {
		isDup, derr := s.dedup.IsDuplicate(ctx, in.ProjectID, in.TransactionID)
		if derr != nil {
			s.log.Warn().Err(derr).Str("project_id", in.ProjectID).Msg("payment dedup check failed, processing anyway")
		} else if isDup {
			s.log.Debug().Str("project_id", in.ProjectID).Str("transaction_id", in.TransactionID).Msg("duplicate payment notification skipped")
			return project, nil
		}
	}

	rec := domain.PaymentRecord{
		ID:            uuid.NewString(),
		ProjectID:     project.ID,
		Amount:        in.Amount,
		Gateway:       in.Gateway,
		Status:        "pending",
		TransactionID: in.TransactionID,
		CreatedAt:     s.now(),
	}
	if err := project.RecordPayment(rec); err != nil {
		return nil, err
	}

	if s.dedup != nil && in.TransactionID != "" {
		if err := s.dedup.Mark(ctx, in.ProjectID, in.TransactionID); err != nil {
			s.log.Warn().Err(err).Str("project_id", in.ProjectID).Msg("failed to set payment dedup key")
		}
	}
	return s.save(ctx, project, "payment recorded")
}

func (s *ProjectService) VerifyPayment(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error) {
	project, err := s.load(ctx, actor, policy.ActionVerifyPayment, projectID)
	if err != nil {
		return nil, err
	}
	if err := project.VerifyPayment(); err != nil {
		return nil, err
	}
	s.enqueueEmail(project, "payment_verified")
	return s.save(ctx, project, "payment verified")
}

func (s *ProjectService) ShareConcept(ctx context.Context, actor domain.Actor, in ports.ShareConceptInput) (*domain.Project, error) {
	project, err := s.load(ctx, actor, policy.ActionShareConcept, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if err := project.ShareConcept(in.Files, in.Link, actor.Role); err != nil {
		return nil, err
	}
	if project.ConceptIsApproved {
		s.enqueueEmail(project, "concept_shared")
	}
	return s.save(ctx, project, "concept shared")
}

func (s *ProjectService) ApproveConcept(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error) {
	project, err := s.load(ctx, actor, policy.ActionApproveConcept, projectID)
	if err != nil {
		return nil, err
	}
	if err := project.ApproveConcept(); err != nil {
		return nil, err
	}
	s.enqueueEmail(project, "concept_shared")
	return s.save(ctx, project, "concept approved")
}

func (s *ProjectService) ApproveClientConcept(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error) {
	project, err := s.load(ctx, actor, policy.ActionApproveClientConcept, projectID)
	if err != nil {
		return nil, err
	}
	if err := project.ApproveClientConcept(); err != nil {
		return nil, err
	}
	return s.save(ctx, project, "concept approved by client")
}

func (s *ProjectService) PostSiteUpdate(ctx context.Context, actor domain.Actor, in ports.SiteUpdateInput) (*domain.Project, error) {
	project, err := s.load(ctx, actor, policy.ActionPostSiteUpdate, in.ProjectID)
	if err != nil {
		return nil, err
	}
	update := domain.Update{
		ID:                 uuid.NewString(),
		ProjectID:          project.ID,
		Title:              in.Title,
		Notes:              in.Notes,
		ProgressImages:     in.ProgressImages,
		ProgressPercentage: in.ProgressPercentage,
		CreatedByID:        actor.ID,
		CreatedAt:          s.now(),
	}
	if err := project.AddSiteUpdate(update, actor.Role); err != nil {
		return nil, err
	}
	return s.save(ctx, project, "site update posted")
}

func (s *ProjectService) ApproveSiteUpdate(ctx context.Context, actor domain.Actor, projectID, updateID string) (*domain.Project, error) {
	project, err := s.load(ctx, actor, policy.ActionApproveSiteUpdate, projectID)
	if err != nil {
		return nil, err
	}
	if err := project.ApproveSiteUpdate(updateID); err != nil {
		return nil, err
	}
	return s.save(ctx, project, "site update approved")
}

func (s *ProjectService) FinalizeHandover(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error) {
	project, err := s.load(ctx, actor, policy.ActionFinalizeHandover, projectID)
	if err != nil {
		return nil, err
	}
	if err := project.FinalizeHandover(s.now()); err != nil {
		return nil, err
	}
	s.enqueueEmail(project, "handover_complete")
	return s.save(ctx, project, "project completed")
}

// ApprovalQueue scans all projects for pending proposals, concepts, payments,
// appointments, and site updates awaiting superadmin action.
func (s *ProjectService) ApprovalQueue(ctx context.Context, actor domain.Actor) ([]domain.PendingApprovals, error) {
	if err := policy.Authorize(actor, policy.ActionViewApprovals, nil); err != nil {
		return nil, err
	}
	projects, err := s.projects.List(ctx, ports.ProjectFilter{})
	if err != nil {
		return nil, err
	}
	queue := []domain.PendingApprovals{}
	for _, p := range projects {
		if pa, any := p.Pending(); any {
			queue = append(queue, pa)
		}
	}
	return queue, nil
}

// load fetches the project and authorizes the actor against it before any
// mutation. Authorization failures surface before the caller sees the record.
func (s *ProjectService) load(ctx context.Context, actor domain.Actor, action policy.Action, projectID string) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor, action, project); err != nil {
		return nil, err
	}
	return project, nil
}

// save writes the mutated aggregate back wholesale.
func (s *ProjectService) save(ctx context.Context, project *domain.Project, msg string) (*domain.Project, error) {
	if err := s.projects.Update(ctx, project); err != nil {
		s.log.Error().Err(err).Str("project_id", project.ID).Msg("failed to persist project")
		return nil, err
	}
	s.log.Info().
		Str("project_id", project.ID).
		Str("status", string(project.Status)).
		Msg(msg)
	return project, nil
}

func (s *ProjectService) enqueue(job ports.SideChannelJob) {
	if s.dispatcher != nil {
		s.dispatcher.Enqueue(job)
	}
}

func (s *ProjectService) enqueueEmail(project *domain.Project, kind string) {
	s.enqueue(ports.SideChannelJob{Kind: ports.JobEmailCopy, Project: project, EmailKind: kind})
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
