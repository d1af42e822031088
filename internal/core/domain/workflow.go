package domain

import (
	"fmt"
	"time"
)

// Workflow transition rules for the project lifecycle. Every method mutates
// the aggregate in memory only; persistence is the caller's concern. The
// common tie-break: when a non-superadmin staff action would advance the
// project status, the status is left unchanged and the embedded entity's own
// sub-status records the pending state until a superadmin approves it.

// ProposalValidity is how long a proposal remains valid after being sent.
const ProposalValidity = 7 * 24 * time.Hour

// BookAppointment attaches a pending appointment. The project status stays at
// Appointment Needed until a superadmin confirms the slot. A re-booking
// replaces the previous appointment.
func (p *Project) BookAppointment(id, date, timeSlot string, now time.Time) error {
	if date == "" || timeSlot == "" {
		return fmt.Errorf("%w: date and time are required", ErrValidation)
	}
	dt, err := time.Parse("2006-01-02T15:04", date+"T"+timeSlot)
	if err != nil {
		dt = now.UTC()
	}
	p.Appointment = &Appointment{
		ID:       id,
		ClientID: p.ClientID,
		Date:     date,
		Time:     timeSlot,
		DateTime: dt.UTC(),
		Status:   AppointmentPending,
	}
	p.Status = StatusAppointmentNeeded
	return nil
}

// ConfirmAppointment marks the pending appointment confirmed and advances the
// project to Consultation Done.
func (p *Project) ConfirmAppointment() error {
	if p.Appointment == nil || p.Appointment.Status != AppointmentPending {
		return fmt.Errorf("%w: no pending appointment", ErrInvalidTransition)
	}
	p.Appointment.Status = AppointmentConfirmed
	p.Status = StatusConsultationDone
	return nil
}

// AttachProposal replaces the active proposal. A superadmin sends it
// immediately and advances the project to Proposal Sent; any other staff
// member leaves the status untouched and the proposal parked in
// pending_approval. The payment status resets to unpaid either way.
func (p *Project) AttachProposal(id, createdByID string, createdByRole Role, amount float64, file string, now time.Time) error {
	if amount < 0 {
		return fmt.Errorf("%w: amount must be non-negative", ErrValidation)
	}
	isSuper := createdByRole == RoleSuperadmin
	status := ProposalPendingApproval
	if isSuper {
		status = ProposalSent
	}
	p.Proposal = &Proposal{
		ID:           id,
		ProjectID:    p.ID,
		File:         file,
		Amount:       amount,
		ValidityDate: now.UTC().Add(ProposalValidity),
		Status:       status,
		SentAt:       now.UTC(),
		CreatedByID:  createdByID,
	}
	p.InvoiceAmount = amount
	p.PaymentStatus = PaymentUnpaid
	if isSuper {
		p.Status = StatusProposalSent
	}
	return nil
}

// ApproveProposal releases a pending proposal to the client. Repeated
// approval is a no-op with the same end state.
func (p *Project) ApproveProposal() error {
	if p.Proposal == nil {
		return fmt.Errorf("%w: no proposal to approve", ErrInvalidTransition)
	}
	p.Proposal.Status = ProposalSent
	p.Status = StatusProposalSent
	return nil
}

// AcceptProposal is the client accepting the sent proposal, moving the
// project to Payment Pending.
func (p *Project) AcceptProposal() error {
	if p.Proposal == nil || p.Proposal.Status != ProposalSent {
		return fmt.Errorf("%w: no sent proposal to accept", ErrInvalidTransition)
	}
	p.Proposal.Status = ProposalAccepted
	p.Status = StatusPaymentPending
	return nil
}

// RequestProposalRevision records the client's objection. The notes overwrite
// any previous revision notes; no history is kept.
func (p *Project) RequestProposalRevision(notes string) error {
	if notes == "" {
		return fmt.Errorf("%w: revision notes are required", ErrValidation)
	}
	if p.Proposal == nil {
		return fmt.Errorf("%w: no proposal to revise", ErrInvalidTransition)
	}
	p.Proposal.Status = ProposalRevisionRequested
	p.Proposal.RevisionNotes = notes
	p.Status = StatusProposalRevision
	return nil
}

// RecordPayment logs a gateway payment attempt and flags the deposit as
// awaiting superadmin verification. The project status does not move until
// verification.
func (p *Project) RecordPayment(rec PaymentRecord) error {
	if p.Proposal == nil {
		return fmt.Errorf("%w: no proposal amount to pay against", ErrInvalidTransition)
	}
	p.PaymentRecords = append(p.PaymentRecords, rec)
	p.PaymentStatus = PaymentPendingVerification
	return nil
}

// VerifyPayment confirms receipt of the deposit and advances to Paid.
func (p *Project) VerifyPayment() error {
	if p.PaymentStatus != PaymentPendingVerification {
		return fmt.Errorf("%w: no payment awaiting verification", ErrInvalidTransition)
	}
	p.PaymentStatus = PaymentPaid
	p.Status = StatusPaid
	return nil
}

// ShareConcept stores the design visualization deliverable. A superadmin's
// concept is approved on the spot and moves the project to Concept Shared;
// other staff leave it unapproved with the status unchanged. Any previous
// client verdict is cleared.
func (p *Project) ShareConcept(files []string, link string, byRole Role) error {
	if len(files) == 0 && link == "" {
		return fmt.Errorf("%w: concept files or link required", ErrValidation)
	}
	isSuper := byRole == RoleSuperadmin
	p.ConceptFiles = files
	p.ConceptLink = link
	p.ConceptIsApproved = isSuper
	p.ClientApproval = ""
	if isSuper {
		p.Status = StatusConceptShared
	}
	return nil
}

// ApproveConcept releases a staff-shared concept to the client.
func (p *Project) ApproveConcept() error {
	if len(p.ConceptFiles) == 0 && p.ConceptLink == "" {
		return fmt.Errorf("%w: no concept to approve", ErrInvalidTransition)
	}
	p.ConceptIsApproved = true
	p.Status = StatusConceptShared
	return nil
}

// ApproveClientConcept records the client signing off on the shared concept.
func (p *Project) ApproveClientConcept() error {
	if !p.ConceptIsApproved {
		return fmt.Errorf("%w: concept not yet released", ErrInvalidTransition)
	}
	p.ClientApproval = "yes"
	p.Status = StatusConceptApproved
	return nil
}

// AddSiteUpdate prepends a construction update. A superadmin's update is
// approved immediately and drives percent_complete and the project status
// (Inspection at 100%, Construction below); other staff's updates change
// nothing beyond the list until approved separately.
func (p *Project) AddSiteUpdate(u Update, byRole Role) error {
	if u.ProgressPercentage < 0 || u.ProgressPercentage > 100 {
		return fmt.Errorf("%w: progress percentage must be within [0,100]", ErrValidation)
	}
	isSuper := byRole == RoleSuperadmin
	u.IsApproved = isSuper
	p.ConstructionUpdates = append([]Update{u}, p.ConstructionUpdates...)
	if isSuper {
		p.PercentComplete = u.ProgressPercentage
		if p.Status != StatusHandover && p.Status != StatusCompleted {
			p.Status = constructionStage(u.ProgressPercentage)
		}
	}
	return nil
}

// ApproveSiteUpdate approves a pending update by id and recomputes
// percent_complete and the project stage from that update's percentage.
// A regression below the current percentage is accepted: approved updates may
// correct an earlier overstatement.
func (p *Project) ApproveSiteUpdate(updateID string) error {
	for i := range p.ConstructionUpdates {
		if p.ConstructionUpdates[i].ID != updateID {
			continue
		}
		p.ConstructionUpdates[i].IsApproved = true
		p.PercentComplete = p.ConstructionUpdates[i].ProgressPercentage
		p.Status = constructionStage(p.PercentComplete)
		return nil
	}
	return ErrUpdateNotFound
}

// FinalizeHandover closes the project.
func (p *Project) FinalizeHandover(now time.Time) error {
	if p.Status == StatusCompleted {
		return fmt.Errorf("%w: project already completed", ErrInvalidTransition)
	}
	done := now.UTC()
	p.Status = StatusCompleted
	p.CompletionDate = &done
	return nil
}

func constructionStage(pct int) ProjectStatus {
	if pct >= 100 {
		return StatusInspection
	}
	return StatusConstruction
}
