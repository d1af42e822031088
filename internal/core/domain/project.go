package domain

import "time"

// ProjectStatus represents the lifecycle stage of a project.
type ProjectStatus string

const (
	StatusInitialForm       ProjectStatus = "Initial Form"
	StatusAppointmentNeeded ProjectStatus = "Appointment Needed"
	StatusConsultationDone  ProjectStatus = "Consultation Done"
	StatusProposalSent      ProjectStatus = "Proposal Sent"
	StatusProposalRevision  ProjectStatus = "Proposal Revision"
	StatusPaymentPending    ProjectStatus = "Payment Pending"
	StatusPaid              ProjectStatus = "Paid"
	StatusConceptShared     ProjectStatus = "Concept Shared"
	StatusConceptApproved   ProjectStatus = "Concept Approved"
	StatusConstruction      ProjectStatus = "Construction"
	StatusInspection        ProjectStatus = "Inspection"
	StatusHandover          ProjectStatus = "Handover"
	StatusCompleted         ProjectStatus = "Completed"
)

// PaymentStatus tracks the deposit payment on a project.
type PaymentStatus string

const (
	PaymentUnpaid              PaymentStatus = "unpaid"
	PaymentPendingVerification PaymentStatus = "pending_verification"
	PaymentPaid                PaymentStatus = "paid"
	PaymentFailed              PaymentStatus = "failed"
)

// AppointmentStatus is the lifecycle of a consultation booking.
type AppointmentStatus string

const (
	AppointmentPending     AppointmentStatus = "pending"
	AppointmentConfirmed   AppointmentStatus = "confirmed"
	AppointmentRescheduled AppointmentStatus = "rescheduled"
	AppointmentCancelled   AppointmentStatus = "cancelled"
	AppointmentCompleted   AppointmentStatus = "completed"
)

// ProposalStatus is the lifecycle of a cost proposal.
type ProposalStatus string

const (
	ProposalSent              ProposalStatus = "sent"
	ProposalAccepted          ProposalStatus = "accepted"
	ProposalRejected          ProposalStatus = "rejected"
	ProposalRevisionRequested ProposalStatus = "revision_requested"
	ProposalPendingApproval   ProposalStatus = "pending_approval"
)

// InitialForm is the brief a client submits to open a project.
type InitialForm struct {
	ProjectTitle      string    `json:"project_title" bson:"project_title"`
	ProjectLocation   string    `json:"project_location" bson:"project_location"`
	ProjectType       string    `json:"project_type" bson:"project_type"`
	Budget            float64   `json:"budget" bson:"budget"`
	Timeline          string    `json:"timeline" bson:"timeline"`
	Requirements      string    `json:"requirements" bson:"requirements"`
	InspirationImages []string  `json:"inspiration_images" bson:"inspiration_images"`
	SubmittedAt       time.Time `json:"submitted_at" bson:"submitted_at"`
}

// Appointment is the consultation booking embedded in a project.
// A project holds at most one; a new booking replaces the previous one.
type Appointment struct {
	ID       string            `json:"id" bson:"id"`
	ClientID string            `json:"client_id" bson:"client_id"`
	StaffID  string            `json:"staff_id,omitempty" bson:"staff_id,omitempty"`
	Date     string            `json:"date" bson:"date"` // YYYY-MM-DD
	Time     string            `json:"time" bson:"time"` // HH:MM
	DateTime time.Time         `json:"datetime" bson:"datetime"`
	Status   AppointmentStatus `json:"status" bson:"status"`
	Notes    string            `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Proposal is the cost estimate embedded in a project. Replaced wholesale on
// re-send; no revision history is kept.
type Proposal struct {
	ID            string         `json:"id" bson:"id"`
	ProjectID     string         `json:"project_id" bson:"project_id"`
	File          string         `json:"proposal_file" bson:"proposal_file"`
	Amount        float64        `json:"amount" bson:"amount"`
	ValidityDate  time.Time      `json:"validity_date" bson:"validity_date"`
	Status        ProposalStatus `json:"status" bson:"status"`
	SentAt        time.Time      `json:"sent_at" bson:"sent_at"`
	RevisionNotes string         `json:"revision_notes,omitempty" bson:"revision_notes,omitempty"`
	CreatedByID   string         `json:"created_by_id" bson:"created_by_id"`
}

// Update is a construction/site progress entry. Unlike the appointment and
// proposal these accumulate, most recent first.
type Update struct {
	ID                 string    `json:"id" bson:"id"`
	ProjectID          string    `json:"project_id" bson:"project_id"`
	Title              string    `json:"update_title" bson:"update_title"`
	Notes              string    `json:"update_notes" bson:"update_notes"`
	ProgressImages     []string  `json:"progress_images" bson:"progress_images"`
	ProgressPercentage int       `json:"progress_percentage" bson:"progress_percentage"`
	CreatedByID        string    `json:"created_by_id" bson:"created_by_id"`
	CreatedAt          time.Time `json:"created_at" bson:"created_at"`
	IsApproved         bool      `json:"is_approved" bson:"is_approved"`
}

// PaymentRecord is an audit entry appended for every payment attempt against
// the simulated gateway.
type PaymentRecord struct {
	ID            string    `json:"id" bson:"id"`
	ProjectID     string    `json:"project_id" bson:"project_id"`
	Amount        float64   `json:"amount" bson:"amount"`
	Gateway       string    `json:"gateway" bson:"gateway"`
	Status        string    `json:"status" bson:"status"`
	TransactionID string    `json:"transaction_id" bson:"transaction_id"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// Project is the central aggregate. It is created when a client submits a
// brief, mutated exclusively through workflow transitions, and never deleted.
type Project struct {
	ID                  string          `json:"id" bson:"_id,omitempty"`
	ClientID            string          `json:"client_id" bson:"client_id"`
	Title               string          `json:"project_title" bson:"project_title"`
	Status              ProjectStatus   `json:"status" bson:"status"`
	InitialForm         *InitialForm    `json:"initial_form,omitempty" bson:"initial_form,omitempty"`
	Appointment         *Appointment    `json:"appointment,omitempty" bson:"appointment,omitempty"`
	ConsultationNotes   string          `json:"consultation_notes,omitempty" bson:"consultation_notes,omitempty"`
	Proposal            *Proposal       `json:"proposal,omitempty" bson:"proposal,omitempty"`
	InvoiceAmount       float64         `json:"invoice_amount,omitempty" bson:"invoice_amount,omitempty"`
	PaymentStatus       PaymentStatus   `json:"payment_status" bson:"payment_status"`
	PaymentRecords      []PaymentRecord `json:"payment_records,omitempty" bson:"payment_records,omitempty"`
	ConceptFiles        []string        `json:"concept_design_file,omitempty" bson:"concept_design_file,omitempty"`
	ConceptLink         string          `json:"concept_canva_link,omitempty" bson:"concept_canva_link,omitempty"`
	ConceptIsApproved   bool            `json:"concept_is_approved" bson:"concept_is_approved"`
	ClientApproval      string          `json:"client_approval,omitempty" bson:"client_approval,omitempty"`
	ChangeRequestNotes  string          `json:"client_change_request_notes,omitempty" bson:"client_change_request_notes,omitempty"`
	ChangeRequestFiles  []string        `json:"client_change_request_files,omitempty" bson:"client_change_request_files,omitempty"`
	ConstructionUpdates []Update        `json:"construction_updates" bson:"construction_updates"`
	PercentComplete     int             `json:"percent_complete" bson:"percent_complete"`
	HandoverFile        string          `json:"handover_file,omitempty" bson:"handover_file,omitempty"`
	CompletionDate      *time.Time      `json:"completion_date,omitempty" bson:"completion_date,omitempty"`
	CreatedAt           time.Time       `json:"created_at" bson:"created_at"`
}

// NewProject builds a project from a client brief. The brief itself satisfies
// the Initial Form stage, so a new project starts at Appointment Needed.
func NewProject(id, clientID string, form InitialForm, now time.Time) *Project {
	return &Project{
		ID:                  id,
		ClientID:            clientID,
		Title:               form.ProjectTitle,
		Status:              StatusAppointmentNeeded,
		InitialForm:         &form,
		PaymentStatus:       PaymentUnpaid,
		ConstructionUpdates: []Update{},
		PercentComplete:     0,
		CreatedAt:           now.UTC(),
	}
}

// PendingApprovals describes everything on a project awaiting superadmin
// action. The approval queue is derived by scanning projects, never stored.
type PendingApprovals struct {
	ProjectID    string   `json:"project_id"`
	ProjectTitle string   `json:"project_title"`
	Proposal     bool     `json:"proposal"`
	Concept      bool     `json:"concept"`
	Payment      bool     `json:"payment"`
	Appointment  bool     `json:"appointment"`
	UpdateIDs    []string `json:"update_ids,omitempty"`
}

// Pending reports the approvals outstanding on p, and whether there are any.
func (p *Project) Pending() (PendingApprovals, bool) {
	pa := PendingApprovals{ProjectID: p.ID, ProjectTitle: p.Title}
	if p.Proposal != nil && p.Proposal.Status == ProposalPendingApproval {
		pa.Proposal = true
	}
	if len(p.ConceptFiles) > 0 && !p.ConceptIsApproved {
		pa.Concept = true
	}
	if p.PaymentStatus == PaymentPendingVerification {
		pa.Payment = true
	}
	if p.Appointment != nil && p.Appointment.Status == AppointmentPending {
		pa.Appointment = true
	}
	for _, u := range p.ConstructionUpdates {
		if !u.IsApproved {
			pa.UpdateIDs = append(pa.UpdateIDs, u.ID)
		}
	}
	any := pa.Proposal || pa.Concept || pa.Payment || pa.Appointment || len(pa.UpdateIDs) > 0
	return pa, any
}
