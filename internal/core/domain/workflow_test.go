package domain

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC) // a Monday

func newTestProject() *Project {
	form := InitialForm{
		ProjectTitle:    "Lakehouse",
		ProjectLocation: "Lagos",
		ProjectType:     "residential",
		Budget:          250000,
		SubmittedAt:     testNow,
	}
	return NewProject("proj_1", "client_1", form, testNow)
}

// ---------------------------------------------------------------------------
// Project creation
// ---------------------------------------------------------------------------

func TestNewProject_StartsAtAppointmentNeeded(t *testing.T) {
	p := newTestProject()

	if p.Status != StatusAppointmentNeeded {
		t.Errorf("expected status %q, got %q", StatusAppointmentNeeded, p.Status)
	}
	if p.PaymentStatus != PaymentUnpaid {
		t.Errorf("expected payment status %q, got %q", PaymentUnpaid, p.PaymentStatus)
	}
	if p.PercentComplete != 0 {
		t.Errorf("expected percent_complete 0, got %d", p.PercentComplete)
	}
	if p.Title != "Lakehouse" {
		t.Errorf("title not copied from brief: %q", p.Title)
	}
	if p.InitialForm == nil {
		t.Fatal("initial form must be embedded")
	}
}

// ---------------------------------------------------------------------------
// Appointment
// ---------------------------------------------------------------------------

func TestBookAppointment_PendingUntilConfirmed(t *testing.T) {
	p := newTestProject()

	if err := p.BookAppointment("appt_1", "2026-03-09", "10:00", testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Appointment == nil {
		t.Fatal("appointment not attached")
	}
	if p.Appointment.Status != AppointmentPending {
		t.Errorf("expected pending appointment, got %q", p.Appointment.Status)
	}
	// Booking alone does not advance the project.
	if p.Status != StatusAppointmentNeeded {
		t.Errorf("status must stay %q until confirmation, got %q", StatusAppointmentNeeded, p.Status)
	}
	want := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	if !p.Appointment.DateTime.Equal(want) {
		t.Errorf("datetime: want %v, got %v", want, p.Appointment.DateTime)
	}
}

func TestBookAppointment_RebookingReplaces(t *testing.T) {
	p := newTestProject()
	_ = p.BookAppointment("appt_1", "2026-03-09", "10:00", testNow)
	_ = p.BookAppointment("appt_2", "2026-03-10", "14:00", testNow)

	if p.Appointment.ID != "appt_2" {
		t.Errorf("rebooking must replace: got %q", p.Appointment.ID)
	}
	if p.Appointment.Status != AppointmentPending {
		t.Errorf("replacement starts pending, got %q", p.Appointment.Status)
	}
}

func TestBookAppointment_MissingFields(t *testing.T) {
	p := newTestProject()
	if err := p.BookAppointment("appt_1", "", "10:00", testNow); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestConfirmAppointment_AdvancesToConsultationDone(t *testing.T) {
	p := newTestProject()
	_ = p.BookAppointment("appt_1", "2026-03-09", "10:00", testNow)

	if err := p.ConfirmAppointment(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Appointment.Status != AppointmentConfirmed {
		t.Errorf("expected confirmed, got %q", p.Appointment.Status)
	}
	if p.Status != StatusConsultationDone {
		t.Errorf("expected %q, got %q", StatusConsultationDone, p.Status)
	}
}

func TestConfirmAppointment_NothingPending(t *testing.T) {
	p := newTestProject()
	if err := p.ConfirmAppointment(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Proposal
// ---------------------------------------------------------------------------

func TestAttachProposal_BySuperadmin_SendsImmediately(t *testing.T) {
	p := newTestProject()

	if err := p.AttachProposal("prop_1", "admin_1", RoleSuperadmin, 50000, "proposal.pdf", testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Proposal.Status != ProposalSent {
		t.Errorf("superadmin proposal must go straight to sent, got %q", p.Proposal.Status)
	}
	if p.Status != StatusProposalSent {
		t.Errorf("expected %q, got %q", StatusProposalSent, p.Status)
	}
	if p.InvoiceAmount != 50000 {
		t.Errorf("invoice amount: want 50000, got %v", p.InvoiceAmount)
	}
	wantValidity := testNow.Add(ProposalValidity)
	if !p.Proposal.ValidityDate.Equal(wantValidity) {
		t.Errorf("validity: want %v, got %v", wantValidity, p.Proposal.ValidityDate)
	}
}

func TestAttachProposal_ByWorker_ParksPendingApproval(t *testing.T) {
	p := newTestProject()

	if err := p.AttachProposal("prop_1", "worker_1", RoleWorker, 50000, "proposal.pdf", testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Proposal.Status != ProposalPendingApproval {
		t.Errorf("worker proposal must park pending approval, got %q", p.Proposal.Status)
	}
	// The client-visible status does not move.
	if p.Status != StatusAppointmentNeeded {
		t.Errorf("status must be unchanged, got %q", p.Status)
	}
}

func TestAttachProposal_NegativeAmount(t *testing.T) {
	p := newTestProject()
	if err := p.AttachProposal("prop_1", "admin_1", RoleSuperadmin, -1, "f.pdf", testNow); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestAttachProposal_ResendResetsPayment(t *testing.T) {
	p := newTestProject()
	_ = p.AttachProposal("prop_1", "admin_1", RoleSuperadmin, 50000, "v1.pdf", testNow)
	_ = p.RecordPayment(PaymentRecord{ID: "pay_1", Amount: 25000})

	_ = p.AttachProposal("prop_2", "admin_1", RoleSuperadmin, 60000, "v2.pdf", testNow)
	if p.PaymentStatus != PaymentUnpaid {
		t.Errorf("resend must reset payment status to unpaid, got %q", p.PaymentStatus)
	}
	if p.Proposal.ID != "prop_2" {
		t.Errorf("resend must replace proposal, got %q", p.Proposal.ID)
	}
}

func TestApproveProposal_ReleasesToClient(t *testing.T) {
	p := newTestProject()
	_ = p.AttachProposal("prop_1", "worker_1", RoleWorker, 50000, "f.pdf", testNow)

	if err := p.ApproveProposal(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Proposal.Status != ProposalSent {
		t.Errorf("expected sent, got %q", p.Proposal.Status)
	}
	if p.Status != StatusProposalSent {
		t.Errorf("expected %q, got %q", StatusProposalSent, p.Status)
	}

	// Approving twice lands in the same state.
	if err := p.ApproveProposal(); err != nil {
		t.Fatalf("second approval must be a no-op, got %v", err)
	}
	if p.Proposal.Status != ProposalSent {
		t.Errorf("expected sent after re-approval, got %q", p.Proposal.Status)
	}
}

func TestAcceptProposal_MovesToPaymentPending(t *testing.T) {
	p := newTestProject()
	_ = p.AttachProposal("prop_1", "admin_1", RoleSuperadmin, 50000, "f.pdf", testNow)

	if err := p.AcceptProposal(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Proposal.Status != ProposalAccepted {
		t.Errorf("expected accepted, got %q", p.Proposal.Status)
	}
	if p.Status != StatusPaymentPending {
		t.Errorf("expected %q, got %q", StatusPaymentPending, p.Status)
	}
}

func TestAcceptProposal_RequiresSentProposal(t *testing.T) {
	p := newTestProject()
	if err := p.AcceptProposal(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("no proposal: expected ErrInvalidTransition, got %v", err)
	}

	_ = p.AttachProposal("prop_1", "worker_1", RoleWorker, 50000, "f.pdf", testNow)
	if err := p.AcceptProposal(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("pending proposal: expected ErrInvalidTransition, got %v", err)
	}
}

func TestRequestProposalRevision_OverwritesNotes(t *testing.T) {
	p := newTestProject()
	_ = p.AttachProposal("prop_1", "admin_1", RoleSuperadmin, 50000, "f.pdf", testNow)

	if err := p.RequestProposalRevision("too expensive"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Proposal.Status != ProposalRevisionRequested {
		t.Errorf("expected revision_requested, got %q", p.Proposal.Status)
	}
	if p.Status != StatusProposalRevision {
		t.Errorf("expected %q, got %q", StatusProposalRevision, p.Status)
	}

	_ = p.RequestProposalRevision("also the timeline")
	if p.Proposal.RevisionNotes != "also the timeline" {
		t.Errorf("notes must overwrite, got %q", p.Proposal.RevisionNotes)
	}
}

func TestRequestProposalRevision_EmptyNotes(t *testing.T) {
	p := newTestProject()
	_ = p.AttachProposal("prop_1", "admin_1", RoleSuperadmin, 50000, "f.pdf", testNow)
	if err := p.RequestProposalRevision(""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Payment
// ---------------------------------------------------------------------------

func TestRecordPayment_AwaitsVerification(t *testing.T) {
	p := newTestProject()
	_ = p.AttachProposal("prop_1", "admin_1", RoleSuperadmin, 50000, "f.pdf", testNow)
	_ = p.AcceptProposal()

	rec := PaymentRecord{ID: "pay_1", ProjectID: p.ID, Amount: 25000, Gateway: "Paystack", TransactionID: "txn_1"}
	if err := p.RecordPayment(rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PaymentStatus != PaymentPendingVerification {
		t.Errorf("expected %q, got %q", PaymentPendingVerification, p.PaymentStatus)
	}
	// Recording alone does not advance the project.
	if p.Status != StatusPaymentPending {
		t.Errorf("status must stay %q until verification, got %q", StatusPaymentPending, p.Status)
	}
	if len(p.PaymentRecords) != 1 {
		t.Fatalf("expected 1 payment record, got %d", len(p.PaymentRecords))
	}
}

func TestRecordPayment_WithoutProposal(t *testing.T) {
	p := newTestProject()
	if err := p.RecordPayment(PaymentRecord{ID: "pay_1"}); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestVerifyPayment_AdvancesToPaid(t *testing.T) {
	p := newTestProject()
	_ = p.AttachProposal("prop_1", "admin_1", RoleSuperadmin, 50000, "f.pdf", testNow)
	_ = p.RecordPayment(PaymentRecord{ID: "pay_1", Amount: 25000})

	if err := p.VerifyPayment(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PaymentStatus != PaymentPaid {
		t.Errorf("expected %q, got %q", PaymentPaid, p.PaymentStatus)
	}
	if p.Status != StatusPaid {
		t.Errorf("expected %q, got %q", StatusPaid, p.Status)
	}
}

func TestVerifyPayment_NothingPending(t *testing.T) {
	p := newTestProject()
	if err := p.VerifyPayment(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Concept
// ---------------------------------------------------------------------------

func TestShareConcept_BySuperadmin_ApprovedOnTheSpot(t *testing.T) {
	p := newTestProject()

	if err := p.ShareConcept([]string{"render.png"}, "https://canva.example/c1", RoleSuperadmin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.ConceptIsApproved {
		t.Error("superadmin concept must be approved immediately")
	}
	if p.Status != StatusConceptShared {
		t.Errorf("expected %q, got %q", StatusConceptShared, p.Status)
	}
}

func TestShareConcept_ByWorker_AwaitsApproval(t *testing.T) {
	p := newTestProject()

	if err := p.ShareConcept([]string{"render.png"}, "", RoleWorker); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ConceptIsApproved {
		t.Error("worker concept must await approval")
	}
	if p.Status != StatusAppointmentNeeded {
		t.Errorf("status must be unchanged, got %q", p.Status)
	}
}

func TestShareConcept_ClearsPreviousClientVerdict(t *testing.T) {
	p := newTestProject()
	_ = p.ShareConcept([]string{"v1.png"}, "", RoleSuperadmin)
	_ = p.ApproveClientConcept()

	_ = p.ShareConcept([]string{"v2.png"}, "", RoleSuperadmin)
	if p.ClientApproval != "" {
		t.Errorf("re-share must clear the client verdict, got %q", p.ClientApproval)
	}
}

func TestShareConcept_RequiresContent(t *testing.T) {
	p := newTestProject()
	if err := p.ShareConcept(nil, "", RoleSuperadmin); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestApproveConcept_ReleasesToClient(t *testing.T) {
	p := newTestProject()
	_ = p.ShareConcept([]string{"render.png"}, "", RoleWorker)

	if err := p.ApproveConcept(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.ConceptIsApproved {
		t.Error("concept must be approved")
	}
	if p.Status != StatusConceptShared {
		t.Errorf("expected %q, got %q", StatusConceptShared, p.Status)
	}
}

func TestApproveClientConcept_RequiresReleasedConcept(t *testing.T) {
	p := newTestProject()
	_ = p.ShareConcept([]string{"render.png"}, "", RoleWorker)

	if err := p.ApproveClientConcept(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("unreleased concept: expected ErrInvalidTransition, got %v", err)
	}

	_ = p.ApproveConcept()
	if err := p.ApproveClientConcept(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ClientApproval != "yes" {
		t.Errorf("expected client approval %q, got %q", "yes", p.ClientApproval)
	}
	if p.Status != StatusConceptApproved {
		t.Errorf("expected %q, got %q", StatusConceptApproved, p.Status)
	}
}

// ---------------------------------------------------------------------------
// Construction updates
// ---------------------------------------------------------------------------

func TestAddSiteUpdate_BySuperadmin_DrivesProgress(t *testing.T) {
	p := newTestProject()

	u := Update{ID: "upd_1", ProgressPercentage: 40, CreatedAt: testNow}
	if err := p.AddSiteUpdate(u, RoleSuperadmin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PercentComplete != 40 {
		t.Errorf("expected percent 40, got %d", p.PercentComplete)
	}
	if p.Status != StatusConstruction {
		t.Errorf("expected %q, got %q", StatusConstruction, p.Status)
	}
	if !p.ConstructionUpdates[0].IsApproved {
		t.Error("superadmin update must be approved")
	}
}

func TestAddSiteUpdate_HundredPercentMovesToInspection(t *testing.T) {
	p := newTestProject()
	_ = p.AddSiteUpdate(Update{ID: "upd_1", ProgressPercentage: 100}, RoleSuperadmin)

	if p.Status != StatusInspection {
		t.Errorf("expected %q at 100%%, got %q", StatusInspection, p.Status)
	}
}

func TestAddSiteUpdate_ByWorker_ChangesNothingUntilApproved(t *testing.T) {
	p := newTestProject()

	if err := p.AddSiteUpdate(Update{ID: "upd_1", ProgressPercentage: 60}, RoleWorker); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PercentComplete != 0 {
		t.Errorf("unapproved update must not move percent, got %d", p.PercentComplete)
	}
	if p.Status != StatusAppointmentNeeded {
		t.Errorf("status must be unchanged, got %q", p.Status)
	}
	if p.ConstructionUpdates[0].IsApproved {
		t.Error("worker update must start unapproved")
	}
}

func TestAddSiteUpdate_PrependsMostRecentFirst(t *testing.T) {
	p := newTestProject()
	_ = p.AddSiteUpdate(Update{ID: "upd_1", ProgressPercentage: 10}, RoleSuperadmin)
	_ = p.AddSiteUpdate(Update{ID: "upd_2", ProgressPercentage: 20}, RoleSuperadmin)

	if p.ConstructionUpdates[0].ID != "upd_2" {
		t.Errorf("most recent update must come first, got %q", p.ConstructionUpdates[0].ID)
	}
}

func TestAddSiteUpdate_PercentageOutOfRange(t *testing.T) {
	p := newTestProject()
	if err := p.AddSiteUpdate(Update{ID: "upd_1", ProgressPercentage: 101}, RoleSuperadmin); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if err := p.AddSiteUpdate(Update{ID: "upd_2", ProgressPercentage: -1}, RoleSuperadmin); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestApproveSiteUpdate_RecomputesProgress(t *testing.T) {
	p := newTestProject()
	_ = p.AddSiteUpdate(Update{ID: "upd_1", ProgressPercentage: 60}, RoleWorker)

	if err := p.ApproveSiteUpdate("upd_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PercentComplete != 60 {
		t.Errorf("expected percent 60, got %d", p.PercentComplete)
	}
	if p.Status != StatusConstruction {
		t.Errorf("expected %q, got %q", StatusConstruction, p.Status)
	}
}

func TestApproveSiteUpdate_RegressionAccepted(t *testing.T) {
	p := newTestProject()
	_ = p.AddSiteUpdate(Update{ID: "upd_1", ProgressPercentage: 80}, RoleSuperadmin)
	_ = p.AddSiteUpdate(Update{ID: "upd_2", ProgressPercentage: 50}, RoleWorker)

	// Approving an update with a lower percentage corrects the earlier figure.
	if err := p.ApproveSiteUpdate("upd_2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PercentComplete != 50 {
		t.Errorf("regression must be accepted: want 50, got %d", p.PercentComplete)
	}
}

func TestApproveSiteUpdate_UnknownID(t *testing.T) {
	p := newTestProject()
	if err := p.ApproveSiteUpdate("missing"); !errors.Is(err, ErrUpdateNotFound) {
		t.Errorf("expected ErrUpdateNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Handover
// ---------------------------------------------------------------------------

func TestFinalizeHandover_Completes(t *testing.T) {
	p := newTestProject()

	if err := p.FinalizeHandover(testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != StatusCompleted {
		t.Errorf("expected %q, got %q", StatusCompleted, p.Status)
	}
	if p.CompletionDate == nil || !p.CompletionDate.Equal(testNow) {
		t.Errorf("completion date not recorded: %v", p.CompletionDate)
	}

	if err := p.FinalizeHandover(testNow); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("double handover: expected ErrInvalidTransition, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Full lifecycle
// ---------------------------------------------------------------------------

// TestLifecycle_BriefToHandover walks one project through the whole workflow
// the way the Lakehouse job actually ran: brief, consultation, a worker
// proposal released by the superadmin, revision, resend, payment, concept,
// construction, handover.
func TestLifecycle_BriefToHandover(t *testing.T) {
	p := newTestProject()

	mustOK := func(step string, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("%s: %v", step, err)
		}
	}
	mustStatus := func(step string, want ProjectStatus) {
		t.Helper()
		if p.Status != want {
			t.Fatalf("%s: expected status %q, got %q", step, want, p.Status)
		}
	}

	mustOK("book", p.BookAppointment("appt_1", "2026-03-09", "10:00", testNow))
	mustStatus("book", StatusAppointmentNeeded)
	mustOK("confirm", p.ConfirmAppointment())
	mustStatus("confirm", StatusConsultationDone)

	mustOK("worker proposal", p.AttachProposal("prop_1", "worker_1", RoleWorker, 48000, "v1.pdf", testNow))
	mustStatus("worker proposal", StatusConsultationDone)
	mustOK("release proposal", p.ApproveProposal())
	mustStatus("release proposal", StatusProposalSent)

	mustOK("revision", p.RequestProposalRevision("reduce the pool house"))
	mustStatus("revision", StatusProposalRevision)
	mustOK("resend", p.AttachProposal("prop_2", "admin_1", RoleSuperadmin, 42000, "v2.pdf", testNow))
	mustStatus("resend", StatusProposalSent)
	mustOK("accept", p.AcceptProposal())
	mustStatus("accept", StatusPaymentPending)

	mustOK("pay", p.RecordPayment(PaymentRecord{ID: "pay_1", Amount: 21000, Gateway: "Paystack", TransactionID: "txn_1"}))
	mustStatus("pay", StatusPaymentPending)
	mustOK("verify", p.VerifyPayment())
	mustStatus("verify", StatusPaid)

	mustOK("concept", p.ShareConcept([]string{"render.png"}, "https://canva.example/c1", RoleSuperadmin))
	mustStatus("concept", StatusConceptShared)
	mustOK("client sign-off", p.ApproveClientConcept())
	mustStatus("client sign-off", StatusConceptApproved)

	mustOK("progress 40", p.AddSiteUpdate(Update{ID: "upd_1", ProgressPercentage: 40}, RoleSuperadmin))
	mustStatus("progress 40", StatusConstruction)
	mustOK("progress 100", p.AddSiteUpdate(Update{ID: "upd_2", ProgressPercentage: 100}, RoleSuperadmin))
	mustStatus("progress 100", StatusInspection)

	mustOK("handover", p.FinalizeHandover(testNow.AddDate(0, 6, 0)))
	mustStatus("handover", StatusCompleted)
}

// ---------------------------------------------------------------------------
// Pending approvals
// ---------------------------------------------------------------------------

func TestPending_DerivesApprovalQueue(t *testing.T) {
	p := newTestProject()

	if _, any := p.Pending(); any {
		t.Error("fresh project must have nothing pending")
	}

	_ = p.BookAppointment("appt_1", "2026-03-09", "10:00", testNow)
	_ = p.AttachProposal("prop_1", "worker_1", RoleWorker, 50000, "f.pdf", testNow)
	_ = p.RecordPayment(PaymentRecord{ID: "pay_1", Amount: 25000})
	_ = p.ShareConcept([]string{"render.png"}, "", RoleWorker)
	_ = p.AddSiteUpdate(Update{ID: "upd_1", ProgressPercentage: 10}, RoleWorker)

	pa, any := p.Pending()
	if !any {
		t.Fatal("expected pending approvals")
	}
	if !pa.Appointment || !pa.Proposal || !pa.Payment || !pa.Concept {
		t.Errorf("expected all flags set, got %+v", pa)
	}
	if len(pa.UpdateIDs) != 1 || pa.UpdateIDs[0] != "upd_1" {
		t.Errorf("expected pending update upd_1, got %v", pa.UpdateIDs)
	}
}

// ---------------------------------------------------------------------------
// Availability
// ---------------------------------------------------------------------------

func TestAvailability_WeekdayDefaults(t *testing.T) {
	day := Availability("2026-03-02", nil) // Monday
	if !day.Available {
		t.Fatal("weekday without override must be available")
	}
	if len(day.Slots) != len(DefaultSlots) {
		t.Errorf("expected %d default slots, got %d", len(DefaultSlots), len(day.Slots))
	}
	if day.Slots[0] != "09:00" || day.Slots[len(day.Slots)-1] != "17:00" {
		t.Errorf("default slots must span 09:00..17:00, got %v", day.Slots)
	}
}

func TestAvailability_WeekendClosed(t *testing.T) {
	for _, date := range []string{"2026-03-07", "2026-03-08"} { // Sat, Sun
		day := Availability(date, nil)
		if day.Available {
			t.Errorf("%s: weekend must be unavailable", date)
		}
		if len(day.Slots) != 0 {
			t.Errorf("%s: weekend must have no slots, got %v", date, day.Slots)
		}
	}
}

func TestAvailability_OverrideWins(t *testing.T) {
	// Override opens a Saturday with a reduced grid.
	day := Availability("2026-03-07", &AvailabilityRecord{Date: "2026-03-07", Slots: []string{"10:00", "11:00"}})
	if !day.Available || len(day.Slots) != 2 {
		t.Errorf("override must win: %+v", day)
	}

	// Empty override closes a weekday.
	day = Availability("2026-03-02", &AvailabilityRecord{Date: "2026-03-02", Slots: []string{}})
	if day.Available {
		t.Error("empty override must close the date")
	}
}

func TestAvailability_MalformedDate(t *testing.T) {
	day := Availability("not-a-date", nil)
	if day.Available {
		t.Error("malformed date must be unavailable")
	}
}
