// Package policy holds the pure role and ownership rules gating every
// workflow operation. It has no I/O: callers load the project, ask for a
// verdict, and only then mutate.
package policy

import (
	"fmt"

	"github.com/atelieranj/client-portal/internal/core/domain"
)

// Action identifies a workflow operation for authorization purposes.
type Action string

const (
	ActionViewProject          Action = "view_project"
	ActionCreateProject        Action = "create_project"
	ActionBookAppointment      Action = "book_appointment"
	ActionConfirmAppointment   Action = "confirm_appointment"
	ActionSendProposal         Action = "send_proposal"
	ActionApproveProposal      Action = "approve_proposal"
	ActionAcceptProposal       Action = "accept_proposal"
	ActionRequestRevision      Action = "request_proposal_revision"
	ActionRecordPayment        Action = "record_payment"
	ActionVerifyPayment        Action = "verify_payment"
	ActionShareConcept         Action = "share_concept"
	ActionApproveConcept       Action = "approve_concept"
	ActionApproveClientConcept Action = "approve_client_concept"
	ActionPostSiteUpdate       Action = "post_site_update"
	ActionApproveSiteUpdate    Action = "approve_site_update"
	ActionFinalizeHandover     Action = "finalize_handover"
	ActionSetAvailability      Action = "set_availability"
	ActionCreateWorker         Action = "create_worker"
	ActionViewApprovals        Action = "view_approvals"
)

// IsStaff reports whether r belongs to the staff tier. This is the single
// definition used everywhere authorization is checked.
func IsStaff(r domain.Role) bool {
	switch r {
	case domain.RoleSuperadmin, domain.RoleWorker, domain.RoleProjectManager, domain.RoleInspector:
		return true
	}
	return false
}

// clientActions are the operations a client may invoke, always restricted to
// projects they own.
var clientActions = map[Action]struct{}{
	ActionViewProject:          {},
	ActionCreateProject:        {},
	ActionBookAppointment:      {},
	ActionAcceptProposal:       {},
	ActionRequestRevision:      {},
	ActionRecordPayment:        {},
	ActionApproveClientConcept: {},
}

// staffActions are operations any staff role may invoke; non-superadmin
// submissions land in a pending sub-state rather than advancing the project.
var staffActions = map[Action]struct{}{
	ActionViewProject:    {},
	ActionSendProposal:   {},
	ActionShareConcept:   {},
	ActionPostSiteUpdate: {},
	ActionViewApprovals:  {},
}

// superadminActions are exclusive to the superadmin: approvals, payment
// verification, appointment confirmation, staff onboarding, and the global
// availability schedule.
var superadminActions = map[Action]struct{}{
	ActionConfirmAppointment: {},
	ActionApproveProposal:    {},
	ActionVerifyPayment:      {},
	ActionApproveConcept:     {},
	ActionApproveSiteUpdate:  {},
	ActionFinalizeHandover:   {},
	ActionSetAvailability:    {},
	ActionCreateWorker:       {},
}

// Authorize decides whether actor may perform action, optionally against
// project. It returns nil for allowed and domain.ErrForbidden (wrapped with a
// reason) for denied. It must be called before any mutation.
func Authorize(actor domain.Actor, action Action, project *domain.Project) error {
	if actor.Role == domain.RoleClient {
		if _, ok := clientActions[action]; !ok {
			return fmt.Errorf("%w: clients may not %s", domain.ErrForbidden, action)
		}
		if project != nil && project.ClientID != actor.ID {
			return fmt.Errorf("%w: project belongs to another client", domain.ErrForbidden)
		}
		return nil
	}

	if !IsStaff(actor.Role) {
		return fmt.Errorf("%w: unknown role %q", domain.ErrForbidden, actor.Role)
	}
	if _, ok := staffActions[action]; ok {
		return nil
	}
	if _, ok := superadminActions[action]; ok {
		if actor.Role != domain.RoleSuperadmin {
			return fmt.Errorf("%w: %s requires superadmin", domain.ErrForbidden, action)
		}
		return nil
	}
	return fmt.Errorf("%w: staff may not %s", domain.ErrForbidden, action)
}

// MatchesLoginGroup reports whether a user with role may log in under the
// requested group. The literal group "admin" admits any staff role; any other
// value requires an exact role match.
func MatchesLoginGroup(requested string, role domain.Role) bool {
	if requested == "admin" {
		return IsStaff(role)
	}
	return string(role) == requested
}
