package policy

import (
	"errors"
	"testing"

	"github.com/atelieranj/client-portal/internal/core/domain"
)

func ownedProject() *domain.Project {
	return &domain.Project{ID: "proj_1", ClientID: "client_1"}
}

func TestAuthorize_ClientOwnProject(t *testing.T) {
	actor := domain.Actor{ID: "client_1", Role: domain.RoleClient}

	for _, action := range []Action{
		ActionViewProject,
		ActionBookAppointment,
		ActionAcceptProposal,
		ActionRequestRevision,
		ActionRecordPayment,
		ActionApproveClientConcept,
	} {
		if err := Authorize(actor, action, ownedProject()); err != nil {
			t.Errorf("%s on own project: unexpected error %v", action, err)
		}
	}
}

func TestAuthorize_ClientForeignProject(t *testing.T) {
	actor := domain.Actor{ID: "client_2", Role: domain.RoleClient}

	if err := Authorize(actor, ActionViewProject, ownedProject()); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("foreign project: expected ErrForbidden, got %v", err)
	}
}

func TestAuthorize_ClientCannotUseStaffActions(t *testing.T) {
	actor := domain.Actor{ID: "client_1", Role: domain.RoleClient}

	for _, action := range []Action{
		ActionSendProposal,
		ActionShareConcept,
		ActionPostSiteUpdate,
		ActionConfirmAppointment,
		ActionApproveProposal,
		ActionVerifyPayment,
		ActionFinalizeHandover,
		ActionSetAvailability,
		ActionCreateWorker,
		ActionViewApprovals,
	} {
		if err := Authorize(actor, action, ownedProject()); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("%s as client: expected ErrForbidden, got %v", action, err)
		}
	}
}

func TestAuthorize_StaffSharedActions(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleWorker, domain.RoleProjectManager, domain.RoleInspector, domain.RoleSuperadmin} {
		actor := domain.Actor{ID: "staff_1", Role: role}
		for _, action := range []Action{ActionViewProject, ActionSendProposal, ActionShareConcept, ActionPostSiteUpdate, ActionViewApprovals} {
			if err := Authorize(actor, action, ownedProject()); err != nil {
				t.Errorf("%s as %s: unexpected error %v", action, role, err)
			}
		}
	}
}

func TestAuthorize_SuperadminOnlyActions(t *testing.T) {
	superOnly := []Action{
		ActionConfirmAppointment,
		ActionApproveProposal,
		ActionVerifyPayment,
		ActionApproveConcept,
		ActionApproveSiteUpdate,
		ActionFinalizeHandover,
		ActionSetAvailability,
		ActionCreateWorker,
	}

	super := domain.Actor{ID: "admin_1", Role: domain.RoleSuperadmin}
	for _, action := range superOnly {
		if err := Authorize(super, action, ownedProject()); err != nil {
			t.Errorf("%s as superadmin: unexpected error %v", action, err)
		}
	}

	worker := domain.Actor{ID: "worker_1", Role: domain.RoleWorker}
	for _, action := range superOnly {
		if err := Authorize(worker, action, ownedProject()); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("%s as worker: expected ErrForbidden, got %v", action, err)
		}
	}
}

func TestAuthorize_StaffCannotCreateProjects(t *testing.T) {
	actor := domain.Actor{ID: "worker_1", Role: domain.RoleWorker}
	if err := Authorize(actor, ActionCreateProject, nil); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestAuthorize_UnknownRole(t *testing.T) {
	actor := domain.Actor{ID: "x", Role: "auditor"}
	if err := Authorize(actor, ActionViewProject, ownedProject()); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestIsStaff(t *testing.T) {
	cases := []struct {
		role domain.Role
		want bool
	}{
		{domain.RoleSuperadmin, true},
		{domain.RoleWorker, true},
		{domain.RoleProjectManager, true},
		{domain.RoleInspector, true},
		{domain.RoleClient, false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsStaff(tc.role); got != tc.want {
			t.Errorf("IsStaff(%q): want %v, got %v", tc.role, tc.want, got)
		}
	}
}

func TestMatchesLoginGroup(t *testing.T) {
	cases := []struct {
		requested string
		role      domain.Role
		want      bool
	}{
		{"client", domain.RoleClient, true},
		{"client", domain.RoleWorker, false},
		{"admin", domain.RoleSuperadmin, true},
		{"admin", domain.RoleWorker, true},
		{"admin", domain.RoleProjectManager, true},
		{"admin", domain.RoleInspector, true},
		{"admin", domain.RoleClient, false},
		{"superadmin", domain.RoleSuperadmin, true},
		{"worker", domain.RoleSuperadmin, false},
	}
	for _, tc := range cases {
		if got := MatchesLoginGroup(tc.requested, tc.role); got != tc.want {
			t.Errorf("MatchesLoginGroup(%q, %q): want %v, got %v", tc.requested, tc.role, tc.want, got)
		}
	}
}
