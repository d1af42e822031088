package domain

import "time"

// Role is the closed set of actor roles in the portal.
type Role string

const (
	RoleClient         Role = "client"
	RoleSuperadmin     Role = "superadmin"
	RoleWorker         Role = "worker"
	RoleProjectManager Role = "project_manager"
	RoleInspector      Role = "inspector"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleClient, RoleSuperadmin, RoleWorker, RoleProjectManager, RoleInspector:
		return true
	}
	return false
}

// User models an account in the portal: a client or a member of staff.
// Users are never deleted; the only mutations are password resets and
// appending to OwnedProjects when a client creates a project.
type User struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name"`
	Email         string    `json:"email" bson:"email"`
	PasswordHash  string    `json:"-" bson:"password_hash"`
	Phone         string    `json:"phone" bson:"phone"`
	Role          Role      `json:"role" bson:"role"`
	Photo         string    `json:"photo,omitempty" bson:"photo,omitempty"`
	Company       string    `json:"company,omitempty" bson:"company,omitempty"`
	OwnedProjects []string  `json:"created_projects" bson:"created_projects"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// Actor is the identity a workflow operation runs as.
type Actor struct {
	ID   string
	Role Role
}
