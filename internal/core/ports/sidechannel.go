package ports

import (
	"context"

	"github.com/atelieranj/client-portal/internal/core/domain"
)

// JobKind distinguishes side-channel work items.
type JobKind string

const (
	JobSyncSignup JobKind = "sync_signup"
	JobSyncBrief  JobKind = "sync_brief"
	JobEmailCopy  JobKind = "email_copy"
)

// SideChannelJob is a best-effort work item dispatched after a successful
// core write: spreadsheet sync of signups and briefs, or generated email
// copy. Failures are logged and never surfaced to the workflow caller.
type SideChannelJob struct {
	Kind      JobKind
	User      *domain.User
	Brief     *domain.InitialForm
	Project   *domain.Project
	EmailKind string // for JobEmailCopy: which template to produce
}

// Key returns the sharding key: jobs for the same user/project are processed
// in order by the same worker.
func (j SideChannelJob) Key() string {
	if j.Project != nil {
		return j.Project.ID
	}
	if j.User != nil {
		return j.User.ID
	}
	return string(j.Kind)
}

// SideChannel consumes side-channel jobs.
type SideChannel interface {
	Process(ctx context.Context, job SideChannelJob) error
}

// Dispatcher enqueues side-channel jobs for asynchronous processing.
type Dispatcher interface {
	Enqueue(job SideChannelJob)
}
