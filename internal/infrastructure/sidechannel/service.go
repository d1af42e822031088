package sidechannel

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/atelieranj/client-portal/internal/core/ports"
)

// Service routes side-channel jobs to the right collaborator. It is the sink
// behind the queue dispatcher.
type Service struct {
	sheets *SheetsClient
	copy   CopyWriter
	log    zerolog.Logger
}

func NewService(sheets *SheetsClient, copy CopyWriter, log zerolog.Logger) *Service {
	return &Service{sheets: sheets, copy: copy, log: log}
}

func (s *Service) Process(ctx context.Context, job ports.SideChannelJob) error {
	switch job.Kind {
	case ports.JobSyncSignup:
		if job.User == nil {
			return fmt.Errorf("sync signup: missing user")
		}
		return s.sheets.SyncSignup(ctx, job.User)

	case ports.JobSyncBrief:
		if job.User == nil || job.Brief == nil {
			return fmt.Errorf("sync brief: missing user or brief")
		}
		return s.sheets.SyncBrief(ctx, job.User, job.Brief)

	case ports.JobEmailCopy:
		if job.Project == nil {
			return fmt.Errorf("email copy: missing project")
		}
		// Delivery is out of scope; the generated copy is logged for the
		// staff console to pick up.
		body := s.copy.EmailCopy(job.EmailKind, job.Project)
		s.log.Info().
			Str("project_id", job.Project.ID).
			Str("email_kind", job.EmailKind).
			Str("body", body).
			Msg("email copy generated")
		return nil

	default:
		return fmt.Errorf("unknown side-channel job kind %q", job.Kind)
	}
}
