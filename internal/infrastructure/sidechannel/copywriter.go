package sidechannel

import (
	"fmt"

	"github.com/atelieranj/client-portal/internal/core/domain"
)

// CopyWriter produces client-facing email copy and project summaries from
// templates. The production deployment swaps in a generative backend; the
// interface stays the same either way.
type CopyWriter interface {
	EmailCopy(kind string, project *domain.Project) string
	ProjectSummary(project *domain.Project) string
}

// TemplateCopyWriter is the default, deterministic CopyWriter.
type TemplateCopyWriter struct{}

func NewTemplateCopyWriter() *TemplateCopyWriter {
	return &TemplateCopyWriter{}
}

var emailTemplates = map[string]string{
	"appointment_confirmed": "Your consultation for %q has been confirmed. We look forward to discussing your vision.",
	"proposal_sent":         "A proposal for %q is ready for your review in the portal.",
	"payment_verified":      "We have verified receipt of your deposit for %q. Design work begins shortly.",
	"concept_shared":        "The design concept for %q is now available for your review and approval.",
	"handover_complete":     "Congratulations — %q is complete. Handover documents are available in the portal.",
}

func (w *TemplateCopyWriter) EmailCopy(kind string, project *domain.Project) string {
	tmpl, ok := emailTemplates[kind]
	if !ok {
		tmpl = "There is a new update on %q in your client portal."
	}
	return fmt.Sprintf(tmpl, project.Title)
}

func (w *TemplateCopyWriter) ProjectSummary(project *domain.Project) string {
	summary := fmt.Sprintf("%s is currently at %q with %d%% of construction complete.",
		project.Title, project.Status, project.PercentComplete)
	if pending, any := project.Pending(); any {
		n := len(pending.UpdateIDs)
		if pending.Proposal {
			n++
		}
		if pending.Concept {
			n++
		}
		if pending.Payment {
			n++
		}
		if pending.Appointment {
			n++
		}
		summary += fmt.Sprintf(" %d item(s) await superadmin review.", n)
	}
	return summary
}
