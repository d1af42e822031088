package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelieranj/client-portal/internal/api/metrics"
	"github.com/atelieranj/client-portal/internal/core/domain"
	"github.com/atelieranj/client-portal/internal/core/ports"
)

// WorkflowHandler exposes the project lifecycle transitions. Each endpoint is
// a thin shim: bind, validate, delegate to the workflow engine, count the
// outcome.
type WorkflowHandler struct {
	service ports.ProjectService
}

func NewWorkflowHandler(service ports.ProjectService) *WorkflowHandler {
	return &WorkflowHandler{service: service}
}

// countAction classifies a workflow outcome for the action counter.
func countAction(action string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrForbidden):
		result = "denied"
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrSlotUnavailable):
		result = "invalid"
	default:
		result = "error"
	}
	metrics.WorkflowActionsTotal.WithLabelValues(action, result).Inc()
}

// BookAppointment handles POST /v1/projects/:id/appointment.
//
// @Summary      Book a consultation slot
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Project id"
// @Param        body  body      bookAppointmentRequest  true  "Slot"
// @Success      200   {object}  domain.Project
// @Failure      409   {object}  errorResponse
// @Router       /v1/projects/{id}/appointment [post]
func (h *WorkflowHandler) BookAppointment(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.BookAppointment(c.Request().Context(), actor, ports.BookAppointmentInput{
		ProjectID: c.Param("id"),
		Date:      req.Date,
		Time:      req.Time,
	})
	countAction("book_appointment", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// ConfirmAppointment handles POST /v1/projects/:id/appointment/confirm.
//
// @Summary      Confirm the pending appointment (superadmin)
// @Tags         workflow
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Router       /v1/projects/{id}/appointment/confirm [post]
func (h *WorkflowHandler) ConfirmAppointment(c echo.Context) error {
	return h.simple(c, "confirm_appointment", h.service.ConfirmAppointment)
}

// SendProposal handles POST /v1/projects/:id/proposal.
//
// @Summary      Submit a proposal (staff)
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Project id"
// @Param        body  body      sendProposalRequest  true  "Proposal"
// @Success      200   {object}  domain.Project
// @Router       /v1/projects/{id}/proposal [post]
func (h *WorkflowHandler) SendProposal(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req sendProposalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.SendProposal(c.Request().Context(), actor, ports.SendProposalInput{
		ProjectID: c.Param("id"),
		Amount:    req.Amount,
		File:      req.File,
	})
	countAction("send_proposal", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// ApproveProposal handles POST /v1/projects/:id/proposal/approve.
//
// @Summary      Approve a pending proposal (superadmin)
// @Tags         workflow
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Router       /v1/projects/{id}/proposal/approve [post]
func (h *WorkflowHandler) ApproveProposal(c echo.Context) error {
	return h.simple(c, "approve_proposal", h.service.ApproveProposal)
}

// AcceptProposal handles POST /v1/projects/:id/proposal/accept.
//
// @Summary      Accept the sent proposal (client)
// @Tags         workflow
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Router       /v1/projects/{id}/proposal/accept [post]
func (h *WorkflowHandler) AcceptProposal(c echo.Context) error {
	return h.simple(c, "accept_proposal", h.service.AcceptProposal)
}

// RequestRevision handles POST /v1/projects/:id/proposal/revision.
//
// @Summary      Request a proposal revision (client)
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Project id"
// @Param        body  body      revisionRequest  true  "Revision notes"
// @Success      200   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Router       /v1/projects/{id}/proposal/revision [post]
func (h *WorkflowHandler) RequestRevision(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req revisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	project, err := h.service.RequestProposalRevision(c.Request().Context(), actor, c.Param("id"), req.Notes)
	countAction("request_proposal_revision", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// RecordPayment handles POST /v1/projects/:id/payment, the notification from
// the simulated gateway.
//
// @Summary      Record a gateway payment (client)
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      recordPaymentRequest  true  "Payment notification"
// @Success      200   {object}  domain.Project
// @Router       /v1/projects/{id}/payment [post]
func (h *WorkflowHandler) RecordPayment(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.RecordPayment(c.Request().Context(), actor, ports.RecordPaymentInput{
		ProjectID:     c.Param("id"),
		Amount:        req.Amount,
		Gateway:       req.Gateway,
		TransactionID: req.TransactionID,
	})
	countAction("record_payment", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// VerifyPayment handles POST /v1/projects/:id/payment/verify.
//
// @Summary      Verify payment receipt (superadmin)
// @Tags         workflow
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Router       /v1/projects/{id}/payment/verify [post]
func (h *WorkflowHandler) VerifyPayment(c echo.Context) error {
	return h.simple(c, "verify_payment", h.service.VerifyPayment)
}

// ShareConcept handles POST /v1/projects/:id/concept.
//
// @Summary      Share a design concept (staff)
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Project id"
// @Param        body  body      shareConceptRequest  true  "Concept files and link"
// @Success      200   {object}  domain.Project
// @Router       /v1/projects/{id}/concept [post]
func (h *WorkflowHandler) ShareConcept(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req shareConceptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	project, err := h.service.ShareConcept(c.Request().Context(), actor, ports.ShareConceptInput{
		ProjectID: c.Param("id"),
		Files:     req.Files,
		Link:      req.Link,
	})
	countAction("share_concept", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// ApproveConcept handles POST /v1/projects/:id/concept/approve.
//
// @Summary      Approve a pending concept (superadmin)
// @Tags         workflow
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Router       /v1/projects/{id}/concept/approve [post]
func (h *WorkflowHandler) ApproveConcept(c echo.Context) error {
	return h.simple(c, "approve_concept", h.service.ApproveConcept)
}

// ApproveClientConcept handles POST /v1/projects/:id/concept/client-approval.
//
// @Summary      Client approves the shared concept
// @Tags         workflow
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Router       /v1/projects/{id}/concept/client-approval [post]
func (h *WorkflowHandler) ApproveClientConcept(c echo.Context) error {
	return h.simple(c, "approve_client_concept", h.service.ApproveClientConcept)
}

// PostSiteUpdate handles POST /v1/projects/:id/updates.
//
// @Summary      Post a construction update (staff)
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Project id"
// @Param        body  body      siteUpdateRequest  true  "Progress entry"
// @Success      200   {object}  domain.Project
// @Router       /v1/projects/{id}/updates [post]
func (h *WorkflowHandler) PostSiteUpdate(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req siteUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.PostSiteUpdate(c.Request().Context(), actor, ports.SiteUpdateInput{
		ProjectID:          c.Param("id"),
		Title:              req.Title,
		Notes:              req.Notes,
		ProgressImages:     req.ProgressImages,
		ProgressPercentage: req.ProgressPercentage,
	})
	countAction("post_site_update", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// ApproveSiteUpdate handles POST /v1/projects/:id/updates/:update_id/approve.
//
// @Summary      Approve a pending site update (superadmin)
// @Tags         workflow
// @Produce      json
// @Security     BearerAuth
// @Param        id         path  string  true  "Project id"
// @Param        update_id  path  string  true  "Update id"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  errorResponse
// @Router       /v1/projects/{id}/updates/{update_id}/approve [post]
func (h *WorkflowHandler) ApproveSiteUpdate(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	project, err := h.service.ApproveSiteUpdate(c.Request().Context(), actor, c.Param("id"), c.Param("update_id"))
	countAction("approve_site_update", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// FinalizeHandover handles POST /v1/projects/:id/handover.
//
// @Summary      Finalize handover (superadmin)
// @Tags         workflow
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Router       /v1/projects/{id}/handover [post]
func (h *WorkflowHandler) FinalizeHandover(c echo.Context) error {
	return h.simple(c, "finalize_handover", h.service.FinalizeHandover)
}

// simple runs a body-less transition keyed only by the project id.
func (h *WorkflowHandler) simple(
	c echo.Context,
	action string,
	op func(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error),
) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	project, err := op(c.Request().Context(), actor, c.Param("id"))
	countAction(action, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}
