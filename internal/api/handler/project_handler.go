package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelieranj/client-portal/internal/api/metrics"
	"github.com/atelieranj/client-portal/internal/core/domain"
	"github.com/atelieranj/client-portal/internal/core/ports"
)

// ProjectHandler covers project creation, listing, detail, and the derived
// approval queue.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type briefRequest struct {
	ProjectTitle      string   `json:"project_title" validate:"required"`
	ProjectLocation   string   `json:"project_location" validate:"required"`
	ProjectType       string   `json:"project_type" validate:"required"`
	Budget            float64  `json:"budget" validate:"gte=0"`
	Timeline          string   `json:"timeline"`
	Requirements      string   `json:"requirements"`
	InspirationImages []string `json:"inspiration_images"`
}

// Create opens a new project from a client brief.
//
// @Summary      Submit a project brief
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      briefRequest  true  "Project brief"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req briefRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.CreateProject(c.Request().Context(), actor, ports.BriefInput{
		ProjectTitle:      req.ProjectTitle,
		ProjectLocation:   req.ProjectLocation,
		ProjectType:       req.ProjectType,
		Budget:            req.Budget,
		Timeline:          req.Timeline,
		Requirements:      req.Requirements,
		InspirationImages: req.InspirationImages,
	})
	if err != nil {
		return err
	}

	metrics.ProjectsCreatedTotal.WithLabelValues(req.ProjectType).Inc()
	return c.JSON(http.StatusCreated, project)
}

// List returns the projects visible to the caller: all of them for staff,
// only owned ones for a client.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Project
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	projects, err := h.service.ListProjects(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	if projects == nil {
		projects = []*domain.Project{}
	}
	return c.JSON(http.StatusOK, projects)
}

// Get returns a single project.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	project, err := h.service.GetProject(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Approvals returns the derived approval queue.
//
// @Summary      List pending approvals
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.PendingApprovals
// @Failure      403  {object}  errorResponse
// @Router       /v1/approvals [get]
func (h *ProjectHandler) Approvals(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	queue, err := h.service.ApprovalQueue(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	metrics.ApprovalsPending.Set(float64(len(queue)))
	return c.JSON(http.StatusOK, queue)
}
