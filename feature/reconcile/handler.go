package reconcile

import (
	"strings"

	"asset-reconciler/core/errors"
	"asset-reconciler/core/logger"
	"asset-reconciler/core/reconcile"
	"asset-reconciler/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for containers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PathRequest names a versioned source file.
type PathRequest struct {
	Path string `json:"path"`
}

// ReconcileRequest names the new version and answers the confirmation gate.
type ReconcileRequest struct {
	Path    string `json:"path"`
	Confirm bool   `json:"confirm"`
}

// ErrorResponse is returned on failure. Outcome is set once a reconcile
// reached its diff.
type ErrorResponse struct {
	Error   string             `json:"error"`
	Kind    string             `json:"kind,omitempty"`
	Outcome *reconcile.Outcome `json:"outcome,omitempty"`
}

// RegisterRoutes registers the container routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/containers")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleLoad)
	group.Get("/:id", h.HandleGet)
	group.Post("/:id/plan", h.HandlePlan)
	group.Post("/:id/reconcile", h.HandleReconcile)
	group.Get("/:id/history", h.HandleHistory)
}

// HandleList lists loaded containers.
// @Summary List Containers
// @Description Lists every container loaded in the session.
// @Tags containers
// @Produce json
// @Success 200 {array} container.Container "Containers"
// @Router /containers [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

// HandleGet returns one container.
// @Summary Get Container
// @Tags containers
// @Produce json
// @Param id path string true "Container ID"
// @Success 200 {object} container.Container "Container"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /containers/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	ct, err := h.service.Get(c.Params("id"))
	if err != nil {
		return h.fail(c, err, nil)
	}
	return c.JSON(ct)
}

// HandleLoad imports a new container.
// @Summary Load Container
// @Description Imports a versioned layer manifest as a new container.
// @Tags containers
// @Accept json
// @Produce json
// @Param request body PathRequest true "Manifest path"
// @Success 201 {object} container.Container "Container"
// @Failure 422 {object} ErrorResponse "Unversioned path"
// @Failure 502 {object} ErrorResponse "Import failed"
// @Router /containers [post]
func (h *Handler) HandleLoad(c *fiber.Ctx) error {
	var req PathRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Path) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "path is required"})
	}

	ct, err := h.service.Load(c.UserContext(), req.Path)
	if err != nil {
		return h.fail(c, err, nil)
	}
	logger.WithRayID(h.service.logger, c).Info("Container loaded via API",
		zap.String("container_id", ct.ID), zap.String("path", req.Path))
	return c.Status(fiber.StatusCreated).JSON(ct)
}

// HandlePlan diffs a container against a newer version.
// @Summary Plan Reconcile
// @Description Validates, imports and diffs a newer version without changing the container.
// @Tags containers
// @Accept json
// @Produce json
// @Param id path string true "Container ID"
// @Param request body PathRequest true "New version path"
// @Success 200 {object} reconcile.Outcome "Planned diff"
// @Failure 409 {object} ErrorResponse "Busy"
// @Failure 422 {object} ErrorResponse "Identity or version mismatch"
// @Router /containers/{id}/plan [post]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	var req PathRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Path) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "path is required"})
	}

	out, err := h.service.Plan(c.UserContext(), c.Params("id"), req.Path)
	if err != nil {
		return h.fail(c, err, out)
	}
	return c.JSON(out)
}

// HandleReconcile updates a container to a newer version.
// @Summary Reconcile Container
// @Description Updates a container to a newer version of its source file. Additions and removals need confirm=true.
// @Tags containers
// @Accept json
// @Produce json
// @Param id path string true "Container ID"
// @Param confirm query boolean false "Accept additions and removals"
// @Param request body ReconcileRequest true "New version path"
// @Success 200 {object} reconcile.Outcome "Committed"
// @Failure 409 {object} ErrorResponse "Busy or rejected"
// @Failure 422 {object} ErrorResponse "Identity or version mismatch"
// @Failure 502 {object} ErrorResponse "Import failed"
// @Router /containers/{id}/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	var req ReconcileRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Path) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "path is required"})
	}
	confirm := req.Confirm || utils.ToBool(c.Query("confirm"))

	out, err := h.service.Reconcile(c.UserContext(), c.Params("id"), req.Path, confirm)
	if err != nil {
		return h.fail(c, err, out)
	}
	return c.JSON(out)
}

// HandleHistory lists the journal of a container.
// @Summary Reconcile History
// @Tags containers
// @Produce json
// @Param id path string true "Container ID"
// @Param limit query int false "Maximum records"
// @Success 200 {array} history.Record "Records"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /containers/{id}/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	records, err := h.service.History(c.UserContext(), c.Params("id"), utils.ToInt(c.Query("limit")))
	if err != nil {
		return h.fail(c, err, nil)
	}
	return c.JSON(records)
}

func (h *Handler) fail(c *fiber.Ctx, err error, out *reconcile.Outcome) error {
	status := StatusFor(err)
	l := logger.WithRayID(h.service.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error("Container request failed", zap.Error(err))
	} else {
		l.Warn("Container request refused", zap.Error(err))
	}

	resp := ErrorResponse{Error: err.Error(), Kind: string(errors.KindOf(err))}
	if out != nil && out.FailedAt != reconcile.StateIdle {
		resp.Outcome = out
	}
	return c.Status(status).JSON(resp)
}

// StatusFor maps an error to its HTTP status.
func StatusFor(err error) int {
	switch errors.KindOf(err) {
	case errors.KindIdentityMismatch, errors.KindVersionMismatch:
		return fiber.StatusUnprocessableEntity
	case errors.KindNotFound:
		return fiber.StatusNotFound
	case errors.KindBusy, errors.KindRejected:
		return fiber.StatusConflict
	case errors.KindImport:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
