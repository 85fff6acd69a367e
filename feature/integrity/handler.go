package integrity

import (
	"asset-reconciler/core/logger"
	"asset-reconciler/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/sources", h.HandleSourcesCheck)
	group.Get("/journal", h.HandleJournalCheck)
}

// HandleIntegrityCheck runs every check.
// @Summary Run All Integrity Checks
// @Description Runs the structure, sources and journal checks. A failing check is reported with status "error".
// @Tags integrity
// @Produce json
// @Success 200 {object} Report "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	logger.WithRayID(h.service.logger, c).Info("Triggering all integrity checks")
	return c.JSON(h.service.RunAll(c.UserContext()))
}

// HandleStructureCheck checks and optionally fixes structure.
// @Summary Check Structure
// @Description Checks if the required folder structure exists in the storage bucket. Optionally fixes missing folders.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := utils.ToBool(c.Query("fix"))

	missing, err := h.service.CheckStructure(c.UserContext())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing folders")
			if err := h.service.FixStructure(c.UserContext(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleSourcesCheck reports the versioned manifests of the library.
// @Summary Check Sources
// @Description Lists layer manifests by asset and flags file names without a version.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SourcesReport "Sources Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/sources [get]
func (h *Handler) HandleSourcesCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSources(c.UserContext())
	if err != nil {
		l.Error("Sources check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(report.Invalid) > 0 {
		l.Warn("Unversioned manifests detected", zap.Strings("invalid", report.Invalid))
	}

	return c.JSON(report)
}

// HandleJournalCheck checks the journal schema.
// @Summary Check Journal Schema
// @Description Checks if the reconcile journal table matches the expected model.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.JournalReport "Journal Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/journal [get]
func (h *Handler) HandleJournalCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting journal schema check")

	report, err := h.service.CheckJournal()
	if err != nil {
		l.Error("Journal schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
