package directory

import (
	"errors"
	"strconv"

	"influencer-scout/core/catalog"
	"influencer-scout/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// defaultRunsLimit bounds the run-history response.
const defaultRunsLimit = 50

// Handler handles HTTP requests for the directory.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the directory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/catalogs/:platform", h.HandlePlatformCatalog)
	app.Get("/influencers", h.HandleUnifiedCatalog)
	app.Get("/runs", h.HandleRecentRuns)
}

// HandlePlatformCatalog serves one platform's catalog file.
func (h *Handler) HandlePlatformCatalog(c *fiber.Ctx) error {
	platform := catalog.Platform(c.Params("platform"))
	if !platform.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unknown platform: " + string(platform),
		})
	}

	cat, err := h.service.PlatformCatalog(platform)
	if err != nil {
		return h.catalogError(c, err)
	}
	return c.JSON(cat)
}

// HandleUnifiedCatalog serves the master catalog.
func (h *Handler) HandleUnifiedCatalog(c *fiber.Ctx) error {
	cat, err := h.service.UnifiedCatalog()
	if err != nil {
		return h.catalogError(c, err)
	}
	return c.JSON(cat)
}

// HandleRecentRuns serves the ledger's run history.
func (h *Handler) HandleRecentRuns(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultRunsLimit)))
	if err != nil || limit <= 0 {
		limit = defaultRunsLimit
	}

	runs, err := h.service.RecentRuns(c.Context(), limit)
	if err != nil {
		if errors.Is(err, ErrLedgerDisabled) {
			return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l := logger.WithRayID(h.service.logger, c)
		l.Error("run history query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "run history unavailable",
		})
	}
	return c.JSON(fiber.Map{"count": len(runs), "runs": runs})
}

// catalogError translates service errors to HTTP statuses.
func (h *Handler) catalogError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	l := logger.WithRayID(h.service.logger, c)
	l.Error("catalog read failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "catalog unavailable",
	})
}
