package assets

import (
	"asset-loader/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LoadRequest is the body of POST /assets/load.
type LoadRequest struct {
	// Request is a URL string or a descriptor object with "url" and optional "type".
	Request any `json:"request"`
}

// BatchRequest is the body of POST /assets/all and POST /assets/any.
type BatchRequest struct {
	// Requests is an array of requests or an object mapping keys to requests.
	Requests any `json:"requests"`
}

// Handler handles HTTP requests for asset loading.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the asset routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/assets")
	group.Get("/loaders", h.HandleListLoaders)
	group.Post("/load", h.HandleLoad)
	group.Post("/all", h.HandleBatch(ModeAll))
	group.Post("/any", h.HandleBatch(ModeAny))
}

// HandleListLoaders lists the registered loaders.
// @Summary List Loaders
// @Description Lists registered asset loaders in resolution order.
// @Tags assets
// @Produce json
// @Success 200 {array} LoaderInfo "Loaders"
// @Router /assets/loaders [get]
func (h *Handler) HandleListLoaders(c *fiber.Ctx) error {
	return c.JSON(h.service.Loaders())
}

// HandleLoad loads a single asset.
// @Summary Load Asset
// @Description Loads one asset. The loader is picked by explicit type or by URL extension.
// @Tags assets
// @Accept json
// @Produce json
// @Param request body LoadRequest true "Asset request"
// @Success 200 {object} map[string]interface{} "Loaded asset"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /assets/load [post]
func (h *Handler) HandleLoad(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var body LoadRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	value, err := h.service.Load(c.UserContext(), body.Request)
	if err != nil {
		status := StatusOf(err)
		if status >= fiber.StatusInternalServerError {
			l.Error("Asset load failed", zap.Error(err))
		} else {
			l.Info("Asset load rejected", zap.Int("status", status), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"asset": value})
}

// HandleBatch returns the handler loading a batch in mode.
// @Summary Load Batch
// @Description Loads a list or keyed group of assets. "all" fails on the first error, "any" reports failed items as null.
// @Tags assets
// @Accept json
// @Produce json
// @Param request body BatchRequest true "Batch request"
// @Success 200 {object} BatchReport "Batch results with progress"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /assets/all [post]
// @Router /assets/any [post]
func (h *Handler) HandleBatch(mode string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(h.service.logger, c).With(zap.String("mode", mode))

		var body BatchRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		report, err := h.service.Batch(c.UserContext(), mode, body.Requests)
		if err != nil {
			status := StatusOf(err)
			l.Warn("Asset batch failed", zap.Int("status", status), zap.Error(err))
			return c.Status(status).JSON(fiber.Map{"error": err.Error()})
		}

		l.Info("Asset batch loaded",
			zap.Int("total", report.Results.Len()),
			zap.Int("failed", report.Failed))
		return c.JSON(report)
	}
}
