package manifest

import (
	"errors"

	"asset-loader/core/logger"
	"asset-loader/feature/assets"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PutRequest is the body of PUT /manifests/:name.
type PutRequest struct {
	// Mode is "all" (default) or "any".
	Mode string `json:"mode"`
	// Requests is an array of requests or an object mapping keys to requests.
	Requests any `json:"requests"`
}

// Handler handles HTTP requests for manifests.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the manifest routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/manifests")
	group.Get("/", h.HandleList)
	group.Put("/:name", h.HandlePut)
	group.Get("/:name", h.HandleGet)
	group.Delete("/:name", h.HandleDelete)
	group.Post("/:name/load", h.HandleLoad)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrInvalid):
		status = fiber.StatusBadRequest
	}
	if status == fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error("Manifest request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// HandleList lists stored manifests.
// @Summary List Manifests
// @Description Lists stored manifests ordered by name.
// @Tags manifests
// @Produce json
// @Success 200 {array} View "Manifests"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /manifests [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	list, err := h.service.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	views := make([]View, len(list))
	for i := range list {
		views[i] = list[i].View()
	}
	return c.JSON(views)
}

// HandlePut creates or replaces a manifest.
// @Summary Put Manifest
// @Description Creates or replaces the manifest with the given name.
// @Tags manifests
// @Accept json
// @Produce json
// @Param name path string true "Manifest name"
// @Param manifest body PutRequest true "Manifest definition"
// @Success 200 {object} View "Updated"
// @Success 201 {object} View "Created"
// @Failure 400 {object} map[string]string "Invalid manifest"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /manifests/{name} [put]
func (h *Handler) HandlePut(c *fiber.Ctx) error {
	var body PutRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	m, created, err := h.service.Put(c.UserContext(), c.Params("name"), body.Mode, body.Requests)
	if err != nil {
		return h.fail(c, err)
	}

	if created {
		logger.WithRayID(h.service.logger, c).Info("Manifest created", zap.String("manifest", m.Name))
		return c.Status(fiber.StatusCreated).JSON(m.View())
	}
	return c.JSON(m.View())
}

// HandleGet returns one manifest.
// @Summary Get Manifest
// @Tags manifests
// @Produce json
// @Param name path string true "Manifest name"
// @Success 200 {object} View "Manifest"
// @Failure 404 {object} map[string]string "Not found"
// @Router /manifests/{name} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	m, err := h.service.Get(c.UserContext(), c.Params("name"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(m.View())
}

// HandleDelete removes a manifest.
// @Summary Delete Manifest
// @Tags manifests
// @Param name path string true "Manifest name"
// @Success 204
// @Failure 404 {object} map[string]string "Not found"
// @Router /manifests/{name} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("name")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleLoad runs a stored manifest.
// @Summary Load Manifest
// @Description Loads the stored batch in the manifest's mode.
// @Tags manifests
// @Produce json
// @Param name path string true "Manifest name"
// @Success 200 {object} assets.BatchReport "Batch results with progress"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /manifests/{name}/load [post]
func (h *Handler) HandleLoad(c *fiber.Ctx) error {
	name := c.Params("name")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("manifest", name))

	report, err := h.service.Run(c.UserContext(), name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return h.fail(c, err)
		}
		status := assets.StatusOf(err)
		l.Warn("Manifest load failed", zap.Int("status", status), zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Manifest loaded", zap.Int("total", report.Results.Len()), zap.Int("failed", report.Failed))
	return c.JSON(report)
}
