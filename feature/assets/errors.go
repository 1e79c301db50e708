package assets

import (
	"errors"

	"asset-loader/core/asset"
	"asset-loader/core/asset/loaders"

	"github.com/gofiber/fiber/v2"
)

// StatusOf maps a load error to the HTTP status reported to clients.
func StatusOf(err error) int {
	var upstream *loaders.StatusError
	switch {
	case asset.IsResolutionError(err):
		return fiber.StatusBadRequest
	case errors.Is(err, loaders.ErrNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &upstream):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
