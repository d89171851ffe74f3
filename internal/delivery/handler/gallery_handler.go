package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"content-service/internal/application/interfaces"
)

type GalleryHandler struct {
	galleryService interfaces.GalleryService
}

func NewGalleryHandler(galleryService interfaces.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// List serves the public gallery: active records only, optionally filtered
// by the category query parameter, newest first.
func (h *GalleryHandler) List(c echo.Context) error {
	category := c.QueryParam("category")

	result, err := h.galleryService.ListActive(c.Request().Context(), category)
	if err != nil {
		log.Printf("Failed to list gallery images: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"data": result.Result})
}
