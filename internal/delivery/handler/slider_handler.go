package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"content-service/internal/application/interfaces"
)

type SliderHandler struct {
	sliderService interfaces.SliderService
}

func NewSliderHandler(sliderService interfaces.SliderService) *SliderHandler {
	return &SliderHandler{sliderService: sliderService}
}

func (h *SliderHandler) List(c echo.Context) error {
	result, err := h.sliderService.ListActive(c.Request().Context())
	if err != nil {
		log.Printf("Failed to list slider images: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"data": result.Result})
}
