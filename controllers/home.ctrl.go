package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HomeController : HomeController struct
type HomeController struct{}

func NewHomeController() *HomeController {
	return &HomeController{}
}

type HomeResponseBody struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Home godoc
// @Summary      Service info
// @Description  Basic liveness check
// @Produce      json
// @Tags         Info
// @Success      200  {object}  HomeResponseBody
// @Router       / [get]
func (controller *HomeController) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, &HomeResponseBody{Name: "factorhub", Status: "ok"})
}
