package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/form"
	"github.com/iliyamo/fyyur/internal/service"
)

// ShowHandler serves /shows.
type ShowHandler struct {
	Svc *service.ShowService
}

func NewShowHandler(svc *service.ShowService) *ShowHandler {
	return &ShowHandler{Svc: svc}
}

func (h *ShowHandler) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}

// CreateForm describes the booking form and the accepted time formats.
func (h *ShowHandler) CreateForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"form":               form.ShowForm{},
		"start_time_layouts": form.ShowTimeLayouts,
	})
}

func (h *ShowHandler) Create(c echo.Context) error {
	var f form.ShowForm
	if err := bind(c, &f); err != nil {
		return err
	}
	s, err := h.Svc.Create(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Show was successfully listed!",
		"show": echo.Map{
			"artist_id":  s.ArtistID,
			"venue_id":   s.VenueID,
			"start_time": service.FormatShowTime(s.StartTime),
		},
	})
}
