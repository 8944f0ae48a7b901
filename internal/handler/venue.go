package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/form"
	"github.com/iliyamo/fyyur/internal/service"
)

// VenueHandler serves /venues.
type VenueHandler struct {
	Svc *service.VenueService
}

func NewVenueHandler(svc *service.VenueService) *VenueHandler {
	return &VenueHandler{Svc: svc}
}

type searchResponse struct {
	service.SearchResult
	SearchTerm string `json:"search_term"`
}

type venueFormResponse struct {
	ID      uint64         `json:"id,omitempty"`
	Form    form.VenueForm `json:"form"`
	Choices form.Choices   `json:"choices"`
}

// List returns venues grouped by city and state.
func (h *VenueHandler) List(c echo.Context) error {
	areas, err := h.Svc.ListGrouped(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, areas)
}

// Search matches venue names against the search_term form field.
func (h *VenueHandler) Search(c echo.Context) error {
	term := c.FormValue("search_term")
	res, err := h.Svc.Search(c.Request().Context(), term)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, searchResponse{SearchResult: res, SearchTerm: term})
}

// Show returns a venue with its past and upcoming shows.
func (h *VenueHandler) Show(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	d, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// CreateForm returns an empty venue form and its choices.
func (h *VenueHandler) CreateForm(c echo.Context) error {
	return c.JSON(http.StatusOK, venueFormResponse{Form: form.VenueForm{Genres: []string{}}, Choices: form.DefaultChoices()})
}

func (h *VenueHandler) Create(c echo.Context) error {
	var f form.VenueForm
	if err := bind(c, &f); err != nil {
		return err
	}
	v, err := h.Svc.Create(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": fmt.Sprintf("Venue %s was successfully listed!", v.Name),
		"venue":   v,
	})
}

// EditForm returns the venue form prefilled with the current values.
func (h *VenueHandler) EditForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	f, err := h.Svc.EditForm(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, venueFormResponse{ID: id, Form: f, Choices: form.DefaultChoices()})
}

func (h *VenueHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var f form.VenueForm
	if err := bind(c, &f); err != nil {
		return err
	}
	v, err := h.Svc.Update(c.Request().Context(), id, f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Venue %s was successfully updated!", v.Name),
		"venue":   v,
	})
}

func (h *VenueHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	name, err := h.Svc.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": fmt.Sprintf("Venue %s was successfully deleted.", name)})
}
