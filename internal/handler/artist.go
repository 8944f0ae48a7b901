package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/form"
	"github.com/iliyamo/fyyur/internal/service"
)

// ArtistHandler serves /artists.
type ArtistHandler struct {
	Svc *service.ArtistService
}

func NewArtistHandler(svc *service.ArtistService) *ArtistHandler {
	return &ArtistHandler{Svc: svc}
}

type artistFormResponse struct {
	ID      uint64          `json:"id,omitempty"`
	Form    form.ArtistForm `json:"form"`
	Choices form.Choices    `json:"choices"`
}

func (h *ArtistHandler) List(c echo.Context) error {
	artists, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artists)
}

func (h *ArtistHandler) Search(c echo.Context) error {
	term := c.FormValue("search_term")
	res, err := h.Svc.Search(c.Request().Context(), term)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, searchResponse{SearchResult: res, SearchTerm: term})
}

func (h *ArtistHandler) Show(c echo.Context) error {
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

func (h *ArtistHandler) CreateForm(c echo.Context) error {
	return c.JSON(http.StatusOK, artistFormResponse{Form: form.ArtistForm{Genres: []string{}}, Choices: form.DefaultChoices()})
}

func (h *ArtistHandler) Create(c echo.Context) error {
	var f form.ArtistForm
	if err := bind(c, &f); err != nil {
		return err
	}
	a, err := h.Svc.Create(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": fmt.Sprintf("Artist %s was successfully listed!", a.Name),
		"artist":  a,
	})
}

func (h *ArtistHandler) EditForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	f, err := h.Svc.EditForm(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artistFormResponse{ID: id, Form: f, Choices: form.DefaultChoices()})
}

func (h *ArtistHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var f form.ArtistForm
	if err := bind(c, &f); err != nil {
		return err
	}
	a, err := h.Svc.Update(c.Request().Context(), id, f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Artist %s was successfully updated!", a.Name),
		"artist":  a,
	})
}

func (h *ArtistHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	name, err := h.Svc.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": fmt.Sprintf("Artist %s was successfully deleted.", name)})
}
