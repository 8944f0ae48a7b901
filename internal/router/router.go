// Package router registers HTTP routes on an echo instance.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/handler"
	"github.com/iliyamo/fyyur/internal/monitoring"
)

// RegisterRoutes registers the home page, the health check and the
// metrics endpoint.
func RegisterRoutes(e *echo.Echo, db handler.Pinger) {
	e.GET("/", handler.Home)
	e.GET("/healthz", handler.Health(db))
	e.GET("/metrics", monitoring.Handler())
}

// RegisterVenues registers /venues. write guards every route that
// changes data.
func RegisterVenues(e *echo.Echo, h *handler.VenueHandler, write echo.MiddlewareFunc) {
	g := e.Group("/venues")
	g.GET("", h.List)
	g.POST("/search", h.Search)
	g.GET("/create", h.CreateForm)
	g.POST("/create", h.Create, write)
	g.GET("/:id", h.Show)
	g.GET("/:id/edit", h.EditForm)
	g.POST("/:id/edit", h.Update, write)
	g.DELETE("/:id", h.Delete, write)
}

// RegisterArtists registers /artists.
func RegisterArtists(e *echo.Echo, h *handler.ArtistHandler, write echo.MiddlewareFunc) {
	g := e.Group("/artists")
	g.GET("", h.List)
	g.POST("/search", h.Search)
	g.GET("/create", h.CreateForm)
	g.POST("/create", h.Create, write)
	g.GET("/:id", h.Show)
	g.GET("/:id/edit", h.EditForm)
	g.POST("/:id/edit", h.Update, write)
	g.DELETE("/:id", h.Delete, write)
}

// RegisterShows registers /shows.
func RegisterShows(e *echo.Echo, h *handler.ShowHandler, write echo.MiddlewareFunc) {
	g := e.Group("/shows")
	g.GET("", h.List)
	g.GET("/create", h.CreateForm)
	g.POST("/create", h.Create, write)
}
