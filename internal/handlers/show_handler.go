package handlers

import (
	"errors"
	"net/http"

	"gigbook/internal/forms"
	"gigbook/internal/helpers"
	"gigbook/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ShowHandler struct {
	store *store.Store
}

func NewShowHandler(s *store.Store) *ShowHandler {
	return &ShowHandler{store: s}
}

func (h *ShowHandler) List(c *gin.Context) {
	shows, err := h.store.ListShows()
	if err != nil {
		logrus.WithError(err).Error("failed to list shows")
		helpers.RenderServerError(c)
		return
	}
	entries := make([]gin.H, 0, len(shows))
	for _, show := range shows {
		entries = append(entries, showEntry(show))
	}
	c.HTML(http.StatusOK, "pages/shows.html", gin.H{
		"shows":   entries,
		"flashes": helpers.TakeFlashes(c),
	})
}

func (h *ShowHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "forms/new_show.html", gin.H{
		"flashes": helpers.TakeFlashes(c),
	})
}

func (h *ShowHandler) Create(c *gin.Context) {
	var form forms.ShowForm
	if err := c.ShouldBind(&form); err != nil {
		helpers.Flash(c, "Invalid show data. Please check the form and try again.")
		c.Redirect(http.StatusFound, "/shows/create")
		return
	}
	startTime, err := form.ParsedStartTime()
	if err != nil {
		helpers.Flash(c, "Invalid start time format.")
		c.Redirect(http.StatusFound, "/shows/create")
		return
	}
	venueID, err := form.ParsedVenueID()
	if err != nil {
		helpers.Flash(c, "Invalid venue ID.")
		c.Redirect(http.StatusFound, "/shows/create")
		return
	}
	artistID, err := form.ParsedArtistID()
	if err != nil {
		helpers.Flash(c, "Invalid artist ID.")
		c.Redirect(http.StatusFound, "/shows/create")
		return
	}
	_, err = h.store.CreateShow(venueID, artistID, startTime)
	if errors.Is(err, store.ErrNotFound) {
		helpers.Flash(c, "An error occurred. Venue or artist does not exist.")
		c.Redirect(http.StatusFound, "/shows/create")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("failed to create show")
		helpers.Flash(c, "An error occurred. Show could not be listed.")
		c.Redirect(http.StatusFound, "/shows")
		return
	}
	helpers.Flash(c, "Show was successfully listed!")
	c.Redirect(http.StatusFound, "/shows")
}
