package handlers

import (
	"errors"
	"net/http"
	"time"

	"gigbook/internal/forms"
	"gigbook/internal/helpers"
	"gigbook/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type VenueHandler struct {
	store *store.Store
	now   func() time.Time
}

func NewVenueHandler(s *store.Store) *VenueHandler {
	return &VenueHandler{store: s, now: time.Now}
}

func (h *VenueHandler) List(c *gin.Context) {
	areas, err := h.store.VenueAreas(h.now())
	if err != nil {
		logrus.WithError(err).Error("failed to list venues")
		helpers.RenderServerError(c)
		return
	}
	c.HTML(http.StatusOK, "pages/venues.html", gin.H{
		"areas":   areas,
		"flashes": helpers.TakeFlashes(c),
	})
}

func (h *VenueHandler) Search(c *gin.Context) {
	term := c.PostForm("search_term")
	results, err := h.store.SearchVenues(term)
	if err != nil {
		logrus.WithError(err).Error("failed to search venues")
		helpers.RenderServerError(c)
		return
	}
	c.HTML(http.StatusOK, "pages/search_venues.html", gin.H{
		"results": gin.H{
			"count": len(results),
			"data":  results,
		},
		"search_term": term,
		"flashes":     helpers.TakeFlashes(c),
	})
}

func (h *VenueHandler) Show(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RenderNotFound(c)
		return
	}
	venue, err := h.store.GetVenue(id)
	if errors.Is(err, store.ErrNotFound) {
		helpers.RenderNotFound(c)
		return
	}
	if err != nil {
		logrus.WithError(err).Error("failed to get venue")
		helpers.RenderServerError(c)
		return
	}
	c.HTML(http.StatusOK, "pages/show_venue.html", gin.H{
		"venue":   venueView(venue, h.now()),
		"flashes": helpers.TakeFlashes(c),
	})
}

func (h *VenueHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "forms/new_venue.html", gin.H{
		"states":  forms.StateCodes,
		"genres":  forms.Genres,
		"flashes": helpers.TakeFlashes(c),
	})
}

func (h *VenueHandler) Create(c *gin.Context) {
	var form forms.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		helpers.Flash(c, "Invalid venue data. Please check the form and try again.")
		c.Redirect(http.StatusFound, "/venues/create")
		return
	}
	venue, err := h.store.CreateVenue(form)
	if err != nil {
		logrus.WithError(err).Error("failed to create venue")
		helpers.Flash(c, "An error occurred. Venue "+form.Name+" could not be listed.")
		c.Redirect(http.StatusFound, "/venues")
		return
	}
	helpers.Flash(c, "Venue "+venue.Name+" was successfully listed!")
	c.Redirect(http.StatusFound, "/venues")
}

func (h *VenueHandler) EditForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RenderNotFound(c)
		return
	}
	venue, err := h.store.GetVenue(id)
	if errors.Is(err, store.ErrNotFound) {
		helpers.RenderNotFound(c)
		return
	}
	if err != nil {
		logrus.WithError(err).Error("failed to load venue for edit")
		helpers.RenderServerError(c)
		return
	}
	c.HTML(http.StatusOK, "forms/edit_venue.html", gin.H{
		"venue":   venueView(venue, h.now()),
		"states":  forms.StateCodes,
		"genres":  forms.Genres,
		"flashes": helpers.TakeFlashes(c),
	})
}

func (h *VenueHandler) Edit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RenderNotFound(c)
		return
	}
	var form forms.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		helpers.Flash(c, "Invalid venue data. Please check the form and try again.")
		c.Redirect(http.StatusFound, "/venues/"+id.String()+"/edit")
		return
	}
	err = h.store.UpdateVenue(id, form)
	if errors.Is(err, store.ErrNotFound) {
		helpers.RenderNotFound(c)
		return
	}
	if err != nil {
		logrus.WithError(err).Error("failed to update venue")
		helpers.Flash(c, "An error occurred. Venue could not be edited.")
		c.Redirect(http.StatusFound, "/venues/"+id.String())
		return
	}
	helpers.Flash(c, "Venue edited successfully")
	c.Redirect(http.StatusFound, "/venues/"+id.String())
}

func (h *VenueHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RenderNotFound(c)
		return
	}
	err = h.store.DeleteVenue(id)
	if errors.Is(err, store.ErrNotFound) {
		helpers.RenderNotFound(c)
		return
	}
	if err != nil {
		logrus.WithError(err).Error("failed to delete venue")
		helpers.Flash(c, "Venue could not be deleted. Try again later.")
		c.Redirect(http.StatusFound, "/venues")
		return
	}
	helpers.Flash(c, "Venue was successfully deleted.")
	c.Redirect(http.StatusFound, "/venues")
}
