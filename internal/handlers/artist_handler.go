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

type ArtistHandler struct {
	store *store.Store
	now   func() time.Time
}

func NewArtistHandler(s *store.Store) *ArtistHandler {
	return &ArtistHandler{store: s, now: time.Now}
}

func (h *ArtistHandler) List(c *gin.Context) {
	artists, err := h.store.ListArtists()
	if err != nil {
		logrus.WithError(err).Error("failed to list artists")
		helpers.RenderServerError(c)
		return
	}
	c.HTML(http.StatusOK, "pages/artists.html", gin.H{
		"artists": artists,
		"flashes": helpers.TakeFlashes(c),
	})
}

func (h *ArtistHandler) Search(c *gin.Context) {
	term := c.PostForm("search_term")
	results, err := h.store.SearchArtists(term, h.now())
	if err != nil {
		logrus.WithError(err).Error("failed to search artists")
		helpers.RenderServerError(c)
		return
	}
	c.HTML(http.StatusOK, "pages/search_artists.html", gin.H{
		"results": gin.H{
			"count": len(results),
			"data":  results,
		},
		"search_term": term,
		"flashes":     helpers.TakeFlashes(c),
	})
}

func (h *ArtistHandler) Show(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RenderNotFound(c)
		return
	}
	artist, err := h.store.GetArtist(id)
	if errors.Is(err, store.ErrNotFound) {
		helpers.RenderNotFound(c)
		return
	}
	if err != nil {
		logrus.WithError(err).Error("failed to get artist")
		helpers.RenderServerError(c)
		return
	}
	c.HTML(http.StatusOK, "pages/show_artist.html", gin.H{
		"artist":  artistView(artist, h.now()),
		"flashes": helpers.TakeFlashes(c),
	})
}

func (h *ArtistHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "forms/new_artist.html", gin.H{
		"states":  forms.StateCodes,
		"genres":  forms.Genres,
		"flashes": helpers.TakeFlashes(c),
	})
}

func (h *ArtistHandler) Create(c *gin.Context) {
	var form forms.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		helpers.Flash(c, "Invalid artist data. Please check the form and try again.")
		c.Redirect(http.StatusFound, "/artists/create")
		return
	}
	artist, err := h.store.CreateArtist(form)
	if err != nil {
		logrus.WithError(err).Error("failed to create artist")
		helpers.Flash(c, "An error occurred. Artist "+form.Name+" could not be listed.")
		c.Redirect(http.StatusFound, "/artists")
		return
	}
	helpers.Flash(c, "Artist "+artist.Name+" was successfully listed!")
	c.Redirect(http.StatusFound, "/artists")
}

func (h *ArtistHandler) EditForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RenderNotFound(c)
		return
	}
	artist, err := h.store.GetArtist(id)
	if errors.Is(err, store.ErrNotFound) {
		helpers.RenderNotFound(c)
		return
	}
	if err != nil {
		logrus.WithError(err).Error("failed to load artist for edit")
		helpers.RenderServerError(c)
		return
	}
	c.HTML(http.StatusOK, "forms/edit_artist.html", gin.H{
		"artist":  artistView(artist, h.now()),
		"states":  forms.StateCodes,
		"genres":  forms.Genres,
		"flashes": helpers.TakeFlashes(c),
	})
}

func (h *ArtistHandler) Edit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RenderNotFound(c)
		return
	}
	var form forms.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		helpers.Flash(c, "Invalid artist data. Please check the form and try again.")
		c.Redirect(http.StatusFound, "/artists/"+id.String()+"/edit")
		return
	}
	err = h.store.UpdateArtist(id, form)
	if errors.Is(err, store.ErrNotFound) {
		helpers.RenderNotFound(c)
		return
	}
	if err != nil {
		logrus.WithError(err).Error("failed to update artist")
		helpers.Flash(c, "An error occurred. Artist could not be edited.")
		c.Redirect(http.StatusFound, "/artists/"+id.String())
		return
	}
	helpers.Flash(c, "Artist edited successfully")
	c.Redirect(http.StatusFound, "/artists/"+id.String())
}
