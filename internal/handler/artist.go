package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stagebook/stagebook/internal/form"
	"github.com/stagebook/stagebook/internal/model"
	"github.com/stagebook/stagebook/internal/repository"
	"github.com/stagebook/stagebook/internal/schedule"
	"github.com/stagebook/stagebook/internal/web"
)

// ArtistHandler serves every artist route.
type ArtistHandler struct {
	Artists *repository.ArtistRepo
	Shows   *repository.ShowRepo
	Now     func() time.Time
}

func (h *ArtistHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

type artistEditView struct {
	ID   int64
	Form form.ArtistForm
}

// List handles GET /artists: a flat id-ordered listing.
func (h *ArtistHandler) List(c echo.Context) error {
	artists, err := h.Artists.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "artists.html", "Artists", artists)
}

// Search handles POST /artists/search: case-insensitive substring
// match on the artist name.
func (h *ArtistHandler) Search(c echo.Context) error {
	term := c.FormValue("search_term")
	results, err := h.Artists.SearchByName(c.Request().Context(), term, h.now())
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "search_artists.html", "Artist search", searchView{Term: term, Results: results})
}

// Detail handles GET /artists/:id: the artist's fields plus its shows
// split into past and upcoming.
func (h *ArtistHandler) Detail(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return notFound()
	}
	ctx := c.Request().Context()
	artist, err := h.Artists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return notFound()
		}
		return err
	}
	shows, err := h.Shows.ListForArtist(ctx, id)
	if err != nil {
		return err
	}
	past, upcoming := schedule.Split(shows, h.now())
	page := model.ArtistPage{
		Artist:             *artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	return render(c, http.StatusOK, "show_artist.html", artist.Name, page)
}

// NewForm handles GET /artists/create.
func (h *ArtistHandler) NewForm(c echo.Context) error {
	return render(c, http.StatusOK, "new_artist.html", "New artist", form.ArtistForm{})
}

// Create handles POST /artists/create.
func (h *ArtistHandler) Create(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return err
	}
	f := form.ArtistFromValues(values)
	if errs := f.Validate(); errs.Has() {
		msg := "Artist could not be listed: " + joinErrors(errs)
		return renderMessage(c, http.StatusOK, "home.html", "Home", msg, nil)
	}
	var artist model.Artist
	f.Apply(&artist)
	if err := h.Artists.Create(c.Request().Context(), &artist); err != nil {
		c.Logger().Error(err)
		msg := fmt.Sprintf("An error occurred. Artist %s could not be listed.", f.Name)
		return renderMessage(c, http.StatusOK, "home.html", "Home", msg, nil)
	}
	msg := fmt.Sprintf("Artist %s was successfully listed!", artist.Name)
	return renderMessage(c, http.StatusOK, "home.html", "Home", msg, nil)
}

// EditForm handles GET /artists/:id/edit: fetch and prefill.
func (h *ArtistHandler) EditForm(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return notFound()
	}
	artist, err := h.Artists.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return notFound()
		}
		return err
	}
	view := artistEditView{ID: artist.ID, Form: form.ArtistFromModel(artist)}
	return render(c, http.StatusOK, "edit_artist.html", "Edit artist", view)
}

// Edit handles POST /artists/:id/edit: full overwrite of every mutable
// field, validated the same way as creation.
func (h *ArtistHandler) Edit(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return notFound()
	}
	ctx := c.Request().Context()
	artist, err := h.Artists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return notFound()
		}
		return err
	}
	values, err := c.FormParams()
	if err != nil {
		return err
	}
	f := form.ArtistFromValues(values)
	if errs := f.Validate(); errs.Has() {
		msg := "Artist could not be updated: " + joinErrors(errs)
		view := artistEditView{ID: id, Form: f}
		return renderMessage(c, http.StatusOK, "edit_artist.html", "Edit artist", msg, view)
	}
	f.Apply(artist)
	if err := h.Artists.Update(ctx, artist); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return notFound()
		}
		c.Logger().Error(err)
		msg := fmt.Sprintf("An error occurred. Artist %s could not be updated.", f.Name)
		view := artistEditView{ID: id, Form: f}
		return renderMessage(c, http.StatusOK, "edit_artist.html", "Edit artist", msg, view)
	}
	web.SetFlash(c, fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/artists/%d", id))
}

// Delete handles DELETE /artists/:id, mirroring venue deletion: an
// artist with booked shows cannot be removed.
func (h *ArtistHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return notFound()
	}
	switch err := h.Artists.Delete(c.Request().Context(), id); {
	case err == nil:
		web.SetFlash(c, "Artist was successfully deleted!")
	case errors.Is(err, repository.ErrArtistNotFound):
		return notFound()
	case errors.Is(err, repository.ErrConflict):
		web.SetFlash(c, "Artist could not be deleted because shows are still booked.")
	default:
		c.Logger().Error(err)
		web.SetFlash(c, "An error occurred. Artist could not be deleted.")
	}
	return c.Redirect(http.StatusSeeOther, "/artists")
}
