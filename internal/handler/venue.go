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

// VenueHandler serves every venue route. Now is injectable so tests
// can pin the reference instant the schedule split and the upcoming
// counts are computed against.
type VenueHandler struct {
	Venues *repository.VenueRepo
	Shows  *repository.ShowRepo
	Now    func() time.Time
}

func (h *VenueHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// venueEditView feeds the edit template: the id for the form action
// plus the (prefilled or resubmitted) field values.
type venueEditView struct {
	ID   int64
	Form form.VenueForm
}

// List handles GET /venues: all venues grouped by (city, state), each
// with its computed upcoming-show count.
func (h *VenueHandler) List(c echo.Context) error {
	groups, err := h.Venues.ListGroupedByCity(c.Request().Context(), h.now())
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "venues.html", "Venues", groups)
}

// searchView feeds the search result templates.
type searchView struct {
	Term    string
	Results model.SearchResults
}

// Search handles POST /venues/search: case-insensitive substring match
// on the venue name.
func (h *VenueHandler) Search(c echo.Context) error {
	term := c.FormValue("search_term")
	results, err := h.Venues.SearchByName(c.Request().Context(), term, h.now())
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "search_venues.html", "Venue search", searchView{Term: term, Results: results})
}

// Detail handles GET /venues/:id: the venue's fields plus its shows
// split into past and upcoming.
func (h *VenueHandler) Detail(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return notFound()
	}
	ctx := c.Request().Context()
	venue, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return notFound()
		}
		return err
	}
	shows, err := h.Shows.ListForVenue(ctx, id)
	if err != nil {
		return err
	}
	past, upcoming := schedule.Split(shows, h.now())
	page := model.VenuePage{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	return render(c, http.StatusOK, "show_venue.html", venue.Name, page)
}

// NewForm handles GET /venues/create.
func (h *VenueHandler) NewForm(c echo.Context) error {
	return render(c, http.StatusOK, "new_venue.html", "New venue", form.VenueForm{})
}

// Create handles POST /venues/create. Validation failures report a
// message and persist nothing.
func (h *VenueHandler) Create(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return err
	}
	f := form.VenueFromValues(values)
	if errs := f.Validate(); errs.Has() {
		msg := "Venue could not be listed: " + joinErrors(errs)
		return renderMessage(c, http.StatusOK, "home.html", "Home", msg, nil)
	}
	var venue model.Venue
	f.Apply(&venue)
	if err := h.Venues.Create(c.Request().Context(), &venue); err != nil {
		c.Logger().Error(err)
		msg := fmt.Sprintf("An error occurred. Venue %s could not be listed.", f.Name)
		return renderMessage(c, http.StatusOK, "home.html", "Home", msg, nil)
	}
	msg := fmt.Sprintf("Venue %s was successfully listed!", venue.Name)
	return renderMessage(c, http.StatusOK, "home.html", "Home", msg, nil)
}

// EditForm handles GET /venues/:id/edit: fetch and prefill.
func (h *VenueHandler) EditForm(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return notFound()
	}
	venue, err := h.Venues.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return notFound()
		}
		return err
	}
	view := venueEditView{ID: venue.ID, Form: form.VenueFromModel(venue)}
	return render(c, http.StatusOK, "edit_venue.html", "Edit venue", view)
}

// Edit handles POST /venues/:id/edit. Every mutable field is replaced
// from the submission, blanks included; the edit path validates the
// same way the create path does.
func (h *VenueHandler) Edit(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return notFound()
	}
	ctx := c.Request().Context()
	venue, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return notFound()
		}
		return err
	}
	values, err := c.FormParams()
	if err != nil {
		return err
	}
	f := form.VenueFromValues(values)
	if errs := f.Validate(); errs.Has() {
		msg := "Venue could not be updated: " + joinErrors(errs)
		view := venueEditView{ID: id, Form: f}
		return renderMessage(c, http.StatusOK, "edit_venue.html", "Edit venue", msg, view)
	}
	f.Apply(venue)
	if err := h.Venues.Update(ctx, venue); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return notFound()
		}
		c.Logger().Error(err)
		msg := fmt.Sprintf("An error occurred. Venue %s could not be updated.", f.Name)
		view := venueEditView{ID: id, Form: f}
		return renderMessage(c, http.StatusOK, "edit_venue.html", "Edit venue", msg, view)
	}
	web.SetFlash(c, fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/venues/%d", id))
}

// Delete handles DELETE /venues/:id. Deleting a venue that still has
// shows booked fails cleanly: the constraint violation rolls back and
// the venue stays listed.
func (h *VenueHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return notFound()
	}
	switch err := h.Venues.Delete(c.Request().Context(), id); {
	case err == nil:
		web.SetFlash(c, "Venue was successfully deleted!")
	case errors.Is(err, repository.ErrVenueNotFound):
		return notFound()
	case errors.Is(err, repository.ErrConflict):
		web.SetFlash(c, "Venue could not be deleted because shows are still booked there.")
	default:
		c.Logger().Error(err)
		web.SetFlash(c, "An error occurred. Venue could not be deleted.")
	}
	return c.Redirect(http.StatusSeeOther, "/venues")
}
