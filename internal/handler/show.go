package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stagebook/stagebook/internal/form"
	"github.com/stagebook/stagebook/internal/model"
	"github.com/stagebook/stagebook/internal/repository"
)

// ShowHandler serves the flat show listing and the booking form.
type ShowHandler struct {
	Shows *repository.ShowRepo
}

// List handles GET /shows: every show with denormalized artist and
// venue display fields.
func (h *ShowHandler) List(c echo.Context) error {
	listings, err := h.Shows.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "shows.html", "Shows", listings)
}

// NewForm handles GET /shows/create.
func (h *ShowHandler) NewForm(c echo.Context) error {
	return render(c, http.StatusOK, "new_show.html", "Book a show", form.ShowForm{})
}

// Create handles POST /shows/create. Both referenced ids must resolve;
// a dangling reference surfaces as a clean failure message, not a raw
// database error.
func (h *ShowHandler) Create(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return err
	}
	f := form.ShowFromValues(values)
	if errs := f.Validate(); errs.Has() {
		msg := "Show could not be listed: " + joinErrors(errs)
		return renderMessage(c, http.StatusOK, "home.html", "Home", msg, nil)
	}
	var show model.Show
	f.Apply(&show)
	if err := h.Shows.Create(c.Request().Context(), &show); err != nil {
		if !errors.Is(err, repository.ErrConflict) {
			c.Logger().Error(err)
		}
		return renderMessage(c, http.StatusOK, "home.html", "Home",
			"An error occurred. Show could not be listed.", nil)
	}
	return renderMessage(c, http.StatusOK, "home.html", "Home",
		"Show was successfully listed!", nil)
}
