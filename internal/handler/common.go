// Package handler exposes the HTTP handlers behind every route. Each
// handler queries or mutates the repositories, applies the schedule
// split where a detail page needs it, and hands a plain read-model to
// the template renderer. Nothing here keeps state between requests.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/stagebook/stagebook/internal/form"
	"github.com/stagebook/stagebook/internal/web"
)

// render executes a template inside the shared page envelope,
// attaching any flash message left by a previous redirect.
func render(c echo.Context, code int, name, title string, data any) error {
	return c.Render(code, name, web.Page{Title: title, Flash: web.TakeFlash(c), Data: data})
}

// renderMessage is like render but carries an immediate message
// instead of reading the flash cookie. Used when a mutation outcome is
// reported on the response to the same request.
func renderMessage(c echo.Context, code int, name, title, message string, data any) error {
	return c.Render(code, name, web.Page{Title: title, Flash: message, Data: data})
}

// idParam parses the :id route parameter. A non-numeric id means the
// addressed entity cannot exist, so callers treat the error as not
// found.
func idParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// notFound signals the central error handler to render the 404 page.
func notFound() error {
	return echo.NewHTTPError(http.StatusNotFound)
}

// joinErrors flattens validation messages into one flash line.
func joinErrors(errs form.Errors) string {
	return strings.Join(errs, "; ")
}

// HTTPErrorHandler renders the error pages for unmapped routes and
// unhandled failures. Anything that is not an explicit 404 is logged
// and reported as a 500.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code == http.StatusNotFound {
		code = http.StatusNotFound
	}
	name, title := "500.html", "Server error"
	if code == http.StatusNotFound {
		name, title = "404.html", "Not found"
	} else {
		c.Logger().Error(err)
	}
	if rerr := c.Render(code, name, web.Page{Title: title}); rerr != nil {
		c.Logger().Error(rerr)
	}
}

// Home handles GET /.
func Home(c echo.Context) error {
	return render(c, http.StatusOK, "home.html", "Home", nil)
}

// Health handles GET /healthz. It can be used by load balancers or
// monitoring systems to verify that the service is up and running.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
