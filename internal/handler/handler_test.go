package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagebook/stagebook/internal/handler"
	"github.com/stagebook/stagebook/internal/model"
	"github.com/stagebook/stagebook/internal/repository"
	"github.com/stagebook/stagebook/internal/router"
	"github.com/stagebook/stagebook/internal/testutil"
	"github.com/stagebook/stagebook/internal/web"
)

// testNow is the pinned reference instant handlers classify against.
var testNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

type app struct {
	e       *echo.Echo
	venues  *repository.VenueRepo
	artists *repository.ArtistRepo
	shows   *repository.ShowRepo
}

func newApp(t *testing.T) *app {
	t.Helper()
	db := testutil.OpenDB(t)

	e := echo.New()
	e.Renderer = web.NewRenderer()
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	venues := repository.NewVenueRepo(db)
	artists := repository.NewArtistRepo(db)
	shows := repository.NewShowRepo(db)
	clock := func() time.Time { return testNow }

	vh := &handler.VenueHandler{Venues: venues, Shows: shows, Now: clock}
	ah := &handler.ArtistHandler{Artists: artists, Shows: shows, Now: clock}
	sh := &handler.ShowHandler{Shows: shows}
	router.Register(e, vh, ah, sh)

	return &app{e: e, venues: venues, artists: artists, shows: shows}
}

func (a *app) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *app) postForm(t *testing.T, path string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *app) delete(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *app) seedVenue(t *testing.T, name, city, state string) *model.Venue {
	t.Helper()
	v := &model.Venue{Name: name, City: city, State: state, Address: "123 Main St"}
	require.NoError(t, a.venues.Create(context.Background(), v))
	return v
}

func (a *app) seedArtist(t *testing.T, name string) *model.Artist {
	t.Helper()
	ar := &model.Artist{Name: name, City: "San Francisco", State: "CA", Phone: "555-0000"}
	require.NoError(t, a.artists.Create(context.Background(), ar))
	return ar
}

func (a *app) seedShow(t *testing.T, artistID, venueID int64, start time.Time) {
	t.Helper()
	require.NoError(t, a.shows.Create(context.Background(), &model.Show{
		ArtistID: artistID, VenueID: venueID, StartTime: start,
	}))
}

func venueValues() url.Values {
	return url.Values{
		"name":    {"The Musical Hop"},
		"city":    {"San Francisco"},
		"state":   {"CA"},
		"address": {"1015 Folsom Street"},
		"phone":   {"123-123-1234"},
		"genres":  {"Jazz,Reggae,Swing"},
	}
}

func TestHomePage(t *testing.T) {
	t.Parallel()

	rec := newApp(t).get(t, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Stagebook")
}

func TestUnknownRouteRenders404Page(t *testing.T) {
	t.Parallel()

	rec := newApp(t).get(t, "/no/such/page")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not found")
}

func TestVenueDetailNotFound(t *testing.T) {
	t.Parallel()

	rec := newApp(t).get(t, "/venues/9182")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not found")
}

func TestVenueDetailSplitsShows(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	v := a.seedVenue(t, "The Musical Hop", "San Francisco", "CA")
	ar := a.seedArtist(t, "Guns N Petals")
	a.seedShow(t, ar.ID, v.ID, testNow.Add(48*time.Hour))
	a.seedShow(t, ar.ID, v.ID, testNow.Add(-48*time.Hour))
	a.seedShow(t, ar.ID, v.ID, testNow) // boundary show counts as past

	rec := a.get(t, fmt.Sprintf("/venues/%d", v.ID))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "The Musical Hop")
	assert.Contains(t, body, "1 upcoming show(s)")
	assert.Contains(t, body, "2 past show(s)")
	assert.Contains(t, body, "Guns N Petals")
}

func TestArtistDetailSplitsShows(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	v := a.seedVenue(t, "Park Square Live Music & Coffee", "San Francisco", "CA")
	ar := a.seedArtist(t, "The Wild Sax Band")
	a.seedShow(t, ar.ID, v.ID, testNow.Add(24*time.Hour))

	rec := a.get(t, fmt.Sprintf("/artists/%d", ar.ID))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "The Wild Sax Band")
	assert.Contains(t, body, "1 upcoming show(s)")
	assert.Contains(t, body, "0 past show(s)")
	assert.Contains(t, body, "Park Square Live Music &amp; Coffee")
}

func TestVenueListingGroupsByCity(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	a.seedVenue(t, "The Musical Hop", "San Francisco", "CA")
	a.seedVenue(t, "The Dueling Pianos Bar", "New York", "NY")

	rec := a.get(t, "/venues")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "San Francisco, CA")
	assert.Contains(t, body, "New York, NY")
	assert.Contains(t, body, "The Musical Hop")
}

func TestVenueSearch(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	a.seedVenue(t, "The Musical Hop", "San Francisco", "CA")
	a.seedVenue(t, "Park Square Live Music & Coffee", "San Francisco", "CA")
	a.seedVenue(t, "Another Spot", "New York", "NY")

	rec := a.postForm(t, "/venues/search", url.Values{"search_term": {"Hop"}})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "1 result(s)")
	assert.Contains(t, body, "The Musical Hop")
	assert.NotContains(t, body, "Another Spot")

	rec = a.postForm(t, "/venues/search", url.Values{"search_term": {"zzz"}})
	assert.Contains(t, rec.Body.String(), "0 result(s)")
}

func TestArtistSearch(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	a.seedArtist(t, "Guns N Petals")
	a.seedArtist(t, "The Wild Sax Band")

	rec := a.postForm(t, "/artists/search", url.Values{"search_term": {"band"}})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "1 result(s)")
	assert.Contains(t, body, "The Wild Sax Band")
}

func TestCreateVenueSuccess(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	rec := a.postForm(t, "/venues/create", venueValues())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Venue The Musical Hop was successfully listed!")

	results, err := a.venues.SearchByName(context.Background(), "Musical Hop", testNow)
	require.NoError(t, err)
	require.Equal(t, 1, results.Count)
	got, err := a.venues.GetByID(context.Background(), results.Data[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "1015 Folsom Street", got.Address)
	assert.Equal(t, "Jazz,Reggae,Swing", got.Genres)
}

func TestCreateVenueValidationFailure(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	values := venueValues()
	values.Del("name")
	rec := a.postForm(t, "/venues/create", values)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Venue could not be listed")

	groups, err := a.venues.ListGroupedByCity(context.Background(), testNow)
	require.NoError(t, err)
	assert.Empty(t, groups, "validation failure must not persist anything")
}

func TestEditArtistOverwritesAllFields(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	ar := a.seedArtist(t, "Guns N Petals")

	// city changes, phone left blank: the blank clears the stored value
	rec := a.postForm(t, fmt.Sprintf("/artists/%d/edit", ar.ID), url.Values{
		"name":  {"Guns N Petals"},
		"city":  {"Oakland"},
		"state": {"CA"},
		"phone": {""},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, fmt.Sprintf("/artists/%d", ar.ID), rec.Header().Get(echo.HeaderLocation))

	got, err := a.artists.GetByID(context.Background(), ar.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oakland", got.City)
	assert.Empty(t, got.Phone, "blank submission must clear the prior phone")
}

func TestEditArtistValidationFailureLeavesRowUntouched(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	ar := a.seedArtist(t, "Guns N Petals")

	rec := a.postForm(t, fmt.Sprintf("/artists/%d/edit", ar.ID), url.Values{
		"name": {""}, "city": {"Oakland"}, "state": {"CA"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Artist could not be updated")

	got, err := a.artists.GetByID(context.Background(), ar.ID)
	require.NoError(t, err)
	assert.Equal(t, "San Francisco", got.City, "failed edit must not mutate")
}

func TestEditVenueNotFound(t *testing.T) {
	t.Parallel()

	rec := newApp(t).get(t, "/venues/321/edit")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteVenueWithoutShows(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	v := a.seedVenue(t, "The Dueling Pianos Bar", "New York", "NY")

	rec := a.delete(t, fmt.Sprintf("/venues/%d", v.ID))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/venues", rec.Header().Get(echo.HeaderLocation))

	_, err := a.venues.GetByID(context.Background(), v.ID)
	assert.ErrorIs(t, err, repository.ErrVenueNotFound)
}

func TestDeleteVenueWithShowsFailsCleanly(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	v := a.seedVenue(t, "The Musical Hop", "San Francisco", "CA")
	ar := a.seedArtist(t, "Guns N Petals")
	a.seedShow(t, ar.ID, v.ID, testNow.Add(time.Hour))

	rec := a.delete(t, fmt.Sprintf("/venues/%d", v.ID))
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	_, err := a.venues.GetByID(context.Background(), v.ID)
	assert.NoError(t, err, "venue must survive a blocked delete")
}

func TestDeleteVenueNotFound(t *testing.T) {
	t.Parallel()

	rec := newApp(t).delete(t, "/venues/555")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateShowSuccess(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	v := a.seedVenue(t, "The Musical Hop", "San Francisco", "CA")
	ar := a.seedArtist(t, "Guns N Petals")

	rec := a.postForm(t, "/shows/create", url.Values{
		"artist_id":  {fmt.Sprint(ar.ID)},
		"venue_id":   {fmt.Sprint(v.ID)},
		"start_time": {"2026-06-15 21:30:00"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Show was successfully listed!")

	all, err := a.shows.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Guns N Petals", all[0].ArtistName)
}

func TestCreateShowUnknownArtistFails(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	v := a.seedVenue(t, "The Musical Hop", "San Francisco", "CA")

	rec := a.postForm(t, "/shows/create", url.Values{
		"artist_id":  {"999"},
		"venue_id":   {fmt.Sprint(v.ID)},
		"start_time": {"2026-06-15 21:30:00"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Show could not be listed")

	all, err := a.shows.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateShowBadTimestamp(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	rec := a.postForm(t, "/shows/create", url.Values{
		"artist_id":  {"1"},
		"venue_id":   {"1"},
		"start_time": {"tonight"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "start_time")
}

func TestShowsListingDisplaysFormattedTime(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	v := a.seedVenue(t, "The Musical Hop", "San Francisco", "CA")
	ar := a.seedArtist(t, "Guns N Petals")
	a.seedShow(t, ar.ID, v.ID, time.Date(2026, time.June, 15, 21, 30, 0, 0, time.UTC))

	rec := a.get(t, "/shows")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Guns N Petals")
	assert.Contains(t, body, "The Musical Hop")
	assert.Contains(t, body, "Mon Jun 15, 2026 9:30PM")
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	rec := newApp(t).get(t, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
