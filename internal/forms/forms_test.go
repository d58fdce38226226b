package forms

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var registerOnce sync.Once

func setup(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	registerOnce.Do(func() {
		require.NoError(t, RegisterValidators())
	})
}

func bindForm(t *testing.T, values url.Values, target interface{}) error {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c.ShouldBind(target)
}

func validVenueValues() url.Values {
	return url.Values{
		"name":                {"The Musical Hop"},
		"city":                {"San Francisco"},
		"state":               {"CA"},
		"address":             {"1015 Folsom Street"},
		"phone":               {"123-123-1234"},
		"genres":              {"Jazz", "Classical"},
		"website_link":        {"https://www.themusicalhop.com"},
		"facebook_link":       {"https://www.facebook.com/TheMusicalHop"},
		"image_link":          {"https://example.com/hop.jpg"},
		"seeking_talent":      {"true"},
		"seeking_description": {"We are on the lookout for a local artist."},
	}
}

func TestVenueFormBindsAllFields(t *testing.T) {
	setup(t)

	var form VenueForm
	require.NoError(t, bindForm(t, validVenueValues(), &form))

	assert.Equal(t, "The Musical Hop", form.Name)
	assert.Equal(t, "San Francisco", form.City)
	assert.Equal(t, "CA", form.State)
	assert.Equal(t, "1015 Folsom Street", form.Address)
	assert.Equal(t, []string{"Jazz", "Classical"}, form.Genres)
	assert.True(t, form.SeekingTalent)
	assert.Equal(t, "We are on the lookout for a local artist.", form.SeekingDescription)
}

func TestVenueFormValidation(t *testing.T) {
	setup(t)

	tests := []struct {
		name    string
		mutate  func(url.Values)
		wantErr bool
	}{
		{"valid", func(url.Values) {}, false},
		{"missing name", func(v url.Values) { v.Del("name") }, true},
		{"missing city", func(v url.Values) { v.Del("city") }, true},
		{"missing address", func(v url.Values) { v.Del("address") }, true},
		{"missing genres", func(v url.Values) { v.Del("genres") }, true},
		{"unknown state", func(v url.Values) { v.Set("state", "ZZ") }, true},
		{"unknown genre", func(v url.Values) { v["genres"] = []string{"Polka"} }, true},
		{"bad phone", func(v url.Values) { v.Set("phone", "call me") }, true},
		{"plain digits phone", func(v url.Values) { v.Set("phone", "1231231234") }, false},
		{"dotted phone", func(v url.Values) { v.Set("phone", "123.123.1234") }, false},
		{"empty phone is fine", func(v url.Values) { v.Del("phone") }, false},
		{"bad website", func(v url.Values) { v.Set("website_link", "not a url") }, true},
		{"empty links are fine", func(v url.Values) {
			v.Del("website_link")
			v.Del("facebook_link")
			v.Del("image_link")
		}, false},
		{"no seeking flag defaults false", func(v url.Values) { v.Del("seeking_talent") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validVenueValues()
			tt.mutate(values)

			var form VenueForm
			err := bindForm(t, values, &form)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestArtistFormValidation(t *testing.T) {
	setup(t)

	values := url.Values{
		"name":   {"Guns N Petals"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"phone":  {"326-123-5000"},
		"genres": {"Rock n Roll"},
	}

	var form ArtistForm
	require.NoError(t, bindForm(t, values, &form))
	assert.Equal(t, "Guns N Petals", form.Name)
	assert.False(t, form.SeekingVenue)

	values.Set("state", "Californistan")
	assert.Error(t, bindForm(t, values, &ArtistForm{}))
}

func TestShowFormValidation(t *testing.T) {
	setup(t)

	values := url.Values{
		"artist_id":  {"a64a6f9b-3a13-4c5e-9d3f-0a9f5c2b9b61"},
		"venue_id":   {"0b54cc4d-44c1-4f38-b39f-b3f7a9e1d6d2"},
		"start_time": {"2026-07-01 19:30:00"},
	}

	var form ShowForm
	require.NoError(t, bindForm(t, values, &form))

	values.Set("artist_id", "not-a-uuid")
	assert.Error(t, bindForm(t, values, &ShowForm{}))

	values.Set("artist_id", "a64a6f9b-3a13-4c5e-9d3f-0a9f5c2b9b61")
	values.Del("start_time")
	assert.Error(t, bindForm(t, values, &ShowForm{}))
}

func TestShowFormParsedStartTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "space separated layout",
			value: "2026-07-01 19:30:00",
			want:  time.Date(2026, 7, 1, 19, 30, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339",
			value: "2026-07-01T19:30:00Z",
			want:  time.Date(2026, 7, 1, 19, 30, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			value:   "next tuesday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShowForm{StartTime: tt.value}.ParsedStartTime()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
		})
	}
}

func TestStateAndGenreSetsAreWellFormed(t *testing.T) {
	assert.Len(t, StateCodes, 51)
	assert.Contains(t, StateCodes, "DC")
	assert.Contains(t, Genres, "Musical Theatre")
	assert.NotContains(t, Genres, "")
}
