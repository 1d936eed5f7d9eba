package travelapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenWeatherClient_Current(t *testing.T) {
	t.Run("known city uses pinned coordinates", func(t *testing.T) {
		var gotQuery map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = map[string]string{
				"lat": r.URL.Query().Get("lat"),
				"lon": r.URL.Query().Get("lon"),
				"q":   r.URL.Query().Get("q"),
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"main":{"temp":27.4,"feels_like":30.1,"humidity":78},"weather":[{"description":"light rain"}],"wind":{"speed":12.3}}`))
		}))
		defer srv.Close()

		client := NewOpenWeatherClient("test-key", slog.Default())
		client.baseURL = srv.URL

		info, err := client.Current(context.Background(), "Kandy")
		require.NoError(t, err)
		assert.Equal(t, "7.2906", gotQuery["lat"])
		assert.Equal(t, "80.6337", gotQuery["lon"])
		assert.Empty(t, gotQuery["q"])
		assert.Equal(t, "27.4°C", info.Temperature)
		assert.Equal(t, "Light Rain", info.Condition)
		assert.Equal(t, "78%", info.Humidity)
		assert.Equal(t, "openweather_api", info.Source)
	})

	t.Run("unknown city falls back to LK-scoped name search", func(t *testing.T) {
		var gotQ string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQ = r.URL.Query().Get("q")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"main":{"temp":29.0,"feels_like":32.0,"humidity":70},"weather":[{"description":"clear sky"}],"wind":{"speed":5.0}}`))
		}))
		defer srv.Close()

		client := NewOpenWeatherClient("test-key", slog.Default())
		client.baseURL = srv.URL

		_, err := client.Current(context.Background(), "matara")
		require.NoError(t, err)
		assert.Equal(t, "matara,LK", gotQ)
	})

	t.Run("second lookup is served from cache", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"main":{"temp":25.0,"feels_like":26.0,"humidity":60},"weather":[{"description":"haze"}],"wind":{"speed":3.0}}`))
		}))
		defer srv.Close()

		client := NewOpenWeatherClient("test-key", slog.Default())
		client.baseURL = srv.URL

		_, err := client.Current(context.Background(), "galle")
		require.NoError(t, err)
		_, err = client.Current(context.Background(), "GALLE")
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("missing api key errors", func(t *testing.T) {
		client := NewOpenWeatherClient("", slog.Default())
		_, err := client.Current(context.Background(), "kandy")
		assert.Error(t, err)
	})

	t.Run("rejected key errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := NewOpenWeatherClient("bad-key", slog.Default())
		client.baseURL = srv.URL
		_, err := client.Current(context.Background(), "kandy")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api key")
	})
}

func TestGoogleGeocoder_Geocode(t *testing.T) {
	t.Run("without key returns maps search url", func(t *testing.T) {
		geo := NewGoogleGeocoder("", slog.Default())
		loc, err := geo.Geocode(context.Background(), "galle fort")
		require.NoError(t, err)
		assert.Nil(t, loc.Lat)
		assert.Nil(t, loc.Lng)
		assert.Equal(t, "Galle Fort", loc.FormattedAddress)
		assert.Contains(t, loc.MapsURL, "google.com/maps/search")
		assert.Equal(t, "fallback_no_api_key", loc.Source)
	})

	t.Run("provider hit", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "galle fort", r.URL.Query().Get("address"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"results":[{"formatted_address":"Galle Fort, Galle, Sri Lanka","geometry":{"location":{"lat":6.0269,"lng":80.2167}}}]}`))
		}))
		defer srv.Close()

		geo := NewGoogleGeocoder("test-key", slog.Default())
		geo.baseURL = srv.URL

		loc, err := geo.Geocode(context.Background(), "galle fort")
		require.NoError(t, err)
		require.NotNil(t, loc.Lat)
		assert.InDelta(t, 6.0269, *loc.Lat, 0.0001)
		assert.Equal(t, "Galle Fort, Galle, Sri Lanka", loc.FormattedAddress)
		assert.Equal(t, "google_geocoding", loc.Source)
	})

	t.Run("no results degrades to search url", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"results":[]}`))
		}))
		defer srv.Close()

		geo := NewGoogleGeocoder("test-key", slog.Default())
		geo.baseURL = srv.URL

		loc, err := geo.Geocode(context.Background(), "nowhere special")
		require.NoError(t, err)
		assert.Nil(t, loc.Lat)
		assert.Equal(t, "fallback_no_results", loc.Source)
	})
}

func TestWikipediaClient_Summary(t *testing.T) {
	t.Run("keeps sri lanka related article", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"title":"Sigiriya","extract":"Sigiriya is an ancient rock fortress in Sri Lanka.","description":"Rock fortress","content_urls":{"desktop":{"page":"https://en.wikipedia.org/wiki/Sigiriya"}},"thumbnail":{"source":"https://img/sigiriya.jpg"}}`))
		}))
		defer srv.Close()

		client := NewWikipediaClient(slog.Default())
		client.baseURL = srv.URL + "/"

		summary, err := client.Summary(context.Background(), "sigiriya")
		require.NoError(t, err)
		assert.Equal(t, "Sigiriya", summary.Title)
		assert.Contains(t, summary.Extract, "rock fortress")
		assert.Equal(t, "https://en.wikipedia.org/wiki/Sigiriya", summary.URL)
	})

	t.Run("discards unrelated article", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"title":"Galle (disambiguation)","extract":"Galle is a crater on Mars.","description":"Mars crater"}`))
		}))
		defer srv.Close()

		client := NewWikipediaClient(slog.Default())
		client.baseURL = srv.URL + "/"

		_, err := client.Summary(context.Background(), "galle")
		assert.Error(t, err)
	})

	t.Run("missing page walks the term ladder", func(t *testing.T) {
		var paths []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)
			if len(paths) < 3 {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"title":"Ella","extract":"Ella is a town in Sri Lanka.","description":"Town"}`))
		}))
		defer srv.Close()

		client := NewWikipediaClient(slog.Default())
		client.baseURL = srv.URL + "/"

		summary, err := client.Summary(context.Background(), "ella")
		require.NoError(t, err)
		assert.Equal(t, "Ella", summary.Title)
		assert.Len(t, paths, 3)
	})
}
