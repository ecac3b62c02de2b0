package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lunchboard-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func dailyBody(courses ...string) string {
	out := `{"courses": [`
	for i, c := range courses {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"title_fi": %q}`, c)
	}
	return out + `]}`
}

func TestDailyFetchWeekThreshold(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/feed")
	defer cleanup()

	// monday has three courses and counts, tuesday sits exactly at
	// threshold minus one and must be treated as closed
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		switch r.URL.Path {
		case "/16/2016/04/11/fi":
			fmt.Fprint(w, dailyBody("Lohikeitto", "Jauhelihapihvit", "Kasviskiusaus"))
		case "/16/2016/04/12/fi":
			fmt.Fprint(w, dailyBody("Suljettu", "Closed"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewDailyClient(ClientOptions{BaseUrl: srv.URL})
	menu := client.FetchWeek(context.Background(), DailyRequest{RestaurantId: "16"}, testWeek())

	require.Len(t, menu, 1)
	require.Equal(t, []string{"Lohikeitto", "Jauhelihapihvit", "Kasviskiusaus"}, menu["2016-04-11"])
}

func TestDailyFetchWeekFailedDaysAreOmitted(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/feed")
	defer cleanup()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path == "/16/2016/04/14/fi" {
			w.Header().Set("content-type", "application/json")
			fmt.Fprint(w, dailyBody("Keitto", "Pihvi", "Salaatti"))
			return
		}
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewDailyClient(ClientOptions{BaseUrl: srv.URL})
	menu := client.FetchWeek(context.Background(), DailyRequest{RestaurantId: "16"}, testWeek())

	// all five weekdays were attempted, only thursday survived
	require.Equal(t, 5, calls)
	require.Len(t, menu, 1)
	require.Contains(t, menu, "2016-04-14")
}

func TestDailyFetchWeekEnglishTitles(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/feed")
	defer cleanup()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/16/2016/04/11/en" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("content-type", "application/json")
		fmt.Fprint(w, `{"courses": [
			{"title_fi": "Lohikeitto", "title_en": "Salmon soup"},
			{"title_fi": "Pihvi", "title_en": "Steak"},
			{"title_fi": "Salaatti", "title_en": "Salad"}
		]}`)
	}))
	defer srv.Close()

	client := NewDailyClient(ClientOptions{BaseUrl: srv.URL})
	menu := client.FetchWeek(context.Background(), DailyRequest{
		RestaurantId: "16",
		Language:     "en",
	}, testWeek())

	require.Equal(t, []string{"Salmon soup", "Steak", "Salad"}, menu["2016-04-11"])
}
