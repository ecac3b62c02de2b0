package menuboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"lunchboard-backend/lib/menus"
	"lunchboard-backend/lib/timezone"
)

// NewMux exposes the wire contract consumed by the scraper and the
// front end: POST /add for ingest, GET /menus?date=YYYY-MM-DD for the
// stored batch covering a date.
func NewMux(store Store) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /add", handleAdd(store))
	mux.HandleFunc("GET /menus", handleMenus(store))
	return mux
}

func writeAck(w http.ResponseWriter, status int, body map[string]string) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func handleAdd(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var batch menus.MenuBatch
		err := json.NewDecoder(r.Body).Decode(&batch)
		if err != nil {
			writeAck(w, http.StatusOK, map[string]string{
				"status": "error",
				"cause":  "invalid json",
			})
			return
		}

		err = store.Insert(r.Context(), batch)
		if err != nil {
			slog.ErrorContext(r.Context(), "menu insert failed", "err", err)
			writeAck(w, http.StatusOK, map[string]string{
				"status": "error",
				"cause":  "insert error",
			})
			return
		}

		writeAck(w, http.StatusOK, map[string]string{"status": "success"})
	}
}

func handleMenus(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			date = timezone.Now().Format(time.DateOnly)
		}
		if _, err := time.Parse(time.DateOnly, date); err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		batch, err := store.Query(r.Context(), date)
		if err != nil {
			slog.ErrorContext(r.Context(), "menu query failed", "err", err)
			http.Error(w, "query failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("content-type", "application/json")
		// a miss renders as [] so the front end can show an empty page
		json.NewEncoder(w).Encode(batch)
	}
}
