package cmd

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/voicings/constants"
	"github.com/jsphweid/voicings/logger"
	"github.com/jsphweid/voicings/model"
	"github.com/jsphweid/voicings/render"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the page and the JSON views",
	Long:  `Serves the browser page on / and the chord and notes views under /api.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := ":" + constants.GetPort()
		logger.Info("Serving", logger.Fields{"addr": addr})
		return http.ListenAndServe(addr, NewRouter(newBuilder()))
	},
}

type handlers struct {
	builder *render.Builder
}

// NewRouter wires the API and the static page.
func NewRouter(b *render.Builder) http.Handler {
	h := handlers{builder: b}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestLogger)
	router.HandleFunc("/api/chord", h.handleChord).Methods(http.MethodGet)
	router.HandleFunc("/api/notes", h.handleNotesQuery).Methods(http.MethodGet)
	router.HandleFunc("/api/notes", h.handleNotesBody).Methods(http.MethodPost)
	router.PathPrefix("/").Handler(http.FileServer(http.FS(render.Static()))).Methods(http.MethodGet)

	return cors.Default().Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Could not encode response", err, nil)
	}
}

func (h handlers) handleChord(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.builder.ChordView(r.URL.Query().Get("symbol")))
}

func (h handlers) handleNotesQuery(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.builder.NotesView(r.URL.Query().Get("notes")))
}

func (h handlers) handleNotesBody(w http.ResponseWriter, r *http.Request) {
	var input model.NotesRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "Could not read request body: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.builder.NotesView(strings.Join(input.Notes, " ")))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-Id", requestID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		logger.Info("API request completed", logger.Fields{
			"request_id":  requestID,
			"method":      r.Method,
			"path":        r.URL.Path,
			"status_code": rec.status,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	})
}
