package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/diegoclair/event-reminder-bot/internal/calendar"
	"github.com/diegoclair/event-reminder-bot/internal/domain/contract"
	"go.uber.org/zap"
)

type statusResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// HTTPHandler serves the liveness endpoints and the calendar feed.
type HTTPHandler struct {
	reminderService contract.ReminderService
	loc             *time.Location
	now             func() time.Time
	log             *zap.Logger
}

func NewHTTPHandler(reminderService contract.ReminderService, loc *time.Location, log *zap.Logger) *HTTPHandler {
	return &HTTPHandler{
		reminderService: reminderService,
		loc:             loc,
		now:             time.Now,
		log:             log.Named("http"),
	}
}

func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.HandleStatus)
	mux.HandleFunc("GET /health", h.HandleHealth)
	mux.HandleFunc("GET /calendar.ics", h.HandleCalendar)
}

func (h *HTTPHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(statusResponse{
		Status: "alive",
		Time:   h.now().In(h.loc).Format(time.RFC3339),
	})
	if err != nil {
		h.log.Error("failed to write status", zap.Error(err))
	}
}

func (h *HTTPHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *HTTPHandler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	body := calendar.Build(h.reminderService.Occurrences(), h.loc, h.now())

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="events.ics"`)
	if _, err := w.Write([]byte(body)); err != nil {
		h.log.Error("failed to write calendar", zap.Error(err))
	}
}
