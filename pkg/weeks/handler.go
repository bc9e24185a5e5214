package weeks

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/memento/memento/internal/rest"
	"github.com/memento/memento/pkg/render"
)

// dateLayout is the wire format for birth/death query parameters.
const dateLayout = "2006-01-02"

type SummaryDTO struct {
	Birth        string `json:"birth"`
	Death        string `json:"death"`
	Today        string `json:"today"`
	Lived        int    `json:"lived"`
	Remaining    int    `json:"remaining"`
	Total        int    `json:"total"`
	Columns      int    `json:"columns"`
	Rows         int    `json:"rows"`
	CanvasWidth  int    `json:"canvasWidth"`
	CanvasHeight int    `json:"canvasHeight"`
}

type Handler struct {
	service      Service
	defaultBirth time.Time
	defaultDeath time.Time
}

func NewHandler(service Service, defaultBirth, defaultDeath time.Time) *Handler {
	return &Handler{
		service:      service,
		defaultBirth: defaultBirth,
		defaultDeath: defaultDeath,
	}
}

// GetSummary returns the week counts and grid dimensions as JSON.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	birth, death, ok := h.datesFromRequest(w, r)
	if !ok {
		return
	}

	summary := h.service.Summarize(birth, death)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summaryToDTO(summary)); err != nil {
		// Headers are already out; a late status change would be lost.
		log.Errorf("failed to write summary response: %v", err)
	}
}

// GetGridSVG renders the weeks grid as an SVG document, one rect per
// week cell in row-major fill order.
func (h *Handler) GetGridSVG(w http.ResponseWriter, r *http.Request) {
	birth, death, ok := h.datesFromRequest(w, r)
	if !ok {
		return
	}

	summary := h.service.Summarize(birth, death)
	plan := h.service.Plan(summary)

	surface := render.NewSVGSurface(summary.CanvasWidth, summary.CanvasHeight)
	render.DrawPlan(surface, plan, h.service.VisualConfig())

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(surface.String())); err != nil {
		log.Errorf("failed to write SVG response: %v", err)
	}
}

// datesFromRequest reads optional birth/death query parameters, falling
// back to the configured defaults. On a malformed date it writes a 400
// response and returns ok=false.
func (h *Handler) datesFromRequest(w http.ResponseWriter, r *http.Request) (birth, death time.Time, ok bool) {
	birth = h.defaultBirth
	death = h.defaultDeath

	if raw := r.URL.Query().Get("birth"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			writeDateError(w, "Invalid birth date format")
			return time.Time{}, time.Time{}, false
		}
		birth = parsed
	}
	if raw := r.URL.Query().Get("death"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			writeDateError(w, "Invalid death date format")
			return time.Time{}, time.Time{}, false
		}
		death = parsed
	}
	return birth, death, true
}

func writeDateError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   message,
		Details: "Dates must use the 2006-01-02 format",
	})
	if encodeErr != nil {
		log.Errorf("failed to write error response: %v", encodeErr)
	}
}

func summaryToDTO(s Summary) SummaryDTO {
	return SummaryDTO{
		Birth:        s.Birth.Format(dateLayout),
		Death:        s.Death.Format(dateLayout),
		Today:        s.Today.Format(dateLayout),
		Lived:        s.Counts.Lived,
		Remaining:    s.Counts.Remaining,
		Total:        s.Counts.Total,
		Columns:      s.Grid.Columns,
		Rows:         s.Grid.Rows,
		CanvasWidth:  s.CanvasWidth,
		CanvasHeight: s.CanvasHeight,
	}
}
