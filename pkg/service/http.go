package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/internal/logging"
	"github.com/akeil/tripjournal/pkg/content"
	"github.com/akeil/tripjournal/pkg/memories"
)

const maxRequestSize = 1 << 20

// CreateRequest is the body of a create call. Dates use the form
// 2006-01-02, landmarks are a comma separated list.
type CreateRequest struct {
	ChildName   string   `json:"childName"`
	ChildAge    int      `json:"childAge"`
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Landmarks   string   `json:"landmarks"`
	Interests   []string `json:"interests"`
}

// Trip converts the request into a trip.
func (c CreateRequest) Trip() (content.Trip, error) {
	start, err := parseDate("start date", c.StartDate)
	if err != nil {
		return content.Trip{}, err
	}
	end, err := parseDate("end date", c.EndDate)
	if err != nil {
		return content.Trip{}, err
	}
	return content.Trip{
		ChildName:   strings.TrimSpace(c.ChildName),
		ChildAge:    c.ChildAge,
		Destination: strings.TrimSpace(c.Destination),
		StartDate:   start,
		EndDate:     end,
		Landmarks:   content.ParseLandmarks(c.Landmarks),
		Interests:   c.Interests,
	}, nil
}

func parseDate(name, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, journal.NewValidationError("%v is required", name)
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, journal.NewValidationError("invalid %v %q", name, s)
	}
	return t, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

type statusResponse struct {
	Status   Status `json:"status"`
	Progress int    `json:"progress"`
	Error    string `json:"error,omitempty"`
}

type infoResponse struct {
	ChildName   string `json:"childName"`
	Destination string `json:"destination"`
	TripDays    int    `json:"tripDays"`
	PageCount   int    `json:"pageCount"`
	FileSize    int64  `json:"fileSize"`
}

var (
	journalPath  = regexp.MustCompile(`^/api/journal/(status|info|download)/([0-9a-fA-F-]+)$`)
	memoriesPath = regexp.MustCompile(`^/api/memories/([0-9a-fA-F-]+)/(cards|slides)$`)
)

// Handler returns the HTTP API of the service:
//
//   POST /api/journal/create
//   GET  /api/journal/status/{id}
//   GET  /api/journal/info/{id}
//   GET  /api/journal/download/{id}
//   GET  /api/memories/{id}/cards
//   GET  /api/memories/{id}/slides
//   GET  /api/events (websocket)
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/journal/create", s.handleCreate)
	mux.HandleFunc("/api/journal/", s.handleJournal)
	mux.HandleFunc("/api/memories/", s.handleMemories)
	mux.Handle("/api/events", s.hub)
	return recoverWrapper(mux)
}

func (s *Service) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req CreateRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestSize))
	err := dec.Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := req.Trip()
	if err == nil {
		var job Job
		job, err = s.Create(t)
		if err == nil {
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"journalId": job.ID,
				"status":    job.Status,
			})
			return
		}
	}
	if journal.IsValidationError(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	logging.Error("Create journal: %v", err)
	writeError(w, http.StatusInternalServerError, "failed to create journal")
}

func (s *Service) handleJournal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	m := journalPath.FindStringSubmatch(r.URL.Path)
	if m == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	action, id := m[1], m[2]

	job, err := s.Job(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "journal not found")
		return
	}

	switch action {
	case "status":
		writeJSON(w, http.StatusOK, statusResponse{
			Status:   job.Status,
			Progress: job.Progress,
			Error:    job.Error,
		})
	case "info":
		writeJSON(w, http.StatusOK, infoResponse{
			ChildName:   job.ChildName,
			Destination: job.Destination,
			TripDays:    job.TripDays,
			PageCount:   job.PageCount,
			FileSize:    job.FileSize,
		})
	case "download":
		s.download(w, job)
	}
}

func (s *Service) download(w http.ResponseWriter, job Job) {
	if !job.Ready() {
		writeError(w, http.StatusBadRequest, "journal not ready")
		return
	}
	rc, err := s.cache.Get(job.ID + ".pdf")
	if journal.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "PDF not found")
		return
	} else if err != nil {
		logging.Error("Open journal %v: %v", job.ID, err)
		writeError(w, http.StatusInternalServerError, "failed to read journal")
		return
	}
	defer rc.Close()

	writePDFHeaders(w, Filename(job.ChildName, "Travel_Journal"))
	_, err = io.Copy(w, rc)
	if err != nil {
		logging.Warning("Send journal %v: %v", job.ID, err)
	}
}

func (s *Service) handleMemories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	m := memoriesPath.FindStringSubmatch(r.URL.Path)
	if m == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	id, kind := m[1], m[2]

	job, err := s.Job(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "journal not found")
		return
	}
	if !job.Ready() {
		writeError(w, http.StatusBadRequest, "journal not ready")
		return
	}
	c, err := s.Content(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "journal not found")
		return
	}

	// render into a buffer so errors can still be reported as JSON
	var buf bytes.Buffer
	var name string
	switch kind {
	case "cards":
		err = memories.WriteCards(c, &buf)
		name = "Holiday_Cards"
	default:
		err = memories.WriteSlides(c, &buf)
		name = "School_Slides"
	}
	if err != nil {
		logging.Error("Render %v for %v: %v", kind, id, err)
		writeError(w, http.StatusInternalServerError, "failed to render "+kind)
		return
	}
	writePDFHeaders(w, Filename(job.ChildName, name))
	_, err = buf.WriteTo(w)
	if err != nil {
		logging.Warning("Send %v for %v: %v", kind, id, err)
	}
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename builds a download file name like "Emma_Travel_Journal.pdf".
func Filename(childName, suffix string) string {
	return fmt.Sprintf("%v_%v.pdf", unsafeChars.ReplaceAllString(childName, "_"), suffix)
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		logging.Warning("Write JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}

func writePDFHeaders(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
}

func recoverWrapper(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec != nil {
				logging.Error("Recovered from panic in %v %v: %v", r.Method, r.URL.Path, rec)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		inner.ServeHTTP(w, r)
	})
}
