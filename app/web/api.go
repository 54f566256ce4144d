package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/jobboard/app/domain"
)

// IDResponse is the JSON response for endpoints creating a record
type IDResponse struct {
	ID int64 `json:"id"`
}

// ApplyResponse is the JSON response for /apply
type ApplyResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// handleListJobs returns all jobs
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.store.ListJobs(r.Context())
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, jobs)
}

// handleCreateJob creates a job and returns its id
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req domain.NewJob
	if !s.decodeValid(w, r, &req) {
		return
	}
	id, err := s.store.CreateJob(r.Context(), req)
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, IDResponse{ID: id})
}

// handleSeedJobs inserts the posted jobs only if the board is empty and returns the resulting list
func (s *Server) handleSeedJobs(w http.ResponseWriter, r *http.Request) {
	var req []domain.NewJob
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := s.validator.SeedJobs(req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	seeded, err := s.store.EnsureSeeded(r.Context(), req)
	if err != nil {
		s.storeError(w, err)
		return
	}
	jobs, err := s.store.ListJobs(r.Context())
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, domain.SeedResult{Seeded: seeded, Jobs: jobs})
}

// handleApply records an application, the job is not checked for existence
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	var req domain.NewApplication
	if !s.decodeValid(w, r, &req) {
		return
	}
	id, err := s.store.Apply(r.Context(), req)
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, ApplyResponse{Success: true, ID: id})
}

// handleListApplications returns applications for a job, unknown job gives an empty list
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	jobID, err := parseID(r.PathValue("jobId"))
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	apps, err := s.store.ListApplications(r.Context(), jobID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, apps)
}

// handleSendMessage stores a message and returns its id
func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req domain.NewMessage
	if !s.decodeValid(w, r, &req) {
		return
	}
	id, err := s.store.SendMessage(r.Context(), req)
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, IDResponse{ID: id})
}

// handleListMessages returns messages of a job involving userEmail, oldest first.
// With "with" query parameter only messages between userEmail and that address are returned.
func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	jobID, err := parseID(r.PathValue("jobId"))
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	userEmail := r.PathValue("userEmail")
	if err = s.validator.Email(userEmail); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var msgs []domain.Message
	if with := r.URL.Query().Get("with"); with != "" {
		if err = s.validator.Email(with); err != nil {
			s.writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		msgs, err = s.store.ListThread(r.Context(), jobID, userEmail, with)
	} else {
		msgs, err = s.store.ListMessages(r.Context(), jobID, userEmail)
	}
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, msgs)
}

// handleSchema returns json schema of a request body
func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	data, ok := s.schemas[r.PathValue("name")]
	if !ok {
		s.writeJSONError(w, http.StatusNotFound, "schema not found")
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	if _, err := w.Write(data); err != nil {
		log.Printf("[WARN] failed to write schema: %v", err)
	}
}

// decodeValid decodes JSON body into req and validates it, writes 400 and returns false on failure
func (s *Server) decodeValid(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	if err := s.validator.Struct(req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// storeError reports a store failure as 500 with the underlying message
func (s *Server) storeError(w http.ResponseWriter, err error) {
	log.Printf("[WARN] store operation failed: %v", err)
	s.writeJSONError(w, http.StatusInternalServerError, err.Error())
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[WARN] failed to encode JSON response: %v", err)
	}
}

// writeJSONError writes a JSON error response
func (s *Server) writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("[WARN] failed to encode JSON error response: %v", err)
	}
}
