package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mergington/school-gobackend/internal/services"
	"go.uber.org/zap"
)

// AnnouncementHandler handles HTTP requests for announcements.
type AnnouncementHandler struct {
	service *services.AnnouncementService
	log     *zap.Logger
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(service *services.AnnouncementService, log *zap.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{service: service, log: log}
}

// announcementRequest carries the writable announcement fields. They
// may arrive as a JSON body, as query parameters, or a mix; body values
// win. teacher_username always travels as a query parameter.
type announcementRequest struct {
	Message        string  `json:"message"`
	ExpirationDate string  `json:"expiration_date"`
	StartDate      *string `json:"start_date"`
}

func decodeAnnouncementRequest(r *http.Request) announcementRequest {
	var req announcementRequest
	if r.Body != nil {
		// A missing or non-JSON body is fine when the fields came in
		// the query string; validation happens on the merged result.
		json.NewDecoder(r.Body).Decode(&req)
	}

	q := r.URL.Query()
	if req.Message == "" && q.Has("message") {
		req.Message = q.Get("message")
	}
	if req.ExpirationDate == "" && q.Has("expiration_date") {
		req.ExpirationDate = q.Get("expiration_date")
	}
	if req.StartDate == nil && q.Has("start_date") {
		s := q.Get("start_date")
		req.StartDate = &s
	}
	return req
}

// ListActive handles GET /announcements
func (h *AnnouncementHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.service.ListActive(r.Context())
	if err != nil {
		respondError(w, h.log, r, err)
		return
	}
	respondJSON(w, http.StatusOK, announcements)
}

// ListAll handles GET /announcements/all
func (h *AnnouncementHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.service.ListAll(r.Context(), r.URL.Query().Get("teacher_username"))
	if err != nil {
		respondError(w, h.log, r, err)
		return
	}
	respondJSON(w, http.StatusOK, announcements)
}

// Create handles POST /announcements
func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	req := decodeAnnouncementRequest(r)

	announcement, err := h.service.Create(r.Context(), r.URL.Query().Get("teacher_username"), services.AnnouncementInput{
		Message:        req.Message,
		ExpirationDate: req.ExpirationDate,
		StartDate:      req.StartDate,
	})
	if err != nil {
		respondError(w, h.log, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, announcement)
}

// Update handles PUT /announcements/{announcementID}
func (h *AnnouncementHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["announcementID"]
	req := decodeAnnouncementRequest(r)

	announcement, err := h.service.Update(r.Context(), r.URL.Query().Get("teacher_username"), id, services.AnnouncementInput{
		Message:        req.Message,
		ExpirationDate: req.ExpirationDate,
		StartDate:      req.StartDate,
	})
	if err != nil {
		respondError(w, h.log, r, err)
		return
	}
	respondJSON(w, http.StatusOK, announcement)
}

// Delete handles DELETE /announcements/{announcementID}
func (h *AnnouncementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["announcementID"]

	if err := h.service.Delete(r.Context(), r.URL.Query().Get("teacher_username"), id); err != nil {
		respondError(w, h.log, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Announcement deleted successfully"})
}
