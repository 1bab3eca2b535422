package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mergington/school-gobackend/internal/services"
	"go.uber.org/zap"
)

// TeacherHandler serves the staff directory.
type TeacherHandler struct {
	service *services.TeacherService
	log     *zap.Logger
}

func NewTeacherHandler(service *services.TeacherService, log *zap.Logger) *TeacherHandler {
	return &TeacherHandler{service: service, log: log}
}

// List handles GET /teachers
func (h *TeacherHandler) List(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.service.TeacherList(r.Context())
	if err != nil {
		respondError(w, h.log, r, err)
		return
	}
	respondJSON(w, http.StatusOK, teachers)
}

// Get handles GET /teachers/{username}
func (h *TeacherHandler) Get(w http.ResponseWriter, r *http.Request) {
	teacher, err := h.service.GetTeacher(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		respondError(w, h.log, r, err)
		return
	}
	respondJSON(w, http.StatusOK, teacher)
}
