package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires all routes. The bare and trailing-slash announcement
// paths are both registered because clients use either form.
func NewRouter(announcements *AnnouncementHandler, teachers *TeacherHandler) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET", "HEAD")

	a := router.PathPrefix("/announcements").Subrouter()
	a.HandleFunc("", announcements.ListActive).Methods("GET")
	a.HandleFunc("/", announcements.ListActive).Methods("GET")
	a.HandleFunc("/all", announcements.ListAll).Methods("GET")
	a.HandleFunc("", announcements.Create).Methods("POST")
	a.HandleFunc("/", announcements.Create).Methods("POST")
	a.HandleFunc("/{announcementID}", announcements.Update).Methods("PUT")
	a.HandleFunc("/{announcementID}", announcements.Delete).Methods("DELETE")

	t := router.PathPrefix("/teachers").Subrouter()
	t.HandleFunc("", teachers.List).Methods("GET")
	t.HandleFunc("/", teachers.List).Methods("GET")
	t.HandleFunc("/{username}", teachers.Get).Methods("GET")

	return router
}
