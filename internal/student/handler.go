package student

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/SchoolHub/api-school/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler serves the student CRUD routes.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// POST /students
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var s Student
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if s.Name == "" || s.AdmissionNo == "" {
		http.Error(w, "name and admissionNo are required", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Create(&s); err != nil {
		http.Error(w, "could not create student", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, s)
}

// GET /students
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll()
	if err != nil {
		http.Error(w, "could not list students", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, list)
}

// GET /students/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid student id", http.StatusBadRequest)
		return
	}
	s, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "student not found", http.StatusNotFound)
		return
	}
	utils.WriteJSON(w, http.StatusOK, s)
}

// PUT /students/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid student id", http.StatusBadRequest)
		return
	}
	existing, err := h.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "student not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not load student", http.StatusInternalServerError)
		return
	}

	var payload Student
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	existing.AdmissionNo = payload.AdmissionNo
	existing.Name = payload.Name
	existing.Standard = payload.Standard
	existing.Section = payload.Section
	existing.GuardianName = payload.GuardianName
	existing.Phone = payload.Phone
	existing.Email = payload.Email
	existing.EnrolledAt = payload.EnrolledAt

	if err := h.Repo.Update(existing); err != nil {
		http.Error(w, "could not update student", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, existing)
}

// DELETE /students/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid student id", http.StatusBadRequest)
		return
	}
	s, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "student not found", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(s); err != nil {
		http.Error(w, "could not delete student", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
