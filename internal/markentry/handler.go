package markentry

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/SchoolHub/api-school/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// POST /mark-entries
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var m MarkEntry
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if m.StudentID == 0 || m.SubjectName == "" {
		http.Error(w, "studentId and subjectName are required", http.StatusBadRequest)
		return
	}
	if m.EntryDate.IsZero() {
		m.EntryDate = time.Now()
	}
	if err := h.Repo.Create(&m); err != nil {
		http.Error(w, "could not create mark entry", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, m)
}

// GET /mark-entries, optionally filtered by ?studentId=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		list []MarkEntry
		err  error
	)
	if sid := r.URL.Query().Get("studentId"); sid != "" {
		id, convErr := strconv.Atoi(sid)
		if convErr != nil {
			http.Error(w, "invalid studentId", http.StatusBadRequest)
			return
		}
		list, err = h.Repo.FindByStudent(uint(id))
	} else {
		list, err = h.Repo.FindAll()
	}
	if err != nil {
		http.Error(w, "could not list mark entries", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, list)
}

// GET /mark-entries/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid mark entry id", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "mark entry not found", http.StatusNotFound)
		return
	}
	utils.WriteJSON(w, http.StatusOK, m)
}

// PUT /mark-entries/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid mark entry id", http.StatusBadRequest)
		return
	}
	existing, err := h.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "mark entry not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not load mark entry", http.StatusInternalServerError)
		return
	}

	var payload MarkEntry
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if payload.ID != 0 && payload.ID != uint(id) {
		http.Error(w, "id mismatch", http.StatusBadRequest)
		return
	}

	existing.StudentID = payload.StudentID
	existing.SubjectName = payload.SubjectName
	existing.ExamPaperScore = payload.ExamPaperScore
	existing.PassMarks = payload.PassMarks
	existing.ObtainedScore = payload.ObtainedScore
	existing.Grade = payload.Grade
	existing.PassStatus = payload.PassStatus
	existing.Feedback = payload.Feedback

	if err := h.Repo.Update(existing); err != nil {
		http.Error(w, "could not update mark entry", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, existing)
}

// DELETE /mark-entries/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid mark entry id", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "mark entry not found", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(m); err != nil {
		http.Error(w, "could not delete mark entry", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
