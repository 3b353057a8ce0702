package examschedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

// GET /exam-schedules
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll()
	if err != nil {
		http.Error(w, "could not list exam schedules", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, list)
}

// GET /exam-schedules/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid exam schedule id", http.StatusBadRequest)
		return
	}
	es, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "exam schedule not found", http.StatusNotFound)
		return
	}
	utils.WriteJSON(w, http.StatusOK, es)
}

// POST /exam-schedules
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req SaveExamScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := utils.Validate(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	es := &ExamSchedule{Name: req.Name, ExamTypeID: req.ExamTypeID}
	if err := h.Repo.Create(es); err != nil {
		http.Error(w, "could not create exam schedule", http.StatusInternalServerError)
		return
	}
	if err := h.Repo.AssignSubjects(es.ID, req.SubjectIDs); err != nil {
		http.Error(w, "could not assign subjects", http.StatusInternalServerError)
		return
	}

	out, err := h.Repo.FindByID(es.ID)
	if err != nil {
		http.Error(w, "could not load exam schedule", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, out)
}

// PUT /exam-schedules/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid exam schedule id", http.StatusBadRequest)
		return
	}

	existing, err := h.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "exam schedule not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not load exam schedule", http.StatusInternalServerError)
		return
	}

	var req SaveExamScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := utils.Validate(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	existing.Name = req.Name
	existing.ExamTypeID = req.ExamTypeID
	if err := h.Repo.Save(existing); err != nil {
		http.Error(w, "could not update exam schedule", http.StatusInternalServerError)
		return
	}
	if err := h.Repo.AssignSubjects(existing.ID, req.SubjectIDs); err != nil {
		http.Error(w, "could not assign subjects", http.StatusInternalServerError)
		return
	}

	out, err := h.Repo.FindByID(existing.ID)
	if err != nil {
		http.Error(w, "could not load exam schedule", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

// DELETE /exam-schedules/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid exam schedule id", http.StatusBadRequest)
		return
	}
	es, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "exam schedule not found", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(es); err != nil {
		http.Error(w, "could not delete exam schedule", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /exam-types
func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAllTypes()
	if err != nil {
		http.Error(w, "could not list exam types", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, list)
}

// POST /exam-types
func (h *Handler) CreateType(w http.ResponseWriter, r *http.Request) {
	var t ExamType
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if t.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if err := h.Repo.CreateType(&t); err != nil {
		http.Error(w, "could not create exam type", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, t)
}

// GET /exam-subjects
func (h *Handler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAllSubjects()
	if err != nil {
		http.Error(w, "could not list exam subjects", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, list)
}

// POST /exam-subjects
func (h *Handler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	var s ExamSubject
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if s.SubjectName == "" || s.SubjectCode == "" {
		http.Error(w, "subjectName and subjectCode are required", http.StatusBadRequest)
		return
	}
	if err := h.Repo.CreateSubject(&s); err != nil {
		http.Error(w, "could not create exam subject", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, s)
}
