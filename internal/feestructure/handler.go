package feestructure

import (
	"encoding/json"
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

// POST /fee-structures
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var fs FeeStructure
	if err := json.NewDecoder(r.Body).Decode(&fs); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if fs.TypeName == "" {
		http.Error(w, "typeName is required", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Create(&fs); err != nil {
		http.Error(w, "could not create fee structure", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, fs)
}

// GET /fee-structures
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll()
	if err != nil {
		http.Error(w, "could not list fee structures", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, list)
}

// GET /fee-structures/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid fee structure id", http.StatusBadRequest)
		return
	}
	fs, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "fee structure not found", http.StatusNotFound)
		return
	}
	utils.WriteJSON(w, http.StatusOK, fs)
}

// PUT /fee-structures/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid fee structure id", http.StatusBadRequest)
		return
	}
	existing, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "fee structure not found", http.StatusNotFound)
		return
	}

	var payload FeeStructure
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	existing.TypeName = payload.TypeName
	existing.Amount = payload.Amount

	if err := h.Repo.Update(existing); err != nil {
		http.Error(w, "could not update fee structure", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, existing)
}

// DELETE /fee-structures/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid fee structure id", http.StatusBadRequest)
		return
	}
	fs, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "fee structure not found", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(fs); err != nil {
		http.Error(w, "could not delete fee structure", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
