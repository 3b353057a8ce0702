package duebalance

import (
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

// GET /due-balances
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll()
	if err != nil {
		http.Error(w, "could not list due balances", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, list)
}

// GET /due-balances/students/{id}
func (h *Handler) GetByStudent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid student id", http.StatusBadRequest)
		return
	}
	b, err := h.Repo.FindByStudent(uint(id))
	if err != nil {
		http.Error(w, "no due balance for student", http.StatusNotFound)
		return
	}
	utils.WriteJSON(w, http.StatusOK, b)
}
