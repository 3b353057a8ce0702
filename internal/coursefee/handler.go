package coursefee

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/SchoolHub/api-school/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler serves the course fee routes.
type Handler struct {
	Repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{Repo: repo}
}

// GET /course-fees
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll()
	if err != nil {
		http.Error(w, "could not list course fees", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, list)
}

// GET /course-fees/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid course fee id", http.StatusBadRequest)
		return
	}
	cf, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "course fee not found", http.StatusNotFound)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cf)
}

// POST /course-fees
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req SaveCourseFeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := utils.Validate(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var created *CourseFee
	err := h.Repo.Transaction(func(tx Repository) error {
		structures, err := tx.FeeStructuresByIDs(req.FeeStructureIDs)
		if err != nil {
			return err
		}

		cf := &CourseFee{
			CourseName:  req.CourseName,
			TotalAmount: req.TotalCourseFeeAmount,
		}
		if len(structures) > 0 {
			cf.TotalAmount = SumAmounts(structures)
		}
		if err := tx.Create(cf); err != nil {
			return err
		}
		if err := tx.AttachStructures(cf.ID, req.FeeStructureIDs); err != nil {
			return err
		}
		if err := tx.ReplaceDetails(cf.ID, ExpandDetails(cf.ID, structures)); err != nil {
			return err
		}
		created = cf
		return nil
	})
	if err != nil {
		http.Error(w, "could not create course fee", http.StatusInternalServerError)
		return
	}

	cf, err := h.Repo.FindByID(created.ID)
	if err != nil {
		http.Error(w, "could not load course fee", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cf)
}

// PUT /course-fees/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid course fee id", http.StatusBadRequest)
		return
	}

	var req SaveCourseFeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.ID != 0 && req.ID != uint(id) {
		http.Error(w, "id mismatch", http.StatusBadRequest)
		return
	}
	if err := utils.Validate(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.Repo.Transaction(func(tx Repository) error {
		existing, err := tx.FindByID(uint(id))
		if err != nil {
			return err
		}

		structures, err := tx.FeeStructuresByIDs(req.FeeStructureIDs)
		if err != nil {
			return err
		}

		existing.CourseName = req.CourseName
		existing.TotalAmount = req.TotalCourseFeeAmount
		if len(structures) > 0 {
			existing.TotalAmount = SumAmounts(structures)
		}
		if err := tx.Save(existing); err != nil {
			return err
		}

		// Full replace: reassign component back-references and regenerate
		// the snapshot rows from the new selection.
		if err := tx.DetachStructures(existing.ID); err != nil {
			return err
		}
		if err := tx.AttachStructures(existing.ID, req.FeeStructureIDs); err != nil {
			return err
		}
		return tx.ReplaceDetails(existing.ID, ExpandDetails(existing.ID, structures))
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "course fee not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update course fee", http.StatusInternalServerError)
		return
	}

	cf, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "could not load course fee", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cf)
}

// DELETE /course-fees/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid course fee id", http.StatusBadRequest)
		return
	}

	err = h.Repo.Transaction(func(tx Repository) error {
		cf, err := tx.FindByID(uint(id))
		if err != nil {
			return err
		}
		// Components outlive the package; only the back-reference goes.
		if err := tx.DetachStructures(cf.ID); err != nil {
			return err
		}
		return tx.Delete(cf)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "course fee not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete course fee", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
