package payment

import (
	"bytes"
	"encoding/json"
	"maps"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/SchoolHub/api-school/internal/academicmonth"
	"github.com/SchoolHub/api-school/internal/coursefee"
	"github.com/SchoolHub/api-school/internal/duebalance"
	"github.com/SchoolHub/api-school/internal/student"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memRepo is an in-memory Repository used to exercise the handler without a
// database. Transaction snapshots the maps and restores them when the
// callback fails, matching the all-or-nothing commit of the real thing.
type memRepo struct {
	students  map[uint]student.Student
	fees      map[uint]coursefee.CourseFee
	months    map[uint]academicmonth.AcademicMonth
	payments  map[uint]Payment
	details   map[uint][]PaymentDetail
	balances  map[uint]duebalance.DueBalance
	nextID    uint
	nextBalID uint
}

func newMemRepo() *memRepo {
	return &memRepo{
		students: map[uint]student.Student{},
		fees:     map[uint]coursefee.CourseFee{},
		months:   map[uint]academicmonth.AcademicMonth{},
		payments: map[uint]Payment{},
		details:  map[uint][]PaymentDetail{},
		balances: map[uint]duebalance.DueBalance{},
	}
}

func (m *memRepo) Transaction(fn func(Repository) error) error {
	payments := maps.Clone(m.payments)
	details := maps.Clone(m.details)
	balances := maps.Clone(m.balances)
	nextID, nextBalID := m.nextID, m.nextBalID

	if err := fn(m); err != nil {
		m.payments, m.details, m.balances = payments, details, balances
		m.nextID, m.nextBalID = nextID, nextBalID
		return err
	}
	return nil
}

func (m *memRepo) FindAll() ([]Payment, error) {
	ids := make([]uint, 0, len(m.payments))
	for id := range m.payments {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	list := make([]Payment, 0, len(ids))
	for _, id := range ids {
		p := m.payments[id]
		p.Details = m.details[id]
		list = append(list, p)
	}
	return list, nil
}

func (m *memRepo) FindByID(id uint) (*Payment, error) {
	p, ok := m.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	p.Details = m.details[id]
	return &p, nil
}

func (m *memRepo) Create(p *Payment) error {
	m.nextID++
	p.ID = m.nextID
	m.payments[p.ID] = *p
	return nil
}

func (m *memRepo) Save(p *Payment) error {
	m.payments[p.ID] = *p
	return nil
}

func (m *memRepo) Delete(p *Payment) error {
	delete(m.payments, p.ID)
	delete(m.details, p.ID)
	return nil
}

func (m *memRepo) ReplaceDetails(paymentID uint, details []PaymentDetail) error {
	m.details[paymentID] = details
	return nil
}

func (m *memRepo) StudentByID(id uint) (*student.Student, error) {
	s, ok := m.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (m *memRepo) CourseFeeByID(id uint) (*coursefee.CourseFee, error) {
	cf, ok := m.fees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &cf, nil
}

func (m *memRepo) MonthsByIDs(ids []uint) ([]academicmonth.AcademicMonth, error) {
	var list []academicmonth.AcademicMonth
	for _, id := range ids {
		if month, ok := m.months[id]; ok {
			list = append(list, month)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (m *memRepo) DueBalanceForUpdate(studentID uint) (*duebalance.DueBalance, error) {
	b, ok := m.balances[studentID]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (m *memRepo) UpsertDueBalance(studentID uint, b *duebalance.DueBalance) error {
	b.StudentID = studentID
	b.LastUpdate = time.Now()
	if b.ID == 0 {
		m.nextBalID++
		b.ID = m.nextBalID
	}
	m.balances[studentID] = *b
	return nil
}

func seededRepo() *memRepo {
	repo := newMemRepo()
	repo.students[1] = student.Student{ID: 1, Name: "Rahim Uddin", AdmissionNo: "A-101"}
	repo.fees[1] = coursefee.CourseFee{ID: 1, CourseName: "Science", TotalAmount: dec("1000")}
	repo.months[1] = academicmonth.AcademicMonth{ID: 1, Name: "January"}
	repo.months[2] = academicmonth.AcademicMonth{ID: 2, Name: "February"}
	repo.months[3] = academicmonth.AcademicMonth{ID: 3, Name: "March"}
	return repo
}

func newTestRouter(repo Repository) *mux.Router {
	h := NewHandler(repo)
	r := mux.NewRouter()
	r.HandleFunc("/payments", h.Create).Methods("POST")
	r.HandleFunc("/payments", h.List).Methods("GET")
	r.HandleFunc("/payments/{id}", h.Get).Methods("GET")
	r.HandleFunc("/payments/{id}", h.Update).Methods("PUT")
	r.HandleFunc("/payments/{id}", h.Delete).Methods("DELETE")
	return r
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreatePaymentComputesTotalsAndFansOutDetails(t *testing.T) {
	repo := seededRepo()
	router := newTestRouter(repo)

	rec := doJSON(t, router, http.MethodPost, "/payments", map[string]interface{}{
		"studentId":        1,
		"courseFeeId":      1,
		"academicMonthIds": []uint{1, 2},
		"waiver":           "10",
		"amountPaid":       "500",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var p Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Rahim Uddin", p.StudentName)
	assert.True(t, p.TotalFeeAmount.Equal(dec("2000")))
	assert.True(t, p.TotalAmount.Equal(dec("1800")))
	assert.True(t, p.AmountRemaining.Equal(dec("1300")))
	assert.True(t, p.PreviousDue.IsZero())
	assert.False(t, p.PaymentDate.IsZero())

	require.Len(t, p.Details, 2)
	assert.Equal(t, "January", p.Details[0].MonthName)
	assert.Equal(t, "February", p.Details[1].MonthName)
	assert.True(t, p.Details[0].Amount.Equal(dec("1000")))

	require.Len(t, repo.balances, 1)
	assert.True(t, repo.balances[1].Amount.Equal(dec("1300")))
}

func TestSecondPaymentUsesAndOverwritesDueBalance(t *testing.T) {
	repo := seededRepo()
	router := newTestRouter(repo)

	rec := doJSON(t, router, http.MethodPost, "/payments", map[string]interface{}{
		"studentId":        1,
		"courseFeeId":      1,
		"academicMonthIds": []uint{1, 2},
		"waiver":           "10",
		"amountPaid":       "500",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	firstBalanceID := repo.balances[1].ID

	rec = doJSON(t, router, http.MethodPost, "/payments", map[string]interface{}{
		"studentId":        1,
		"courseFeeId":      1,
		"academicMonthIds": []uint{3},
		"previousDue":      "999999", // client value must be ignored
		"amountPaid":       "0",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var p Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.True(t, p.PreviousDue.Equal(dec("1300")))
	assert.True(t, p.TotalAmount.Equal(dec("2300")))
	assert.True(t, p.AmountRemaining.Equal(dec("2300")))

	// Overwritten in place, not duplicated.
	require.Len(t, repo.balances, 1)
	assert.Equal(t, firstBalanceID, repo.balances[1].ID)
	assert.True(t, repo.balances[1].Amount.Equal(dec("2300")))
}

func TestCreatePaymentInvalidReferencesRollBack(t *testing.T) {
	repo := seededRepo()
	router := newTestRouter(repo)

	rec := doJSON(t, router, http.MethodPost, "/payments", map[string]interface{}{
		"studentId":        42,
		"courseFeeId":      1,
		"academicMonthIds": []uint{1},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/payments", map[string]interface{}{
		"studentId":        1,
		"courseFeeId":      42,
		"academicMonthIds": []uint{1},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	assert.Empty(t, repo.payments, "nothing may persist on a failed write")
	assert.Empty(t, repo.details)
	assert.Empty(t, repo.balances)
}

func TestUpdatePaymentReplacesDetailsAndReconciles(t *testing.T) {
	repo := seededRepo()
	router := newTestRouter(repo)

	rec := doJSON(t, router, http.MethodPost, "/payments", map[string]interface{}{
		"studentId":        1,
		"courseFeeId":      1,
		"academicMonthIds": []uint{1, 2},
		"waiver":           "10",
		"amountPaid":       "500",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var created Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, router, http.MethodPut, "/payments/1", map[string]interface{}{
		"studentId":        1,
		"courseFeeId":      1,
		"academicMonthIds": []uint{3},
		"amountPaid":       "1800",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.TotalFeeAmount.Equal(dec("1000")))
	// The balance left by the create feeds the update's reconciliation.
	assert.True(t, updated.PreviousDue.Equal(dec("1300")))
	assert.True(t, updated.TotalAmount.Equal(dec("2300")))
	assert.True(t, updated.AmountRemaining.Equal(dec("500")))

	require.Len(t, updated.Details, 1)
	assert.Equal(t, "March", updated.Details[0].MonthName)

	assert.True(t, repo.balances[1].Amount.Equal(dec("500")))
}

func TestUpdatePaymentIDMismatch(t *testing.T) {
	router := newTestRouter(seededRepo())

	rec := doJSON(t, router, http.MethodPut, "/payments/1", map[string]interface{}{
		"id":               2,
		"studentId":        1,
		"courseFeeId":      1,
		"academicMonthIds": []uint{1},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateMissingPaymentReturnsNotFound(t *testing.T) {
	router := newTestRouter(seededRepo())

	rec := doJSON(t, router, http.MethodPut, "/payments/9", map[string]interface{}{
		"studentId":        1,
		"courseFeeId":      1,
		"academicMonthIds": []uint{1},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatePaymentValidation(t *testing.T) {
	router := newTestRouter(seededRepo())

	rec := doJSON(t, router, http.MethodPost, "/payments", map[string]interface{}{
		"courseFeeId":      1,
		"academicMonthIds": []uint{1},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "missing studentId")

	rec = doJSON(t, router, http.MethodPost, "/payments", map[string]interface{}{
		"studentId":        1,
		"courseFeeId":      1,
		"academicMonthIds": []uint{1},
		"waiver":           "150",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "waiver out of range")

	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString("{"))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "malformed JSON")
}

func TestGetAndDeletePayment(t *testing.T) {
	repo := seededRepo()
	router := newTestRouter(repo)

	rec := doJSON(t, router, http.MethodGet, "/payments/7", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/payments", map[string]interface{}{
		"studentId":        1,
		"courseFeeId":      1,
		"academicMonthIds": []uint{1},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/payments/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, repo.payments)
	assert.Empty(t, repo.details[1])
}

var _ Repository = (*memRepo)(nil)

// decimal fields round-trip through JSON as strings or numbers; make sure
// the waiver zero value marshals cleanly for the default case.
func TestPaymentMarshalsDecimalFields(t *testing.T) {
	p := Payment{TotalAmount: dec("1800"), Waiver: decimal.Zero}
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"totalAmount":"1800"`)
}
