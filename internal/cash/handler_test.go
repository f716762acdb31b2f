package cash_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/frahmantamala/expense-tracker/internal"
	"github.com/frahmantamala/expense-tracker/internal/cash"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockService implements cash.ServiceAPI for handler testing
type MockService struct {
	addFunc func(userID string, amount float64, description string) (*cash.Transaction, error)
	getFunc func(userID string) ([]*cash.Transaction, error)
}

func (m *MockService) AddTransaction(userID string, amount float64, description string) (*cash.Transaction, error) {
	return m.addFunc(userID, amount, description)
}

func (m *MockService) GetTransactions(userID string) ([]*cash.Transaction, error) {
	return m.getFunc(userID)
}

var _ = Describe("Cash Handler", func() {
	var (
		mockService *MockService
		handler     *cash.Handler
		recorder    *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		mockService = &MockService{}
		handler = cash.NewHandler(mockService)
		recorder = httptest.NewRecorder()
	})

	newRequest := func(method, target string, body []byte) *http.Request {
		var req *http.Request
		if body != nil {
			req = httptest.NewRequest(method, target, bytes.NewReader(body))
		} else {
			req = httptest.NewRequest(method, target, nil)
		}
		return req.WithContext(internal.ContextWithUserID(req.Context(), "user-1"))
	}

	Describe("AddTransaction", func() {
		It("should log the movement and return 201", func() {
			mockService.addFunc = func(userID string, amount float64, description string) (*cash.Transaction, error) {
				Expect(amount).To(Equal(150.0))
				Expect(description).To(Equal("ATM withdrawal"))
				return &cash.Transaction{ID: 1, UserID: userID, Amount: amount, Description: description, Date: time.Now()}, nil
			}

			body, _ := json.Marshal(map[string]interface{}{"amount": 150.0, "description": "ATM withdrawal"})
			handler.AddTransaction(recorder, newRequest(http.MethodPost, "/cash-transactions", body))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
		})

		It("should surface validation failures as 400", func() {
			mockService.addFunc = func(userID string, amount float64, description string) (*cash.Transaction, error) {
				return nil, internal.NewValidationError("amount must be greater than 0", internal.ErrCodeInvalidAmount)
			}

			body, _ := json.Marshal(map[string]interface{}{"amount": 0})
			handler.AddTransaction(recorder, newRequest(http.MethodPost, "/cash-transactions", body))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 400 for a malformed body", func() {
			handler.AddTransaction(recorder, newRequest(http.MethodPost, "/cash-transactions", []byte("{oops")))
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GetTransactions", func() {
		It("should return the user's transactions", func() {
			mockService.getFunc = func(userID string) ([]*cash.Transaction, error) {
				return []*cash.Transaction{{ID: 1, UserID: userID, Amount: 100}}, nil
			}

			handler.GetTransactions(recorder, newRequest(http.MethodGet, "/cash-transactions", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response map[string][]*cash.Transaction
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response["transactions"]).To(HaveLen(1))
		})

		It("should return 400 when no user id is present", func() {
			req := httptest.NewRequest(http.MethodGet, "/cash-transactions", nil)
			handler.GetTransactions(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
