package export_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/expense-tracker/internal"
	"github.com/frahmantamala/expense-tracker/internal/expense"
	"github.com/frahmantamala/expense-tracker/internal/export"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
)

// MockLister implements export.ExpenseLister for handler testing
type MockLister struct {
	listFunc func(userID string, filter expense.ListFilter) ([]*expense.Expense, int64, error)
}

func (m *MockLister) ListExpenses(userID string, filter expense.ListFilter) ([]*expense.Expense, int64, error) {
	return m.listFunc(userID, filter)
}

var _ = Describe("ExportStatements Handler", func() {
	var (
		mockLister *MockLister
		handler    *export.Handler
		recorder   *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		mockLister = &MockLister{
			listFunc: func(userID string, filter expense.ListFilter) ([]*expense.Expense, int64, error) {
				return sampleExpenses(), int64(len(sampleExpenses())), nil
			},
		}
		handler = export.NewHandler(mockLister)
		recorder = httptest.NewRecorder()
	})

	newRequest := func(target string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		return req.WithContext(internal.ContextWithUserID(req.Context(), "user-1"))
	}

	It("should default to a spreadsheet attachment", func() {
		handler.ExportStatements(recorder, newRequest("/expenses/export"))

		Expect(recorder.Code).To(Equal(http.StatusOK))
		Expect(recorder.Header().Get("Content-Type")).To(ContainSubstring("spreadsheetml"))
		Expect(recorder.Header().Get("Content-Disposition")).To(ContainSubstring(`statements_all.xlsx`))

		_, err := excelize.OpenReader(bytes.NewReader(recorder.Body.Bytes()))
		Expect(err).NotTo(HaveOccurred())
	})

	It("should render a PDF when requested", func() {
		handler.ExportStatements(recorder, newRequest("/expenses/export?format=pdf"))

		Expect(recorder.Code).To(Equal(http.StatusOK))
		Expect(recorder.Header().Get("Content-Type")).To(Equal("application/pdf"))
		Expect(recorder.Body.Bytes()[:5]).To(Equal([]byte("%PDF-")))
	})

	It("should encode the filter bounds into the filename", func() {
		handler.ExportStatements(recorder, newRequest("/expenses/export?from=2024-03-01&to=2024-03-31&format=pdf"))

		Expect(recorder.Header().Get("Content-Disposition")).To(ContainSubstring("statements_2024-03-01_to_2024-03-31.pdf"))
	})

	It("should read the full filtered set, never a page", func() {
		var captured expense.ListFilter
		mockLister.listFunc = func(userID string, filter expense.ListFilter) ([]*expense.Expense, int64, error) {
			captured = filter
			return nil, 0, nil
		}

		handler.ExportStatements(recorder, newRequest("/expenses/export?limit=5&offset=10"))

		Expect(captured.Limit).To(Equal(0))
		Expect(captured.Offset).To(Equal(0))
	})

	It("should reject unknown formats", func() {
		handler.ExportStatements(recorder, newRequest("/expenses/export?format=csv"))
		Expect(recorder.Code).To(Equal(http.StatusBadRequest))
	})

	It("should require a user id", func() {
		req := httptest.NewRequest(http.MethodGet, "/expenses/export", nil)
		handler.ExportStatements(recorder, req)
		Expect(recorder.Code).To(Equal(http.StatusBadRequest))
	})
})
