package category_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/expense-tracker/internal"
	"github.com/frahmantamala/expense-tracker/internal/category"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockService implements category.ServiceAPI for handler testing
type MockService struct {
	getFunc    func(userID string) ([]*category.Category, error)
	createFunc func(userID string, dto category.CreateCategoryDTO) (*category.Category, error)
}

func (m *MockService) GetCategories(userID string) ([]*category.Category, error) {
	return m.getFunc(userID)
}

func (m *MockService) CreateCategory(userID string, dto category.CreateCategoryDTO) (*category.Category, error) {
	return m.createFunc(userID, dto)
}

var _ = Describe("Category Handler", func() {
	var (
		mockService *MockService
		handler     *category.Handler
		recorder    *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		mockService = &MockService{}
		handler = category.NewHandler(mockService)
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

	Describe("GetCategories", func() {
		It("should return the user's categories", func() {
			mockService.getFunc = func(userID string) ([]*category.Category, error) {
				Expect(userID).To(Equal("user-1"))
				return []*category.Category{
					{ID: 1, Name: "Food", Subcategories: []string{"Groceries"}},
				}, nil
			}

			handler.GetCategories(recorder, newRequest(http.MethodGet, "/categories", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response map[string][]*category.Category
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response["categories"]).To(HaveLen(1))
			Expect(response["categories"][0].Name).To(Equal("Food"))
		})

		It("should return 400 when no user id is present", func() {
			req := httptest.NewRequest(http.MethodGet, "/categories", nil)
			handler.GetCategories(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("CreateCategory", func() {
		It("should create a category and return 201", func() {
			mockService.createFunc = func(userID string, dto category.CreateCategoryDTO) (*category.Category, error) {
				return &category.Category{ID: 1, UserID: userID, Name: dto.Name, Subcategories: dto.Subcategories}, nil
			}

			body, _ := json.Marshal(category.CreateCategoryDTO{Name: "Food", Subcategories: []string{"Groceries"}})
			handler.CreateCategory(recorder, newRequest(http.MethodPost, "/categories", body))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
		})

		It("should return 409 for a duplicate name", func() {
			mockService.createFunc = func(userID string, dto category.CreateCategoryDTO) (*category.Category, error) {
				return nil, internal.NewConflictError("category already exists", internal.ErrCodeInvalidCategory)
			}

			body, _ := json.Marshal(category.CreateCategoryDTO{Name: "Food"})
			handler.CreateCategory(recorder, newRequest(http.MethodPost, "/categories", body))

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})

		It("should return 400 for a malformed body", func() {
			handler.CreateCategory(recorder, newRequest(http.MethodPost, "/categories", []byte("{oops")))
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
