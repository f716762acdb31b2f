package importer_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/expense-tracker/internal"
	"github.com/frahmantamala/expense-tracker/internal/importer"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockImporter implements importer.ImporterAPI for handler testing
type MockImporter struct {
	importFunc func(userID string, data []byte, filename string) (*importer.Result, error)
}

func (m *MockImporter) Import(userID string, data []byte, filename string) (*importer.Result, error) {
	return m.importFunc(userID, data, filename)
}

func multipartUpload(filename string, content []byte) (*bytes.Buffer, string) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	Expect(err).NotTo(HaveOccurred())
	_, err = part.Write(content)
	Expect(err).NotTo(HaveOccurred())
	Expect(writer.Close()).To(Succeed())
	return &body, writer.FormDataContentType()
}

var _ = Describe("BulkUpload Handler", func() {
	var (
		mockImporter *MockImporter
		handler      *importer.Handler
		recorder     *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		mockImporter = &MockImporter{}
		handler = importer.NewHandler(mockImporter, 1<<20)
		recorder = httptest.NewRecorder()
	})

	newUpload := func(filename string, content []byte, userID string) *http.Request {
		body, contentType := multipartUpload(filename, content)
		req := httptest.NewRequest(http.MethodPost, "/expenses/bulk", body)
		req.Header.Set("Content-Type", contentType)
		if userID != "" {
			req = req.WithContext(internal.ContextWithUserID(req.Context(), userID))
		}
		return req
	}

	It("should pass the upload through and return the result", func() {
		mockImporter.importFunc = func(userID string, data []byte, filename string) (*importer.Result, error) {
			Expect(userID).To(Equal("user-1"))
			Expect(filename).To(Equal("expenses.xlsx"))
			Expect(data).To(Equal([]byte("spreadsheet bytes")))
			return &importer.Result{Submitted: 3, SkippedEmpty: 1}, nil
		}

		handler.BulkUpload(recorder, newUpload("expenses.xlsx", []byte("spreadsheet bytes"), "user-1"))

		Expect(recorder.Code).To(Equal(http.StatusOK))

		var result importer.Result
		Expect(json.Unmarshal(recorder.Body.Bytes(), &result)).To(Succeed())
		Expect(result.Submitted).To(Equal(3))
		Expect(result.SkippedEmpty).To(Equal(1))
	})

	It("should return 400 when the file field is missing", func() {
		req := httptest.NewRequest(http.MethodPost, "/expenses/bulk", bytes.NewReader(nil))
		req = req.WithContext(internal.ContextWithUserID(req.Context(), "user-1"))

		handler.BulkUpload(recorder, req)

		Expect(recorder.Code).To(Equal(http.StatusBadRequest))
	})

	It("should return 400 when no user id is present", func() {
		handler.BulkUpload(recorder, newUpload("expenses.xlsx", []byte("x"), ""))
		Expect(recorder.Code).To(Equal(http.StatusBadRequest))
	})

	It("should surface structural import failures with their status", func() {
		mockImporter.importFunc = func(userID string, data []byte, filename string) (*importer.Result, error) {
			return nil, internal.ErrNoHeaderRow
		}

		handler.BulkUpload(recorder, newUpload("expenses.xlsx", []byte("x"), "user-1"))

		Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))
	})
})
