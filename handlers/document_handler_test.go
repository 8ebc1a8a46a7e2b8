package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/http/httptest"
	"testing"

	"legalease-backend/service"
	"legalease-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocumentRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	h := NewDocumentHandler(service.NewDocumentService(), store)

	r := gin.New()
	r.POST("/api/analyze-document", h.Analyze)
	r.POST("/api/documents/upload", h.Upload)
	r.GET("/api/documents/:id", h.Get)
	return r
}

func multipartUpload(t *testing.T, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestAnalyzeDocument(t *testing.T) {
	r := newDocumentRouter(t)

	w := postJSON(r, "/api/analyze-document", `{"fileName": "rent-agreement.pdf"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rental Agreement")
}

func TestAnalyzeDocumentMissingFileName(t *testing.T) {
	r := newDocumentRouter(t)

	w := postJSON(r, "/api/analyze-document", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_FILENAME")
}

func TestUploadAndGet(t *testing.T) {
	r := newDocumentRouter(t)

	body, contentType := multipartUpload(t, "lease.pdf", "application/pdf", []byte("%PDF-1.4 test"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID       string `json:"id"`
			Filename string `json:"filename"`
		} `json:"data"`
		Analysis struct {
			DocumentType string `json:"documentType"`
		} `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "lease.pdf", resp.Data.Filename)
	assert.Equal(t, "Rental Agreement", resp.Analysis.DocumentType)
	require.NotEmpty(t, resp.Data.ID)

	// The stored document is retrievable by its id
	getW := httptest.NewRecorder()
	r.ServeHTTP(getW, httptest.NewRequest(http.MethodGet, "/api/documents/"+resp.Data.ID, nil))
	assert.Equal(t, http.StatusOK, getW.Code)
	assert.Contains(t, getW.Body.String(), "lease.pdf")
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	r := newDocumentRouter(t)

	body, contentType := multipartUpload(t, "malware.exe", "application/x-msdownload", []byte("MZ"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNSUPPORTED_TYPE")
}

func TestUploadRejectsMissingFile(t *testing.T) {
	r := newDocumentRouter(t)

	w := postJSON(r, "/api/documents/upload", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_FILE")
}

func TestGetUnknownDocument(t *testing.T) {
	r := newDocumentRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/documents/5f6f0b5e-3f48-4a2b-9a74-1f0d9c8e4a11", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestGetInvalidID(t *testing.T) {
	r := newDocumentRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/documents/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
}
