package handlers

import (
	"net/http"
	"sync"
	"time"

	"legalease-backend/models"
	"legalease-backend/service"
	"legalease-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles HTTP requests for document upload and analysis
type DocumentHandler struct {
	documentService *service.DocumentService
	storage         storage.Storage

	maxFileSize      int64
	allowedMimeTypes map[string]bool

	// Upload metadata is process-local; document persistence beyond the
	// process lifetime is out of scope.
	mu        sync.RWMutex
	documents map[uuid.UUID]models.Document
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService, store storage.Storage) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		storage:         store,
		maxFileSize:     10 * 1024 * 1024, // 10MB
		allowedMimeTypes: map[string]bool{
			"application/pdf": true,
			"text/plain":      true,
			"image/jpeg":      true,
			"image/png":       true,
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true, // .docx
		},
		documents: make(map[uuid.UUID]models.Document),
	}
}

// AnalyzeRequest represents the request body for document analysis
type AnalyzeRequest struct {
	FileName string `json:"fileName"`
}

// Analyze handles POST /api/analyze-document
func (h *DocumentHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FileName == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILENAME",
				"message": "fileName is required",
			},
		})
		return
	}

	c.JSON(http.StatusOK, h.documentService.Analyze(req.FileName))
}

// Upload handles POST /api/documents/upload
func (h *DocumentHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILE",
				"message": "file is required",
			},
		})
		return
	}

	if fileHeader.Size > h.maxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_TOO_LARGE",
				"message": "file exceeds the 10MB limit",
			},
		})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !h.allowedMimeTypes[mimeType] {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNSUPPORTED_TYPE",
				"message": "unsupported file type: " + mimeType,
			},
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "READ_FAILED",
				"message": err.Error(),
			},
		})
		return
	}
	defer file.Close()

	doc := models.Document{
		ID:        uuid.New(),
		Filename:  fileHeader.Filename,
		MimeType:  mimeType,
		Size:      fileHeader.Size,
		CreatedAt: time.Now(),
	}

	storagePath, err := h.storage.Save(c.Request.Context(), doc.ID, doc.Filename, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}
	doc.StoragePath = storagePath

	h.mu.Lock()
	h.documents[doc.ID] = doc
	h.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"data":     doc,
		"analysis": h.documentService.Analyze(doc.Filename),
	})
}

// Get handles GET /api/documents/:id
func (h *DocumentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid document ID format",
			},
		})
		return
	}

	h.mu.RLock()
	doc, ok := h.documents[id]
	h.mu.RUnlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Document not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    doc,
	})
}
