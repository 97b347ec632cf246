package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"lawbandhu-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CaseHandler handles HTTP requests for cases and their documents
type CaseHandler struct {
	cases       *service.CaseService
	maxFileSize int64
}

// NewCaseHandler creates a new case handler
func NewCaseHandler(cases *service.CaseService, maxFileSize int64) *CaseHandler {
	if maxFileSize <= 0 {
		maxFileSize = 10 * 1024 * 1024 // 10MB
	}
	return &CaseHandler{
		cases:       cases,
		maxFileSize: maxFileSize,
	}
}

// ListCases handles GET /api/cases
func (h *CaseHandler) ListCases(c *gin.Context) {
	cases, err := h.cases.List(c.Request.Context(), currentUser(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{
		"cases": cases,
		"total": len(cases),
	})
}

// GetCase handles GET /api/cases/:id
func (h *CaseHandler) GetCase(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}

	detail, err := h.cases.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, detail)
}

// UploadDocument handles POST /api/cases/:id/documents
func (h *CaseHandler) UploadDocument(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxFileSize+1<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "File is required")
		return
	}

	if fileHeader.Size > h.maxFileSize {
		respondError(c, http.StatusBadRequest, "FILE_TOO_LARGE",
			fmt.Sprintf("File size exceeds maximum of %d bytes", h.maxFileSize))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FILE_OPEN_ERROR", "Failed to read uploaded file")
		return
	}
	defer file.Close()

	doc, err := h.cases.AttachDocument(c.Request.Context(), service.AttachDocumentRequest{
		UserID:   currentUser(c),
		CaseID:   id,
		Filename: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Size:     fileHeader.Size,
		Content:  file,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, doc)
}

// GetDocument handles GET /api/documents/:id
func (h *CaseHandler) GetDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid document ID format")
		return
	}

	doc, reader, err := h.cases.GetDocument(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, doc.Size, doc.MimeType, reader, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", doc.Filename),
	})
}

func caseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid case ID")
		return 0, false
	}
	return id, true
}
