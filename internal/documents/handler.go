package documents

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"briefbot-backend/internal/shared/server/middleware"
	"briefbot-backend/internal/shared/server/respond"
)

// uploadBodyLimit bounds the multipart request body. Slightly above the file
// limit so form overhead does not reject a file of exactly the maximum size.
const uploadBodyLimit = maxFileSize + 512*1024

// Handler wires HTTP handlers to the documents service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents", h.uploadDocument)
	rg.GET("/documents", h.listDocuments)
	rg.GET("/documents/:id", h.getDocument)
	rg.POST("/documents/:id/process", h.processDocument)
}

func (h *Handler) uploadDocument(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "authentication required", nil)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, uploadBodyLimit)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "File size must be less than 10MB", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "Please select a file to upload", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}

	doc, err := h.Svc.Upload(c.Request.Context(), userID, UploadInput{
		FileName: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Data:     data,
	})
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			respond.Error(c, http.StatusBadRequest, "validation_error", validationErr.Message, nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to upload document", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"documentId":   doc.ID,
		"originalName": doc.OriginalName,
		"status":       doc.Status,
		"createdAt":    doc.CreatedAt,
	})
}

func (h *Handler) listDocuments(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "authentication required", nil)
		return
	}

	limit := 0
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	docs, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list documents", nil)
		return
	}

	items := make([]listItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, toListItem(doc))
	}
	respond.OK(c, gin.H{"documents": items})
}

func (h *Handler) getDocument(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "authentication required", nil)
		return
	}
	documentID := c.Param("id")
	if documentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "document id is required", nil)
		return
	}

	detail, err := h.Svc.Get(c.Request.Context(), userID, documentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch document", nil)
		}
		return
	}

	respond.OK(c, detail)
}

func (h *Handler) processDocument(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "authentication required", nil)
		return
	}
	documentID := c.Param("id")
	if documentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "document id is required", nil)
		return
	}

	outcome, err := h.Svc.Process(c.Request.Context(), userID, documentID)
	if err != nil {
		var stateErr *InvalidStateError
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		case errors.As(err, &stateErr):
			respond.Error(c, http.StatusConflict, "invalid_state", stateErr.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process document", nil)
		}
		return
	}

	if outcome.Failed {
		respond.OK(c, gin.H{
			"success":    false,
			"documentId": outcome.Document.ID,
			"status":     outcome.Document.Status,
			"error":      outcome.Reason,
		})
		return
	}
	respond.OK(c, gin.H{
		"success":    true,
		"documentId": outcome.Document.ID,
		"status":     outcome.Document.Status,
	})
}
