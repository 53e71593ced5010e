package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"path/filepath"

	"filebox-backend/models"
	"filebox-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FileService is the business contract the file handler needs
type FileService interface {
	Upload(ctx context.Context, userID uuid.UUID, originalName, mimeType string, size int64, data io.Reader) (*models.File, error)
	List(ctx context.Context, userID uuid.UUID) ([]*models.File, error)
	Download(ctx context.Context, fileID, userID uuid.UUID) (*models.File, io.ReadCloser, error)
}

// FileHandler handles HTTP requests for file operations
type FileHandler struct {
	fileService FileService
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileService FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// Upload handles POST /api/upload
func (h *FileHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Printf("upload failed to open multipart file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}
	defer src.Close()

	// Determine MIME type, falling back to the extension when the part
	// header carries no Content-Type
	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(fileHeader.Filename))
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
	}

	file, err := h.fileService.Upload(
		c.Request.Context(),
		currentUserID(c),
		fileHeader.Filename,
		mimeType,
		fileHeader.Size,
		src,
	)
	if err != nil {
		log.Printf("upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            file.ID,
		"filename":      file.StoredName,
		"original_name": file.OriginalName,
	})
}

// List handles GET /api/files
func (h *FileHandler) List(c *gin.Context) {
	files, err := h.fileService.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		log.Printf("list files failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}

	if files == nil {
		files = []*models.File{}
	}

	c.JSON(http.StatusOK, files)
}

// Download handles GET /api/files/:id
func (h *FileHandler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	file, reader, err := h.fileService.Download(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		log.Printf("download failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Download failed"})
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.OriginalName))
	c.DataFromReader(http.StatusOK, file.Size, file.MimeType, reader, nil)
}
