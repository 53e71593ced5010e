package service

import (
	"context"
	"errors"
	"io"
	"log"

	"filebox-backend/models"
	"filebox-backend/repository"
	"filebox-backend/storage"

	"github.com/google/uuid"
)

// FileRepository is the persistence contract the file service needs
type FileRepository interface {
	Create(ctx context.Context, file *models.File) error
	GetByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*models.File, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.File, error)
}

// FileService handles upload, listing and download of user files
type FileService struct {
	fileRepo FileRepository
	storage  storage.Storage
}

// FileServiceOption is a functional option for FileService
type FileServiceOption func(*FileService)

// FileWithRepository sets the file repository
func FileWithRepository(repo FileRepository) FileServiceOption {
	return func(s *FileService) {
		s.fileRepo = repo
	}
}

// FileWithStorage sets the blob storage backend
func FileWithStorage(st storage.Storage) FileServiceOption {
	return func(s *FileService) {
		s.storage = st
	}
}

// NewFileService creates a new file service
func NewFileService(opts ...FileServiceOption) *FileService {
	s := &FileService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upload writes the blob first and records metadata second. The two steps are
// not transactional: if the insert fails the blob is deleted best-effort, and
// a crash in between leaves an orphaned blob on disk.
func (s *FileService) Upload(ctx context.Context, userID uuid.UUID, originalName, mimeType string, size int64, data io.Reader) (*models.File, error) {
	if s.fileRepo == nil || s.storage == nil {
		return nil, errors.New("file service not fully configured")
	}

	storedName, err := s.storage.Save(ctx, originalName, data)
	if err != nil {
		return nil, err
	}

	file := &models.File{
		UserID:       userID,
		StoredName:   storedName,
		OriginalName: originalName,
		MimeType:     mimeType,
		Size:         size,
	}

	if err := s.fileRepo.Create(ctx, file); err != nil {
		// Try to clean up the written blob
		if delErr := s.storage.Delete(ctx, storedName); delErr != nil {
			log.Printf("Warning: failed to clean up blob %s after insert failure: %v", storedName, delErr)
		}
		return nil, err
	}

	return file, nil
}

// List returns the user's file records in insertion order
func (s *FileService) List(ctx context.Context, userID uuid.UUID) ([]*models.File, error) {
	if s.fileRepo == nil {
		return nil, errors.New("file service not fully configured")
	}

	return s.fileRepo.ListByUserID(ctx, userID)
}

// Download resolves the record scoped to its owner and opens the blob. A file
// belonging to another user and a nonexistent id both return ErrNotFound.
// The caller owns the returned reader and must close it.
func (s *FileService) Download(ctx context.Context, fileID, userID uuid.UUID) (*models.File, io.ReadCloser, error) {
	if s.fileRepo == nil || s.storage == nil {
		return nil, nil, errors.New("file service not fully configured")
	}

	file, err := s.fileRepo.GetByIDAndUserID(ctx, fileID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	reader, err := s.storage.Open(ctx, file.StoredName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	return file, reader, nil
}
