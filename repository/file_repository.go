package repository

import (
	"context"
	"errors"

	"filebox-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FileRepository handles database operations for file records
type FileRepository struct {
	db *pgxpool.Pool
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{db: db}
}

// Create creates a new file record
func (r *FileRepository) Create(ctx context.Context, file *models.File) error {
	query := `
		INSERT INTO files (
			user_id, stored_name, original_name, mime_type, size
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		file.UserID,
		file.StoredName,
		file.OriginalName,
		file.MimeType,
		file.Size,
	).Scan(&file.ID, &file.CreatedAt)

	return err
}

// GetByIDAndUserID retrieves a file by ID, scoped to its owner. A file id
// that exists but belongs to another user is indistinguishable from a
// missing one: both return ErrNotFound.
func (r *FileRepository) GetByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*models.File, error) {
	file := &models.File{}
	query := `
		SELECT id, user_id, stored_name, original_name, mime_type, size, created_at
		FROM files
		WHERE id = $1 AND user_id = $2`

	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&file.ID,
		&file.UserID,
		&file.StoredName,
		&file.OriginalName,
		&file.MimeType,
		&file.Size,
		&file.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return file, nil
}

// ListByUserID retrieves all files for a user in insertion order
func (r *FileRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.File, error) {
	query := `
		SELECT id, user_id, stored_name, original_name, mime_type, size, created_at
		FROM files
		WHERE user_id = $1
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []*models.File
	for rows.Next() {
		file := &models.File{}
		err := rows.Scan(
			&file.ID,
			&file.UserID,
			&file.StoredName,
			&file.OriginalName,
			&file.MimeType,
			&file.Size,
			&file.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, rows.Err()
}
