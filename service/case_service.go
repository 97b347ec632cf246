package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"lawbandhu-backend/models"
	"lawbandhu-backend/repository"
	"lawbandhu-backend/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CaseStore reads cases and records timeline entries
type CaseStore interface {
	GetByID(ctx context.Context, id int64) (*models.LegalCase, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.LegalCase, error)
	ListUpdates(ctx context.Context, caseID int64) ([]models.CaseUpdate, error)
	AddUpdate(ctx context.Context, u *models.CaseUpdate) error
}

// DocumentStore records case document metadata
type DocumentStore interface {
	Create(ctx context.Context, file *models.File) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.File, error)
	ListByCaseID(ctx context.Context, caseID int64) ([]*models.File, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CaseService tracks a user's cases and their documents
type CaseService struct {
	cases   CaseStore
	files   DocumentStore
	storage storage.Storage
}

// CaseServiceOption is a functional option for CaseService
type CaseServiceOption func(*CaseService)

// WithCaseStore sets the case store
func WithCaseStore(c CaseStore) CaseServiceOption {
	return func(s *CaseService) {
		s.cases = c
	}
}

// WithDocumentStore sets the document metadata store
func WithDocumentStore(f DocumentStore) CaseServiceOption {
	return func(s *CaseService) {
		s.files = f
	}
}

// WithStorage sets the document content storage
func WithStorage(st storage.Storage) CaseServiceOption {
	return func(s *CaseService) {
		s.storage = st
	}
}

// NewCaseService creates a new case service
func NewCaseService(opts ...CaseServiceOption) *CaseService {
	s := &CaseService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CaseSummary is a case with its progress
type CaseSummary struct {
	*models.LegalCase
	CompletionPercent int  `json:"completion_percent"`
	Completed         bool `json:"completed"`
}

// CaseDetail is a case with its timeline and documents
type CaseDetail struct {
	CaseSummary
	Updates   []models.CaseUpdate `json:"updates"`
	Documents []*models.File      `json:"documents"`
}

func summarize(c *models.LegalCase) CaseSummary {
	return CaseSummary{
		LegalCase:         c,
		CompletionPercent: c.CompletionPercent(),
		Completed:         c.IsCompleted(),
	}
}

// List returns a user's cases
func (s *CaseService) List(ctx context.Context, userID uuid.UUID) ([]CaseSummary, error) {
	if s.cases == nil {
		return nil, errors.New("case store not set")
	}

	cases, err := s.cases.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]CaseSummary, 0, len(cases))
	for _, c := range cases {
		out = append(out, summarize(c))
	}
	return out, nil
}

// Get returns a case owned by userID with its timeline and documents
func (s *CaseService) Get(ctx context.Context, userID uuid.UUID, caseID int64) (*CaseDetail, error) {
	c, err := s.ownedCase(ctx, userID, caseID)
	if err != nil {
		return nil, err
	}

	updates, err := s.cases.ListUpdates(ctx, caseID)
	if err != nil {
		return nil, err
	}

	docs := []*models.File{}
	if s.files != nil {
		if docs, err = s.files.ListByCaseID(ctx, caseID); err != nil {
			return nil, err
		}
	}

	return &CaseDetail{CaseSummary: summarize(c), Updates: updates, Documents: docs}, nil
}

// AttachDocumentRequest represents an upload to a case
type AttachDocumentRequest struct {
	UserID   uuid.UUID
	CaseID   int64
	Filename string
	MimeType string
	Size     int64
	Content  io.Reader
}

// AttachDocument stores a document, records it and notes it on the case timeline
func (s *CaseService) AttachDocument(ctx context.Context, req AttachDocumentRequest) (*models.File, error) {
	if s.files == nil || s.storage == nil {
		return nil, errors.New("document storage not set")
	}
	if !storage.Accepted(req.Filename) {
		return nil, ErrUnsupportedFile
	}

	if _, err := s.ownedCase(ctx, req.UserID, req.CaseID); err != nil {
		return nil, err
	}

	fileID := uuid.New()
	path, err := s.storage.Put(ctx, storage.Object{FileID: fileID, CaseID: req.CaseID, Filename: req.Filename}, req.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	mime := req.MimeType
	if mime == "" || mime == "application/octet-stream" {
		mime = storage.ContentType(req.Filename)
	}

	caseID := req.CaseID
	file := &models.File{
		ID:          fileID,
		UserID:      req.UserID,
		CaseID:      &caseID,
		Filename:    req.Filename,
		MimeType:    mime,
		Size:        req.Size,
		StoragePath: path,
	}
	if err := s.files.Create(ctx, file); err != nil {
		if rmErr := s.storage.Remove(ctx, path); rmErr != nil {
			log.Warn().Err(rmErr).Str("path", path).Msg("Failed to clean up orphaned document")
		}
		return nil, fmt.Errorf("failed to record document: %w", err)
	}

	update := &models.CaseUpdate{
		CaseID:      req.CaseID,
		Title:       "Document uploaded",
		Description: req.Filename,
		Type:        models.UpdateDocument,
	}
	if err := s.cases.AddUpdate(ctx, update); err != nil {
		log.Warn().Err(err).Int64("case_id", req.CaseID).Msg("Failed to add document update")
	}

	return file, nil
}

// GetDocument opens a document owned by userID. The caller must close the reader.
func (s *CaseService) GetDocument(ctx context.Context, userID, fileID uuid.UUID) (*models.File, io.ReadCloser, error) {
	if s.files == nil || s.storage == nil {
		return nil, nil, errors.New("document storage not set")
	}

	file, err := s.files.GetByID(ctx, fileID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	if file.UserID != userID {
		return nil, nil, ErrDocumentNotFound
	}

	rc, err := s.storage.Open(ctx, file.StoragePath)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	return file, rc, nil
}

// ownedCase loads a case, hiding cases of other users behind ErrCaseNotFound
func (s *CaseService) ownedCase(ctx context.Context, userID uuid.UUID, caseID int64) (*models.LegalCase, error) {
	if s.cases == nil {
		return nil, errors.New("case store not set")
	}

	c, err := s.cases.GetByID(ctx, caseID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCaseNotFound
	}
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, ErrCaseNotFound
	}
	return c, nil
}

var _ CaseStore = (*repository.CaseRepository)(nil)
var _ DocumentStore = (*repository.FileRepository)(nil)
