package service

import (
	"context"
	"errors"
	"fmt"

	"lawbandhu-backend/directory"
	"lawbandhu-backend/models"
	"lawbandhu-backend/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LawyerRoster loads directory records
type LawyerRoster interface {
	List(ctx context.Context) ([]models.Lawyer, error)
}

// StarStore persists per-viewer star flags
type StarStore interface {
	StarredIDs(ctx context.Context, viewerID uuid.UUID) (map[int64]bool, error)
	SetStar(ctx context.Context, viewerID uuid.UUID, lawyerID int64, starred bool) error
}

// LawyerService serves the lawyer directory
type LawyerService struct {
	roster LawyerRoster
	stars  StarStore
}

// LawyerServiceOption is a functional option for LawyerService
type LawyerServiceOption func(*LawyerService)

// WithLawyerRoster sets the roster source
func WithLawyerRoster(r LawyerRoster) LawyerServiceOption {
	return func(s *LawyerService) {
		s.roster = r
	}
}

// WithStarStore sets the star store
func WithStarStore(st StarStore) LawyerServiceOption {
	return func(s *LawyerService) {
		s.stars = st
	}
}

// NewLawyerService creates a new lawyer service
func NewLawyerService(opts ...LawyerServiceOption) *LawyerService {
	s := &LawyerService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListLawyersRequest represents a directory query
type ListLawyersRequest struct {
	ViewerID uuid.UUID
	Search   string
	Criteria models.FilterCriteria
}

// ListLawyersResult represents a filtered, ranked directory page
type ListLawyersResult struct {
	Lawyers       []models.Lawyer `json:"lawyers"`
	Total         int             `json:"total"`
	ActiveFilters int             `json:"active_filters"`
	StarredCount  int             `json:"starred_count"`
}

// List returns the directory filtered by the request, starred lawyers first
func (s *LawyerService) List(ctx context.Context, req ListLawyersRequest) (*ListLawyersResult, error) {
	roster, err := s.viewerRoster(ctx, req.ViewerID)
	if err != nil {
		return nil, err
	}

	lawyers := directory.FilterAndRank(roster, req.Search, req.Criteria)
	return &ListLawyersResult{
		Lawyers:       lawyers,
		Total:         len(lawyers),
		ActiveFilters: directory.CountActiveFilters(req.Criteria),
		StarredCount:  directory.StarredCount(roster),
	}, nil
}

// Get returns one lawyer as seen by viewer
func (s *LawyerService) Get(ctx context.Context, viewerID uuid.UUID, id int64) (*models.Lawyer, error) {
	roster, err := s.viewerRoster(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	l, ok := directory.FindByID(roster, id)
	if !ok {
		return nil, ErrLawyerNotFound
	}
	return &l, nil
}

// ToggleStar flips the viewer's star on a lawyer and returns the updated record
func (s *LawyerService) ToggleStar(ctx context.Context, viewerID uuid.UUID, id int64) (*models.Lawyer, error) {
	if s.stars == nil {
		return nil, errors.New("star store not set")
	}

	roster, err := s.viewerRoster(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	toggled, ok := directory.FindByID(directory.ToggleStar(roster, id), id)
	if !ok {
		return nil, ErrLawyerNotFound
	}

	if err := s.stars.SetStar(ctx, viewerID, id, toggled.IsStarred); err != nil {
		return nil, fmt.Errorf("failed to save star: %w", err)
	}

	log.Debug().Int64("lawyer_id", id).Bool("starred", toggled.IsStarred).Msg("Lawyer star toggled")
	return &toggled, nil
}

// Options returns the filter vocabularies and default bounds
func (s *LawyerService) Options() directory.Options {
	return directory.DefaultOptions()
}

// RecommendFor lists lawyers practising field, starred first
func (s *LawyerService) RecommendFor(ctx context.Context, viewerID uuid.UUID, field models.LegalField) ([]models.Lawyer, error) {
	if !field.Valid() {
		return nil, ErrInvalidField
	}

	criteria := models.DefaultFilterCriteria()
	criteria.Specializations = []string{field.String()}

	res, err := s.List(ctx, ListLawyersRequest{ViewerID: viewerID, Criteria: criteria})
	if err != nil {
		return nil, err
	}
	return res.Lawyers, nil
}

// viewerRoster loads the roster with the viewer's star flags applied
func (s *LawyerService) viewerRoster(ctx context.Context, viewerID uuid.UUID) ([]models.Lawyer, error) {
	if s.roster == nil {
		return nil, errors.New("lawyer roster not set")
	}

	roster, err := s.roster.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load lawyers: %w", err)
	}

	if s.stars == nil || viewerID == uuid.Nil {
		return roster, nil
	}

	starred, err := s.stars.StarredIDs(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stars: %w", err)
	}
	for i := range roster {
		roster[i].IsStarred = starred[roster[i].ID]
	}
	return roster, nil
}

var _ LawyerRoster = (*repository.LawyerRepository)(nil)
var _ StarStore = (*repository.StarRepository)(nil)
