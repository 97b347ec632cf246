package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"lawbandhu-backend/models"
	"lawbandhu-backend/repository"

	"github.com/google/uuid"
)

type fakeCompleter struct {
	answer string
	err    error
	calls  int
}

func (f *fakeCompleter) Complete(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.answer, f.err
}

func (f *fakeCompleter) Name() string { return "fake" }

type fakeRoster struct {
	lawyers []models.Lawyer
	err     error
}

func (f *fakeRoster) List(context.Context) ([]models.Lawyer, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Lawyer, len(f.lawyers))
	copy(out, f.lawyers)
	return out, nil
}

type fakeStars struct {
	mu      sync.Mutex
	starred map[uuid.UUID]map[int64]bool
}

func newFakeStars() *fakeStars {
	return &fakeStars{starred: make(map[uuid.UUID]map[int64]bool)}
}

func (f *fakeStars) StarredIDs(_ context.Context, viewer uuid.UUID) (map[int64]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[int64]bool)
	for id, v := range f.starred[viewer] {
		out[id] = v
	}
	return out, nil
}

func (f *fakeStars) SetStar(_ context.Context, viewer uuid.UUID, id int64, starred bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.starred[viewer] == nil {
		f.starred[viewer] = make(map[int64]bool)
	}
	if starred {
		f.starred[viewer][id] = true
	} else {
		delete(f.starred[viewer], id)
	}
	return nil
}

type fakeCases struct {
	cases   map[int64]*models.LegalCase
	updates map[int64][]models.CaseUpdate
}

func newFakeCases(cases ...*models.LegalCase) *fakeCases {
	f := &fakeCases{cases: make(map[int64]*models.LegalCase), updates: make(map[int64][]models.CaseUpdate)}
	for _, c := range cases {
		f.cases[c.ID] = c
	}
	return f
}

func (f *fakeCases) GetByID(_ context.Context, id int64) (*models.LegalCase, error) {
	c, ok := f.cases[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (f *fakeCases) ListByUserID(_ context.Context, userID uuid.UUID) ([]*models.LegalCase, error) {
	out := []*models.LegalCase{}
	for id := int64(1); id <= int64(len(f.cases))+10; id++ {
		if c, ok := f.cases[id]; ok && c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCases) ListUpdates(_ context.Context, caseID int64) ([]models.CaseUpdate, error) {
	return append([]models.CaseUpdate{}, f.updates[caseID]...), nil
}

func (f *fakeCases) AddUpdate(_ context.Context, u *models.CaseUpdate) error {
	u.ID = int64(len(f.updates[u.CaseID]) + 1)
	u.CreatedAt = time.Now()
	f.updates[u.CaseID] = append(f.updates[u.CaseID], *u)
	return nil
}

type fakeFiles struct {
	files     map[uuid.UUID]*models.File
	createErr error
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{files: make(map[uuid.UUID]*models.File)}
}

func (f *fakeFiles) Create(_ context.Context, file *models.File) error {
	if f.createErr != nil {
		return f.createErr
	}
	if file.ID == uuid.Nil {
		file.ID = uuid.New()
	}
	file.CreatedAt = time.Now()
	f.files[file.ID] = file
	return nil
}

func (f *fakeFiles) GetByID(_ context.Context, id uuid.UUID) (*models.File, error) {
	file, ok := f.files[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return file, nil
}

func (f *fakeFiles) ListByCaseID(_ context.Context, caseID int64) ([]*models.File, error) {
	out := []*models.File{}
	for _, file := range f.files {
		if file.CaseID != nil && *file.CaseID == caseID {
			out = append(out, file)
		}
	}
	return out, nil
}

func (f *fakeFiles) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.files, id)
	return nil
}

type fakePayments struct {
	payments []*models.Payment
}

func (f *fakePayments) ListByUserID(_ context.Context, userID uuid.UUID, status *models.PaymentStatus) ([]*models.Payment, error) {
	out := []*models.Payment{}
	for _, p := range f.payments {
		if p.UserID == userID && (status == nil || p.Status == *status) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeUsers struct {
	byID    map[uuid.UUID]*models.User
	byEmail map[string]*models.User
	byPhone map[string]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		byID:    make(map[uuid.UUID]*models.User),
		byEmail: make(map[string]*models.User),
		byPhone: make(map[string]*models.User),
	}
}

func (f *fakeUsers) UpsertByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	e := email
	u := &models.User{ID: uuid.New(), Email: &e, Name: email}
	f.byEmail[email] = u
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsers) UpsertByPhone(_ context.Context, phone string) (*models.User, error) {
	if u, ok := f.byPhone[phone]; ok {
		return u, nil
	}
	p := phone
	u := &models.User{ID: uuid.New(), Phone: &p, Name: phone}
	f.byPhone[phone] = u
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) SetRole(_ context.Context, id uuid.UUID, role models.UserRole) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.Role = role
	return u, nil
}

type sentOTP struct {
	channel string
	to      string
	code    string
}

type recordingNotifier struct {
	sent []sentOTP
	err  error
}

func (n *recordingNotifier) SendEmailOTP(_ context.Context, email, code string, _ time.Duration) error {
	n.sent = append(n.sent, sentOTP{"email", email, code})
	return n.err
}

func (n *recordingNotifier) SendSMSOTP(_ context.Context, phone, code string, _ time.Duration) error {
	n.sent = append(n.sent, sentOTP{"sms", phone, code})
	return n.err
}

func (n *recordingNotifier) last() sentOTP {
	return n.sent[len(n.sent)-1]
}

var errBoom = errors.New("boom")
