package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"lawbandhu-backend/models"
	"lawbandhu-backend/repository"
	"lawbandhu-backend/service"
	"lawbandhu-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "handler-tests-secret-at-least-32-bytes"

func init() {
	gin.SetMode(gin.TestMode)
}

type obj map[string]interface{}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		Retryable bool   `json:"retryable"`
	} `json:"error"`
}

type testEnv struct {
	router    *gin.Engine
	auth      *service.AuthService
	notifier  *recordingNotifier
	users     *fakeUsers
	stars     *fakeStars
	cases     *fakeCases
	files     *fakeFiles
	payments  *fakePayments
	completer *fakeCompleter
	db        *fakePinger
}

type envOption func(*envConfig)

type envConfig struct {
	otpLimit    int
	maxUpload   int64
	noCompleter bool
}

func withOTPLimit(n int) envOption {
	return func(c *envConfig) { c.otpLimit = n }
}

func withMaxUpload(n int64) envOption {
	return func(c *envConfig) { c.maxUpload = n }
}

func withoutCompleter() envOption {
	return func(c *envConfig) { c.noCompleter = true }
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	cfg := envConfig{otpLimit: 100, maxUpload: 1 << 20}
	for _, opt := range opts {
		opt(&cfg)
	}

	env := &testEnv{
		notifier:  &recordingNotifier{},
		users:     newFakeUsers(),
		stars:     newFakeStars(),
		cases:     newFakeCases(),
		files:     newFakeFiles(),
		payments:  &fakePayments{},
		completer: &fakeCompleter{answer: "Here is what the law says."},
		db:        &fakePinger{},
	}

	env.auth = service.NewAuthService(
		service.WithUserStore(env.users),
		service.WithNotifier(env.notifier),
		service.WithAuthSettings(service.DefaultAuthSettings(testJWTSecret)),
		service.WithBcryptCost(bcrypt.MinCost),
	)

	assistantOpts := []service.AssistantServiceOption{}
	if !cfg.noCompleter {
		assistantOpts = append(assistantOpts, service.WithCompleter(env.completer))
	}
	assistant := service.NewAssistantService(assistantOpts...)

	docs, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	env.router = NewRouter(Routes{
		Health:    NewHealthHandler(env.db, assistant.Providers),
		Auth:      NewAuthHandler(env.auth),
		Assistant: NewAssistantHandler(assistant),
		Lawyers: NewLawyerHandler(service.NewLawyerService(
			service.WithLawyerRoster(&fakeRoster{lawyers: testRoster()}),
			service.WithStarStore(env.stars),
		)),
		Cases: NewCaseHandler(service.NewCaseService(
			service.WithCaseStore(env.cases),
			service.WithDocumentStore(env.files),
			service.WithStorage(docs),
		), cfg.maxUpload),
		Payments:      NewPaymentHandler(service.NewPaymentService(env.payments)),
		Tokens:        env.auth,
		OTPLimiter:    NewRateLimiter(cfg.otpLimit, time.Minute),
		AllowedOrigin: "http://localhost:5173",
	})
	return env
}

// signIn creates a user and returns a bearer token for it
func (e *testEnv) signIn(t *testing.T, email string) (*models.User, string) {
	t.Helper()
	user, err := e.users.UpsertByEmail(context.Background(), email)
	require.NoError(t, err)
	token, _, err := e.auth.IssueToken(user)
	require.NoError(t, err)
	return user, token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func testRoster() []models.Lawyer {
	return []models.Lawyer{
		{ID: 1, Name: "Asha Rao", Specialization: "Property Law", Rating: 4.8, ExperienceYears: 12,
			Location: "Mumbai", Languages: []string{"English", "Hindi", "Marathi"}, ConsultationFee: 2500},
		{ID: 2, Name: "Vikram Singh", Specialization: "Criminal Law", Rating: 4.5, ExperienceYears: 20,
			Location: "Delhi", Languages: []string{"English", "Hindi"}, ConsultationFee: 5000},
		{ID: 3, Name: "Meera Iyer", Specialization: "Family Law", Rating: 4.9, ExperienceYears: 8,
			Location: "Chennai", Languages: []string{"English", "Tamil"}, ConsultationFee: 1500},
		{ID: 4, Name: "Rohan Mehta", Specialization: "Property Law", Rating: 4.2, ExperienceYears: 5,
			Location: "Pune", Languages: []string{"English", "Marathi"}, ConsultationFee: 1200},
	}
}

var errBoom = errors.New("boom")

type fakePinger struct {
	err error
}

func (p *fakePinger) Ping(context.Context) error { return p.err }

type fakeCompleter struct {
	answer string
	err    error
}

func (f *fakeCompleter) Complete(context.Context, string) (string, error) {
	return f.answer, f.err
}

func (f *fakeCompleter) Name() string { return "fake" }

type fakeRoster struct {
	lawyers []models.Lawyer
}

func (f *fakeRoster) List(context.Context) ([]models.Lawyer, error) {
	return append([]models.Lawyer(nil), f.lawyers...), nil
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
	for id := range f.starred[viewer] {
		out[id] = true
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

func newFakeCases() *fakeCases {
	return &fakeCases{cases: make(map[int64]*models.LegalCase), updates: make(map[int64][]models.CaseUpdate)}
}

func (f *fakeCases) add(c *models.LegalCase) {
	f.cases[c.ID] = c
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
	for _, c := range f.cases {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
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
	files map[uuid.UUID]*models.File
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{files: make(map[uuid.UUID]*models.File)}
}

func (f *fakeFiles) Create(_ context.Context, file *models.File) error {
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
	mu      sync.Mutex
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
	f.mu.Lock()
	defer f.mu.Unlock()
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
	f.mu.Lock()
	defer f.mu.Unlock()
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
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) SetRole(_ context.Context, id uuid.UUID, role models.UserRole) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.Role = role
	return u, nil
}

type recordingNotifier struct {
	mu    sync.Mutex
	codes map[string]string
}

func (n *recordingNotifier) record(to, code string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.codes == nil {
		n.codes = make(map[string]string)
	}
	n.codes[to] = code
}

func (n *recordingNotifier) codeFor(to string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.codes[to]
}

func (n *recordingNotifier) SendEmailOTP(_ context.Context, email, code string, _ time.Duration) error {
	n.record(email, code)
	return nil
}

func (n *recordingNotifier) SendSMSOTP(_ context.Context, phone, code string, _ time.Duration) error {
	n.record(phone, code)
	return nil
}

func TestHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodGet, "/health", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, "ok", body["status"])
		require.Equal(t, "ok", body["database"])
		require.Equal(t, true, body["ai_configured"])
	})

	t.Run("database down", func(t *testing.T) {
		env := newTestEnv(t, withoutCompleter())
		env.db.err = errBoom

		w := env.do(t, http.MethodGet, "/health", "", nil)
		require.Equal(t, http.StatusServiceUnavailable, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, "degraded", body["status"])
		require.Equal(t, false, body["ai_configured"])
	})
}
