package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"lawbandhu-backend/models"
	"lawbandhu-backend/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// UserStore persists users
type UserStore interface {
	UpsertByEmail(ctx context.Context, email string) (*models.User, error)
	UpsertByPhone(ctx context.Context, phone string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role models.UserRole) (*models.User, error)
}

// Channel is how a one-time password is delivered
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPhone Channel = "phone"
)

// AuthSettings configures AuthService
type AuthSettings struct {
	JWTSecret      []byte
	Issuer         string
	TokenTTL       time.Duration
	OTPTTL         time.Duration
	OTPMaxAttempts int
}

// DefaultAuthSettings returns the stock token and OTP lifetimes
func DefaultAuthSettings(secret string) AuthSettings {
	return AuthSettings{
		JWTSecret:      []byte(secret),
		Issuer:         "lawbandhu",
		TokenTTL:       7 * 24 * time.Hour,
		OTPTTL:         10 * time.Minute,
		OTPMaxAttempts: 3,
	}
}

// Claims are the session token claims
type Claims struct {
	Role models.UserRole `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the token subject as a UUID
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// AuthService signs users in with one-time passwords and issues session tokens
type AuthService struct {
	users      UserStore
	otps       OTPStore
	notifier   Notifier
	settings   AuthSettings
	bcryptCost int
	now        func() time.Time
	newCode    func() (string, error)
}

// AuthServiceOption is a functional option for AuthService
type AuthServiceOption func(*AuthService)

// WithUserStore sets the user store
func WithUserStore(u UserStore) AuthServiceOption {
	return func(s *AuthService) {
		s.users = u
	}
}

// WithOTPStore sets the OTP store
func WithOTPStore(o OTPStore) AuthServiceOption {
	return func(s *AuthService) {
		s.otps = o
	}
}

// WithNotifier sets OTP delivery
func WithNotifier(n Notifier) AuthServiceOption {
	return func(s *AuthService) {
		s.notifier = n
	}
}

// WithAuthSettings sets token and OTP settings
func WithAuthSettings(settings AuthSettings) AuthServiceOption {
	return func(s *AuthService) {
		s.settings = settings
	}
}

// WithBcryptCost overrides the OTP hashing cost
func WithBcryptCost(cost int) AuthServiceOption {
	return func(s *AuthService) {
		s.bcryptCost = cost
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) AuthServiceOption {
	return func(s *AuthService) {
		s.now = now
	}
}

// WithCodeGenerator overrides OTP generation
func WithCodeGenerator(gen func() (string, error)) AuthServiceOption {
	return func(s *AuthService) {
		s.newCode = gen
	}
}

// NewAuthService creates a new auth service. OTPs live in memory unless
// WithOTPStore is given.
func NewAuthService(opts ...AuthServiceOption) *AuthService {
	s := &AuthService{
		otps:       NewMemoryOTPStore(),
		notifier:   LogNotifier{},
		settings:   DefaultAuthSettings(""),
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
		newCode:    generateOTP,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// generateOTP returns a uniformly random 6-digit code
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// NormalizeIdentifier validates and canonicalises an email address or phone number
func NormalizeIdentifier(channel Channel, raw string) (string, error) {
	switch channel {
	case ChannelEmail:
		addr, err := mail.ParseAddress(strings.TrimSpace(raw))
		if err != nil || addr.Name != "" {
			return "", ErrInvalidEmail
		}
		return strings.ToLower(addr.Address), nil
	case ChannelPhone:
		phone := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(raw))
		if !phonePattern.MatchString(phone) {
			return "", ErrInvalidPhone
		}
		return phone, nil
	default:
		return "", fmt.Errorf("unknown channel %q", channel)
	}
}

func otpKey(channel Channel, identifier string) string {
	return string(channel) + ":" + identifier
}

// SendOTP issues a new code for identifier, replacing any pending one
func (s *AuthService) SendOTP(ctx context.Context, channel Channel, identifier string) error {
	id, err := NormalizeIdentifier(channel, identifier)
	if err != nil {
		return err
	}
	if s.notifier == nil {
		return errors.New("notifier not set")
	}

	code, err := s.newCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash OTP: %w", err)
	}

	entry := OTPEntry{Hash: hash, ExpiresAt: s.now().Add(s.settings.OTPTTL)}
	if err := s.otps.Save(ctx, otpKey(channel, id), entry); err != nil {
		return err
	}

	if channel == ChannelEmail {
		err = s.notifier.SendEmailOTP(ctx, id, code, s.settings.OTPTTL)
	} else {
		err = s.notifier.SendSMSOTP(ctx, id, code, s.settings.OTPTTL)
	}
	if err != nil {
		return fmt.Errorf("failed to deliver OTP: %w", err)
	}
	return nil
}

// AuthResult is a successful sign-in
type AuthResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

// VerifyOTP checks a code and signs the user in, creating the account on first use
func (s *AuthService) VerifyOTP(ctx context.Context, channel Channel, identifier, code string) (*AuthResult, error) {
	id, err := NormalizeIdentifier(channel, identifier)
	if err != nil {
		return nil, err
	}
	if s.users == nil {
		return nil, errors.New("user store not set")
	}

	if err := s.checkOTP(ctx, otpKey(channel, id), strings.TrimSpace(code)); err != nil {
		return nil, err
	}

	var user *models.User
	if channel == ChannelEmail {
		user, err = s.users.UpsertByEmail(ctx, id)
	} else {
		user, err = s.users.UpsertByPhone(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	token, expires, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}

	log.Info().Str("user_id", user.ID.String()).Str("channel", string(channel)).Msg("User signed in")
	return &AuthResult{Token: token, ExpiresAt: expires, User: user}, nil
}

func (s *AuthService) checkOTP(ctx context.Context, key, code string) error {
	entry, err := s.otps.Get(ctx, key)
	if err != nil {
		return err
	}

	if s.now().After(entry.ExpiresAt) {
		_ = s.otps.Delete(ctx, key)
		return ErrOTPExpired
	}

	if entry.Attempts >= s.settings.OTPMaxAttempts {
		_ = s.otps.Delete(ctx, key)
		return ErrTooManyAttempts
	}

	if bcrypt.CompareHashAndPassword(entry.Hash, []byte(code)) != nil {
		if err := s.otps.IncrementAttempts(ctx, key); err != nil {
			return err
		}
		return ErrInvalidOTP
	}

	return s.otps.Delete(ctx, key)
}

// IssueToken signs a session token for user
func (s *AuthService) IssueToken(user *models.User) (string, time.Time, error) {
	now := s.now()
	expires := now.Add(s.settings.TokenTTL)

	claims := Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    s.settings.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.settings.JWTSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expires, nil
}

// ParseToken validates a session token and returns its claims
func (s *AuthService) ParseToken(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.settings.JWTSecret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.settings.Issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if _, err := claims.UserID(); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Me returns the signed-in user
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	if s.users == nil {
		return nil, errors.New("user store not set")
	}

	u, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

// SetRole records whether the user is a client or a lawyer
func (s *AuthService) SetRole(ctx context.Context, userID uuid.UUID, role models.UserRole) (*models.User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if s.users == nil {
		return nil, errors.New("user store not set")
	}

	u, err := s.users.SetRole(ctx, userID, role)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

var _ UserStore = (*repository.UserRepository)(nil)
