package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"daily_diet/internal/models"
	"daily_diet/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const defaultSessionTTL = 24 * time.Hour

// AuthService handles user auth logic
type AuthService struct {
	users    repository.Users
	sessions repository.Sessions
	uow      repository.UnitOfWork
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthService(users repository.Users, sessions repository.Sessions, uow repository.UnitOfWork, cfg Config) *AuthService {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		users:    users,
		sessions: sessions,
		uow:      uow,
		secret:   []byte(cfg.SessionSecret),
		ttl:      ttl,
		now:      time.Now,
	}
}

// SignUp hashes password and creates a new user with the default role.
func (s *AuthService) SignUp(ctx context.Context, username, password string) (int, error) {
	if strings.TrimSpace(username) == "" {
		return 0, ErrInvalidData
	}
	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrUsernameTaken
	}

	id, err := s.users.Create(ctx, models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleUser,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}
	return id, nil
}

// Claims defines the session cookie payload; the session id travels in jti.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// SignIn validates credentials, replaces any previous session of the user
// and returns the signed session token. Unknown users and wrong passwords
// both yield ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	sess := models.Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		ExpiresAt: s.now().Add(s.ttl).UTC(),
	}
	err = s.uow.WithinTx(ctx, func(st repository.Stores) error {
		if err := st.Sessions.DeleteByUser(ctx, u.ID); err != nil {
			return err
		}
		return st.Sessions.Create(ctx, sess)
	})
	if err != nil {
		return "", err
	}
	return s.issueToken(sess)
}

// ParseSession verifies the token signature and that its session is still stored and unexpired.
func (s *AuthService) ParseSession(ctx context.Context, token string) (models.Identity, error) {
	claims, err := s.parseClaims(token)
	if err != nil {
		return models.Identity{}, err
	}
	sess, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		return models.Identity{}, err
	}
	if sess == nil || sess.UserID != claims.UserID || sess.Expired(s.now()) {
		return models.Identity{}, ErrInvalidSession
	}
	return models.Identity{UserID: sess.UserID, SessionID: sess.ID}, nil
}

// SignOut deletes the session so its cookie is no longer accepted.
func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrInvalidSession
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AuthService) parseClaims(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.ID == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

func (s *AuthService) issueToken(sess models.Session) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(s.now()),
		},
		UserID: sess.UserID,
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
