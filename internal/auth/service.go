package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/inamate/inamate/canvas-go/internal/typeid"
)

var ErrInvalidToken = errors.New("invalid token")

type Service struct {
	jwtSecret []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewService(jwtSecret string, ttl time.Duration) *Service {
	return &Service{
		jwtSecret: []byte(jwtSecret),
		ttl:       ttl,
		now:       time.Now,
	}
}

type Session struct {
	Token     string `json:"token"`
	User      User   `json:"user"`
	ExpiresAt int64  `json:"expiresAt"`
}

type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

type sessionClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// IssueSession creates an anonymous user and a signed token for it. An
// empty displayName gets a generated guest name.
func (s *Service) IssueSession(displayName string) (*Session, error) {
	user := User{ID: typeid.NewUserID(), DisplayName: displayName}
	if user.DisplayName == "" {
		user.DisplayName = "guest-" + uuid.NewString()[:8]
	}

	now := s.now()
	expires := now.Add(s.ttl)
	token, err := s.issueToken(user, now, expires)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: user, ExpiresAt: expires.Unix()}, nil
}

// ValidateToken returns the user a token was issued to.
func (s *Service) ValidateToken(tokenString string) (*User, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	if err := typeid.Validate(claims.Subject, typeid.PrefixUser); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return &User{ID: claims.Subject, DisplayName: claims.Name}, nil
}

func (s *Service) issueToken(user User, issued, expires time.Time) (string, error) {
	claims := sessionClaims{
		Name: user.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(expires),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}
