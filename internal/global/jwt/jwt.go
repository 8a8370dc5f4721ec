package jwt

import (
	"anvaya-club/config"
	"anvaya-club/internal/global/errs"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// Claims are the admin session token claims: sub, iat and exp.
type Claims struct {
	jwt.RegisteredClaims
}

type Option func(*Service)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service issues and checks admin session tokens against one configured credential pair.
type Service struct {
	admin  config.Admin
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

func New(admin config.Admin, cfg config.JWT, opts ...Option) (*Service, error) {
	method, ok := jwt.GetSigningMethod(cfg.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Errorf("unsupported JWT algorithm %q", cfg.Algorithm)
	}
	if cfg.Secret == "" {
		return nil, errors.New("empty JWT secret")
	}
	s := &Service{
		admin:  admin,
		secret: []byte(cfg.Secret),
		method: method,
		ttl:    time.Duration(cfg.ExpirationMinutes) * time.Minute,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// VerifyCredentials compares in constant time. A configured bcrypt hash replaces the
// plaintext password.
func (s *Service) VerifyCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1
	var passOK bool
	if s.admin.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
	}
	return userOK && passOK
}

func (s *Service) IssueToken(subject string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}
	return signed, expiresAt, nil
}

// VerifyToken rejects malformed, foreign, expired and exp-less tokens.
func (s *Service) VerifyToken(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.Wrap(errs.ErrAuthentication, err, "Token has expired")
		}
		return nil, errs.Wrap(errs.ErrAuthentication, err, "Could not validate credentials")
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, errs.New(errs.ErrAuthentication, "Could not validate credentials")
	}
	return claims, nil
}

// CurrentAdmin is the single authorization predicate for admin routes.
func (s *Service) CurrentAdmin(token string) (*Claims, error) {
	claims, err := s.VerifyToken(token)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(claims.Subject), []byte(s.admin.Username)) != 1 {
		return nil, errs.New(errs.ErrAuthentication, "Could not validate credentials")
	}
	return claims, nil
}
