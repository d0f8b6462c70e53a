package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"

	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

var ErrWrongTokenType = errors.New("wrong token type")

// Config is the signing configuration
type Config struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Claims represents JWT claims structure.
// Subject carries the user id and ID (jti) a random UUID.
type Claims struct {
	Role string `json:"role"`
	Type string `json:"typ"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// UserID returns the subject claim
func (c *Claims) UserID() string {
	return c.Subject
}

// IssuedToken is a signed token plus the metadata the session store needs
type IssuedToken struct {
	Value     string
	ID        string
	ExpiresAt time.Time
	TTL       time.Duration
}

// Manager handles JWT operations
type Manager struct {
	cfg Config
}

func NewManager(cfg Config) *Manager {
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTTL
	}
	return &Manager{cfg: cfg}
}

func (m *Manager) AccessTTL() time.Duration  { return m.cfg.AccessTTL }
func (m *Manager) RefreshTTL() time.Duration { return m.cfg.RefreshTTL }

// ========================================
// SIGN
// ========================================

// Sign fills iat, exp, iss and jti and signs with HS256.
// ttl 0 means the default for the claims type.
func (m *Manager) Sign(claims Claims, ttl time.Duration) (IssuedToken, error) {
	if ttl <= 0 {
		ttl = m.cfg.AccessTTL
		if claims.Type == TypeRefresh {
			ttl = m.cfg.RefreshTTL
		}
	}
	if claims.Type == "" {
		claims.Type = TypeAccess
	}
	if claims.ID == "" {
		claims.ID = uuid.NewString()
	}

	now := time.Now()
	expiresAt := now.Add(ttl)
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	claims.Issuer = m.cfg.Issuer

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return IssuedToken{}, fmt.Errorf("sign token: %w", err)
	}

	return IssuedToken{Value: signed, ID: claims.ID, ExpiresAt: expiresAt, TTL: ttl}, nil
}

func (m *Manager) GenerateAccessToken(userID, role string) (IssuedToken, error) {
	return m.Sign(Claims{
		Role: role,
		Type: TypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: userID,
		},
	}, m.cfg.AccessTTL)
}

func (m *Manager) GenerateRefreshToken(userID, role string) (IssuedToken, error) {
	return m.Sign(Claims{
		Role: role,
		Type: TypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: userID,
		},
	}, m.cfg.RefreshTTL)
}

// ========================================
// VALIDATE
// ========================================

// ValidateToken validates and parses token
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if m.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.cfg.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	return claims, nil
}

func (m *Manager) ValidateAccessToken(tokenString string) (*Claims, error) {
	return m.validateType(tokenString, TypeAccess)
}

func (m *Manager) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return m.validateType(tokenString, TypeRefresh)
}

func (m *Manager) validateType(tokenString, want string) (*Claims, error) {
	claims, err := m.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Type != want {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrWrongTokenType, want, claims.Type)
	}

	return claims, nil
}

// ReasonOf classifies a validation error for logs and error payloads
func ReasonOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, ErrWrongTokenType):
		return "wrong_type"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return "bad_signature"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed"
	default:
		return "invalid"
	}
}
