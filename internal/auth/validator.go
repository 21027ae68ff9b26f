// Package auth validates the channel connector's credential on inbound
// requests. The connector presents an HS256 JWT in the Authorization
// header; the token must be signed with the shared app secret and
// addressed to this bot's app id.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultClockSkew = 5 * time.Minute

var (
	ErrMissingToken  = errors.New("credential missing")
	ErrInvalidToken  = errors.New("credential invalid")
	ErrTokenExpired  = errors.New("credential expired")
	ErrWrongAudience = errors.New("credential not issued for this bot")
)

// Identity describes the verified caller of an authenticated request.
type Identity struct {
	AppID  string
	Issuer string
}

// Config holds the validator's trust parameters.
type Config struct {
	AppID     string
	Secret    string
	ClockSkew time.Duration
	Now       func() time.Time
}

// Validator checks inbound credentials. An empty Secret disables
// validation entirely, for local development against an emulator.
type Validator struct {
	cfg   Config
	cache *claimCache
}

// NewValidator creates a Validator with the given trust parameters.
func NewValidator(cfg Config) *Validator {
	if cfg.ClockSkew <= 0 {
		cfg.ClockSkew = defaultClockSkew
	}
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Now().UTC() }
	}
	return &Validator{cfg: cfg, cache: newClaimCache()}
}

// Enabled reports whether credential validation is active.
func (v *Validator) Enabled() bool { return v.cfg.Secret != "" }

// Authenticate verifies the Authorization header of an inbound request.
// It runs before the request body is touched, so unauthenticated input
// costs no decode work.
func (v *Validator) Authenticate(r *http.Request) (Identity, error) {
	if !v.Enabled() {
		return Identity{AppID: v.cfg.AppID}, nil
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return Identity{}, fmt.Errorf("no authorization header: %w", ErrMissingToken)
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return Identity{}, fmt.Errorf("authorization scheme is not Bearer: %w", ErrInvalidToken)
	}
	return v.ValidateToken(strings.TrimSpace(token))
}

// ValidateToken verifies a raw HS256 JWT: signature, validity window
// and audience. Tokens that already passed are served from the claim
// cache until they expire.
func (v *Validator) ValidateToken(token string) (Identity, error) {
	now := v.cfg.Now()
	if id, ok := v.cache.get(token, now); ok {
		return id, nil
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Identity{}, fmt.Errorf("token is not a JWT: %w", ErrInvalidToken)
	}

	var header struct {
		Alg string `json:"alg"`
	}
	if err := decodeSegment(parts[0], &header); err != nil {
		return Identity{}, fmt.Errorf("token header: %w", ErrInvalidToken)
	}
	if !strings.EqualFold(header.Alg, "HS256") {
		return Identity{}, fmt.Errorf("unsupported algorithm %q: %w", header.Alg, ErrInvalidToken)
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return Identity{}, fmt.Errorf("token signature: %w", ErrInvalidToken)
	}
	mac := hmac.New(sha256.New, []byte(v.cfg.Secret))
	mac.Write([]byte(parts[0] + "." + parts[1]))
	if !hmac.Equal(sig, mac.Sum(nil)) {
		return Identity{}, fmt.Errorf("signature mismatch: %w", ErrInvalidToken)
	}

	var claims tokenClaims
	if err := decodeSegment(parts[1], &claims); err != nil {
		return Identity{}, fmt.Errorf("token claims: %w", ErrInvalidToken)
	}

	skew := v.cfg.ClockSkew
	if claims.Expiry == 0 || now.After(time.Unix(claims.Expiry, 0).Add(skew)) {
		return Identity{}, fmt.Errorf("expired at %d: %w", claims.Expiry, ErrTokenExpired)
	}
	if claims.NotBefore != 0 && now.Add(skew).Before(time.Unix(claims.NotBefore, 0)) {
		return Identity{}, fmt.Errorf("not valid before %d: %w", claims.NotBefore, ErrInvalidToken)
	}
	if claims.Audience != v.cfg.AppID {
		return Identity{}, fmt.Errorf("audience %q: %w", claims.Audience, ErrWrongAudience)
	}

	id := Identity{AppID: claims.Audience, Issuer: claims.Issuer}
	v.cache.put(token, id, time.Unix(claims.Expiry, 0))
	return id, nil
}

// Sign mints an HS256 token trusted by this validator. Used by local
// tooling and tests; the real channel service issues its own.
func (v *Validator) Sign(issuer string, ttl time.Duration) (string, error) {
	if v.cfg.Secret == "" {
		return "", fmt.Errorf("signing requires a configured secret")
	}
	now := v.cfg.Now()
	header, err := encodeSegment(map[string]string{"alg": "HS256", "typ": "JWT"})
	if err != nil {
		return "", err
	}
	payload, err := encodeSegment(tokenClaims{
		Issuer:    issuer,
		Audience:  v.cfg.AppID,
		IssuedAt:  now.Unix(),
		NotBefore: now.Unix(),
		Expiry:    now.Add(ttl).Unix(),
	})
	if err != nil {
		return "", err
	}
	signing := header + "." + payload
	mac := hmac.New(sha256.New, []byte(v.cfg.Secret))
	mac.Write([]byte(signing))
	return signing + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil)), nil
}

// tokenClaims is the subset of registered JWT claims the validator
// inspects.
type tokenClaims struct {
	Issuer    string `json:"iss,omitempty"`
	Audience  string `json:"aud,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	Expiry    int64  `json:"exp,omitempty"`
}

func decodeSegment(segment string, out any) error {
	raw, err := base64.RawURLEncoding.DecodeString(segment)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func encodeSegment(in any) (string, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
