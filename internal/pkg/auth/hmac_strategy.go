package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid auth token")

// HMACStrategy implements token creation/verification using HMAC signatures.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates a signed token carrying the caller's identity.
func (s *HMACStrategy) IssueToken(identity Identity) (string, error) {
	expires := time.Now().Add(s.ttl).Unix()
	staff := 0
	if identity.Staff {
		staff = 1
	}
	payload := fmt.Sprintf("%d:%s:%d:%d", identity.UserID, identity.Role, staff, expires)
	sig := s.sign(payload)
	token := fmt.Sprintf("%s:%s", payload, sig)
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates the token and returns the encoded identity.
func (s *HMACStrategy) ParseToken(token string) (Identity, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 5 {
		return Identity{}, ErrInvalidToken
	}

	payload := strings.Join(parts[:4], ":")
	expectedSig := s.sign(payload)
	if !hmac.Equal([]byte(expectedSig), []byte(parts[4])) {
		return Identity{}, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	staff, err := strconv.Atoi(parts[2])
	if err != nil || (staff != 0 && staff != 1) {
		return Identity{}, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	if time.Unix(expires, 0).Before(time.Now()) {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: userID, Role: parts[1], Staff: staff == 1}, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
