// Package kindness implements the single-use capability tokens that guard
// kindness point awards. A token is a bearer string: whoever holds it may
// redeem it exactly once before it expires.
package kindness

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultTTL = 5 * time.Minute

// Service signs and verifies kindness tokens with a process-wide secret.
// Issuance is stateless: nothing is persisted until redemption.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue creates a fresh token for the post. Token format, fields separated
// by '|': signature, expiry (epoch seconds), nonce, post id. Returns the
// token and its lifetime in seconds.
func (s *Service) Issue(postID int) (string, int) {
	expiry := s.now().Unix() + int64(s.ttl.Seconds())
	nonce := uuid.NewString()
	sig := s.sign(postID, nonce, expiry)
	token := fmt.Sprintf("%s|%d|%s|%d", sig, expiry, nonce, postID)
	return token, int(s.ttl.Seconds())
}

// Verify parses and checks a token, returning the embedded nonce when valid.
// Parse failures, expiry, and signature mismatch are deliberately
// indistinguishable: callers get only ok=false, so a forger learns nothing
// about which check failed.
func (s *Service) Verify(token string) (string, bool) {
	parts := strings.Split(token, "|")
	if len(parts) != 4 {
		return "", false
	}
	sig, expiryStr, nonce := parts[0], parts[1], parts[2]
	expiry, err := strconv.ParseInt(expiryStr, 10, 64)
	if err != nil {
		return "", false
	}
	postID, err := strconv.Atoi(parts[3])
	if err != nil {
		return "", false
	}
	if expiry < s.now().Unix() {
		return "", false
	}
	expected := s.sign(postID, nonce, expiry)
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return "", false
	}
	return nonce, true
}

// Hash returns the digest stored in the redemption ledger. One-way: the
// token itself is never persisted.
func Hash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *Service) sign(postID int, nonce string, expiry int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%d:%s:%d", postID, nonce, expiry)
	return hex.EncodeToString(mac.Sum(nil))
}
