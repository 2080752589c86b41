package kindness

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frozen(s *Service, at time.Time) {
	s.now = func() time.Time { return at }
}

func TestIssueAndVerify(t *testing.T) {
	svc := New("test-secret", 5*time.Minute)
	frozen(svc, time.Unix(1_700_000_000, 0))

	token, expiresIn := svc.Issue(42)
	assert.Equal(t, 300, expiresIn)
	require.Len(t, strings.Split(token, "|"), 4)

	nonce, ok := svc.Verify(token)
	assert.True(t, ok)
	assert.NotEmpty(t, nonce)
}

func TestVerify_Expired(t *testing.T) {
	svc := New("test-secret", 5*time.Minute)
	issuedAt := time.Unix(1_700_000_000, 0)
	frozen(svc, issuedAt)
	token, _ := svc.Issue(42)

	frozen(svc, issuedAt.Add(5*time.Minute+time.Second))
	_, ok := svc.Verify(token)
	assert.False(t, ok, "expired token must fail even with a valid signature")
}

func TestVerify_TamperedSignature(t *testing.T) {
	svc := New("test-secret", 5*time.Minute)
	token, _ := svc.Issue(42)

	parts := strings.Split(token, "|")
	parts[0] = strings.Repeat("0", len(parts[0]))
	_, ok := svc.Verify(strings.Join(parts, "|"))
	assert.False(t, ok)
}

func TestVerify_TamperedPostID(t *testing.T) {
	svc := New("test-secret", 5*time.Minute)
	token, _ := svc.Issue(42)

	parts := strings.Split(token, "|")
	parts[3] = "43"
	_, ok := svc.Verify(strings.Join(parts, "|"))
	assert.False(t, ok, "signature binds the token to one post")
}

func TestVerify_Malformed(t *testing.T) {
	svc := New("test-secret", 5*time.Minute)
	for _, token := range []string{
		"",
		"abc",
		"a|b|c",
		"a|b|c|d|e",
		"sig|notanumber|nonce|42",
		"sig|1700000000|nonce|notanumber",
	} {
		_, ok := svc.Verify(token)
		assert.False(t, ok, "token %q must not verify", token)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := New("secret-a", 5*time.Minute)
	verifier := New("secret-b", 5*time.Minute)

	token, _ := issuer.Issue(42)
	_, ok := verifier.Verify(token)
	assert.False(t, ok)
}

func TestIssue_FreshNonces(t *testing.T) {
	svc := New("test-secret", 5*time.Minute)
	a, _ := svc.Issue(42)
	b, _ := svc.Issue(42)
	assert.NotEqual(t, a, b)
}

func TestHash(t *testing.T) {
	assert.Equal(t, Hash("token"), Hash("token"))
	assert.NotEqual(t, Hash("token-a"), Hash("token-b"))
	assert.Len(t, Hash("anything"), 64)
	assert.NotContains(t, Hash("secret-token"), "secret")
}
