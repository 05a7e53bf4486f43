package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueVerify(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), 30*time.Minute)
	now := time.Now()

	token, err := svc.IssueAt("a@x.com", now)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.VerifyAt(token, now)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)

	// Still valid just before expiry.
	subject, err = svc.VerifyAt(token, now.Add(29*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), 30*time.Minute)
	now := time.Now()

	token, err := svc.IssueAt("a@x.com", now)
	require.NoError(t, err)

	_, err = svc.VerifyAt(token, now.Add(31*time.Minute))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("right-secret"), time.Hour)
	verifier := NewTokenService([]byte("wrong-secret"), time.Hour)

	token, err := issuer.Issue("a@x.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Tampered(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), time.Hour)
	now := time.Now()

	token, err := svc.IssueAt("a@x.com", now)
	require.NoError(t, err)

	// Flip one byte in each of the three segments.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	for i := range parts {
		mangled := make([]string, 3)
		copy(mangled, parts)
		seg := []byte(mangled[i])
		if seg[0] == 'A' {
			seg[0] = 'B'
		} else {
			seg[0] = 'A'
		}
		mangled[i] = string(seg)

		_, err := svc.VerifyAt(strings.Join(mangled, "."), now)
		assert.ErrorIs(t, err, ErrInvalidToken, "segment %d", i)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), time.Hour)

	for _, tok := range []string{"", "not-a-jwt", "a.b", "a.b.c.d"} {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestTokenService_EmptySubject(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), time.Hour)

	token, err := svc.Issue("")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
