package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	m := NewManager("secret", "ai-interviewer", time.Minute)
	id := uuid.New()

	str, err := m.Issue(id)
	require.NoError(t, err)

	got, err := m.Verify(str)
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := NewManager("secret", "ai-interviewer", time.Minute)
	str, err := m.Issue(uuid.New())
	require.NoError(t, err)

	other := NewManager("different", "ai-interviewer", time.Minute)
	_, err = other.Verify(str)
	require.Error(t, err)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	m := NewManager("secret", "someone-else", time.Minute)
	str, err := m.Issue(uuid.New())
	require.NoError(t, err)

	strict := NewManager("secret", "ai-interviewer", time.Minute)
	_, err = strict.Verify(str)
	require.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := NewManager("secret", "ai-interviewer", -time.Minute)
	str, err := m.Issue(uuid.New())
	require.NoError(t, err)

	_, err = m.Verify(str)
	require.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewManager("secret", "ai-interviewer", time.Minute)
	_, err := m.Verify("not.a.token")
	require.Error(t, err)
}
