package resume

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestStorePutGet(t *testing.T) {
	s := NewStore(time.Minute)
	a := Analyze("python backend")
	id := s.Put(a, map[string][]string{"english": {"q1"}})

	rec, ok := s.Get(id)
	require.True(t, ok)
	require.Equal(t, id, rec.ID)
	require.True(t, rec.Analysis.Profile[SkillPython])
	require.Equal(t, []string{"q1"}, rec.Questions["english"])

	_, ok = s.Get(uuid.New())
	require.False(t, ok)
}

func TestStoreExpiry(t *testing.T) {
	s := NewStore(time.Minute)
	current := time.Now()
	s.now = func() time.Time { return current }

	id := s.Put(Analyze(""), nil)

	current = current.Add(30 * time.Second)
	_, ok := s.Get(id)
	require.True(t, ok)

	current = current.Add(31 * time.Second)
	_, ok = s.Get(id)
	require.False(t, ok)
	require.Equal(t, 0, s.Len())
}

func TestStoreReap(t *testing.T) {
	s := NewStore(time.Minute)
	current := time.Now()
	s.now = func() time.Time { return current }

	s.Put(Analyze(""), nil)
	s.Put(Analyze(""), nil)
	require.Equal(t, 2, s.Len())

	current = current.Add(2 * time.Minute)
	s.reap()
	require.Equal(t, 0, s.Len())
}

func TestStoreDeleteIdempotent(t *testing.T) {
	s := NewStore(0) // zero TTL disables expiry
	id := s.Put(Analyze(""), nil)
	s.Delete(id)
	s.Delete(id)
	_, ok := s.Get(id)
	require.False(t, ok)
}
