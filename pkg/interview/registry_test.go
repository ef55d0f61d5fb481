package interview

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryOpenGetClose(t *testing.T) {
	r := NewRegistry()

	sess, err := r.Open("conn-1", threeQuestions, "english")
	require.NoError(t, err)

	got, err := r.Get("conn-1")
	require.NoError(t, err)
	require.Same(t, sess, got)

	r.Close("conn-1")
	_, err = r.Get("conn-1")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegistryDuplicateOpen(t *testing.T) {
	r := NewRegistry()
	_, err := r.Open("conn-1", threeQuestions, "english")
	require.NoError(t, err)

	_, err = r.Open("conn-1", threeQuestions, "hindi")
	require.ErrorIs(t, err, ErrDuplicateSession)
	require.Equal(t, 1, r.Len())
}

func TestRegistryOpenRejectsEmptySet(t *testing.T) {
	r := NewRegistry()
	_, err := r.Open("conn-1", nil, "english")
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	require.Equal(t, 0, r.Len())
}

func TestRegistryCloseIsIdempotent(t *testing.T) {
	r := NewRegistry()
	sess, err := r.Open("conn-1", threeQuestions, "english")
	require.NoError(t, err)

	r.Close("conn-1")
	r.Close("conn-1")
	r.Close("never-opened")

	require.True(t, sess.Incomplete())
	require.Equal(t, 0, r.Len())
}

func TestRegistryConcurrentOpenSameIdentity(t *testing.T) {
	r := NewRegistry()

	const attempts = 16
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = r.Open("conn-1", threeQuestions, "english")
		}(i)
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
		} else {
			require.ErrorIs(t, err, ErrDuplicateSession)
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, 1, r.Len())
}
