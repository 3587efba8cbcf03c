package sessions_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catebi/go-tax-declaration/internal/models"
	"github.com/catebi/go-tax-declaration/internal/sessions"
)

func TestStore_DoCreatesOnFirstContact(t *testing.T) {
	store := sessions.NewStore(models.StateAwaitingLanguage)

	err := store.Do("u1", func(sess *models.Session) error {
		assert.Equal(t, "u1", sess.UserID)
		assert.Equal(t, models.StateAwaitingLanguage, sess.State)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, models.StateAwaitingLanguage, store.InitialState())
}

func TestStore_MutationsSurviveAcrossCalls(t *testing.T) {
	store := sessions.NewStore(models.StateAwaitingLanguage)

	require.NoError(t, store.Do("u1", func(sess *models.Session) error {
		sess.State = models.StateAwaitingPriorAmount
		sess.Language = models.LanguageRU
		return nil
	}))

	require.NoError(t, store.Do("u1", func(sess *models.Session) error {
		assert.Equal(t, models.StateAwaitingPriorAmount, sess.State)
		assert.Equal(t, models.LanguageRU, sess.Language)
		return nil
	}))
}

func TestStore_SingleWriterPerKey(t *testing.T) {
	store := sessions.NewStore(models.StateAwaitingLanguage)

	// an unsynchronized counter: the per-key lock is the only thing keeping
	// these increments from racing
	counter := 0
	const workers = 64

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = store.Do("u1", func(_ *models.Session) error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
	assert.Equal(t, 1, store.Len())
}

func TestStore_Remove(t *testing.T) {
	store := sessions.NewStore(models.StateAwaitingTemplateRequest)

	require.NoError(t, store.Do("u1", func(sess *models.Session) error {
		sess.State = models.StateCompleted
		return nil
	}))

	store.Remove("u1")
	assert.Equal(t, 0, store.Len())

	// next contact starts fresh at the initial state
	require.NoError(t, store.Do("u1", func(sess *models.Session) error {
		assert.Equal(t, models.StateAwaitingTemplateRequest, sess.State)
		return nil
	}))
}
