package service

import (
	"testing"

	"mathlearn_backend/internal/model"
	"mathlearn_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type progressKey struct {
	userID uint
	topic  string
}

type fakeProgressStore struct {
	values  map[progressKey]int
	upserts int
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{values: make(map[progressKey]int)}
}

func (f *fakeProgressStore) Upsert(userID uint, topic string, progress int) error {
	f.values[progressKey{userID, topic}] = progress
	f.upserts++
	return nil
}

func (f *fakeProgressStore) FindByUser(userID uint) ([]model.UserProgress, error) {
	var out []model.UserProgress
	for key, value := range f.values {
		if key.userID == userID {
			out = append(out, model.UserProgress{UserID: key.userID, Topic: key.topic, Progress: value})
		}
	}
	return out, nil
}

func TestUpdateProgressValidatesRange(t *testing.T) {
	store := newFakeProgressStore()
	svc := NewProgressService(store, &fakeRecorder{})

	assert.ErrorIs(t, svc.UpdateProgress(1, "Logic", -1), util.ErrInvalidProgress)
	assert.ErrorIs(t, svc.UpdateProgress(1, "Logic", 101), util.ErrInvalidProgress)
	assert.Zero(t, store.upserts)

	assert.NoError(t, svc.UpdateProgress(1, "Logic", 0))
	assert.NoError(t, svc.UpdateProgress(1, "Logic", 100))
}

func TestUpdateProgressIdempotent(t *testing.T) {
	store := newFakeProgressStore()
	svc := NewProgressService(store, &fakeRecorder{})

	require.NoError(t, svc.UpdateProgress(1, "Sets", 40))
	require.NoError(t, svc.UpdateProgress(1, "Sets", 40))

	progress, err := svc.GetProgress(1)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, 40, progress[0].Progress)
}

func TestUpdateProgressOverwrites(t *testing.T) {
	store := newFakeProgressStore()
	svc := NewProgressService(store, &fakeRecorder{})

	require.NoError(t, svc.UpdateProgress(1, "Graphs", 30))
	require.NoError(t, svc.UpdateProgress(1, "Graphs", 80))

	progress, err := svc.GetProgress(1)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, 80, progress[0].Progress)
}

func TestGetProgressIsolatedPerUser(t *testing.T) {
	store := newFakeProgressStore()
	svc := NewProgressService(store, &fakeRecorder{})

	require.NoError(t, svc.UpdateProgress(1, "Logic", 10))
	require.NoError(t, svc.UpdateProgress(2, "Logic", 90))

	progress, err := svc.GetProgress(2)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, 90, progress[0].Progress)
}
