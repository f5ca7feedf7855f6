package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSyncer struct {
	changed bool
	err     error
	calls   int
}

func (f *fakeSyncer) Sync(context.Context) (bool, error) {
	f.calls++
	return f.changed, f.err
}

type fakeSnapshot struct {
	invalidated int
}

func (f *fakeSnapshot) Invalidate() { f.invalidated++ }

func TestCatalogSyncJob(t *testing.T) {
	tests := []struct {
		name            string
		syncer          *fakeSyncer
		wantErr         bool
		wantInvalidated int
	}{
		{"changed", &fakeSyncer{changed: true}, false, 1},
		{"unchanged", &fakeSyncer{}, false, 0},
		{"failure", &fakeSyncer{err: errors.New("db down")}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := &fakeSnapshot{}
			job := NewCatalogSyncJob(tt.syncer, snap)

			err := job.Process(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.syncer.err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, 1, tt.syncer.calls)
			assert.Equal(t, tt.wantInvalidated, snap.invalidated)
		})
	}
}
