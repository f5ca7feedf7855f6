package progress

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/quest"
	"github.com/osse101/RaidCompanion_Go/mocks"
)

func testCatalog() *domain.Catalog {
	return domain.NewCatalog(
		[]domain.Item{{ID: "fabric"}, {ID: "wires"}},
		[]domain.Quest{
			{ID: "A"},
			{ID: "B", PreviousQuestIDs: []string{"A"}},
			{ID: "C", PreviousQuestIDs: []string{"B"}},
			{ID: "solo"},
		},
		[]domain.Workstation{{ID: "workbench", MaxLevel: 3}},
		nil,
	)
}

func setupService(t *testing.T) (Service, *MemoryRepository) {
	t.Helper()
	source := new(mocks.MockCatalogSource)
	source.On("Snapshot", mock.Anything).Return(testCatalog(), nil)

	repo := NewMemoryRepository()
	return NewService(repo, quest.NewService(source), source), repo
}

func TestGet(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	id := uuid.NewString()

	p, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, p.ProfileID)
	assert.Empty(t, p.CompletedQuests)

	_, err = svc.Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestToggleQuest(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()
	id := uuid.NewString()

	p, err := svc.ToggleQuest(ctx, id, "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, p.CompletedQuests)
	assert.False(t, p.UpdatedAt.IsZero())

	stored, err := repo.GetProgress(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, stored.CompletedQuests)

	p, err = svc.ToggleQuest(ctx, id, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, p.CompletedQuests, "uncomplete does not cascade")
}

func TestToggleQuest_UnknownQuestLeavesStoreUntouched(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()
	id := uuid.NewString()

	_, err := svc.ToggleQuest(ctx, id, "missing")
	assert.ErrorIs(t, err, domain.ErrQuestNotFound)

	_, err = repo.GetProgress(ctx, id)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestSetWorkstationLevel(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	id := uuid.NewString()

	p, err := svc.SetWorkstationLevel(ctx, id, "workbench", 2)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"workbench": 2}, p.WorkstationLevels)

	p, err = svc.SetWorkstationLevel(ctx, id, "workbench", 0)
	require.NoError(t, err)
	assert.Empty(t, p.WorkstationLevels)

	_, err = svc.SetWorkstationLevel(ctx, id, "workbench", 4)
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)

	_, err = svc.SetWorkstationLevel(ctx, id, "forge", 1)
	assert.ErrorIs(t, err, domain.ErrWorkstationNotFound)
}

func TestSetInventory(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	id := uuid.NewString()

	_, err := svc.SetInventory(ctx, id, map[string]int{"fabric": 10, "wires": 2})
	require.NoError(t, err)

	p, err := svc.SetInventory(ctx, id, map[string]int{"wires": 0, "fabric": 12})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"fabric": 12}, p.Inventory)

	_, err = svc.SetInventory(ctx, id, map[string]int{"fabric": -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetTracked(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	id := uuid.NewString()

	p, err := svc.SetTracked(ctx, id, []string{"wires", "fabric", "wires"})
	require.NoError(t, err)
	assert.Equal(t, []string{"fabric", "wires"}, p.TrackedItems)

	_, err = svc.SetTracked(ctx, id, []string{"ghost"})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestReplaceAndReset(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	id := uuid.NewString()

	p, err := svc.Replace(ctx, &domain.Progress{
		ProfileID:         id,
		CompletedQuests:   []string{"solo", "A", "solo"},
		Inventory:         map[string]int{"fabric": 3, "wires": 0},
		WorkstationLevels: map[string]int{"workbench": 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "solo"}, p.CompletedQuests)
	assert.Equal(t, map[string]int{"fabric": 3}, p.Inventory)

	require.NoError(t, svc.Reset(ctx, id))
	assert.ErrorIs(t, svc.Reset(ctx, id), domain.ErrProfileNotFound)

	p, err = svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, p.CompletedQuests)
}

func TestUpdate_CommitFailure(t *testing.T) {
	source := mocks.NewMockCatalogSource(t)
	source.On("Snapshot", mock.Anything).Return(testCatalog(), nil)
	repo := mocks.NewMockRepositoryProgress(t)
	tx := mocks.NewMockRepositoryProgressTx(t)
	id := uuid.NewString()

	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("GetProgressForUpdate", mock.Anything, id).Return(domain.NewProgress(id), nil)
	tx.On("SaveProgress", mock.Anything, mock.MatchedBy(func(p *domain.Progress) bool {
		return len(p.CompletedQuests) == 1 && p.CompletedQuests[0] == "solo"
	})).Return(nil)
	tx.On("Commit", mock.Anything).Return(errors.New("connection reset"))
	tx.On("Rollback", mock.Anything).Return(nil)

	svc := NewService(repo, quest.NewService(source), source)
	_, err := svc.ToggleQuest(context.Background(), id, "solo")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to commit transaction")
}

func TestConcurrentUpdatesAreSerialised(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	id := uuid.NewString()

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := svc.SetInventory(ctx, id, map[string]int{uuid.NewString(): n})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	p, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, p.Inventory, 20)
}
