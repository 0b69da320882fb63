package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/habitflow/habitflow/internal/models"
)

func habitFixture(id, title string) models.Habit {
	return models.Habit{
		ID:        id,
		Title:     title,
		Frequency: models.FrequencyDaily,
		CreatedAt: time.Now(),
	}
}

func TestHubDeliversSnapshotAfterMutation(t *testing.T) {
	hub := NewHub(NewMemoryStore())
	ch, unsubscribe := hub.Subscribe(context.Background())
	defer unsubscribe()

	require.NoError(t, hub.AddHabit(habitFixture("h1", "Read")))

	select {
	case snap := <-ch:
		require.Len(t, snap.Habits, 1)
		require.Equal(t, "h1", snap.Habits[0].ID)
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered after mutation")
	}
}

func TestHubLatestSnapshotWins(t *testing.T) {
	hub := NewHub(NewMemoryStore())
	ch, unsubscribe := hub.Subscribe(context.Background())
	defer unsubscribe()

	// Two mutations without draining: the buffered stale snapshot must be
	// replaced by the newer one.
	require.NoError(t, hub.AddHabit(habitFixture("h1", "Read")))
	require.NoError(t, hub.AddHabit(habitFixture("h2", "Run")))

	select {
	case snap := <-ch:
		require.Len(t, snap.Habits, 2)
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered")
	}
}

func TestHubSnapshotCoversAllCollections(t *testing.T) {
	hub := NewHub(NewMemoryStore())
	ch, unsubscribe := hub.Subscribe(context.Background())
	defer unsubscribe()

	require.NoError(t, hub.AddHabit(habitFixture("h1", "Read")))
	require.NoError(t, hub.AddTodo(models.Todo{ID: "t1", Title: "buy milk", CreatedAt: time.Now()}))
	require.NoError(t, hub.AddExpense(models.Expense{
		ID: "e1", Amount: 5, Category: "food", Date: "2024-06-01", CreatedAt: time.Now(),
	}))

	select {
	case snap := <-ch:
		require.Len(t, snap.Habits, 1)
		require.Len(t, snap.Todos, 1)
		require.Len(t, snap.Expenses, 1)
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered")
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub(NewMemoryStore())
	ch, unsubscribe := hub.Subscribe(context.Background())

	unsubscribe()

	_, open := <-ch
	require.False(t, open, "channel should be closed after unsubscribe")

	// Mutations after teardown must not panic or deliver anything.
	require.NoError(t, hub.AddHabit(habitFixture("h1", "Read")))

	// Unsubscribing twice is safe.
	unsubscribe()
}

func TestHubContextCancelTearsDown(t *testing.T) {
	hub := NewHub(NewMemoryStore())
	ctx, cancel := context.WithCancel(context.Background())
	ch, _ := hub.Subscribe(ctx)

	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, open := <-ch:
			return !open
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond, "channel should close after context cancel")
}

func TestHubMultipleSubscribers(t *testing.T) {
	hub := NewHub(NewMemoryStore())
	ch1, un1 := hub.Subscribe(context.Background())
	ch2, un2 := hub.Subscribe(context.Background())
	defer un1()
	defer un2()

	require.NoError(t, hub.AddTodo(models.Todo{ID: "t1", Title: "buy milk", CreatedAt: time.Now()}))

	for _, ch := range []<-chan Snapshot{ch1, ch2} {
		select {
		case snap := <-ch:
			require.Len(t, snap.Todos, 1)
		case <-time.After(time.Second):
			t.Fatal("subscriber missed the snapshot")
		}
	}
}
