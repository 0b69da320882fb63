package storage

import (
	"context"
	"sync"

	"github.com/habitflow/habitflow/internal/logger"
	"github.com/habitflow/habitflow/internal/models"
)

// Snapshot is a full replacement delivery of every entity collection. A
// snapshot supersedes prior local state; delivery order relative to local
// optimistic updates is not guaranteed, consumers converge by folding each
// snapshot through their Set reducers.
type Snapshot struct {
	Habits   []models.Habit
	Todos    []models.Todo
	Expenses []models.Expense
}

// Hub wraps a Provider and turns its mutations into a snapshot stream.
// Every write routed through the Hub re-reads the affected collections and
// broadcasts the result to all subscribers. Subscriber channels hold a
// single buffered snapshot; when a consumer lags, the stale snapshot is
// dropped and replaced so the latest one always wins.
type Hub struct {
	Provider

	mu   sync.Mutex
	subs map[int]chan Snapshot
	next int
}

// NewHub wraps a Provider.
func NewHub(p Provider) *Hub {
	return &Hub{
		Provider: p,
		subs:     make(map[int]chan Snapshot),
	}
}

// Subscribe registers a consumer. The returned channel delivers snapshots
// until the unsubscribe func is called or ctx is cancelled; both tear the
// subscription down and close the channel. Teardown is mandatory when the
// owning view ends, nothing is delivered after it.
func (h *Hub) Subscribe(ctx context.Context) (<-chan Snapshot, func()) {
	h.mu.Lock()
	id := h.next
	h.next++
	ch := make(chan Snapshot, 1)
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}

	go func() {
		<-ctx.Done()
		unsubscribe()
	}()

	return ch, unsubscribe
}

// Publish reads every collection and broadcasts a fresh snapshot. It is
// called automatically after each mutation routed through the Hub, and can
// be called directly to push an initial snapshot to new subscribers.
func (h *Hub) Publish() {
	snap, err := h.read()
	if err != nil {
		logger.Warn("Snapshot read failed", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		// Replace a stale undelivered snapshot rather than blocking.
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

func (h *Hub) read() (Snapshot, error) {
	habits, err := h.Provider.GetAllHabits()
	if err != nil {
		return Snapshot{}, err
	}
	todos, err := h.Provider.GetAllTodos()
	if err != nil {
		return Snapshot{}, err
	}
	expenses, err := h.Provider.GetAllExpenses()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Habits: habits, Todos: todos, Expenses: expenses}, nil
}

// Mutations pass through to the Provider and then broadcast.

func (h *Hub) AddHabit(habit models.Habit) error {
	return h.publishAfter(h.Provider.AddHabit(habit))
}

func (h *Hub) UpdateHabit(habit models.Habit) error {
	return h.publishAfter(h.Provider.UpdateHabit(habit))
}

func (h *Hub) DeleteHabit(id string) error {
	return h.publishAfter(h.Provider.DeleteHabit(id))
}

func (h *Hub) SetCompletedDates(habitID string, dates []string) error {
	return h.publishAfter(h.Provider.SetCompletedDates(habitID, dates))
}

func (h *Hub) AddTodo(todo models.Todo) error {
	return h.publishAfter(h.Provider.AddTodo(todo))
}

func (h *Hub) UpdateTodo(todo models.Todo) error {
	return h.publishAfter(h.Provider.UpdateTodo(todo))
}

func (h *Hub) DeleteTodo(id string) error {
	return h.publishAfter(h.Provider.DeleteTodo(id))
}

func (h *Hub) AddExpense(expense models.Expense) error {
	return h.publishAfter(h.Provider.AddExpense(expense))
}

func (h *Hub) UpdateExpense(expense models.Expense) error {
	return h.publishAfter(h.Provider.UpdateExpense(expense))
}

func (h *Hub) DeleteExpense(id string) error {
	return h.publishAfter(h.Provider.DeleteExpense(id))
}

func (h *Hub) publishAfter(err error) error {
	if err != nil {
		return err
	}
	h.Publish()
	return nil
}
