package state

import (
	"github.com/habitflow/habitflow/internal/models"
)

// TodoAction is a named transition on the todo collection.
type TodoAction interface{ isTodoAction() }

type SetTodos struct {
	Todos []models.Todo
}

type AddTodo struct {
	Todo models.Todo
}

type UpdateTodo struct {
	ID    string
	Patch models.TodoPatch
}

type DeleteTodo struct {
	ID string
}

// ToggleTodo flips the completed flag.
type ToggleTodo struct {
	ID string
}

func (SetTodos) isTodoAction()   {}
func (AddTodo) isTodoAction()    {}
func (UpdateTodo) isTodoAction() {}
func (DeleteTodo) isTodoAction() {}
func (ToggleTodo) isTodoAction() {}

// TodoState is an immutable snapshot of the todo collection.
type TodoState struct {
	Todos   []models.Todo
	Loading bool
}

func NewTodoState() TodoState {
	return TodoState{Todos: []models.Todo{}, Loading: true}
}

// ReduceTodos applies one action and returns the next state.
func ReduceTodos(s TodoState, action TodoAction) TodoState {
	switch a := action.(type) {
	case SetTodos:
		todos := make([]models.Todo, len(a.Todos))
		copy(todos, a.Todos)
		return TodoState{Todos: todos, Loading: false}

	case AddTodo:
		todos := make([]models.Todo, 0, len(s.Todos)+1)
		todos = append(todos, s.Todos...)
		todos = append(todos, a.Todo)
		return TodoState{Todos: todos, Loading: s.Loading}

	case UpdateTodo:
		i := indexOfTodo(s.Todos, a.ID)
		if i < 0 {
			return s
		}
		todos := make([]models.Todo, len(s.Todos))
		copy(todos, s.Todos)
		if a.Patch.Title != nil {
			todos[i].Title = *a.Patch.Title
		}
		if a.Patch.Completed != nil {
			todos[i].Completed = *a.Patch.Completed
		}
		return TodoState{Todos: todos, Loading: s.Loading}

	case DeleteTodo:
		i := indexOfTodo(s.Todos, a.ID)
		if i < 0 {
			return s
		}
		todos := make([]models.Todo, 0, len(s.Todos)-1)
		todos = append(todos, s.Todos[:i]...)
		todos = append(todos, s.Todos[i+1:]...)
		return TodoState{Todos: todos, Loading: s.Loading}

	case ToggleTodo:
		i := indexOfTodo(s.Todos, a.ID)
		if i < 0 {
			return s
		}
		todos := make([]models.Todo, len(s.Todos))
		copy(todos, s.Todos)
		todos[i].Completed = !todos[i].Completed
		return TodoState{Todos: todos, Loading: s.Loading}
	}
	return s
}

func indexOfTodo(todos []models.Todo, id string) int {
	for i := range todos {
		if todos[i].ID == id {
			return i
		}
	}
	return -1
}
