package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/validation"
)

type TodoCmd struct {
	Add    TodoAddCmd    `cmd:"" help:"Add a new todo."`
	List   TodoListCmd   `cmd:"" help:"List todos."`
	Done   TodoDoneCmd   `cmd:"" help:"Toggle a todo's completion."`
	Delete TodoDeleteCmd `cmd:"" help:"Delete a todo."`
}

type TodoAddCmd struct {
	Title string `arg:"" help:"Todo title."`
}

func (c *TodoAddCmd) Run(ctx *Context) error {
	todo := models.Todo{
		ID:        uuid.New().String(),
		Title:     c.Title,
		CreatedAt: time.Now(),
	}

	if result := validation.ValidateTodo(todo); result.HasProblems() {
		return result.Err()
	}

	if err := ctx.Store.AddTodo(todo); err != nil {
		return err
	}

	fmt.Printf("Added todo: %s\n", c.Title)
	return nil
}

type TodoListCmd struct {
	All bool `help:"Include completed todos."`
}

func (c *TodoListCmd) Run(ctx *Context) error {
	todos, err := ctx.Store.GetAllTodos()
	if err != nil {
		return err
	}

	shown := 0
	for _, todo := range todos {
		if todo.Completed && !c.All {
			continue
		}
		status := "[ ]"
		if todo.Completed {
			status = "[x]"
		}
		fmt.Printf("%s %s\n", status, todo.Title)
		shown++
	}

	if shown == 0 {
		fmt.Println("No todos found.")
	}
	return nil
}

type TodoDoneCmd struct {
	Todo string `arg:"" help:"Todo ID or title."`
}

func (c *TodoDoneCmd) Run(ctx *Context) error {
	todos, err := ctx.Store.GetAllTodos()
	if err != nil {
		return err
	}

	todo, err := findTodo(todos, c.Todo)
	if err != nil {
		return err
	}

	todo.Completed = !todo.Completed
	if err := ctx.Store.UpdateTodo(todo); err != nil {
		return err
	}

	if todo.Completed {
		fmt.Printf("Completed todo: %s\n", todo.Title)
	} else {
		fmt.Printf("Reopened todo: %s\n", todo.Title)
	}
	return nil
}

type TodoDeleteCmd struct {
	Todo string `arg:"" help:"Todo ID or title."`
}

func (c *TodoDeleteCmd) Run(ctx *Context) error {
	todos, err := ctx.Store.GetAllTodos()
	if err != nil {
		return err
	}

	todo, err := findTodo(todos, c.Todo)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteTodo(todo.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted todo: %s\n", todo.Title)
	return nil
}
