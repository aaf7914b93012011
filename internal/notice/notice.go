// Package notice is the class notice board: a to-do list for the day and
// the lunch menu.
package notice

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Todo is one line on the board.
type Todo struct {
	ID        string
	Text      string
	Completed bool
}

// Board holds todos in insertion order.
type Board struct {
	todos []Todo
	Lunch string

	newID func() string
}

// DefaultTodos seed a fresh board.
var DefaultTodos = []string{
	"Math workbook p.32",
	"Show the newsletter to your parents",
}

func New() *Board {
	b := &Board{newID: uuid.NewString}
	for _, text := range DefaultTodos {
		b.Add(text)
	}
	return b
}

func (b *Board) Todos() []Todo { return slices.Clone(b.todos) }
func (b *Board) Len() int      { return len(b.todos) }

// Add appends a todo. Blank text is ignored.
func (b *Board) Add(text string) (Todo, bool) {
	if strings.TrimSpace(text) == "" {
		return Todo{}, false
	}
	t := Todo{ID: b.newID(), Text: text}
	b.todos = append(b.todos, t)
	return t, true
}

// Toggle flips the completed flag.
func (b *Board) Toggle(id string) bool {
	i := b.indexOf(id)
	if i < 0 {
		return false
	}
	b.todos[i].Completed = !b.todos[i].Completed
	return true
}

// Delete removes the todo with id.
func (b *Board) Delete(id string) bool {
	i := b.indexOf(id)
	if i < 0 {
		return false
	}
	b.todos = slices.Delete(b.todos, i, i+1)
	return true
}

// Remaining counts todos not yet done.
func (b *Board) Remaining() int {
	n := 0
	for _, t := range b.todos {
		if !t.Completed {
			n++
		}
	}
	return n
}

func (b *Board) indexOf(id string) int {
	return slices.IndexFunc(b.todos, func(t Todo) bool { return t.ID == id })
}
