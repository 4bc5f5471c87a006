package model

// Todo is the domain model for a single task.
// IDs come from the store's clock; the zero Todo is not a valid entry.
type Todo struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Toggled returns a copy with Completed inverted.
func (t Todo) Toggled() Todo {
	t.Completed = !t.Completed
	return t
}
