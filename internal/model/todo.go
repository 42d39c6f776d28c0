package model

// Todo is the domain model for a todo entry.
// Field names match the persisted wire form.
type Todo struct {
	ID       int64  `json:"id"`
	Todo     string `json:"todo"`
	Complete bool   `json:"complete"`
}
