package todos

import "github.com/idilsaglam/todos/internal/model"

// Kind tags an Action.
type Kind string

const (
	KindSet    Kind = "set"
	KindAdd    Kind = "add"
	KindRemove Kind = "remove"
	KindToggle Kind = "toggle"
)

// Action describes one state mutation.
//
// Payload types by kind:
//   - set:    []model.Todo
//   - add:    model.Todo
//   - remove: int64 (id)
//   - toggle: int64 (id)
type Action struct {
	Kind    Kind
	Payload any
}

// MakeSet replaces the whole sequence. Used once, at mount.
func MakeSet(list []model.Todo) Action {
	return Action{Kind: KindSet, Payload: list}
}

// MakeAdd appends todo. The caller is responsible for a non-empty label and a fresh id.
func MakeAdd(todo model.Todo) Action {
	return Action{Kind: KindAdd, Payload: todo}
}

func MakeRemove(id int64) Action {
	return Action{Kind: KindRemove, Payload: id}
}

func MakeToggle(id int64) Action {
	return Action{Kind: KindToggle, Payload: id}
}
