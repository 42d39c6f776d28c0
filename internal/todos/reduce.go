package todos

import "github.com/idilsaglam/todos/internal/model"

// Reduce applies a to state and returns the next sequence.
// changed is false when the action left the sequence as it was; next is then
// state itself. state is never modified in place.
func Reduce(state []model.Todo, a Action) (next []model.Todo, changed bool) {
	switch a.Kind {
	case KindSet:
		list, ok := a.Payload.([]model.Todo)
		if !ok {
			return state, false
		}
		next = make([]model.Todo, len(list))
		copy(next, list)
		return next, true

	case KindAdd:
		t, ok := a.Payload.(model.Todo)
		if !ok {
			return state, false
		}
		next = make([]model.Todo, len(state), len(state)+1)
		copy(next, state)
		return append(next, t), true

	case KindRemove:
		i := indexOf(state, a.Payload)
		if i < 0 {
			return state, false
		}
		next = make([]model.Todo, 0, len(state)-1)
		next = append(next, state[:i]...)
		return append(next, state[i+1:]...), true

	case KindToggle:
		i := indexOf(state, a.Payload)
		if i < 0 {
			return state, false
		}
		next = make([]model.Todo, len(state))
		copy(next, state)
		next[i].Complete = !next[i].Complete
		return next, true
	}
	return state, false
}

// indexOf finds the record whose id equals payload, or -1.
func indexOf(state []model.Todo, payload any) int {
	id, ok := payload.(int64)
	if !ok {
		return -1
	}
	for i, t := range state {
		if t.ID == id {
			return i
		}
	}
	return -1
}
