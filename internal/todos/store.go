package todos

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todos/internal/model"
)

// Persister is the storage slot the store syncs with.
// store.Adapter is the production implementation.
type Persister interface {
	Load() ([]model.Todo, error)
	Save([]model.Todo) error
}

// Options tune a Store. The zero value is usable.
type Options struct {
	Logger *log.Logger
	// IDs defaults to a counter seeded from Clock.
	IDs   *IDs
	Clock func() time.Time
}

type subscription struct {
	id int
	fn func([]model.Todo)
}

// Store holds the todo sequence. It is not safe for concurrent use; all
// calls are expected from a single goroutine (the UI loop or the CLI).
type Store struct {
	todos   []model.Todo
	ids     *IDs
	subs    []subscription
	nextSub int
	log     *log.Logger
}

// New returns an empty store.
func New(opt Options) *Store {
	lg := opt.Logger
	if lg == nil {
		lg = log.New(io.Discard)
	}
	ids := opt.IDs
	if ids == nil {
		ids = IDsFromClock(opt.Clock)
	}
	return &Store{
		todos: []model.Todo{},
		ids:   ids,
		log:   lg,
	}
}

// Mount creates a store backed by p: it loads the persisted sequence,
// subscribes a saver, and dispatches set with what was loaded. The initial
// set writes the same data back.
func Mount(p Persister, opt Options) (*Store, error) {
	list, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	s := New(opt)
	s.Subscribe(func(todos []model.Todo) {
		// fire and forget
		if err := p.Save(todos); err != nil {
			s.log.Warn("save failed", "err", err)
		}
	})
	s.Dispatch(MakeSet(list))
	return s, nil
}

// Dispatch applies a. Unknown kinds, mistyped payloads and ids that are not
// present leave the state alone and notify nobody.
func (s *Store) Dispatch(a Action) {
	next, changed := Reduce(s.todos, a)
	if !changed {
		s.log.Debug("action ignored", "kind", a.Kind)
		return
	}
	s.todos = next
	if a.Kind == KindSet {
		var top int64
		for _, t := range next {
			top = max(top, t.ID)
		}
		s.ids.Observe(top)
	}
	s.log.Debug("action applied", "kind", a.Kind, "len", len(next))
	s.notify()
}

// Submit validates raw input and dispatches add for it.
// It reports whether anything was added.
func (s *Store) Submit(input string) bool {
	t, ok := Compose(s.ids, input)
	if !ok {
		return false
	}
	s.Dispatch(MakeAdd(t))
	return true
}

// Subscribe registers fn to run after every change. The slice passed to fn
// is a copy. The returned func removes the subscription. A nil fn is not
// registered.
func (s *Store) Subscribe(fn func([]model.Todo)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Todos returns a copy of the current sequence.
func (s *Store) Todos() []model.Todo {
	out := make([]model.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// Len returns the number of todos.
func (s *Store) Len() int { return len(s.todos) }

func (s *Store) notify() {
	subs := s.subs
	for _, sub := range subs {
		sub.fn(s.Todos())
	}
}
