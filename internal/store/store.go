// Package store persists the todo sequence in a local key/value slot.
//
// A KV is the slot itself (a JSON file or a SQLite table, see the
// subpackages). Adapter encodes the sequence as a JSON array under one key.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todos/internal/model"
)

// DefaultKey is the slot the todo list lives under.
const DefaultKey = "_$-todos_"

// ErrInvalid marks a stored value that is not a well-formed todo array.
var ErrInvalid = errors.New("invalid todo data")

// KV is a string key/value slot.
// Get reports ok=false, err=nil for a key that was never set.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Adapter loads and saves the todo sequence under Key.
type Adapter struct {
	kv  KV
	key string
	log *log.Logger
}

// NewAdapter wraps kv. An empty key means DefaultKey; a nil logger discards.
func NewAdapter(kv KV, key string, lg *log.Logger) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	if lg == nil {
		lg = log.New(io.Discard)
	}
	return &Adapter{kv: kv, key: key, log: lg}
}

// Key returns the slot key in use.
func (a *Adapter) Key() string { return a.key }

// Load returns the persisted sequence. A missing key or a value that fails
// to decode yields an empty sequence; only slot read errors are returned.
func (a *Adapter) Load() ([]model.Todo, error) {
	raw, ok, err := a.kv.Get(a.key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", a.key, err)
	}
	if !ok {
		return []model.Todo{}, nil
	}
	todos, err := Decode([]byte(raw))
	if err != nil {
		a.log.Warn("ignoring stored todos", "key", a.key, "err", err)
		return []model.Todo{}, nil
	}
	return todos, nil
}

// Save writes todos as a JSON array. nil is written as [].
func (a *Adapter) Save(todos []model.Todo) error {
	b, err := Encode(todos)
	if err != nil {
		return err
	}
	if err := a.kv.Set(a.key, string(b)); err != nil {
		return fmt.Errorf("write %s: %w", a.key, err)
	}
	a.log.Debug("saved", "key", a.key, "count", len(todos))
	return nil
}

// Encode renders the wire form.
func Encode(todos []model.Todo) ([]byte, error) {
	if todos == nil {
		todos = []model.Todo{}
	}
	b, err := json.Marshal(todos)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}
