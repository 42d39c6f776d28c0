package todos

import (
	"strings"
	"time"

	"github.com/idilsaglam/todos/internal/model"
)

// IDs hands out strictly increasing todo ids.
// Seeding from the clock keeps ids from different sessions apart.
type IDs struct {
	last int64
}

// NewIDs returns a counter whose first id is seed+1.
func NewIDs(seed int64) *IDs {
	return &IDs{last: seed}
}

// IDsFromClock seeds a counter with now() in Unix milliseconds.
func IDsFromClock(now func() time.Time) *IDs {
	if now == nil {
		now = time.Now
	}
	return NewIDs(now().UnixMilli())
}

// Next allocates a new id.
func (g *IDs) Next() int64 {
	g.last++
	return g.last
}

// Observe raises the counter so the next id is greater than id.
func (g *IDs) Observe(id int64) {
	if id > g.last {
		g.last = id
	}
}

// Compose builds a new Todo from raw user input.
// Input is trimmed; empty results are rejected and no id is consumed.
func Compose(ids *IDs, input string) (model.Todo, bool) {
	text := strings.TrimSpace(input)
	if text == "" {
		return model.Todo{}, false
	}
	return model.Todo{ID: ids.Next(), Todo: text, Complete: false}, true
}
