package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/idilsaglam/todos/internal/model"
)

const todosSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "todo", "complete"],
    "properties": {
      "id": {"type": "integer"},
      "todo": {"type": "string"},
      "complete": {"type": "boolean"}
    }
  }
}`

var todosSchema = jsonschema.MustCompileString("todos.schema.json", todosSchemaJSON)

// Decode parses and validates a stored todo array.
// A JSON null decodes to an empty sequence.
func Decode(raw []byte) ([]model.Todo, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty value", ErrInvalid)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrInvalid, err)
	}
	if doc == nil {
		return []model.Todo{}, nil
	}
	if err := todosSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var todos []model.Todo
	if err := json.Unmarshal(raw, &todos); err != nil {
		return nil, fmt.Errorf("%w: json unmarshal: %v", ErrInvalid, err)
	}
	return todos, nil
}
