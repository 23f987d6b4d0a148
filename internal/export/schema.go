package export

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema constrains the export document shape. Validation runs
// on every encode so a field rename cannot silently break the contract.
const documentSchema = `{
  "type": "object",
  "required": ["exportDate", "sessions", "achievements", "dailyStats", "preferences"],
  "properties": {
    "exportDate": {"type": "string"},
    "sessions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "startTime", "endTime", "duration", "type", "completed", "reminderTitle", "xpEarned"],
        "properties": {
          "id": {"type": "string"},
          "startTime": {"type": "string"},
          "endTime": {"type": ["string", "null"]},
          "duration": {"type": "integer", "minimum": 0},
          "type": {"enum": ["focus", "shortBreak", "longBreak"]},
          "completed": {"type": "boolean"},
          "reminderTitle": {"type": ["string", "null"]},
          "xpEarned": {"type": "integer", "minimum": 0}
        }
      }
    },
    "achievements": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type", "unlockedAt"],
        "properties": {
          "type": {"type": "string"},
          "unlockedAt": {"type": "string"}
        }
      }
    },
    "dailyStats": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["date", "pomodorosCompleted", "totalFocusMinutes", "xpEarned"],
        "properties": {
          "date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
          "pomodorosCompleted": {"type": "integer", "minimum": 0},
          "totalFocusMinutes": {"type": "integer", "minimum": 0},
          "xpEarned": {"type": "integer", "minimum": 0}
        }
      }
    },
    "preferences": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateDocument checks encoded JSON against the document schema.
func validateDocument(data []byte) error {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(documentSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://export.json", def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://export.json")
	})
	if compileErr != nil {
		return compileErr
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
