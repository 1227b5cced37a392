// Package validation checks JSON request bodies against embedded JSON schemas
// before they are forwarded to the backend.
package validation

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/osse101/GranblueTeam_Go/internal/domain"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// BodyValidator validates request bodies by schema name
type BodyValidator interface {
	Validate(schemaName string, body []byte) error
}

// SchemaError lists the locations that failed validation
type SchemaError struct {
	Fields []string
}

func (e *SchemaError) Error() string {
	return ErrMsgSchemaValidation + ": " + strings.Join(e.Fields, "; ")
}

// Unwrap lets callers match domain.ErrInvalidInput
func (e *SchemaError) Unwrap() error {
	return domain.ErrInvalidInput
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewBodyValidator creates a validator over the embedded schemas.
// Schemas are compiled on first use and cached.
func NewBodyValidator() BodyValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

func (v *validator) Validate(schemaName string, body []byte) error {
	schema, err := v.load(schemaName)
	if err != nil {
		return err
	}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMalformedJSON)
	}

	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			var fields []string
			collectErrors(verr, &fields)
			return &SchemaError{Fields: fields}
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func (v *validator) load(name string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[name]; ok {
		return schema, nil
	}

	data, err := schemaFiles.ReadFile(schemaDir + "/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("%s: %s", ErrMsgUnknownSchema, name)
	}

	var schemaJSON interface{}
	if err := json.Unmarshal(data, &schemaJSON); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgCompileSchema, name, err)
	}

	url := schemaBaseURL + name + ".json"
	if err := v.compiler.AddResource(url, schemaJSON); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgCompileSchema, name, err)
	}
	schema, err := v.compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgCompileSchema, name, err)
	}

	v.schemas[name] = schema
	return schema, nil
}

// collectErrors walks the cause tree, keeping leaf failures only
func collectErrors(err *jsonschema.ValidationError, out *[]string) {
	if len(err.Causes) == 0 {
		*out = append(*out, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, out)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")

	keyword := ""
	if err.ErrorKind != nil {
		keyword = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	if keyword == "" {
		return location
	}
	return location + ": " + keyword
}
