package catalog

import (
	"embed"
	"errors"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// ErrSchema marks a definition document rejected by the CUE schema.
var ErrSchema = errors.New("definition does not match schema")

// Schema checks raw definition documents against the embedded #Instrument
// CUE definition.
type Schema struct {
	ctx *cue.Context
	def cue.Value
}

// NewSchema compiles the embedded schema.
func NewSchema() (*Schema, error) {
	content, err := schemaFS.ReadFile("schemas/instrument.cue")
	if err != nil {
		return nil, fmt.Errorf("read embedded schema: %w", err)
	}

	ctx := cuecontext.New()
	inst := ctx.CompileBytes(content, cue.Filename("instrument.cue"))
	if err := inst.Err(); err != nil {
		return nil, fmt.Errorf("compile instrument schema: %w", err)
	}

	def := inst.LookupPath(cue.ParsePath("#Instrument"))
	if !def.Exists() {
		return nil, errors.New("instrument schema has no #Instrument definition")
	}
	return &Schema{ctx: ctx, def: def}, nil
}

// Check unifies doc with #Instrument and requires the result to be concrete,
// so missing required fields are reported too.
func (s *Schema) Check(doc map[string]any) error {
	data := s.ctx.Encode(doc)
	if err := data.Err(); err != nil {
		return fmt.Errorf("encode definition: %w", err)
	}

	unified := s.def.Unify(data)
	if err := unified.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return nil
}
