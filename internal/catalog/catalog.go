// Package catalog provides instrument definitions: the built-in table plus
// definition files loaded from disk.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/blaisecz/questionnaire-report/internal/scoring"
)

// DefinitionPattern matches definition files below a directory.
const DefinitionPattern = "**/*.{yaml,yml,json}"

// Loader decodes and checks definition files.
type Loader struct {
	schema   *Schema
	validate *validator.Validate
}

// NewLoader compiles the schema and prepares struct validation.
func NewLoader() (*Loader, error) {
	schema, err := NewSchema()
	if err != nil {
		return nil, err
	}

	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		b := sl.Current().Interface().(scoring.Bound)
		if b.Min > b.Max {
			sl.ReportError(b.Max, "Max", "max", "gtefield", "Min")
		}
	}, scoring.Bound{})

	return &Loader{schema: schema, validate: v}, nil
}

// Default returns the built-in instruments.
func Default() []scoring.Instrument {
	return scoring.Builtin()
}

// Load returns the built-in table overlaid with every definition found in
// dir. An empty dir yields the built-ins alone.
func (l *Loader) Load(dir string) ([]scoring.Instrument, error) {
	defs := Default()
	if dir == "" {
		return defs, nil
	}
	extra, err := l.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return Overlay(defs, extra), nil
}

// LoadDir reads every definition file below dir in lexical path order.
func (l *Loader) LoadDir(dir string) ([]scoring.Instrument, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), DefinitionPattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	sort.Strings(matches)

	defs := make([]scoring.Instrument, 0, len(matches))
	for _, match := range matches {
		def, err := l.LoadFile(filepath.Join(dir, filepath.FromSlash(match)))
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// LoadFile decodes one definition file and runs every check on it.
func (l *Loader) LoadFile(path string) (scoring.Instrument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return scoring.Instrument{}, fmt.Errorf("read %s: %w", path, err)
	}
	def, err := l.Decode(content)
	if err != nil {
		return scoring.Instrument{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Decode parses a YAML or JSON document into a definition, checking it
// against the schema, the struct rules and the scoring rules in turn.
func (l *Loader) Decode(content []byte) (scoring.Instrument, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return scoring.Instrument{}, fmt.Errorf("parse definition: %w", err)
	}
	if doc == nil {
		return scoring.Instrument{}, fmt.Errorf("%w: empty document", ErrSchema)
	}
	if err := l.schema.Check(stringKeys(doc).(map[string]any)); err != nil {
		return scoring.Instrument{}, err
	}

	var def scoring.Instrument
	if err := yaml.Unmarshal(content, &def); err != nil {
		return scoring.Instrument{}, fmt.Errorf("decode definition: %w", err)
	}
	if err := l.validate.Struct(def); err != nil {
		return scoring.Instrument{}, fmt.Errorf("%w: %s", scoring.ErrInvalidDefinition, describe(err))
	}
	if err := def.Validate(); err != nil {
		return scoring.Instrument{}, err
	}
	return def, nil
}

// Overlay replaces base definitions by id and appends new ones in order.
func Overlay(base, extra []scoring.Instrument) []scoring.Instrument {
	out := make([]scoring.Instrument, len(base), len(base)+len(extra))
	copy(out, base)
	pos := make(map[string]int, len(out))
	for i, def := range out {
		pos[def.ID] = i
	}
	for _, def := range extra {
		if i, ok := pos[def.ID]; ok {
			out[i] = def
			continue
		}
		pos[def.ID] = len(out)
		out = append(out, def)
	}
	return out
}

// stringKeys rewrites YAML maps with non-string keys, such as the integer
// answers in a labels block, into string-keyed maps.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = stringKeys(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = stringKeys(val)
		}
		return out
	default:
		return v
	}
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
