// Package loader assembles java models from declarative JSON descriptions.
// A description lists classes, their supertypes and their type parameters;
// parameter bounds name either a sibling parameter or a declared class, so
// mutually-bounded parameters are expressible. Problems are collected as
// coded errors rather than aborting on the first.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/nvallet/jtype/internal/log"
	"github.com/nvallet/jtype/java"
	"github.com/nvallet/jtype/jerr"
)

var logger = log.DefaultLogger.With("section", "loader")

var validate = validator.New()

// Description is the top-level shape of a model file.
type Description struct {
	Classes []ClassDescription `json:"classes" validate:"dive"`
}

type ClassDescription struct {
	Name       string                 `json:"name" validate:"required"`
	Supertypes []string               `json:"supertypes" validate:"dive,required"`
	Parameters []ParameterDescription `json:"parameters" validate:"dive"`
}

type ParameterDescription struct {
	Name        string   `json:"name" validate:"required"`
	Variance    string   `json:"variance" validate:"omitempty,oneof=in out"`
	Reified     bool     `json:"reified"`
	Bounds      []string `json:"bounds" validate:"dive,required"`
	Annotations []string `json:"annotations"`
}

// Loaded is an assembled model together with a name index and any errors
// collected along the way. A Loaded with errors still holds whatever could
// be assembled.
type Loaded struct {
	Model   *java.Model
	classes []*java.Class
	byName  map[string]*java.Class
	errors  *jerr.Errors
}

// Classes returns the declared classes in description order, excluding the
// implicit Object class.
func (l *Loaded) Classes() []*java.Class { return l.classes }

func (l *Loaded) Class(name string) (*java.Class, bool) {
	c, ok := l.byName[name]
	return c, ok
}

func (l *Loaded) Errors() *jerr.Errors { return l.errors }

// LoadFile reads and assembles a model file. The returned error covers file
// access only; description problems are collected in the Loaded value.
func LoadFile(path string) (*Loaded, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open model file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(f), nil
}

// Load decodes, validates, and assembles a model description.
func Load(r io.Reader) *Loaded {
	loaded := &Loaded{
		Model:  java.NewModel(),
		byName: make(map[string]*java.Class),
	}
	loaded.byName[java.ObjectClassName] = loaded.Model.ObjectClass()

	var desc Description
	if err := json.NewDecoder(r).Decode(&desc); err != nil {
		loaded.errors = loaded.errors.With(jerr.New(jerr.NewDecode{From: err}))
		return loaded
	}

	if err := validate.Struct(desc); err != nil {
		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			for _, ve := range valErrs {
				loaded.errors = loaded.errors.With(jerr.New(jerr.NewInvalidDescription{
					Detail: fmt.Sprintf("%s: failed '%s'", ve.Namespace(), ve.Tag()),
				}))
			}
		} else {
			loaded.errors = loaded.errors.With(jerr.New(jerr.Unclassified{From: err}))
		}
		return loaded
	}

	declared := loaded.declare(desc)
	loaded.link(declared)

	logger.Debug("model loaded",
		"classes", len(loaded.classes),
		"errors", len(loaded.errors.Errors()),
	)
	return loaded
}

// declaredClass ties a description to the class it produced, so the link
// pass works off exactly the declarations that were accepted.
type declaredClass struct {
	desc  ClassDescription
	class *java.Class
}

// declare builds every class and its parameters, without bounds. Bounds may
// refer to classes or parameters declared later, so linking is a second pass.
func (l *Loaded) declare(desc Description) []declaredClass {
	declared := make([]declaredClass, 0, len(desc.Classes))
	for _, cd := range desc.Classes {
		if _, dup := l.byName[cd.Name]; dup {
			l.errors = l.errors.With(jerr.New(jerr.NewDuplicateClass{Name: cd.Name}))
			continue
		}
		supertypes := cd.Supertypes
		if len(supertypes) == 0 {
			supertypes = []string{java.ObjectClassName}
		}
		class := java.NewClass(cd.Name, supertypes...)
		l.byName[cd.Name] = class
		l.classes = append(l.classes, class)

		seen := make(map[string]bool, len(cd.Parameters))
		classParams := make([]*java.TypeParameter, 0, len(cd.Parameters))
		for i, pd := range cd.Parameters {
			if seen[pd.Name] {
				l.errors = l.errors.With(jerr.New(jerr.NewDuplicateParameter{Class: cd.Name, Name: pd.Name}))
				continue
			}
			seen[pd.Name] = true
			variance, _ := java.VarianceOf(pd.Variance)
			classParams = append(classParams, java.NewTypeParameter(
				l.Model, class, pd.Name, i, variance, pd.Reified, pd.Annotations...,
			))
		}
		class.SetTypeParameters(classParams)
		declared = append(declared, declaredClass{desc: cd, class: class})
	}
	return declared
}

// link resolves supertype names and parameter bounds against the declared
// names. Bound cycles between parameters are allowed and linked as-is.
func (l *Loaded) link(declared []declaredClass) {
	for _, dc := range declared {
		for _, name := range dc.class.Supertypes().Slice() {
			if _, ok := l.byName[name]; !ok {
				l.errors = l.errors.With(jerr.New(jerr.NewUndefinedSupertype{Class: dc.desc.Name, Name: name}))
			}
		}

		byParamName := make(map[string]*java.TypeParameter, len(dc.class.TypeParameters()))
		for _, p := range dc.class.TypeParameters() {
			byParamName[p.Name()] = p
		}
		linked := make(map[*java.TypeParameter]bool, len(byParamName))
		for _, pd := range dc.desc.Parameters {
			p, ok := byParamName[pd.Name]
			if !ok || linked[p] {
				continue // the declaration was rejected, or this is its duplicate
			}
			linked[p] = true
			bounds := make([]*java.ClassifierType, 0, len(pd.Bounds))
			for _, boundName := range pd.Bounds {
				switch {
				case byParamName[boundName] != nil:
					bounds = append(bounds, byParamName[boundName].DefaultType())
				case l.byName[boundName] != nil:
					bounds = append(bounds, l.byName[boundName].DefaultType())
				default:
					l.errors = l.errors.With(jerr.New(jerr.NewUndefinedBound{
						Class: dc.desc.Name, Parameter: pd.Name, Name: boundName,
					}))
				}
			}
			p.SetUpperBounds(bounds...)
		}
	}
}
