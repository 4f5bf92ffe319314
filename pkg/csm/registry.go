package csm

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/ftomassetti/javaparser/pkg/jast"
)

// Registry maps node kinds to their rendering descriptions.
type Registry struct {
	mu     sync.RWMutex
	byKind map[jast.NodeKind]Element
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKind: make(map[jast.NodeKind]Element)}
}

// Register sets the description for a kind, replacing any previous one.
func (r *Registry) Register(kind jast.NodeKind, element Element) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byKind[kind] = element
}

// Lookup returns the description for a kind. A missing description is a
// *ConfigError.
func (r *Registry) Lookup(kind jast.NodeKind) (Element, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	element, ok := r.byKind[kind]
	if !ok || element == nil {
		return nil, &ConfigError{Kind: kind, Reason: "no concrete syntax registered"}
	}
	return element, nil
}

// Kinds returns the registered kinds in declaration order.
func (r *Registry) Kinds() []jast.NodeKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]jast.NodeKind, 0, len(r.byKind))
	for kind := range r.byKind {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

// Validate checks that every node kind has a description and that every
// property a description refers to exists on its kind with a matching shape.
func (r *Registry) Validate() error {
	var problems []string

	for _, kind := range jast.Kinds() {
		element, err := r.Lookup(kind)
		if err != nil {
			problems = append(problems, kind.String()+": missing")
			continue
		}
		if err := checkElement(kind, element); err != nil {
			problems = append(problems, err.Error())
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(problems, "; "))
	}
	return nil
}

func checkElement(kind jast.NodeKind, element Element) error {
	want := func(p jast.Property, shapes ...jast.Shape) error {
		spec, ok := jast.Lookup(kind, p)
		if !ok || !slices.Contains(shapes, spec.Shape) {
			return fmt.Errorf("%s: bad reference to %s", kind, p)
		}
		return nil
	}

	switch e := element.(type) {
	case Sequence:
		for _, child := range e.Elements {
			if err := checkElement(kind, child); err != nil {
				return err
			}
		}
	case Attribute:
		return want(e.Property, jast.ShapeAttribute)
	case SingleChild:
		return want(e.Property, jast.ShapeSingle)
	case List:
		if err := want(e.Property, jast.ShapeList); err != nil {
			return err
		}
		for _, sep := range []Element{e.Before, e.Pre, e.Post, e.After} {
			if sep == nil {
				continue
			}
			if err := checkElement(kind, sep); err != nil {
				return err
			}
		}
	case Conditional:
		var err error
		switch e.Condition {
		case IsPresent:
			err = want(e.Property, jast.ShapeSingle)
		case IsNotEmpty:
			err = want(e.Property, jast.ShapeList)
		case IsTrue, IsPostfix:
			err = want(e.Property, jast.ShapeAttribute)
		}
		if err != nil {
			return err
		}
		for _, branch := range []Element{e.Then, e.Else} {
			if branch == nil {
				continue
			}
			if err := checkElement(kind, branch); err != nil {
				return err
			}
		}
	case Token, Comment, None, Indent, Unindent:
	default:
		return fmt.Errorf("%s: unknown element %T", kind, element)
	}

	return nil
}

// DefaultRegistry holds the Java descriptions.
//
//nolint:gochecknoglobals // Global registry is intentional, filled once in init().
var DefaultRegistry = NewRegistry()
