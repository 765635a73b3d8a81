package config

import (
	"fmt"
	"math"
	"strings"
)

func validatePositive(field string, value float64) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

func validateInRange(field string, value, min, max float64) []ValidationError {
	if value < min || value > max {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		}}
	}
	return nil
}

func validateFinite(field string, p [2]float64) []ValidationError {
	if math.IsNaN(p[0]) || math.IsInf(p[0], 0) || math.IsNaN(p[1]) || math.IsInf(p[1], 0) {
		return []ValidationError{{
			Field:   field,
			Message: "coordinates must be finite",
		}}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// InvalidError is returned by LoadFromFile when validation fails.
type InvalidError struct {
	Errors []ValidationError
}

func (e *InvalidError) Error() string {
	return FormatValidationErrors(e.Errors)
}

// FormatValidationErrors groups errors by their top-level section
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	var order []string
	categories := map[string][]ValidationError{}
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		if _, ok := categories[category]; !ok {
			order = append(order, category)
		}
		categories[category] = append(categories[category], err)
	}

	for _, category := range order {
		fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(category))
		for _, err := range categories[category] {
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			fmt.Fprintf(&b, "  - %s: %s\n", field, err.Message)
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration
func (c *PuzzleConfig) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.Scene.Validate()...)
	errors = append(errors, c.Search.Validate()...)
	errors = append(errors, c.Beam.Validate()...)
	errors = append(errors, c.Render.Validate()...)
	return errors
}

func (s *Scene) Validate() []ValidationError {
	var errors []ValidationError

	if s.Source != nil {
		errors = append(errors, validateFinite("scene.source", *s.Source)...)
	}
	if s.Target != nil {
		errors = append(errors, validateFinite("scene.target", *s.Target)...)
	}
	errors = append(errors, validateNonNegative("scene.max_reflections", float64(s.MaxReflections))...)

	for i, m := range s.Mirrors.Inline {
		errors = append(errors, m.Validate(fmt.Sprintf("scene.mirrors.%d", i))...)
	}
	errors = append(errors, s.Obstacles.Validate()...)

	return errors
}

func (m *MirrorSpec) Validate(field string) []ValidationError {
	var errors []ValidationError

	hasEnds := m.A != nil && m.B != nil
	switch {
	case hasEnds && m.Placement != nil:
		return []ValidationError{{Field: field, Message: "give either a/b or placement, not both"}}
	case m.Placement != nil:
		errors = append(errors, validateFinite(field+".placement.at", m.Placement.At)...)
		errors = append(errors, validateFinite(field+".placement.toward", m.Placement.Toward)...)
		errors = append(errors, validatePositive(field+".placement.length", m.Placement.Length)...)
		if m.Placement.At == m.Placement.Toward {
			errors = append(errors, ValidationError{
				Field:   field + ".placement.toward",
				Message: "must differ from placement.at",
			})
		}
	case hasEnds:
		errors = append(errors, validateFinite(field+".a", *m.A)...)
		errors = append(errors, validateFinite(field+".b", *m.B)...)
		if *m.A == *m.B {
			errors = append(errors, ValidationError{
				Field:   field,
				Message: "mirror has zero length",
			})
		}
	default:
		errors = append(errors, ValidationError{Field: field, Message: "either a/b or placement must be specified"})
	}

	return errors
}

func (o *Obstacles) Validate() []ValidationError {
	var errors []ValidationError

	for i, c := range o.Circles {
		field := fmt.Sprintf("scene.obstacles.circles.%d", i)
		errors = append(errors, validateFinite(field+".center", c.Center)...)
		errors = append(errors, validatePositive(field+".radius", c.Radius)...)
	}
	for i, s := range o.Segments {
		field := fmt.Sprintf("scene.obstacles.segments.%d", i)
		errors = append(errors, validateFinite(field+".a", s.A)...)
		errors = append(errors, validateFinite(field+".b", s.B)...)
	}
	if o.Mesh != nil {
		if o.Mesh.Path == "" {
			errors = append(errors, ValidationError{
				Field:   "scene.obstacles.mesh.path",
				Message: "mesh path is required",
			})
		}
		errors = append(errors, validateNonNegative("scene.obstacles.mesh.scale", o.Mesh.Scale)...)
	}

	return errors
}

func (s *Search) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateNonNegative("search.max_nodes", float64(s.MaxNodes))...)
	errors = append(errors, validateNonNegative("search.timeout_ms", float64(s.TimeoutMS))...)
	return errors
}

func (b *Beam) Validate() []ValidationError {
	var errors []ValidationError
	for angle, loss := range b.Reflectivity {
		field := fmt.Sprintf("beam.reflectivity.%v", angle)
		errors = append(errors, validateInRange(field, angle, 0, 90)...)
		if loss > 0 {
			errors = append(errors, ValidationError{Field: field, Message: "loss must be zero or negative dB"})
		}
	}
	return errors
}

func (r *Render) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateNonNegative("render.width", float64(r.Width))...)
	errors = append(errors, validateNonNegative("render.height", float64(r.Height))...)
	errors = append(errors, validateNonNegative("render.margin", r.Margin)...)
	return errors
}
