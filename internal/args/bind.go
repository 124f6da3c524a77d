package args

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cookrun/cookrun/internal/model"
)

// MissingRequiredArgumentError reports a required argument with no caller
// value. Defaults never silently satisfy a required argument.
type MissingRequiredArgumentError struct {
	Name string
}

func (e *MissingRequiredArgumentError) Error() string {
	return fmt.Sprintf("missing required argument %q", e.Name)
}

// InvalidArgumentTypeError reports a caller value that cannot be coerced to
// the declared argument type.
type InvalidArgumentTypeError struct {
	Name     string
	Expected model.ArgType
	Got      string
}

func (e *InvalidArgumentTypeError) Error() string {
	return fmt.Sprintf("argument %q expects %s, got %q", e.Name, e.Expected, e.Got)
}

// InvalidDefaultValueError reports a declared default that cannot be coerced
// to its own argument type. This is an authoring defect in the recipe.
type InvalidDefaultValueError struct {
	Name string
}

func (e *InvalidDefaultValueError) Error() string {
	return fmt.Sprintf("argument %q has a default value invalid for its type", e.Name)
}

// Bind coerces caller-supplied raw string values against the declared
// arguments, filling in defaults for absent optional ones. Caller names
// without a matching declaration are ignored.
func Bind(specs []model.ArgumentSpec, supplied map[string]string) (Bound, error) {
	bound := make(Bound, len(specs))

	for _, spec := range specs {
		raw, ok := supplied[spec.Name]
		if !ok {
			if spec.Required {
				return nil, &MissingRequiredArgumentError{Name: spec.Name}
			}
			value, err := coerce(spec, spec.DefaultValue)
			if err != nil {
				return nil, &InvalidDefaultValueError{Name: spec.Name}
			}
			bound[spec.Name] = value
			continue
		}

		value, err := coerce(spec, raw)
		if err != nil {
			return nil, &InvalidArgumentTypeError{Name: spec.Name, Expected: argType(spec), Got: raw}
		}
		bound[spec.Name] = value
	}

	return bound, nil
}

func argType(spec model.ArgumentSpec) model.ArgType {
	if spec.ArgType == "" {
		return model.ArgTypeString
	}
	return spec.ArgType
}

func coerce(spec model.ArgumentSpec, raw string) (Value, error) {
	switch argType(spec) {
	case model.ArgTypeString:
		return stringValue(raw), nil

	case model.ArgTypeBoolean:
		switch strings.ToLower(raw) {
		case "true":
			return boolValue(true), nil
		case "false":
			return boolValue(false), nil
		}
		return Value{}, fmt.Errorf("%q is not a boolean literal", raw)

	case model.ArgTypeInteger:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%q is not a base-10 integer", raw)
		}
		return intValue(i), nil

	case model.ArgTypeEnum:
		for _, option := range spec.Options {
			if raw == option {
				return enumValue(raw), nil
			}
		}
		return Value{}, fmt.Errorf("%q is not one of %v", raw, spec.Options)

	default:
		return Value{}, fmt.Errorf("unknown arg_type %q", spec.ArgType)
	}
}
