package model

import "fmt"

// ArgType is the declared value type of a recipe argument.
type ArgType string

const (
	ArgTypeString  ArgType = "string"
	ArgTypeBoolean ArgType = "boolean"
	ArgTypeInteger ArgType = "integer"
	ArgTypeEnum    ArgType = "enum"
)

// Recipe is a declarative automation unit: a templated top-level command
// plus an optional ordered list of steps. When steps are present they are
// the executable unit and the top-level command is advisory only.
type Recipe struct {
	ID          string         `yaml:"id" json:"id"`
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description"`
	Command     string         `yaml:"command" json:"command"`
	Tags        []string       `yaml:"tags" json:"tags"`
	Author      string         `yaml:"author" json:"author"`
	Shells      []string       `yaml:"shells" json:"shells"`
	Arguments   []ArgumentSpec `yaml:"arguments" json:"arguments"`
	Steps       []Step         `yaml:"steps" json:"steps"`
}

// ArgumentSpec declares a typed, named parameter of a recipe.
type ArgumentSpec struct {
	Name         string   `yaml:"name" json:"name"`
	Description  string   `yaml:"description" json:"description"`
	DefaultValue string   `yaml:"default_value" json:"default_value"`
	ArgType      ArgType  `yaml:"arg_type" json:"arg_type"`
	Required     bool     `yaml:"required" json:"required"`
	Options      []string `yaml:"options,omitempty" json:"options,omitempty"`
}

// Step is a single unit of work within a recipe. The command names a fixed
// executable; args, environment values, and condition are templates rendered
// once per run against the bound arguments.
type Step struct {
	ID          string            `yaml:"id" json:"id"`
	Name        string            `yaml:"name" json:"name"`
	Command     string            `yaml:"command" json:"command"`
	Args        []string          `yaml:"args" json:"args"`
	Environment map[string]string `yaml:"environment" json:"environment"`
	Timeout     int               `yaml:"timeout" json:"timeout"`         // seconds, 0 = no timeout
	RetryCount  int               `yaml:"retry_count" json:"retry_count"` // additional attempts after the first
	Condition   string            `yaml:"condition" json:"condition"`     // template, empty = always run
}

// ConfigurationError reports a malformed recipe. It is surfaced before any
// execution begins; no partial run occurs.
type ConfigurationError struct {
	Detail string
}

func (e *ConfigurationError) Error() string {
	return "invalid recipe: " + e.Detail
}

func configErrorf(format string, a ...interface{}) *ConfigurationError {
	return &ConfigurationError{Detail: fmt.Sprintf(format, a...)}
}

// Validate checks the structural invariants of a loaded recipe: unique
// argument names, known argument types, unique step ids, non-empty step
// commands, and non-negative timeout/retry budgets.
func (r *Recipe) Validate() error {
	if r.ID == "" {
		return configErrorf("id is required")
	}
	if r.Name == "" {
		return configErrorf("name is required")
	}
	if r.Command == "" && len(r.Steps) == 0 {
		return configErrorf("recipe %s defines neither a command nor steps", r.ID)
	}

	argNames := make(map[string]bool, len(r.Arguments))
	for _, arg := range r.Arguments {
		if arg.Name == "" {
			return configErrorf("argument name is required")
		}
		if argNames[arg.Name] {
			return configErrorf("duplicate argument name %q", arg.Name)
		}
		argNames[arg.Name] = true

		switch arg.ArgType {
		case ArgTypeString, ArgTypeBoolean, ArgTypeInteger:
		case ArgTypeEnum:
			if len(arg.Options) == 0 {
				return configErrorf("enum argument %q must declare options", arg.Name)
			}
		default:
			return configErrorf("argument %q has unknown arg_type %q", arg.Name, arg.ArgType)
		}
	}

	stepIDs := make(map[string]bool, len(r.Steps))
	for _, step := range r.Steps {
		if step.ID == "" {
			return configErrorf("step %q is missing an id", step.Name)
		}
		if stepIDs[step.ID] {
			return configErrorf("duplicate step id %q", step.ID)
		}
		stepIDs[step.ID] = true

		if step.Command == "" {
			return configErrorf("step %s has an empty command", step.ID)
		}
		if step.Timeout < 0 {
			return configErrorf("step %s has a negative timeout", step.ID)
		}
		if step.RetryCount < 0 {
			return configErrorf("step %s has a negative retry_count", step.ID)
		}
	}

	return nil
}
