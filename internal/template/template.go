// Package template implements the recipe text template language: {{name}}
// variable substitution and single-level {{#if name}}...{{/if}} conditional
// blocks. Templates parse to a small node list so rendering is total over
// well-formed input and deterministic for identical bound arguments.
package template

import (
	"fmt"
	"strings"

	"github.com/cookrun/cookrun/internal/args"
)

const (
	openMarker  = "{{"
	closeMarker = "}}"
	ifPrefix    = "#if"
	endIf       = "/if"
)

// UnresolvedVariableError reports a template reference to a name absent from
// the bound argument set.
type UnresolvedVariableError struct {
	Name string
}

func (e *UnresolvedVariableError) Error() string {
	return fmt.Sprintf("unresolved template variable %q", e.Name)
}

// ParseError reports a malformed template. It is an authoring defect,
// surfaced before any execution begins.
type ParseError struct {
	Detail string
}

func (e *ParseError) Error() string {
	return "invalid template: " + e.Detail
}

type nodeKind int

const (
	nodeLiteral nodeKind = iota
	nodeVariable
	nodeConditional
)

type node struct {
	kind nodeKind
	text string // literal text
	name string // variable or guard name
	body []node // conditional body: literals and variables only
}

// Template is a parsed template ready for rendering.
type Template struct {
	source string
	nodes  []node
}

// Source returns the original template text.
func (t *Template) Source() string { return t.source }

// Parse parses a template string. Conditional blocks must be terminated and
// may not nest.
func Parse(source string) (*Template, error) {
	nodes, _, foundEnd, err := parseNodes(source, false)
	if err != nil {
		return nil, err
	}
	if foundEnd {
		return nil, &ParseError{Detail: "unmatched {{/if}}"}
	}
	return &Template{source: source, nodes: nodes}, nil
}

// Render expands the template against the bound arguments.
func (t *Template) Render(bound args.Bound) (string, error) {
	var sb strings.Builder
	if err := renderNodes(&sb, t.nodes, bound); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Render is a convenience that parses and renders in one call.
func Render(source string, bound args.Bound) (string, error) {
	tmpl, err := Parse(source)
	if err != nil {
		return "", err
	}
	return tmpl.Render(bound)
}

// parseNodes consumes input until the end of the string or until a {{/if}}
// directive. It returns the parsed nodes, the unconsumed remainder, and
// whether a {{/if}} was seen.
func parseNodes(input string, inConditional bool) ([]node, string, bool, error) {
	var nodes []node

	for input != "" {
		open := strings.Index(input, openMarker)
		if open < 0 {
			nodes = append(nodes, node{kind: nodeLiteral, text: input})
			return nodes, "", false, nil
		}

		if open > 0 {
			nodes = append(nodes, node{kind: nodeLiteral, text: input[:open]})
		}
		input = input[open+len(openMarker):]

		end := strings.Index(input, closeMarker)
		if end < 0 {
			return nil, "", false, &ParseError{Detail: "unterminated {{"}
		}
		directive := strings.TrimSpace(input[:end])
		input = input[end+len(closeMarker):]

		switch {
		case directive == endIf:
			return nodes, input, true, nil

		case strings.HasPrefix(directive, ifPrefix):
			if inConditional {
				return nil, "", false, &ParseError{Detail: "conditional blocks may not nest"}
			}
			guard := strings.TrimSpace(strings.TrimPrefix(directive, ifPrefix))
			if !validName(guard) {
				return nil, "", false, &ParseError{Detail: fmt.Sprintf("malformed conditional guard %q", guard)}
			}
			body, rest, foundEnd, err := parseNodes(input, true)
			if err != nil {
				return nil, "", false, err
			}
			if !foundEnd {
				return nil, "", false, &ParseError{Detail: "unterminated {{#if}} block"}
			}
			nodes = append(nodes, node{kind: nodeConditional, name: guard, body: body})
			input = rest

		default:
			if !validName(directive) {
				return nil, "", false, &ParseError{Detail: fmt.Sprintf("malformed directive %q", directive)}
			}
			nodes = append(nodes, node{kind: nodeVariable, name: directive})
		}
	}

	return nodes, "", false, nil
}

func renderNodes(sb *strings.Builder, nodes []node, bound args.Bound) error {
	for _, n := range nodes {
		switch n.kind {
		case nodeLiteral:
			sb.WriteString(n.text)

		case nodeVariable:
			value, ok := bound.Lookup(n.name)
			if !ok {
				return &UnresolvedVariableError{Name: n.name}
			}
			sb.WriteString(value.String())

		case nodeConditional:
			guard, ok := bound.Lookup(n.name)
			if !ok {
				return &UnresolvedVariableError{Name: n.name}
			}
			if !guard.Truthy() {
				continue
			}
			if err := renderNodes(sb, n.body, bound); err != nil {
				return err
			}
		}
	}
	return nil
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}
