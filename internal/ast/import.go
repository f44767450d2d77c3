// Package ast defines the syntax tree produced by the parser, starting with
// module import declarations.
package ast

import (
	"encoding/json"
	"fmt"

	"jsfront/internal/source"
)

// ImportDeclaration is one `import ... from '...'` statement. A declaration
// carries either exactly one Default or Namespace specifier, or zero or more
// Named specifiers; the grammar enforces this by construction. The mixed
// ECMAScript form `import foo, { bar } from 'x'` is deliberately not
// supported.
type ImportDeclaration struct {
	Specifiers []ImportSpecifier
	Source     string
	Loc        source.Location
}

// ImportSpecifier is one imported binding. Exactly one of NamedSpecifier,
// DefaultSpecifier or NamespaceSpecifier implements it; consumers switch
// exhaustively.
type ImportSpecifier interface {
	// LocalName returns the binding name the specifier introduces.
	LocalName() string

	isImportSpecifier()
}

// NamedSpecifier is `{ imported }` or `{ imported as local }`.
type NamedSpecifier struct {
	Imported string
	Local    string
}

// DefaultSpecifier is `import local from ...`.
type DefaultSpecifier struct {
	Local string
}

// NamespaceSpecifier is `import * as local from ...`.
type NamespaceSpecifier struct {
	Local string
}

func (s NamedSpecifier) LocalName() string     { return s.Local }
func (s DefaultSpecifier) LocalName() string   { return s.Local }
func (s NamespaceSpecifier) LocalName() string { return s.Local }

func (NamedSpecifier) isImportSpecifier()     {}
func (DefaultSpecifier) isImportSpecifier()   {}
func (NamespaceSpecifier) isImportSpecifier() {}

// SpecifierType returns the variant tag of a specifier. The tags and the
// JSON field names below are a contract: downstream tooling matches on them.
func SpecifierType(s ImportSpecifier) string {
	switch s.(type) {
	case NamedSpecifier:
		return "Named"
	case DefaultSpecifier:
		return "Default"
	case NamespaceSpecifier:
		return "Namespace"
	default:
		panic(fmt.Sprintf("ast: unknown specifier variant %T", s))
	}
}

func (d *ImportDeclaration) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       string            `json:"type"`
		Specifiers []ImportSpecifier `json:"specifiers"`
		Source     string            `json:"source"`
		Loc        source.Location   `json:"loc"`
	}{"ImportDeclaration", d.Specifiers, d.Source, d.Loc})
}

func (s NamedSpecifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string `json:"type"`
		Imported string `json:"imported"`
		Local    string `json:"local"`
	}{"Named", s.Imported, s.Local})
}

func (s DefaultSpecifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Local string `json:"local"`
	}{"Default", s.Local})
}

func (s NamespaceSpecifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Local string `json:"local"`
	}{"Namespace", s.Local})
}
