package parser

import (
	"jsfront/internal/ast"
	"jsfront/internal/diag"
	"jsfront/internal/lexer"
	"jsfront/internal/source"
	"jsfront/internal/token"
)

// ParseImportStatement tokenizes src and parses exactly one import
// declaration from it. Trailing tokens after the statement are an error.
func ParseImportStatement(src string) (*ast.ImportDeclaration, error) {
	file := source.FromString("", src)
	toks, err := lexer.Tokenize(file, lexer.Options{})
	if err != nil {
		return nil, err
	}
	return Parse(toks, file.Name)
}

// Parse consumes a token sequence holding exactly one import statement.
func Parse(toks []token.Token, fileName string) (*ast.ImportDeclaration, error) {
	p := New(toks, fileName)
	decl, err := p.parseImportDeclaration()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.unexpected(diag.SynUnexpectedToken, "end of input")
	}
	return decl, nil
}

// ParseLeading parses the run of consecutive import declarations at the
// front of a token sequence and stops at the first token that does not start
// one. This is how the driver extracts a file's import prologue.
func ParseLeading(toks []token.Token, fileName string) ([]*ast.ImportDeclaration, error) {
	p := New(toks, fileName)
	var decls []*ast.ImportDeclaration
	for p.atKeyword("import") {
		decl, err := p.parseImportDeclaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

// parseImportDeclaration recognizes
//
//	import Ident from 'path' ;            // default
//	import * as Ident from 'path' ;       // namespace
//	import { } from 'path' ;              // named, empty
//	import { A, b as c } from 'path' ;    // named
//
// The trailing semicolon is optional. `import foo, { bar } from 'x'` is not
// part of the grammar and fails on the ','.
func (p *Parser) parseImportDeclaration() (*ast.ImportDeclaration, error) {
	importKw, err := p.expectKeyword("import")
	if err != nil {
		return nil, err
	}

	specs, err := p.parseImportClause()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("from"); err != nil {
		return nil, err
	}

	src, err := p.expectString()
	if err != nil {
		return nil, err
	}

	end := src.Location
	if p.atPunct(";") {
		end = p.advance().Loc()
	}

	return &ast.ImportDeclaration{
		Specifiers: specs,
		Source:     src.Value,
		Loc:        importKw.Location.Cover(end),
	}, nil
}

// parseImportClause dispatches on a single token of lookahead: '*', '{', or
// an identifier. No two alternatives share a first token, which is why one
// token suffices.
func (p *Parser) parseImportClause() ([]ast.ImportSpecifier, error) {
	switch {
	case p.atOperator("*"):
		return p.parseNamespaceImport()
	case p.atPunct("{"):
		return p.parseNamedImports()
	case p.atIdent():
		local, _, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		return []ast.ImportSpecifier{ast.DefaultSpecifier{Local: local}}, nil
	default:
		return nil, p.unexpected(diag.SynUnexpectedToken, "'*', '{' or identifier")
	}
}

// parseNamespaceImport recognizes `* as Ident`.
func (p *Parser) parseNamespaceImport() ([]ast.ImportSpecifier, error) {
	if _, err := p.expectOperator("*"); err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("as"); err != nil {
		return nil, err
	}
	local, _, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	return []ast.ImportSpecifier{ast.NamespaceSpecifier{Local: local}}, nil
}

// parseNamedImports recognizes `{ (Ident ('as' Ident)? (',' Ident ('as'
// Ident)?)*)? }`. An empty group is valid.
func (p *Parser) parseNamedImports() ([]ast.ImportSpecifier, error) {
	if _, err := p.expectPunct("{", diag.SynUnexpectedToken); err != nil {
		return nil, err
	}

	specs := make([]ast.ImportSpecifier, 0, 2)
	for p.atIdent() {
		imported, _, err := p.expectIdent()
		if err != nil {
			return nil, err
		}

		local := imported
		if p.atKeyword("as") {
			p.advance()
			local, _, err = p.expectIdent()
			if err != nil {
				return nil, err
			}
		}
		specs = append(specs, ast.NamedSpecifier{Imported: imported, Local: local})

		if !p.atPunct(",") {
			break
		}
		p.advance()
	}

	if _, err := p.expectPunct("}", diag.SynUnclosedBrace); err != nil {
		return nil, err
	}
	return specs, nil
}
