package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"jsfront/internal/ast"
)

// FormatImportsPretty writes one line per declaration, with its specifiers
// spelled out.
func FormatImportsPretty(w io.Writer, decls []*ast.ImportDeclaration) error {
	for _, decl := range decls {
		if _, err := fmt.Fprintf(w, "import %q\n", decl.Source); err != nil {
			return err
		}
		for _, spec := range decl.Specifiers {
			var line string
			switch s := spec.(type) {
			case ast.NamedSpecifier:
				if s.Imported == s.Local {
					line = fmt.Sprintf("named     %s", s.Local)
				} else {
					line = fmt.Sprintf("named     %s as %s", s.Imported, s.Local)
				}
			case ast.DefaultSpecifier:
				line = fmt.Sprintf("default   %s", s.Local)
			case ast.NamespaceSpecifier:
				line = fmt.Sprintf("namespace %s", s.Local)
			default:
				panic(fmt.Sprintf("diagfmt: unknown specifier variant %T", spec))
			}
			if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatImportsJSON writes the declarations as an indented JSON array, using
// the type-tagged contract shape from the ast package.
func FormatImportsJSON(w io.Writer, decls []*ast.ImportDeclaration) error {
	if decls == nil {
		decls = []*ast.ImportDeclaration{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(decls)
}
