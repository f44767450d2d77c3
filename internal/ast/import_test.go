package ast_test

import (
	"encoding/json"
	"testing"

	"jsfront/internal/ast"
	"jsfront/internal/source"
)

func TestImportDeclaration_JSON(t *testing.T) {
	decl := &ast.ImportDeclaration{
		Specifiers: []ast.ImportSpecifier{
			ast.NamedSpecifier{Imported: "foulTastingGarbage", Local: "apple"},
			ast.DefaultSpecifier{Local: "kiwi"},
			ast.NamespaceSpecifier{Local: "fruits"},
		},
		Source: "./kiwi.js",
		Loc: source.Location{
			Start:    source.Position{Line: 1, Column: 0, Index: 0},
			End:      source.Position{Line: 1, Column: 10, Index: 10},
			FileName: "a.js",
		},
	}

	raw, err := json.Marshal(decl)
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}

	if got["type"] != "ImportDeclaration" {
		t.Errorf("type = %v, want ImportDeclaration", got["type"])
	}
	if got["source"] != "./kiwi.js" {
		t.Errorf("source = %v, want ./kiwi.js", got["source"])
	}

	specs, ok := got["specifiers"].([]any)
	if !ok || len(specs) != 3 {
		t.Fatalf("specifiers = %v", got["specifiers"])
	}
	wantSpecs := []map[string]any{
		{"type": "Named", "imported": "foulTastingGarbage", "local": "apple"},
		{"type": "Default", "local": "kiwi"},
		{"type": "Namespace", "local": "fruits"},
	}
	for i, want := range wantSpecs {
		spec := specs[i].(map[string]any)
		for k, v := range want {
			if spec[k] != v {
				t.Errorf("specifier %d: %s = %v, want %v", i, k, spec[k], v)
			}
		}
		if len(spec) != len(want) {
			t.Errorf("specifier %d has extra fields: %v", i, spec)
		}
	}

	loc := got["loc"].(map[string]any)
	start := loc["start"].(map[string]any)
	if start["line"] != float64(1) || start["column"] != float64(0) || start["index"] != float64(0) {
		t.Errorf("loc.start = %v", start)
	}
	if loc["fileName"] != "a.js" {
		t.Errorf("loc.fileName = %v", loc["fileName"])
	}
}

func TestSpecifierType(t *testing.T) {
	tests := []struct {
		spec ast.ImportSpecifier
		want string
	}{
		{ast.NamedSpecifier{Imported: "a", Local: "b"}, "Named"},
		{ast.DefaultSpecifier{Local: "c"}, "Default"},
		{ast.NamespaceSpecifier{Local: "d"}, "Namespace"},
	}
	for _, tt := range tests {
		if got := ast.SpecifierType(tt.spec); got != tt.want {
			t.Errorf("SpecifierType = %q, want %q", got, tt.want)
		}
		if tt.spec.LocalName() == "" {
			t.Error("LocalName should not be empty")
		}
	}
}
