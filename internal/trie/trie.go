// Package trie implements the prefix tree that resolves multi-character
// tokens by longest match. The vocabulary is fixed at construction; Get
// bounds the cost of answering "is '=' the start of '==', and is there
// anything longer?" by the size of the matching subtree, independent of the
// total vocabulary size.
package trie

import "slices"

type node struct {
	children map[byte]*node
	lexeme   string // full lexeme ending at this node, "" if none
}

// Trie is a byte-wise prefix tree over token lexemes. Immutable once all
// inserts are done; safe for concurrent reads.
type Trie struct {
	root node
}

// New builds a trie holding the given lexemes.
func New(lexemes ...string) *Trie {
	t := &Trie{}
	for _, lex := range lexemes {
		t.Insert(lex)
	}
	return t
}

// Insert adds a lexeme to the vocabulary. Inserting the same lexeme twice is
// idempotent. An empty lexeme is a programming error and panics.
func (t *Trie) Insert(lexeme string) {
	if lexeme == "" {
		panic("trie: Insert called with empty lexeme")
	}
	n := &t.root
	for i := 0; i < len(lexeme); i++ {
		c := lexeme[i]
		if n.children == nil {
			n.children = make(map[byte]*node)
		}
		child := n.children[c]
		if child == nil {
			child = &node{}
			n.children[c] = child
		}
		n = child
	}
	n.lexeme = lexeme
}

// Get returns every inserted lexeme reachable by continuing prefix,
// including prefix itself when it is a complete token, in traversal order
// (terminal first, then children in byte order). A prefix matching no path
// yields nil. An empty prefix is a programming error and panics.
func (t *Trie) Get(prefix string) []string {
	if prefix == "" {
		panic("trie: Get called with empty prefix")
	}
	n := &t.root
	for i := 0; i < len(prefix); i++ {
		n = n.children[prefix[i]]
		if n == nil {
			return nil
		}
	}
	var out []string
	n.walk(&out)
	return out
}

// Contains reports whether lexeme is itself a complete vocabulary entry.
func (t *Trie) Contains(lexeme string) bool {
	if lexeme == "" {
		panic("trie: Contains called with empty lexeme")
	}
	n := &t.root
	for i := 0; i < len(lexeme); i++ {
		n = n.children[lexeme[i]]
		if n == nil {
			return false
		}
	}
	return n.lexeme != ""
}

func (n *node) walk(out *[]string) {
	if n.lexeme != "" {
		*out = append(*out, n.lexeme)
	}
	keys := make([]byte, 0, len(n.children))
	for c := range n.children {
		keys = append(keys, c)
	}
	slices.Sort(keys)
	for _, c := range keys {
		n.children[c].walk(out)
	}
}
