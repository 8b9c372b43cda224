package domain

import "strings"

// Document is one logical file captured from a configuration tree.
// It is the canonical unit a bundle embeds and a materializer writes back.
type Document struct {
	// Path is the relative, slash-separated identifier, e.g.
	// "lua/config/options.lua". It stays purely logical until the
	// document is materialized under a root directory.
	Path string

	// Content is the raw text, possibly empty, possibly multi-line.
	Content string
}

// Lines reports the number of lines in the content, counted the way an
// editor counts them: a trailing newline does not open another line.
func (d Document) Lines() int {
	if d.Content == "" {
		return 0
	}
	n := strings.Count(d.Content, "\n")
	if !strings.HasSuffix(d.Content, "\n") {
		n++
	}
	return n
}

// Section is a named run of documents. Names become the cosmetic group
// headers in the bundle; decoding ignores grouping entirely.
type Section struct {
	// Name is the header label, e.g. "CORE CONFIGURATION".
	// An empty name suppresses the header.
	Name string

	// Documents are the section's members, in bundle order.
	Documents []Document
}

// Flatten concatenates the documents of each section, preserving order.
func Flatten(sections []Section) []Document {
	var docs []Document
	for _, sec := range sections {
		docs = append(docs, sec.Documents...)
	}
	return docs
}
