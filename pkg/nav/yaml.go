package nav

import (
	"gopkg.in/yaml.v3"
)

// YAMLExtractor walks the parsed YAML document to find the categories
// group inside the top-level nav sequence. It is the primary strategy.
type YAMLExtractor struct {
	// Group is the nav key introducing the category list, e.g. "分类".
	Group string
}

// Extract parses the document and returns the (title, path) entries of the
// categories group in declaration order. Any parse error or structural
// mismatch yields an empty slice.
func (e YAMLExtractor) Extract(text string) []Entry {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil
	}

	navSeq := findNavSequence(&doc)
	if navSeq == nil {
		return nil
	}

	groupSeq := findGroupSequence(navSeq, e.Group)
	if groupSeq == nil {
		return nil
	}

	var entries []Entry
	for _, item := range groupSeq.Content {
		// Each category entry is a single-key mapping: title -> path.
		if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
			continue
		}
		key, value := item.Content[0], item.Content[1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			continue
		}
		entries = append(entries, Entry{Title: key.Value, Path: value.Value})
	}
	return entries
}

// findNavSequence returns the sequence node under the top-level "nav" key,
// or nil when the document is not a mapping or has no nav sequence.
func findNavSequence(doc *yaml.Node) *yaml.Node {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Value == "nav" && value.Kind == yaml.SequenceNode {
			return value
		}
	}
	return nil
}

// findGroupSequence locates the nav item whose single key matches the
// group name and returns its child sequence.
func findGroupSequence(navSeq *yaml.Node, group string) *yaml.Node {
	for _, item := range navSeq.Content {
		if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
			continue
		}
		key, value := item.Content[0], item.Content[1]
		if key.Value == group && value.Kind == yaml.SequenceNode {
			return value
		}
	}
	return nil
}
