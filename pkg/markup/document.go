package markup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/jsxdom/internal/errors"
)

// Document is a parsed markup document.
type Document struct {
	// Name identifies the document, usually the file name without its
	// extension.
	Name string

	// Path is the file the document was read from, if any.
	Path string

	components map[string]*yaml.Node
	root       *yaml.Node
}

// Extensions are the file extensions LoadDir picks up.
var Extensions = []string{".yaml", ".yml", ".json"}

// Parse decodes a document. path is used for error locations and may be
// empty.
func Parse(name, path string, data []byte) (*Document, error) {
	var file yaml.Node
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.New("M001").Wrap(err).WithLocation(path, yamlErrorLine(err), 0)
	}
	if file.Kind != yaml.DocumentNode || len(file.Content) == 0 {
		return nil, errors.New("M006").WithLocation(path, 1, 1)
	}
	top := file.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, errors.New("M001").
			WithDetail("The document must be a mapping with a root key.").
			WithLocation(path, top.Line, top.Column)
	}

	doc := &Document{Name: name, Path: path, components: make(map[string]*yaml.Node)}
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := top.Content[i], top.Content[i+1]
		switch key.Value {
		case "root":
			doc.root = val
		case "components":
			if val.Kind != yaml.MappingNode {
				return nil, errors.New("M004").
					WithDetail("components must be a mapping of name to node.").
					WithLocation(path, val.Line, val.Column)
			}
			for j := 0; j+1 < len(val.Content); j += 2 {
				doc.components[val.Content[j].Value] = val.Content[j+1]
			}
		default:
			return nil, errors.New("M004").
				WithDetail("Unknown top-level key %q.", key.Value).
				WithSuggestion(Suggest(key.Value, []string{"root", "components"})).
				WithLocation(path, key.Line, key.Column)
		}
	}
	if doc.root == nil {
		return nil, errors.New("M006").WithLocation(path, top.Line, top.Column)
	}
	return doc, nil
}

// ParseFile reads and parses a document file.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("M001").Wrap(err)
	}
	base := filepath.Base(path)
	return Parse(strings.TrimSuffix(base, filepath.Ext(base)), path, data)
}

// LoadDir parses every document in dir, keyed by name.
func LoadDir(dir string) (map[string]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.New("M001").Wrap(err)
	}
	docs := make(map[string]*Document)
	for _, e := range entries {
		if e.IsDir() || !IsMarkupFile(e.Name()) {
			continue
		}
		doc, err := ParseFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		docs[doc.Name] = doc
	}
	return docs, nil
}

// IsMarkupFile reports whether name has a markup extension.
func IsMarkupFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Components returns the names of the document's components, sorted.
func (d *Document) Components() []string {
	return sortedKeys(d.components)
}

// yamlErrorLine extracts the line from a yaml.v3 error message such as
// "yaml: line 3: did not find expected key".
func yamlErrorLine(err error) int {
	var line int
	msg := err.Error()
	if i := strings.Index(msg, "line "); i >= 0 {
		fmt.Sscanf(msg[i:], "line %d", &line)
	}
	return line
}

// SortedNames returns the keys of a LoadDir result in order.
func SortedNames(docs map[string]*Document) []string {
	return sortedKeys(docs)
}
