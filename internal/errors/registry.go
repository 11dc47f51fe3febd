package errors

import "sort"

// Template defines a registered error code.
type Template struct {
	Category Category
	Message  string
	Detail   string
}

var registry = map[string]Template{
	// Markup (M001-M099)
	"M001": {
		Category: CategoryMarkup,
		Message:  "Invalid markup document",
		Detail:   "The file could not be decoded as YAML or JSON.",
	},
	"M002": {
		Category: CategoryMarkup,
		Message:  "Unknown component",
		Detail:   "The tag names neither a registered component nor a valid element name.",
	},
	"M003": {
		Category: CategoryMarkup,
		Message:  "Unknown event handler",
		Detail:   "A {$handler: name} value refers to a handler that was not registered.",
	},
	"M004": {
		Category: CategoryMarkup,
		Message:  "Invalid node",
		Detail:   "A node must be a scalar, a sequence of nodes, or a mapping with a tag.",
	},
	"M005": {
		Category: CategoryMarkup,
		Message:  "Component recursion limit exceeded",
		Detail:   "A component expands into itself, directly or through other components.",
	},
	"M006": {
		Category: CategoryMarkup,
		Message:  "Missing root node",
		Detail:   "The document has no root entry.",
	},
	"M007": {
		Category: CategoryMarkup,
		Message:  "Construction failed",
		Detail:   "The document was valid but the host document rejected a node.",
	},

	// Config (C001-C099)
	"C001": {
		Category: CategoryConfig,
		Message:  "Configuration file could not be read",
	},
	"C002": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},

	// Publish (P001-P099)
	"P001": {
		Category: CategoryPublish,
		Message:  "Publish bucket not configured",
		Detail:   "Set publish.bucket in jsxdom.yaml or JSXDOM_PUBLISH_BUCKET.",
	},
	"P002": {
		Category: CategoryPublish,
		Message:  "Upload failed",
	},

	// Server (S001-S099)
	"S001": {
		Category: CategoryServer,
		Message:  "Page not found",
	},
	"S002": {
		Category: CategoryServer,
		Message:  "Render failed",
	},
}

// Codes returns every registered code in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds or replaces a code. It is meant for init-time use.
func Register(code string, t Template) {
	registry[code] = t
}
