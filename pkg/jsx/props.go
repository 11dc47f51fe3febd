package jsx

// Reserved property keys. They are consumed by CreateElement and never
// bound as attributes.
const (
	KeyChildren = "children"
	KeyRef      = "ref"
	KeyStyle    = "style"
	KeyClass    = "class"
)

func isReserved(key string) bool {
	switch key {
	case KeyChildren, KeyRef, KeyStyle, KeyClass:
		return true
	}
	return false
}

// Prop is a single key/value pair.
type Prop struct {
	Key   string
	Value any
}

// P creates a Prop.
func P(key string, value any) Prop {
	return Prop{Key: key, Value: value}
}

// Children creates the children prop.
func Children(children ...any) Prop { return P(KeyChildren, children) }

// Class creates the class prop. The value may be a string, a list or a
// map of class name to inclusion flag; see ClassOf.
func Class(value any) Prop { return P(KeyClass, value) }

// Style creates the style prop. The value may be CSS text, a map of
// declarations or a list of either; see StyleOf.
func Style(value any) Prop { return P(KeyStyle, value) }

// RefTo creates the ref prop from a *Ref or a RefFunc.
func RefTo(ref any) Prop { return P(KeyRef, ref) }

// Props is an insertion-ordered property bag. The zero value is empty
// and ready to use.
type Props struct {
	keys   []string
	values map[string]any
}

// NewProps builds a property bag. A repeated key overwrites the earlier
// value but keeps its original position.
func NewProps(props ...Prop) Props {
	p := Props{values: make(map[string]any, len(props))}
	for _, prop := range props {
		p.Set(prop.Key, prop.Value)
	}
	return p
}

// Len returns the number of keys.
func (p Props) Len() int { return len(p.keys) }

// Keys returns the keys in insertion order.
func (p Props) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Get returns the value stored under key.
func (p Props) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Value returns the value stored under key, or nil.
func (p Props) Value(key string) any {
	return p.values[key]
}

// Set stores value under key.
func (p *Props) Set(key string, value any) {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// With returns a copy of p with key set to value.
func (p Props) With(key string, value any) Props {
	out := Props{
		keys:   make([]string, len(p.keys), len(p.keys)+1),
		values: make(map[string]any, len(p.values)+1),
	}
	copy(out.keys, p.keys)
	for k, v := range p.values {
		out.values[k] = v
	}
	out.Set(key, value)
	return out
}

// Each calls fn for every key in insertion order.
func (p Props) Each(fn func(key string, value any)) {
	for _, k := range p.keys {
		fn(k, p.values[k])
	}
}
