package encoding

// registry holds every *Encoding this module knows about, keyed by
// canonical name. The label resolver and the CLI do not use it; they go
// through package label's own table.
var registry = map[string]*Encoding{}

func register(e *Encoding) *Encoding {
	registry[e.name] = e
	return e
}

// Lookup returns the *Encoding registered under the given canonical name,
// or nil if none matches. This is distinct from the label resolver (see
// package label): Lookup only understands canonical names, not the full
// WHATWG label surface.
func Lookup(name string) *Encoding {
	return registry[name]
}

// All returns every registered encoding, in no particular order, for
// callers that want to enumerate (e.g. exhaustive round-trip tests).
func All() []*Encoding {
	out := make([]*Encoding, 0, len(registry))
	for _, e := range registry {
		out = append(out, e)
	}
	return out
}
