// core/modifier/context.go
package modifier

// Annotation is an optional string value. Set distinguishes "written as
// empty" from "never written"; modifiers only ever set the annotations
// their own path produced.
type Annotation struct {
	Value string
	Set   bool
}

func (a *Annotation) set(v string) {
	a.Value = v
	a.Set = true
}

// Context is the per-record side channel the pipeline stages write into.
// One Context accompanies one record through one pipeline run; it is owned
// by that traversal and never shared across records or goroutines.
//
// The key set is closed: each field below corresponds to one template key
// understood by Lookup (and thus by the Renamer).
type Context struct {
	CutPrefix   Annotation // bases removed from the 5' end
	CutSuffix   Annotation // bases removed from the 3' end
	AdapterName Annotation // name of the matched adapter, if any
	IsRC        bool       // read was replaced by its reverse complement
}

// Lookup resolves a template key against the context. Known keys resolve
// even when unset (to the empty string, with ok=false); unknown keys report
// ok=false with an empty value.
func (c *Context) Lookup(key string) (string, bool) {
	switch key {
	case "cut_prefix":
		return c.CutPrefix.Value, c.CutPrefix.Set
	case "cut_suffix":
		return c.CutSuffix.Value, c.CutSuffix.Set
	case "adapter_name":
		return c.AdapterName.Value, c.AdapterName.Set
	case "rc":
		if c.IsRC {
			return "rc", true
		}
		return "", true
	}
	return "", false
}
