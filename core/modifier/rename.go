// core/modifier/rename.go
package modifier

import (
	"strings"

	"adaptrim-core/seq"
)

// Renamer rebuilds each record's name from a template. Recognized
// placeholders:
//
//	{id}       name up to the first whitespace
//	{comment}  remainder after the first whitespace (empty if absent)
//	{header}   the full original name
//	{<key>}    any Context annotation key, e.g. {cut_prefix}
//
// Placeholders that resolve to nothing substitute as the empty string. The
// template is parsed once at construction.
type Renamer struct {
	segments []segment
}

type segment struct {
	text        string
	placeholder bool
}

func NewRenamer(template string) *Renamer {
	r := &Renamer{}
	for len(template) > 0 {
		open := strings.IndexByte(template, '{')
		if open < 0 {
			r.segments = append(r.segments, segment{text: template})
			break
		}
		end := strings.IndexByte(template[open:], '}')
		if end < 0 {
			// No closing brace: the rest is literal text.
			r.segments = append(r.segments, segment{text: template})
			break
		}
		if open > 0 {
			r.segments = append(r.segments, segment{text: template[:open]})
		}
		r.segments = append(r.segments, segment{text: template[open+1 : open+end], placeholder: true})
		template = template[open+end+1:]
	}
	return r
}

func (rn *Renamer) Apply(r seq.Record, ctx *Context) seq.Record {
	var b strings.Builder
	for _, s := range rn.segments {
		if !s.placeholder {
			b.WriteString(s.text)
			continue
		}
		b.WriteString(resolve(s.text, r, ctx))
	}
	return r.WithName(b.String())
}

func resolve(key string, r seq.Record, ctx *Context) string {
	switch key {
	case "header":
		return r.Name
	case "id":
		id, _ := splitHeader(r.Name)
		return id
	case "comment":
		_, comment := splitHeader(r.Name)
		return comment
	}
	v, _ := ctx.Lookup(key)
	return v
}

// splitHeader separates a read name into the id (up to the first
// whitespace) and the trailing comment.
func splitHeader(name string) (id, comment string) {
	i := strings.IndexAny(name, " \t")
	if i < 0 {
		return name, ""
	}
	return name[:i], name[i+1:]
}
