// This file contains the mapping from manifest-level cty types to the Go
// types that appear in generated signatures.

package emit

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/zclconf/go-cty/cty"
)

// goTypeFor maps a cty.Type onto the Go type used in generated signatures.
// Numbers map to float64, matching how cty represents them; sets lose their
// uniqueness guarantee and become slices.
func goTypeFor(t cty.Type) string {
	switch {
	case t.Equals(cty.String):
		return "string"
	case t.Equals(cty.Number):
		return "float64"
	case t.Equals(cty.Bool):
		return "bool"
	case t.IsListType(), t.IsSetType():
		return "[]" + goTypeFor(t.ElementType())
	case t.IsMapType():
		return "map[string]" + goTypeFor(t.ElementType())
	default:
		return "any"
	}
}

// importSet assigns a unique alias to every import path of an artifact.
type importSet struct {
	aliases map[string]string // path -> alias
	used    map[string]bool   // alias -> taken
	order   []string
}

func newImportSet() *importSet {
	return &importSet{
		aliases: make(map[string]string),
		used:    make(map[string]bool),
	}
}

// add registers the import path and returns its alias. Paths whose last
// element collides get a numeric suffix.
func (s *importSet) add(path string) string {
	if alias, ok := s.aliases[path]; ok {
		return alias
	}

	base := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		base = path[i+1:]
	}
	base = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, base)
	if base == "" || unicode.IsDigit(rune(base[0])) {
		base = "pkg" + base
	}

	alias := base
	for n := 2; s.used[alias]; n++ {
		alias = base + strconv.Itoa(n)
	}

	s.aliases[path] = alias
	s.used[alias] = true
	s.order = append(s.order, path)
	return alias
}

// imports returns the registered paths with their aliases in registration
// order.
func (s *importSet) imports() []importSpec {
	specs := make([]importSpec, 0, len(s.order))
	for _, path := range s.order {
		specs = append(specs, importSpec{Alias: s.aliases[path], Path: path})
	}
	return specs
}

type importSpec struct {
	Alias string
	Path  string
}
