/*
Package translit maps non-ASCII text to an ASCII approximation.

The mapping is table-driven: a generic table lists, per ASCII target
character (or cluster like "sh" or "(c)"), the source codepoints that
collapse to it. Per-language override tables carry higher-fidelity
substitutions (German "ä" → "ae" rather than the generic "a") and are
applied before the generic pass, so the generic pass cannot consume their
source characters first.

Tables are built lazily on first use, at most once per process, and are
read-only afterwards; ToASCII is safe for concurrent use.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package translit

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer writes to trace with key 'stringv'
func tracer() tracing.Trace {
	return tracing.Select("stringv")
}

// ToASCII transliterates text to printable ASCII.
//
// lang selects a per-language override table by its primary subtag ("de",
// "de-AT" and "de_DE" all select the German table). Language overrides run
// first, then the generic table. If removeUnsupported is set, every
// codepoint still outside printable ASCII (0x20–0x7E) is stripped from the
// result.
func ToASCII(text, lang string, removeUnsupported bool) string {
	gen, langs := tables()
	if table, ok := langs[primarySubtag(lang)]; ok {
		text = replaceAll(text, table)
	}
	text = replaceAll(text, gen)
	if removeUnsupported {
		var b strings.Builder
		b.Grow(len(text))
		for _, r := range text {
			if r >= 0x20 && r <= 0x7e {
				b.WriteRune(r)
			}
		}
		text = b.String()
	}
	return text
}

// HasTable reports whether a language-specific override table exists for lang.
func HasTable(lang string) bool {
	_, langs := tables()
	_, ok := langs[primarySubtag(lang)]
	return ok
}

func replaceAll(text string, table []mapping) string {
	for _, m := range table {
		for _, src := range m.from {
			if strings.Contains(text, src) {
				text = strings.ReplaceAll(text, src, m.to)
			}
		}
	}
	return text
}

// primarySubtag extracts the primary language subtag, lowercase.
//
// BCP 47 parsing is attempted first; unparseable tags fall back to a plain
// split on '-' and '_'.
func primarySubtag(lang string) string {
	if lang == "" {
		return ""
	}
	if tag, err := language.Parse(lang); err == nil {
		if base, conf := tag.Base(); conf > language.No {
			return base.String()
		}
	}
	tracer().Debugf("translit: %q is not a BCP 47 tag, splitting manually", lang)
	lang = strings.ToLower(lang)
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	return lang
}
