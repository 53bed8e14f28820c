/*
Package text provides a ready-made catvec.CatVec instantiation for editing
text by user-perceived character rather than by byte or rune: a Grapheme is
one extended grapheme cluster, segmented with the uax/grapheme UAX #29
implementation, and catvec.CatVec[Grapheme] gives that sequence all of
catvec's positional insert/slice/concat operations.
*/
package text

import (
	"strings"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"

	"github.com/mel-project/catvec"
)

// Grapheme is a single extended grapheme cluster, stored as its raw text.
type Grapheme string

// String returns the cluster's text.
func (g Grapheme) String() string {
	return string(g)
}

// Graphemes segments s into extended grapheme clusters (UAX #29).
//
// TODO: grapheme.NewBreaker() is not confirmed against the real
// npillmayer/uax/grapheme package (no call site constructing a
// grapheme-cluster segment.UnicodeBreaker was available to check against);
// it is inferred from the uax14.NewLineWrap()-style naming convention other
// uax/uaxNN breakers follow. Verify the constructor name before release.
func Graphemes(s string) []Grapheme {
	seg := segment.NewSegmenter(grapheme.NewBreaker())
	seg.Init(strings.NewReader(s))
	var out []Grapheme
	for seg.Next() {
		out = append(out, Grapheme(seg.Bytes()))
	}
	return out
}

// New builds a CatVec[Grapheme] from s.
func New(cfg catvec.Config, s string) (*catvec.CatVec[Grapheme], error) {
	return catvec.From[Grapheme](cfg, Graphemes(s))
}

// String renders v back into plain text by concatenating its clusters.
func String(v *catvec.CatVec[Grapheme]) string {
	var b strings.Builder
	v.Each(func(g Grapheme) bool {
		b.WriteString(string(g))
		return true
	})
	return b.String()
}
