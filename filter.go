package fdir

import (
	"github.com/gobwas/glob"

	"github.com/jmgilman/go/fdir/errors"
)

// matcher holds compiled path globs.
type matcher []glob.Glob

// compilePatterns compiles slash-separated globs. An invalid pattern is an
// input error.
func compilePatterns(patterns []string) (matcher, error) {
	m := make(matcher, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, errors.WithContext(
				errors.Wrap(err, errors.CodeInvalidInput, "invalid glob pattern"),
				"pattern", p)
		}
		m = append(m, g)
	}
	return m, nil
}

// matchAny reports whether p matches any pattern.
func (m matcher) matchAny(p string) bool {
	for _, g := range m {
		if g.Match(p) {
			return true
		}
	}
	return false
}

// allows reports whether an empty or matching include set admits p.
func (m matcher) allows(p string) bool {
	return len(m) == 0 || m.matchAny(p)
}
