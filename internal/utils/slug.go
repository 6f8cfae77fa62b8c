package utils

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const slugFallback = "recipe"

var pinyinArgs = pinyin.NewArgs()

// Slugify turns an arbitrary recipe name into an ASCII object-key slug.
// Han characters become pinyin syllables, diacritics are stripped, and any
// remaining non-alphanumeric run collapses to a single hyphen. An input with
// no usable characters falls back to a fixed placeholder.
func Slugify(text string) string {
	var b strings.Builder
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			if syllables := pinyin.LazyPinyin(string(r), pinyinArgs); len(syllables) > 0 {
				b.WriteByte(' ')
				b.WriteString(syllables[0])
				b.WriteByte(' ')
				continue
			}
		}
		b.WriteRune(r)
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ascii, _, err := transform.String(t, b.String())
	if err != nil {
		ascii = b.String()
	}
	ascii = strings.ToLower(ascii)

	out := make([]rune, 0, len(ascii))
	for _, r := range ascii {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case len(out) > 0 && out[len(out)-1] != '-':
			out = append(out, '-')
		}
	}

	slug := strings.Trim(string(out), "-")
	if slug == "" {
		return slugFallback
	}
	return slug
}
