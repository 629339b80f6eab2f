package archetype

import (
	"sort"
	"strings"
)

// spriteExtension is the only image extension tournament sites use for
// deck icon sprites. URLs with any other extension carry no entity name.
const spriteExtension = ".png"

// BuildSpriteKey derives the composite lookup key for a set of sprite
// image URLs. Each usable URL contributes one token (its filename without
// the extension, lowercased, underscores folded to hyphens); tokens are
// sorted and joined with hyphens, so any permutation of the same URLs
// yields the same key. Malformed or non-sprite URLs are discarded rather
// than reported. Returns "" when nothing usable remains.
func BuildSpriteKey(urls []string) string {
	tokens := make([]string, 0, len(urls))
	for _, u := range urls {
		if tok, ok := spriteToken(u); ok {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return ""
	}
	sort.Strings(tokens)
	return strings.Join(tokens, "-")
}

// spriteToken extracts the normalized entity token from one sprite URL.
// Form-variant qualifiers embedded in the filename ("absol-mega") stay
// part of the token; the qualifier belongs to the entity's identity.
func spriteToken(rawURL string) (string, bool) {
	name := rawURL
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if !strings.HasSuffix(name, spriteExtension) {
		return "", false
	}
	name = strings.TrimSuffix(name, spriteExtension)
	if name == "" {
		return "", false
	}
	return strings.ReplaceAll(name, "_", "-"), true
}

// DeriveName renders a composite key as a readable placeholder archetype
// name: key components are capitalized and space-joined, so an unseen
// sprite combination still resolves to something presentable.
func DeriveName(key string) string {
	parts := strings.Split(key, "-")
	out := parts[:0]
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, strings.ToUpper(p[:1])+p[1:])
	}
	return strings.Join(out, " ")
}
