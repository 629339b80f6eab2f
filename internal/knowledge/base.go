// Package knowledge holds the static lookup tables the archetype
// resolution engine consults: sprite-key to archetype, free-text alias
// to canonical name, signature card to archetype, and the per-method
// confidence scores. Tables are validated once at construction and
// read-only afterwards.
package knowledge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ptcgmeta/tracker/internal/archetype"
)

// Tables is the raw, unvalidated knowledge-base data. It is the shape of
// the TOML knowledge file and of the compiled-in defaults.
type Tables struct {
	Sprites        map[string]string  `toml:"sprites"`
	Aliases        map[string]string  `toml:"aliases"`
	SignatureCards map[string]string  `toml:"signature_cards"`
	Confidence     map[string]float64 `toml:"confidence"`
}

// Base is a validated, immutable knowledge base. It implements
// archetype.Knowledge and archetype.SignatureSource and is safe to share
// across any number of goroutines.
type Base struct {
	sprites    map[string]string
	aliases    map[string]string
	signatures map[string]string
	confidence map[archetype.Method]float64
}

// New validates the tables and constructs a Base. Any inconsistency is a
// fatal configuration error; an engine must never serve queries from a
// knowledge base that failed validation.
func New(t Tables) (*Base, error) {
	b := &Base{
		sprites:    make(map[string]string, len(t.Sprites)),
		aliases:    make(map[string]string, len(t.Aliases)),
		signatures: make(map[string]string, len(t.SignatureCards)),
		confidence: make(map[archetype.Method]float64, len(t.Confidence)),
	}

	for key, name := range t.Sprites {
		if err := validSpriteKey(key); err != nil {
			return nil, fmt.Errorf("sprite key %q: %w", key, err)
		}
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("sprite key %q: empty archetype value", key)
		}
		b.sprites[key] = name
	}

	for alias, name := range t.Aliases {
		normalized := strings.ToLower(strings.TrimSpace(alias))
		if normalized == "" {
			return nil, fmt.Errorf("alias %q: empty after normalization", alias)
		}
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("alias %q: empty canonical value", alias)
		}
		if existing, dup := b.aliases[normalized]; dup && existing != name {
			return nil, fmt.Errorf("alias %q: maps to both %q and %q", normalized, existing, name)
		}
		b.aliases[normalized] = name
	}

	for cardID, name := range t.SignatureCards {
		if strings.TrimSpace(cardID) == "" {
			return nil, fmt.Errorf("signature card: empty card identifier")
		}
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("signature card %q: empty archetype value", cardID)
		}
		b.signatures[cardID] = name
	}

	for method, score := range t.Confidence {
		b.confidence[archetype.Method(method)] = score
	}
	if err := validConfidence(b.confidence); err != nil {
		return nil, err
	}

	return b, nil
}

// Default returns the compiled-in knowledge base.
func Default() (*Base, error) {
	return New(defaultTables())
}

// validSpriteKey enforces the key shape: non-empty, lowercase, hyphens as
// the only separator (underscores are a pre-normalization artifact and
// must never reach the table).
func validSpriteKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("empty key")
	}
	if key != strings.ToLower(key) {
		return fmt.Errorf("not lowercase")
	}
	if strings.ContainsAny(key, "_ \t") {
		return fmt.Errorf("contains underscore or whitespace")
	}
	if strings.HasPrefix(key, "-") || strings.HasSuffix(key, "-") || strings.Contains(key, "--") {
		return fmt.Errorf("malformed hyphenation")
	}
	return nil
}

// validConfidence checks that every detection method has a score in (0,1]
// and that scores strictly decrease along the tier chain.
func validConfidence(scores map[archetype.Method]float64) error {
	prev := 0.0
	for i, method := range archetype.Methods {
		score, ok := scores[method]
		if !ok {
			return fmt.Errorf("confidence: missing score for method %q", method)
		}
		if score <= 0 || score > 1 {
			return fmt.Errorf("confidence: score for %q out of (0,1]: %v", method, score)
		}
		if i > 0 && score >= prev {
			return fmt.Errorf("confidence: %q (%v) must be strictly below %q (%v)",
				method, score, archetype.Methods[i-1], prev)
		}
		prev = score
	}
	if len(scores) != len(archetype.Methods) {
		return fmt.Errorf("confidence: unexpected extra methods in table")
	}
	return nil
}

// LookupSprite returns the archetype mapped to a composite sprite key.
func (b *Base) LookupSprite(key string) (string, bool) {
	name, ok := b.sprites[key]
	return name, ok
}

// LookupAlias resolves a free-text label case-insensitively, ignoring
// surrounding whitespace.
func (b *Base) LookupAlias(label string) (string, bool) {
	name, ok := b.aliases[strings.ToLower(strings.TrimSpace(label))]
	return name, ok
}

// LookupSignatureCard returns the archetype a card identifies.
func (b *Base) LookupSignatureCard(cardID string) (string, bool) {
	name, ok := b.signatures[cardID]
	return name, ok
}

// ConfidenceFor returns the score for a detection method. Construction
// guarantees every method has a score; an unknown method reports 0.
func (b *Base) ConfidenceFor(method archetype.Method) float64 {
	return b.confidence[method]
}

// SpriteCount reports how many sprite combinations the base covers.
func (b *Base) SpriteCount() int {
	return len(b.sprites)
}

// Archetypes returns the sorted, de-duplicated canonical archetype names
// reachable from any table.
func (b *Base) Archetypes() []string {
	seen := make(map[string]struct{})
	for _, name := range b.sprites {
		seen[name] = struct{}{}
	}
	for _, name := range b.aliases {
		seen[name] = struct{}{}
	}
	for _, name := range b.signatures {
		if name != archetype.Rogue {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
