package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ptcgmeta/tracker/internal/archetype"
)

func validTables() Tables {
	return Tables{
		Sprites: map[string]string{
			"charizard-pidgeot": "Charizard ex",
		},
		Aliases: map[string]string{
			"zard": "Charizard ex",
		},
		SignatureCards: map[string]string{
			"sv3-125": "Charizard ex",
		},
		Confidence: map[string]float64{
			"sprite_lookup":  0.95,
			"auto_derive":    0.80,
			"signature_card": 0.70,
			"text_label":     0.50,
		},
	}
}

func TestNewValidation(t *testing.T) {
	t.Run("valid tables construct", func(t *testing.T) {
		base, err := New(validTables())
		assert.NoError(t, err)
		assert.NotNil(t, base)
	})

	t.Run("empty sprite value rejected", func(t *testing.T) {
		tables := validTables()
		tables.Sprites["snorlax"] = "   "
		_, err := New(tables)
		assert.Error(t, err)
	})

	t.Run("uppercase sprite key rejected", func(t *testing.T) {
		tables := validTables()
		tables.Sprites["Charizard"] = "Charizard ex"
		_, err := New(tables)
		assert.Error(t, err)
	})

	t.Run("underscore sprite key rejected", func(t *testing.T) {
		tables := validTables()
		tables.Sprites["raging_bolt"] = "Raging Bolt ex"
		_, err := New(tables)
		assert.Error(t, err)
	})

	t.Run("malformed hyphenation rejected", func(t *testing.T) {
		for _, key := range []string{"-charizard", "charizard-", "chari--zard"} {
			tables := validTables()
			tables.Sprites[key] = "Charizard ex"
			_, err := New(tables)
			assert.Error(t, err, "key %q should be rejected", key)
		}
	})

	t.Run("empty alias value rejected", func(t *testing.T) {
		tables := validTables()
		tables.Aliases["pult"] = ""
		_, err := New(tables)
		assert.Error(t, err)
	})

	t.Run("conflicting alias casings rejected", func(t *testing.T) {
		tables := validTables()
		tables.Aliases["Zard"] = "Something Else"
		_, err := New(tables)
		assert.Error(t, err)
	})

	t.Run("empty signature value rejected", func(t *testing.T) {
		tables := validTables()
		tables.SignatureCards["sv1-1"] = " "
		_, err := New(tables)
		assert.Error(t, err)
	})

	t.Run("missing confidence method rejected", func(t *testing.T) {
		tables := validTables()
		delete(tables.Confidence, "signature_card")
		_, err := New(tables)
		assert.Error(t, err)
	})

	t.Run("non-decreasing confidence rejected", func(t *testing.T) {
		tables := validTables()
		tables.Confidence["text_label"] = 0.70 // ties signature_card
		_, err := New(tables)
		assert.Error(t, err)
	})

	t.Run("confidence out of range rejected", func(t *testing.T) {
		tables := validTables()
		tables.Confidence["sprite_lookup"] = 1.5
		_, err := New(tables)
		assert.Error(t, err)
	})
}

func TestLookups(t *testing.T) {
	base, err := New(validTables())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	t.Run("sprite", func(t *testing.T) {
		name, ok := base.LookupSprite("charizard-pidgeot")
		assert.True(t, ok)
		assert.Equal(t, "Charizard ex", name)

		_, ok = base.LookupSprite("missing-key")
		assert.False(t, ok)
	})

	t.Run("alias case-insensitive and trimmed", func(t *testing.T) {
		for _, label := range []string{"zard", "ZARD", " Zard "} {
			name, ok := base.LookupAlias(label)
			assert.True(t, ok, "alias %q", label)
			assert.Equal(t, "Charizard ex", name)
		}
	})

	t.Run("signature card", func(t *testing.T) {
		name, ok := base.LookupSignatureCard("sv3-125")
		assert.True(t, ok)
		assert.Equal(t, "Charizard ex", name)
	})
}

func TestDefaultBase(t *testing.T) {
	base, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	t.Run("covers a meaningful slice of the field", func(t *testing.T) {
		assert.GreaterOrEqual(t, base.SpriteCount(), 20, "sprite map population")
		assert.GreaterOrEqual(t, len(base.Archetypes()), 15, "distinct archetypes")
	})

	t.Run("all sprite keys well-formed and values non-empty", func(t *testing.T) {
		for key, name := range defaultTables().Sprites {
			assert.NoError(t, validSpriteKey(key), "key %q", key)
			assert.NotEmpty(t, strings.TrimSpace(name), "value for %q", key)
		}
	})

	t.Run("confidence strictly decreasing across methods", func(t *testing.T) {
		prev := 1.1
		for _, method := range archetype.Methods {
			score := base.ConfidenceFor(method)
			assert.Greater(t, score, 0.0, "method %q", method)
			assert.LessOrEqual(t, score, 1.0, "method %q", method)
			assert.Less(t, score, prev, "method %q must score below its predecessor", method)
			prev = score
		}
	})

	t.Run("known entry resolves", func(t *testing.T) {
		name, ok := base.LookupSprite("charizard-pidgeot")
		assert.True(t, ok)
		assert.Equal(t, "Charizard ex", name)
	})

	t.Run("archetypes sorted and rogue-free", func(t *testing.T) {
		names := base.Archetypes()
		assert.IsIncreasing(t, names)
		assert.NotContains(t, names, archetype.Rogue)
	})
}
