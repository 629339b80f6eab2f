package knowledge

import (
	"testing"

	"github.com/ptcgmeta/tracker/internal/archetype"
)

// End-to-end resolution over the compiled-in knowledge base, wiring the
// real tables through the normalizer the way the ingestion pipelines do.
func TestResolveAgainstDefaults(t *testing.T) {
	base, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	n := archetype.NewNormalizer(base, archetype.NewTableDetector(base))

	t.Run("known sprite composite wins over label", func(t *testing.T) {
		res := n.ResolveWithConfidence([]string{
			"https://r2.limitlesstcg.net/pokemon/gen9/charizard.png",
			"https://r2.limitlesstcg.net/pokemon/gen9/pidgeot.png",
		}, "Unknown", nil)

		if res.Archetype != "Charizard ex" {
			t.Errorf("archetype = %q, want Charizard ex", res.Archetype)
		}
		if res.Method != archetype.MethodSpriteLookup {
			t.Errorf("method = %q, want sprite_lookup", res.Method)
		}
		if res.RawLabel != "Unknown" {
			t.Errorf("raw label = %q, want Unknown", res.RawLabel)
		}
		if res.Confidence != base.ConfidenceFor(archetype.MethodSpriteLookup) {
			t.Errorf("confidence = %v, want sprite_lookup score", res.Confidence)
		}
	})

	t.Run("unmapped composite auto-derives", func(t *testing.T) {
		res := n.Resolve([]string{
			"https://r2.limitlesstcg.net/pokemon/gen9/grimmsnarl.png",
			"https://r2.limitlesstcg.net/pokemon/gen9/froslass.png",
		}, "", nil)

		if res.Method != archetype.MethodAutoDerive {
			t.Fatalf("method = %q, want auto_derive", res.Method)
		}
		if res.Archetype != "Froslass Grimmsnarl" {
			t.Errorf("archetype = %q, want Froslass Grimmsnarl", res.Archetype)
		}
	})

	t.Run("signature card identifies deck without sprites", func(t *testing.T) {
		deck := []archetype.CardCount{
			{CardID: "sv3-125", Quantity: 3},
			{CardID: "sve-5", Quantity: 10},
		}
		res := n.Resolve(nil, "", deck)
		if res.Method != archetype.MethodSignatureCard {
			t.Fatalf("method = %q, want signature_card", res.Method)
		}
		if res.Archetype != "Charizard ex" {
			t.Errorf("archetype = %q, want Charizard ex", res.Archetype)
		}
	})

	t.Run("japanese alias canonicalizes", func(t *testing.T) {
		res := n.Resolve(nil, "リザードン", nil)
		if res.Archetype != "Charizard ex" {
			t.Errorf("archetype = %q, want Charizard ex", res.Archetype)
		}
		if res.Method != archetype.MethodTextLabel {
			t.Errorf("method = %q, want text_label", res.Method)
		}
	})

	t.Run("nothing at all resolves to Unknown at zero confidence", func(t *testing.T) {
		res := n.ResolveWithConfidence(nil, "", nil)
		if res.Archetype != archetype.Unknown {
			t.Errorf("archetype = %q, want Unknown", res.Archetype)
		}
		if res.Confidence != 0.0 {
			t.Errorf("confidence = %v, want 0.0", res.Confidence)
		}
	})
}
