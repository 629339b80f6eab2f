package archetype

import "testing"

// mapSource is a SignatureSource backed by a plain map.
type mapSource map[string]string

func (m mapSource) LookupSignatureCard(cardID string) (string, bool) {
	name, ok := m[cardID]
	return name, ok
}

func TestTableDetector(t *testing.T) {
	source := mapSource{
		"sv3-125": "Charizard ex",
		"sv1-86":  "Gardevoir ex",
		"sv0-000": Rogue,
	}
	detector := NewTableDetector(source)

	t.Run("single signature card", func(t *testing.T) {
		deck := []CardCount{
			{CardID: "sv3-125", Quantity: 3},
			{CardID: "sve-1", Quantity: 12},
		}
		if got := detector.Detect(deck); got != "Charizard ex" {
			t.Errorf("Detect = %q, want Charizard ex", got)
		}
	})

	t.Run("same archetype twice", func(t *testing.T) {
		deck := []CardCount{
			{CardID: "sv3-125", Quantity: 2},
			{CardID: "sv3-125", Quantity: 1},
		}
		if got := detector.Detect(deck); got != "Charizard ex" {
			t.Errorf("Detect = %q, want Charizard ex", got)
		}
	})

	t.Run("no signature card", func(t *testing.T) {
		deck := []CardCount{{CardID: "sve-1", Quantity: 12}}
		if got := detector.Detect(deck); got != Rogue {
			t.Errorf("Detect = %q, want Rogue", got)
		}
	})

	t.Run("empty decklist", func(t *testing.T) {
		if got := detector.Detect(nil); got != Rogue {
			t.Errorf("Detect(nil) = %q, want Rogue", got)
		}
		if got := detector.Detect([]CardCount{}); got != Rogue {
			t.Errorf("Detect(empty) = %q, want Rogue", got)
		}
	})

	t.Run("conflicting archetypes return Rogue", func(t *testing.T) {
		deck := []CardCount{
			{CardID: "sv3-125", Quantity: 2},
			{CardID: "sv1-86", Quantity: 2},
		}
		if got := detector.Detect(deck); got != Rogue {
			t.Errorf("Detect = %q, want Rogue on ambiguity", got)
		}
	})

	t.Run("rogue-mapped card does not identify", func(t *testing.T) {
		deck := []CardCount{{CardID: "sv0-000", Quantity: 4}}
		if got := detector.Detect(deck); got != Rogue {
			t.Errorf("Detect = %q, want Rogue", got)
		}
	})
}
