package archetype

// SignatureSource looks up the archetype a single card identifies.
type SignatureSource interface {
	LookupSignatureCard(cardID string) (string, bool)
}

// TableDetector identifies archetypes by scanning a decklist against a
// signature-card table.
type TableDetector struct {
	source SignatureSource
}

// NewTableDetector builds a detector over the given signature-card table.
func NewTableDetector(source SignatureSource) *TableDetector {
	return &TableDetector{source: source}
}

// Detect returns the archetype implicated by the decklist's signature
// cards, or Rogue when none is present. A decklist implicating two
// different archetypes is ambiguous and also returns Rogue. An empty or
// nil decklist returns Rogue.
func (d *TableDetector) Detect(deck []CardCount) string {
	found := ""
	for _, entry := range deck {
		name, ok := d.source.LookupSignatureCard(entry.CardID)
		if !ok || name == Rogue {
			continue
		}
		if found == "" {
			found = name
			continue
		}
		if found != name {
			return Rogue
		}
	}
	if found == "" {
		return Rogue
	}
	return found
}
