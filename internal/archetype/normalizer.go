package archetype

import "strings"

// Method identifies which tier of the resolution chain produced a result.
type Method string

const (
	MethodSpriteLookup  Method = "sprite_lookup"
	MethodAutoDerive    Method = "auto_derive"
	MethodSignatureCard Method = "signature_card"
	MethodTextLabel     Method = "text_label"
)

// Methods lists every detection method in decreasing-confidence order.
var Methods = []Method{
	MethodSpriteLookup,
	MethodAutoDerive,
	MethodSignatureCard,
	MethodTextLabel,
}

// Rogue is the sentinel meaning "no archetype confidently identified from
// decklist content".
const Rogue = "Rogue"

// Unknown is the archetype reported when no signal carried any information.
const Unknown = "Unknown"

// CardCount is one decklist entry.
type CardCount struct {
	CardID   string `json:"card_id"`
	Quantity int    `json:"quantity"`
}

// Resolution is the outcome of resolving one placement row. RawLabel is
// the caller's label exactly as supplied, preserved for audit even when
// sprite evidence overrides it.
type Resolution struct {
	Archetype  string  `json:"archetype"`
	RawLabel   string  `json:"raw_label"`
	Method     Method  `json:"method"`
	Confidence float64 `json:"confidence"`
}

// Knowledge is the read-only lookup surface the normalizer consults.
// Implementations must be safe for concurrent readers.
type Knowledge interface {
	LookupSprite(key string) (string, bool)
	LookupAlias(label string) (string, bool)
	ConfidenceFor(method Method) float64
}

// SignatureDetector identifies an archetype from decklist contents,
// returning Rogue when nothing matches confidently.
type SignatureDetector interface {
	Detect(deck []CardCount) string
}

// Normalizer resolves the noisy signals describing a competitive deck
// (sprite URLs, a scraped free-text label, optionally a decklist) to one
// canonical archetype. It holds no mutable state, so a single value can
// serve any number of goroutines.
type Normalizer struct {
	kb       Knowledge
	detector SignatureDetector
}

// NewNormalizer builds a normalizer over the given knowledge base.
// detector may be nil, in which case the signature-card tier is skipped.
func NewNormalizer(kb Knowledge, detector SignatureDetector) *Normalizer {
	return &Normalizer{kb: kb, detector: detector}
}

// Resolve runs the four-tier priority chain. Sprite evidence wins over
// everything, an unmapped sprite combination degrades to a derived
// placeholder name, signature cards are consulted only when no usable
// sprites exist, and the text label terminates the chain. Resolve is a
// total function: every input, however degenerate, yields a well-formed
// result and never an error.
func (n *Normalizer) Resolve(spriteURLs []string, rawLabel string, deck []CardCount) Resolution {
	key := BuildSpriteKey(spriteURLs)
	if key != "" {
		if name, ok := n.kb.LookupSprite(key); ok {
			return Resolution{Archetype: name, RawLabel: rawLabel, Method: MethodSpriteLookup}
		}
		return Resolution{Archetype: DeriveName(key), RawLabel: rawLabel, Method: MethodAutoDerive}
	}

	if n.detector != nil && len(deck) > 0 {
		if name := n.detector.Detect(deck); name != Rogue {
			return Resolution{Archetype: name, RawLabel: rawLabel, Method: MethodSignatureCard}
		}
	}

	label := strings.TrimSpace(rawLabel)
	if label == "" {
		return Resolution{Archetype: Unknown, RawLabel: rawLabel, Method: MethodTextLabel}
	}
	if name, ok := n.kb.LookupAlias(label); ok {
		return Resolution{Archetype: name, RawLabel: rawLabel, Method: MethodTextLabel}
	}
	// Unrecognized free text passes through verbatim; the engine never
	// invents a name it cannot justify from sprite or alias evidence.
	return Resolution{Archetype: label, RawLabel: rawLabel, Method: MethodTextLabel}
}

// ResolveWithConfidence runs the same chain and attaches the method's
// confidence score. A resolved archetype of Unknown always reports 0.0:
// no information never carries nonzero confidence.
func (n *Normalizer) ResolveWithConfidence(spriteURLs []string, rawLabel string, deck []CardCount) Resolution {
	res := n.Resolve(spriteURLs, rawLabel, deck)
	if res.Archetype == Unknown {
		return res
	}
	res.Confidence = n.kb.ConfidenceFor(res.Method)
	return res
}
