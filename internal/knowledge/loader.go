package knowledge

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadFile reads a TOML knowledge file and overlays its tables on the
// compiled-in defaults: file entries extend the defaults and override
// them key by key. TOML itself rejects duplicate keys within the file,
// so a duplicate sprite key fails at parse time; everything else fails
// in New's validation. Either failure is fatal to engine construction.
func LoadFile(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}

	var t Tables
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse knowledge file %s: %w", path, err)
	}

	base, err := New(merge(defaultTables(), t))
	if err != nil {
		return nil, fmt.Errorf("knowledge file %s: %w", path, err)
	}
	return base, nil
}

// merge overlays the override tables onto the base tables.
func merge(base, override Tables) Tables {
	merged := Tables{
		Sprites:        make(map[string]string, len(base.Sprites)+len(override.Sprites)),
		Aliases:        make(map[string]string, len(base.Aliases)+len(override.Aliases)),
		SignatureCards: make(map[string]string, len(base.SignatureCards)+len(override.SignatureCards)),
		Confidence:     make(map[string]float64, len(base.Confidence)+len(override.Confidence)),
	}
	copyInto(merged.Sprites, base.Sprites, override.Sprites)
	copyInto(merged.Aliases, base.Aliases, override.Aliases)
	copyInto(merged.SignatureCards, base.SignatureCards, override.SignatureCards)
	for k, v := range base.Confidence {
		merged.Confidence[k] = v
	}
	for k, v := range override.Confidence {
		merged.Confidence[k] = v
	}
	return merged
}

func copyInto(dst map[string]string, layers ...map[string]string) {
	for _, layer := range layers {
		for k, v := range layer {
			dst[k] = v
		}
	}
}
