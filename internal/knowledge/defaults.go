package knowledge

// defaultTables returns the compiled-in knowledge covering the current
// competitive field. Values here are domain data, not behavior: operators
// extend or override them through the TOML knowledge file.
func defaultTables() Tables {
	return Tables{
		Sprites: map[string]string{
			"charizard-pidgeot":              "Charizard ex",
			"charizard":                      "Charizard ex",
			"charizard-dusknoir":             "Charizard Dusknoir",
			"dragapult":                      "Dragapult ex",
			"dragapult-dusknoir":             "Dragapult Dusknoir",
			"dragapult-pidgeot":              "Dragapult Pidgeot",
			"gardevoir":                      "Gardevoir ex",
			"gardevoir-drifloon":             "Gardevoir ex",
			"baxcalibur-chien-pao":           "Chien-Pao Baxcalibur",
			"ogerpon-wellspring-raging-bolt": "Raging Bolt ex",
			"raging-bolt":                    "Raging Bolt ex",
			"lugia":                          "Lugia VSTAR",
			"archeops-lugia":                 "Lugia VSTAR",
			"comfey-sableye":                 "Lost Zone Box",
			"comfey-cramorant-sableye":       "Lost Zone Box",
			"comfey-giratina":                "Giratina VSTAR",
			"gholdengo":                      "Gholdengo ex",
			"iron-hands-miraidon":            "Miraidon ex",
			"miraidon":                       "Miraidon ex",
			"regidrago":                      "Regidrago VSTAR",
			"noctowl-terapagos":              "Terapagos ex",
			"dusknoir-terapagos":             "Terapagos Dusknoir",
			"snorlax":                        "Snorlax Stall",
			"gouging-fire":                   "Gouging Fire ex",
			"iron-thorns":                    "Iron Thorns ex",
			"klawf-terapagos":                "Klawf Terapagos",
			"roaring-moon":                   "Roaring Moon ex",
			"absol-mega":                     "Mega Absol ex",
			"gardevoir-mega":                 "Mega Gardevoir ex",
			"lucario-mega":                   "Mega Lucario ex",
			"froslass-munkidori":             "Froslass Munkidori",
			"pidgeot-rotom":                  "Pidgeot Control",
		},
		Aliases: map[string]string{
			"zard":              "Charizard ex",
			"charizard":         "Charizard ex",
			"charizard pidgeot": "Charizard ex",
			"lost box":          "Lost Zone Box",
			"lost zone box":     "Lost Zone Box",
			"lzb":               "Lost Zone Box",
			"chien pao":         "Chien-Pao Baxcalibur",
			"chien-pao box":     "Chien-Pao Baxcalibur",
			"pao":               "Chien-Pao Baxcalibur",
			"tina":              "Giratina VSTAR",
			"lost tina":         "Giratina VSTAR",
			"raging bolt":       "Raging Bolt ex",
			"turbo bolt":        "Raging Bolt ex",
			"gardy":             "Gardevoir ex",
			"pult":              "Dragapult ex",
			"drago":             "Regidrago VSTAR",
			"tera box":          "Terapagos ex",
			"lax stall":         "Snorlax Stall",
			"gholdengo":         "Gholdengo ex",
			"dengo":             "Gholdengo ex",
			"lugia":             "Lugia VSTAR",
			"リザードン":             "Charizard ex",
			"サーナイト":             "Gardevoir ex",
			"ロストバレット":           "Lost Zone Box",
		},
		SignatureCards: map[string]string{
			"sv3-125":    "Charizard ex",
			"sv1-86":     "Gardevoir ex",
			"sv2-61":     "Chien-Pao Baxcalibur",
			"sv2-185":    "Chien-Pao Baxcalibur",
			"sv5-123":    "Raging Bolt ex",
			"sv6-130":    "Dragapult ex",
			"sv7-128":    "Terapagos ex",
			"sv4-125":    "Iron Thorns ex",
			"sv4-27":     "Gouging Fire ex",
			"sv3pt5-139": "Gholdengo ex",
			"sv1-81":     "Miraidon ex",
			"sv4-109":    "Roaring Moon ex",
			"swsh12-139": "Lugia VSTAR",
			"swsh12-186": "Lugia VSTAR",
			"swsh11-131": "Giratina VSTAR",
			"swsh10-79":  "Regidrago VSTAR",
			"sv2-128":    "Snorlax Stall",
		},
		Confidence: map[string]float64{
			"sprite_lookup":  0.95,
			"auto_derive":    0.80,
			"signature_card": 0.70,
			"text_label":     0.50,
		},
	}
}
