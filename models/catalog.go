package models

var Categories = []string{
	"Ristoranti",
	"Bar",
	"Musei",
	"Palestre",
	"Piscine",
	"Hotel",
	"Altri",
}

var Tags = []string{
	"Economico",
	"Romantico",
	"Terrazza",
	"Centro storico",
	"Pet-friendly",
	"Wi-Fi gratis",
	"Vista panoramica",
	"Fine Dining",
	"Cucina Italiana",
	"Arte",
	"Rinascimento",
	"Lusso",
}

func IsCategory(value string) bool {
	for _, c := range Categories {
		if c == value {
			return true
		}
	}
	return false
}

func IsPriceLevel(value string) bool {
	for _, p := range PriceLevels {
		if p == value {
			return true
		}
	}
	return false
}
