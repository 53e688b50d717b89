package store

import (
	"CityGuide/models"
	"context"
	"fmt"
)

func strPtr(s string) *string { return &s }

var seedCities = []models.City{
	{
		Name:        "Roma",
		Country:     "Italia",
		Description: "La città eterna con monumenti storici, arte e cultura millenaria.",
		ImageURL:    "https://images.unsplash.com/photo-1552832230-c0197dd311b5?auto=format&fit=crop&w=1374&q=80",
		IsFeatured:  true,
	},
	{
		Name:        "Milano",
		Country:     "Italia",
		Description: "Capitale della moda e del design con un ricco patrimonio culturale.",
		ImageURL:    "https://images.unsplash.com/photo-1512199541845-bffa11600ecf?auto=format&fit=crop&w=1374&q=80",
		IsFeatured:  true,
	},
	{
		Name:        "Venezia",
		Country:     "Italia",
		Description: "La città dei canali, famosa per la sua bellezza ed architettura unica.",
		ImageURL:    "https://images.unsplash.com/photo-1516574187841-cb9cc2ca948b?auto=format&fit=crop&w=1374&q=80",
		IsFeatured:  true,
	},
	{
		Name:        "Firenze",
		Country:     "Italia",
		Description: "Culla del Rinascimento, con musei, arte e architettura straordinari.",
		ImageURL:    "https://images.unsplash.com/photo-1595815771614-ade501d22bf4?auto=format&fit=crop&w=1374&q=80",
		IsFeatured:  true,
	},
	{
		Name:        "Napoli",
		Country:     "Italia",
		Description: "Città dal carattere vivace, famosa per la pizza e il ricco patrimonio storico.",
		ImageURL:    "https://images.unsplash.com/photo-1534308983496-4fabb1a015ee?auto=format&fit=crop&w=1374&q=80",
		IsFeatured:  true,
	},
}

// seedPlaces reference cities by their seeded position (1 = Roma ... 5 = Napoli).
var seedPlaces = []models.Place{
	{
		Name:         "Ristorante La Pergola",
		Description:  "La Pergola è un ristorante stellato situato all'ultimo piano dell'Hotel Rome Cavalieri, con una vista mozzafiato sulla Città Eterna. Sotto la guida dell'Executive Chef Heinz Beck, il ristorante ha ottenuto tre stelle Michelin ed è considerato uno dei migliori d'Italia.",
		Address:      "Via Alberto Cadlolo, 101, 00136 Roma RM",
		CityID:       1,
		Category:     "Ristoranti",
		Rating:       48,
		ReviewCount:  458,
		PriceLevel:   "$$$",
		ContactPhone: strPtr("+39 06 3509 2152"),
		ContactEmail: strPtr("info@ristorantelapergola.it"),
		OpeningHours: strPtr("Mar-Sab: 19:30-23:00, Domenica e Lunedì: Chiuso"),
		Tags:         []string{"Fine Dining", "Vista Panoramica"},
		Images: []string{
			"https://images.unsplash.com/photo-1555396273-367ea4eb4db5?auto=format&fit=crop&w=1374&q=80",
			"https://images.unsplash.com/photo-1552566626-52f8b828add9?auto=format&fit=crop&w=1470&q=80",
			"https://images.unsplash.com/photo-1592861956120-e524fc739696?auto=format&fit=crop&w=1470&q=80",
			"https://images.unsplash.com/photo-1414235077428-338989a2e8c0?auto=format&fit=crop&w=1470&q=80",
			"https://images.unsplash.com/photo-1579027989536-b7b1f875659b?auto=format&fit=crop&w=1470&q=80",
		},
		IsFeatured: true,
		Latitude:   strPtr("41.9187"),
		Longitude:  strPtr("12.4479"),
	},
	{
		Name:         "Galleria degli Uffizi",
		Description:  "La Galleria degli Uffizi è uno dei musei più importanti del mondo, che ospita una collezione di opere inestimabili, in particolare del periodo del Rinascimento italiano.",
		Address:      "Piazzale degli Uffizi, 6, 50122 Firenze FI",
		CityID:       4,
		Category:     "Musei",
		Rating:       47,
		ReviewCount:  325,
		PriceLevel:   "$$",
		ContactPhone: strPtr("+39 055 294883"),
		ContactEmail: strPtr("info@uffizi.it"),
		OpeningHours: strPtr("Mar-Dom: 08:15-18:50, Lunedì: Chiuso"),
		Tags:         []string{"Arte", "Rinascimento"},
		Images: []string{
			"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?auto=format&fit=crop&w=1374&q=80",
		},
		IsFeatured: true,
		Latitude:   strPtr("43.7677"),
		Longitude:  strPtr("11.2553"),
	},
	{
		Name:         "Belmond Hotel Cipriani",
		Description:  "Il Belmond Hotel Cipriani è uno degli hotel più lussuosi di Venezia, situato sull'isola della Giudecca con una vista mozzafiato sulla laguna e su Piazza San Marco.",
		Address:      "Giudecca 10, 30133 Venezia VE",
		CityID:       3,
		Category:     "Hotel",
		Rating:       49,
		ReviewCount:  187,
		PriceLevel:   "$$$$",
		ContactPhone: strPtr("+39 041 240801"),
		ContactEmail: strPtr("info.cip@belmond.com"),
		OpeningHours: strPtr("Aperto 24/7"),
		Tags:         []string{"Lusso", "Vista Laguna"},
		Images: []string{
			"https://images.unsplash.com/photo-1551632436-cbf8dd35adfa?auto=format&fit=crop&w=1374&q=80",
		},
		IsFeatured: true,
		Latitude:   strPtr("45.4254"),
		Longitude:  strPtr("12.3462"),
	},
}

// seedReviews reference places by their seeded position.
var seedReviews = []models.Review{
	{
		PlaceID:  1,
		UserName: "Marco Rossi",
		Rating:   5,
		Comment:  "Un'esperienza culinaria straordinaria! Ogni piatto è una vera opera d'arte, con sapori incredibilmente bilanciati. Il servizio è impeccabile e la vista su Roma al tramonto è semplicemente magica. Certamente non economico, ma vale ogni euro per un'occasione speciale.",
	},
	{
		PlaceID:  1,
		UserName: "Laura Bianchi",
		Rating:   4,
		Comment:  "Il cibo è squisito e la presentazione è impressionante. Ho tolto una stella solo per il tempo di attesa tra le portate, un po' troppo lungo. Il sommelier è molto competente e ci ha consigliato un vino perfetto. L'ambiente è elegante senza essere troppo formale.",
	},
}

// Seed loads the sample directory. It does nothing when the store already has cities.
func Seed(ctx context.Context, s Store) error {
	existing, err := s.ListCities(ctx)
	if err != nil {
		return fmt.Errorf("seed: list cities: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	cityIDs := make([]int, 0, len(seedCities))
	for _, c := range seedCities {
		created, err := s.InsertCity(ctx, c)
		if err != nil {
			return fmt.Errorf("seed: city %s: %w", c.Name, err)
		}
		cityIDs = append(cityIDs, created.ID)
	}

	placeIDs := make([]int, 0, len(seedPlaces))
	for _, p := range seedPlaces {
		p.CityID = cityIDs[p.CityID-1]
		created, err := s.InsertPlace(ctx, p)
		if err != nil {
			return fmt.Errorf("seed: place %s: %w", p.Name, err)
		}
		placeIDs = append(placeIDs, created.ID)
	}

	for _, r := range seedReviews {
		r.PlaceID = placeIDs[r.PlaceID-1]
		if _, err := s.InsertReview(ctx, r); err != nil {
			return fmt.Errorf("seed: review by %s: %w", r.UserName, err)
		}
	}
	return nil
}
