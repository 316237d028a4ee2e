package main

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"luxestate/internal/models"
)

var sellerNames = []string{
	"Luxury Estates Group",
	"Premium Properties Inc.",
	"Elite Real Estate Advisors",
	"Coastal Living Realty",
	"Urban Luxury Brokers",
}

type listingTemplate struct {
	title       string
	description string
	features    []string
}

type intRange struct{ min, max int }

type typeProfile struct {
	propertyType string
	weight       int
	price        intRange
	bedrooms     intRange
	bathrooms    intRange
	area         intRange
	templates    []listingTemplate
}

// profiles are ordered; weight sets the share of generated listings.
var profiles = []typeProfile{
	{
		propertyType: "villa",
		weight:       15,
		price:        intRange{2_500_000, 12_000_000},
		bedrooms:     intRange{4, 7},
		bathrooms:    intRange{4, 7},
		area:         intRange{3500, 8500},
		templates: []listingTemplate{
			{"Mediterranean Villa Estate", "Mediterranean-style villa with panoramic ocean views, Italian marble floors and a resort-style infinity pool.", []string{"Ocean Views", "Infinity Pool", "Smart Home", "Wine Cellar"}},
			{"Contemporary Hillside Villa", "Hilltop villa with floor-to-ceiling windows and an open plan that blends indoor and outdoor living.", []string{"City Views", "Glass Walls", "Rooftop Deck", "Spa"}},
			{"Tuscan Villa Retreat", "Tuscan villa with beamed ceilings, hand-painted tiles and a pool among olive trees and lavender.", []string{"Pool", "Olive Grove", "Guest House", "Chef's Kitchen"}},
			{"Beachfront Paradise Villa", "Beachfront villa steps from white sand with a private cabana and an outdoor kitchen.", []string{"Private Beach", "Cabana", "Outdoor Kitchen", "Dock"}},
		},
	},
	{
		propertyType: "penthouse",
		weight:       10,
		price:        intRange{3_000_000, 15_000_000},
		bedrooms:     intRange{2, 5},
		bathrooms:    intRange{2, 5},
		area:         intRange{1500, 5000},
		templates: []listingTemplate{
			{"Skyline Penthouse Suite", "Penthouse with 360-degree skyline views, private elevator access and a wraparound terrace.", []string{"City Views", "Private Terrace", "Concierge", "Wine Room"}},
			{"Waterfront Penthouse Residence", "Waterfront penthouse with an expansive terrace overlooking the marina.", []string{"Waterfront", "Marina Access", "Wraparound Balcony", "Spa Bath"}},
			{"Modern Sky Penthouse", "Open-plan penthouse with custom Italian furniture and state-of-the-art technology.", []string{"Sky Views", "Smart Home", "Art Gallery Space", "Private Gym"}},
		},
	},
	{
		propertyType: "mansion",
		weight:       10,
		price:        intRange{5_000_000, 20_000_000},
		bedrooms:     intRange{6, 10},
		bathrooms:    intRange{6, 9},
		area:         intRange{6000, 15000},
		templates: []listingTemplate{
			{"Gated Estate Mansion", "Gated mansion on several acres with grand reception rooms, a home theater and a tennis court.", []string{"Tennis Court", "Pool House", "Theater", "Guest Quarters"}},
			{"Coastal Mansion Masterpiece", "Coastal mansion with ocean views from nearly every room and a private beach house.", []string{"Ocean Views", "Pool", "Beach House", "Library"}},
			{"Historic Mansion Estate", "Restored historic mansion with original moldings, hardwood floors and formal gardens.", []string{"Historic Character", "Gardens", "Wine Cellar", "Carriage House"}},
		},
	},
	{
		propertyType: "estate",
		weight:       8,
		price:        intRange{4_000_000, 18_000_000},
		bedrooms:     intRange{5, 9},
		bathrooms:    intRange{5, 8},
		area:         intRange{5000, 12000},
		templates: []listingTemplate{
			{"Private Country Estate", "Secluded country estate with a guest house, equestrian facilities and acres of landscaped grounds.", []string{"Equestrian Center", "Guest House", "Pool", "Orchard"}},
			{"Vineyard Estate Property", "Vineyard estate with producing vines, a tasting room and a guest cottage.", []string{"Vineyard", "Tasting Room", "Cottage", "Event Space"}},
			{"Waterfront Estate Compound", "Waterfront compound with a main residence, private dock and boat house.", []string{"Waterfront", "Private Dock", "Guest House", "Boat House"}},
		},
	},
	{
		propertyType: "apartment",
		weight:       7,
		price:        intRange{500_000, 3_500_000},
		bedrooms:     intRange{1, 3},
		bathrooms:    intRange{1, 3},
		area:         intRange{800, 2500},
		templates: []listingTemplate{
			{"Luxury Downtown Apartment", "Downtown apartment with designer finishes and city views from every room.", []string{"City Views", "Concierge", "Fitness Center", "Parking"}},
			{"Modern Urban Loft", "Loft with soaring ceilings, industrial-chic details and a chef's kitchen.", []string{"High Ceilings", "Open Concept", "Rooftop Deck", "Doorman"}},
			{"Elegant High-Rise Residence", "High-rise residence with custom finishes, a spa bath and panoramic views.", []string{"Panoramic Views", "Spa Bathroom", "Walk-in Closet", "Pet Friendly"}},
		},
	},
}

var locations = map[string][]string{
	"Beverly Hills, CA": {"The Flats", "Beverly Park", "Mulholland Drive"},
	"Miami, FL":         {"Miami Beach", "Coconut Grove", "Key Biscayne"},
	"New York, NY":      {"Tribeca", "SoHo", "Upper East Side"},
	"Malibu, CA":        {"Carbon Beach", "Broad Beach", "Point Dume"},
	"Aspen, CO":         {"Red Mountain", "Smuggler", "West End"},
	"Hamptons, NY":      {"East Hampton", "Southampton", "Montauk"},
}

var cities = []string{"Beverly Hills, CA", "Miami, FL", "New York, NY", "Malibu, CA", "Aspen, CO", "Hamptons, NY"}

// sampleProperties builds count listings spread across profiles by weight and
// assigned to random sellers. Roughly one in five stays pending.
func sampleProperties(rng *rand.Rand, sellerIDs []string, count int) []models.Property {
	if count <= 0 || len(sellerIDs) == 0 {
		return nil
	}

	totalWeight := 0
	for _, p := range profiles {
		totalWeight += p.weight
	}

	properties := make([]models.Property, 0, count)
	for i := 0; i < count; i++ {
		profile := pickProfile(rng, totalWeight)
		tmpl := profile.templates[rng.Intn(len(profile.templates))]
		city := cities[rng.Intn(len(cities))]
		neighborhood := locations[city][rng.Intn(len(locations[city]))]

		status := models.StatusApproved
		if rng.Intn(5) == 0 {
			status = models.StatusPending
		}

		properties = append(properties, models.Property{
			Title:        fmt.Sprintf("%s - Property #%d", tmpl.title, i+1),
			Description:  describe(tmpl),
			Price:        roundPrice(float64(between(rng, profile.price))),
			Location:     neighborhood + ", " + city,
			Bedrooms:     between(rng, profile.bedrooms),
			Bathrooms:    between(rng, profile.bathrooms),
			Area:         float64(between(rng, profile.area)),
			PropertyType: profile.propertyType,
			Status:       status,
			SellerID:     sellerIDs[rng.Intn(len(sellerIDs))],
		})
	}

	return properties
}

func pickProfile(rng *rand.Rand, totalWeight int) typeProfile {
	n := rng.Intn(totalWeight)
	for _, p := range profiles {
		if n < p.weight {
			return p
		}
		n -= p.weight
	}
	return profiles[len(profiles)-1]
}

func between(rng *rand.Rand, r intRange) int {
	return r.min + rng.Intn(r.max-r.min+1)
}

// roundPrice rounds to the nearest 100k.
func roundPrice(price float64) float64 {
	return math.Round(price/100_000) * 100_000
}

func describe(tmpl listingTemplate) string {
	var b strings.Builder
	b.WriteString(tmpl.description)
	b.WriteString("\n\nAdditional Features:")
	for _, f := range tmpl.features {
		b.WriteString("\n- ")
		b.WriteString(f)
	}
	return b.String()
}
