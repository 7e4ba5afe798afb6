package synth

import (
	"fmt"
	"net/url"
)

// productTemplate fixes everything about a listing except the numeric filler.
type productTemplate struct {
	titleFormat  string
	imageSuffix  string
	priceLo      float64
	priceHi      float64
	ratingLo     float64
	ratingSpan   float64
	reviewsLo    int
	reviewsHi    int
	availability string
	shipping     string
}

var productTemplates = []productTemplate{
	{
		titleFormat:  "Premium %s - Best Seller",
		priceLo:      50,
		priceHi:      250,
		ratingLo:     4.0,
		ratingSpan:   1.0,
		reviewsLo:    100,
		reviewsHi:    5100,
		availability: AvailabilityInStock,
		shipping:     "Free 2-day shipping",
	},
	{
		titleFormat:  "Professional %s Kit",
		imageSuffix:  " professional",
		priceLo:      100,
		priceHi:      400,
		ratingLo:     4.2,
		ratingSpan:   0.7,
		reviewsLo:    50,
		reviewsHi:    3050,
		availability: AvailabilityLimited,
		shipping:     "Standard shipping",
	},
}

// GenerateEcommerce always returns two listings. The query only feeds the
// title and the placeholder image reference.
func GenerateEcommerce(query string, rng Rand) []Record {
	out := make([]Record, 0, len(productTemplates))
	for _, tmpl := range productTemplates {
		out = append(out, ProductResult{
			Title:        fmt.Sprintf(tmpl.titleFormat, query),
			Price:        fmt.Sprintf("$%.2f", between(rng, tmpl.priceLo, tmpl.priceHi)),
			Rating:       roundTo(tmpl.ratingLo+rng.Float64()*tmpl.ratingSpan, 1),
			Reviews:      intBetween(rng, tmpl.reviewsLo, tmpl.reviewsHi),
			Image:        placeholderImage(query + tmpl.imageSuffix),
			Availability: tmpl.availability,
			Shipping:     tmpl.shipping,
		})
	}
	return out
}

func placeholderImage(key string) string {
	return "/placeholder.svg?height=200&width=200&query=" + url.QueryEscape(key)
}
