package synth

// ResultType names a result category as it appears on the wire.
type ResultType string

const (
	TypeWeb       ResultType = "web"
	TypeEcommerce ResultType = "ecommerce"
	TypeNews      ResultType = "news"
)

// Record is one synthesized result. The concrete type depends on the
// category that produced it.
type Record interface {
	Kind() ResultType
}

// WebResult is a search-engine style hit.
type WebResult struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating,omitempty"`
	Domain      string  `json:"domain"`
	Snippet     string  `json:"snippet,omitempty"`
	Price       string  `json:"price,omitempty"`
}

func (WebResult) Kind() ResultType { return TypeWeb }

// ProductResult is a storefront listing.
type ProductResult struct {
	Title        string  `json:"title"`
	Price        string  `json:"price"`
	Rating       float64 `json:"rating"`
	Reviews      int     `json:"reviews"`
	Image        string  `json:"image"`
	Availability string  `json:"availability"`
	Shipping     string  `json:"shipping"`
}

func (ProductResult) Kind() ResultType { return TypeEcommerce }

// NewsResult is a headline with byline.
type NewsResult struct {
	Title     string `json:"title"`
	Source    string `json:"source"`
	Published string `json:"published"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	Summary   string `json:"summary"`
}

func (NewsResult) Kind() ResultType { return TypeNews }

const (
	AvailabilityInStock = "In Stock"
	AvailabilityLimited = "Limited Stock"
)

// isoMillis matches the JavaScript Date#toISOString layout the site expects.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"
