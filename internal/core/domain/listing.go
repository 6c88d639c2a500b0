package domain

// ListingSummary is the slice of a property listing needed to render a
// sponsored slot. The listing store is owned elsewhere; this subsystem only
// reads it during slot enrichment.
type ListingSummary struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	City     string `json:"city"`
	Price    int64  `json:"price"`
	ImageURL string `json:"image_url"`
}
