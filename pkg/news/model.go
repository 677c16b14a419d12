package news

import "time"

type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Article is one news item as returned by the "everything" endpoint. The
// SearchQuery field records which query surfaced it, for diagnostics in the
// synthesized report.
type Article struct {
	Source      Source    `json:"source"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
	Content     string    `json:"content"`
	SearchQuery string    `json:"-"`
}

type searchResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	Code         string    `json:"code"`
	Message      string    `json:"message"`
}
