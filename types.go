package blogpost

// PostView is a post row joined with its author's username, as returned by
// the paginated listing.
type PostView struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}

// PostSummary is the narrower title+content projection returned by category
// listings and keyword search.
type PostSummary struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// TrendPoint is the number of posts created on one calendar date.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
