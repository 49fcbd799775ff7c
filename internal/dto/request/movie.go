package request

// MovieListQuery carries the list filters taken from the query string.
type MovieListQuery struct {
	Search string   `json:"search"`
	Genres []string `json:"genres"`
	Sort   string   `json:"sort"`
}
