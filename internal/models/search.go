package models

// SearchResult groups the shows and episodes matching a query.
type SearchResult struct {
	Shows    []Show    `json:"shows"`
	Episodes []Episode `json:"episodes"`
}
