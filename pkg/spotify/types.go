package spotify

// Artist represents a Spotify artist object.
type Artist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	URI        string   `json:"uri"`
	Genres     []string `json:"genres"`
	Popularity int      `json:"popularity"`
}

// SimpleArtist is the abbreviated artist object embedded in tracks.
type SimpleArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Track represents a Spotify track object.
type Track struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	URI        string         `json:"uri"`
	DurationMS int            `json:"duration_ms"`
	Popularity int            `json:"popularity"`
	Artists    []SimpleArtist `json:"artists"`
}

// searchResponse represents the response from GET /search?type=artist.
type searchResponse struct {
	Artists struct {
		Items []Artist `json:"items"`
		Total int      `json:"total"`
	} `json:"artists"`
}

// topTracksResponse represents the response from GET /artists/{id}/top-tracks.
type topTracksResponse struct {
	Tracks []Track `json:"tracks"`
}

// relatedArtistsResponse represents the response from GET /artists/{id}/related-artists.
type relatedArtistsResponse struct {
	Artists []Artist `json:"artists"`
}
