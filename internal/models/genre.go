package models

// PostGenre is a reference row from a small fixed vocabulary seeded at
// startup. Not an enum at the schema level: new genres can be inserted.
type PostGenre struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

type GenreResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func NewGenreResponse(g PostGenre) GenreResponse {
	return GenreResponse{ID: g.ID, Name: g.Name}
}

type GenreListResponse struct {
	Genres []GenreResponse `json:"genres"`
	Total  int64           `json:"total"`
}
