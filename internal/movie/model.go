package movie

type Rating struct {
	Source string `bson:"source" json:"Source"`
	Value  string `bson:"value" json:"Value"`
}

// MovieDocument keeps the OMDb-style field names on the wire and in the
// collection; imdbID is the only required field and must be unique.
type MovieDocument struct {
	Id         string   `bson:"_id" json:"_id"`
	ImdbID     string   `bson:"imdbID" json:"imdbID" validate:"required"`
	Title      string   `bson:"Title,omitempty" json:"Title,omitempty"`
	Year       string   `bson:"Year,omitempty" json:"Year,omitempty"`
	Rated      string   `bson:"Rated,omitempty" json:"Rated,omitempty"`
	Released   string   `bson:"Released,omitempty" json:"Released,omitempty"`
	Runtime    string   `bson:"Runtime,omitempty" json:"Runtime,omitempty"`
	Genre      string   `bson:"Genre,omitempty" json:"Genre,omitempty"`
	Director   string   `bson:"Director,omitempty" json:"Director,omitempty"`
	Writer     string   `bson:"Writer,omitempty" json:"Writer,omitempty"`
	Actors     string   `bson:"Actors,omitempty" json:"Actors,omitempty"`
	Plot       string   `bson:"Plot,omitempty" json:"Plot,omitempty"`
	Language   string   `bson:"Language,omitempty" json:"Language,omitempty"`
	Country    string   `bson:"Country,omitempty" json:"Country,omitempty"`
	Awards     string   `bson:"Awards,omitempty" json:"Awards,omitempty"`
	Poster     string   `bson:"Poster,omitempty" json:"Poster,omitempty"`
	Ratings    []Rating `bson:"Ratings,omitempty" json:"Ratings,omitempty"`
	Metascore  string   `bson:"Metascore,omitempty" json:"Metascore,omitempty"`
	ImdbRating string   `bson:"imdbRating,omitempty" json:"imdbRating,omitempty"`
	ImdbVotes  string   `bson:"imdbVotes,omitempty" json:"imdbVotes,omitempty"`
	Type       string   `bson:"Type,omitempty" json:"Type,omitempty"`
	DVD        string   `bson:"DVD,omitempty" json:"DVD,omitempty"`
	BoxOffice  string   `bson:"BoxOffice,omitempty" json:"BoxOffice,omitempty"`
	Production string   `bson:"Production,omitempty" json:"Production,omitempty"`
	Website    string   `bson:"Website,omitempty" json:"Website,omitempty"`
	Response   string   `bson:"Response,omitempty" json:"Response,omitempty"`
}

// UpdateMoviePayload is the deliberate update contract: only these five
// fields are replaceable through the update operation.
type UpdateMoviePayload struct {
	ImdbID string `json:"imdbID"`
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

var searchableFields = map[string]struct{}{
	"imdbID":     {},
	"Title":      {},
	"Year":       {},
	"Rated":      {},
	"Released":   {},
	"Runtime":    {},
	"Genre":      {},
	"Director":   {},
	"Writer":     {},
	"Actors":     {},
	"Plot":       {},
	"Language":   {},
	"Country":    {},
	"Awards":     {},
	"Poster":     {},
	"Metascore":  {},
	"imdbRating": {},
	"imdbVotes":  {},
	"Type":       {},
	"DVD":        {},
	"BoxOffice":  {},
	"Production": {},
	"Website":    {},
	"Response":   {},
}

// IsSearchableField reports whether a caller-supplied field name is part of
// the schema allow-list; queries are never built from names outside it.
func IsSearchableField(fieldName string) bool {
	_, isSearchable := searchableFields[fieldName]
	return isSearchable
}
