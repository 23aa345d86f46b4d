package models

import "strings"

// Configuration mirrors the TMDB /configuration payload: image base URLs,
// supported size buckets, and the upstream change keys.
type Configuration struct {
	Images     *ImageConfiguration `json:"images"`
	ChangeKeys []string            `json:"change_keys"`
}

type ImageConfiguration struct {
	BaseURL       string   `json:"base_url"`
	SecureBaseURL string   `json:"secure_base_url"`
	BackdropSizes []string `json:"backdrop_sizes"`
	LogoSizes     []string `json:"logo_sizes"`
	PosterSizes   []string `json:"poster_sizes"`
	ProfileSizes  []string `json:"profile_sizes"`
	StillSizes    []string `json:"still_sizes"`
}

// ImageURL builds an absolute image URL from a TMDB-relative path and a size
// bucket. Returns "" when the configuration or path is missing.
func (c *Configuration) ImageURL(size, path string) string {
	if c == nil || c.Images == nil || path == "" {
		return ""
	}
	base := c.Images.SecureBaseURL
	if base == "" {
		base = c.Images.BaseURL
	}
	if base == "" {
		return ""
	}
	return strings.TrimSuffix(base, "/") + "/" + size + path
}

// PagedResponse is a single page of TMDB results.
type PagedResponse[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// Search result media kinds as reported by TMDB multi-search.
const (
	MediaKindMovie  = "movie"
	MediaKindTV     = "tv"
	MediaKindPerson = "person"
)

// SearchResult is one entry from multi-search, trending, or discover.
// MediaType discriminates the variant; the optional fields only apply to some
// kinds (Title/ReleaseDate for movies, Name/FirstAirDate for TV and people,
// ProfilePath/KnownForDepartment for people). Absent fields mean "not
// applicable for this kind".
type SearchResult struct {
	ID                 int     `json:"id"`
	MediaType          string  `json:"media_type"`
	Title              *string `json:"title,omitempty"`
	Name               *string `json:"name,omitempty"`
	PosterPath         *string `json:"poster_path,omitempty"`
	ProfilePath        *string `json:"profile_path,omitempty"`
	ReleaseDate        *string `json:"release_date,omitempty"`
	FirstAirDate       *string `json:"first_air_date,omitempty"`
	KnownForDepartment *string `json:"known_for_department,omitempty"`
}

// DisplayName returns the title for movies and the name for TV shows and
// people, whichever the variant carries.
func (r SearchResult) DisplayName() string {
	if r.Title != nil && *r.Title != "" {
		return *r.Title
	}
	if r.Name != nil {
		return *r.Name
	}
	return ""
}

// MovieDetails is the TMDB movie payload with credits and videos embedded
// via append_to_response.
type MovieDetails struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Overview    string      `json:"overview"`
	Tagline     string      `json:"tagline"`
	PosterPath  *string     `json:"poster_path"`
	ReleaseDate string      `json:"release_date"`
	Runtime     *int        `json:"runtime"`
	Genres      []Genre     `json:"genres"`
	Credits     *Credits    `json:"credits"`
	Videos      *VideoGroup `json:"videos"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// CastMember order is ascending prominence: 0 is the top-billed actor.
type CastMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
	Order       int     `json:"order"`
}

type CrewMember struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

type VideoGroup struct {
	Results []Video `json:"results"`
}

type Video struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Site string `json:"site"`
	Key  string `json:"key"`
	Type string `json:"type"`
}

// WatchProviders maps upper-case region codes (US, GB, ...) to the offers
// available in that region.
type WatchProviders struct {
	ID      int                       `json:"id"`
	Results map[string]ProviderRegion `json:"results"`
}

type ProviderRegion struct {
	Link     string          `json:"link"`
	Flatrate []ProviderOffer `json:"flatrate,omitempty"`
	Rent     []ProviderOffer `json:"rent,omitempty"`
	Buy      []ProviderOffer `json:"buy,omitempty"`
}

type ProviderOffer struct {
	ProviderID      int    `json:"provider_id"`
	ProviderName    string `json:"provider_name"`
	LogoPath        string `json:"logo_path"`
	DisplayPriority int    `json:"display_priority"`
}

// MovieDetailsBundle is the combined details-page payload: movie details plus
// the watch-provider availability for the same title.
type MovieDetailsBundle struct {
	Details   *MovieDetails   `json:"details"`
	Providers *WatchProviders `json:"providers"`
}
