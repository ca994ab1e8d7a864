// Package musicbrainz provides a rate-limited client for the MusicBrainz
// web service (https://musicbrainz.org/doc/MusicBrainz_API).
package musicbrainz

// RecordingSearch is the response of a recording search.
type RecordingSearch struct {
	Created    string      `json:"created"`
	Count      int         `json:"count"`
	Offset     int         `json:"offset"`
	Recordings []Recording `json:"recordings"`
}

// Recording is one recording search hit.
type Recording struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Score        int            `json:"score"`
	Length       int            `json:"length"` // milliseconds
	ArtistCredit []ArtistCredit `json:"artist-credit"`
	Releases     []Release      `json:"releases"`
}

// ArtistCredit names one credited artist.
type ArtistCredit struct {
	Name       string `json:"name"`
	JoinPhrase string `json:"joinphrase"`
	Artist     Artist `json:"artist"`
}

// Artist is a MusicBrainz artist.
type Artist struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SortName string `json:"sort-name"`
}

// Release is a release a recording appears on.
type Release struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

const (
	unknownArtist = "Unknown Artist"
	unknownAlbum  = "Unknown Album"
)

// Artist returns the first credited artist name.
func (r Recording) Artist() string {
	if len(r.ArtistCredit) == 0 || r.ArtistCredit[0].Name == "" {
		return unknownArtist
	}
	return r.ArtistCredit[0].Name
}

// Album returns the title of the first release.
func (r Recording) Album() string {
	if len(r.Releases) == 0 || r.Releases[0].Title == "" {
		return unknownAlbum
	}
	return r.Releases[0].Title
}

// Year returns the year of the first release, or "" when unknown.
func (r Recording) Year() string {
	if len(r.Releases) == 0 || len(r.Releases[0].Date) < 4 {
		return ""
	}
	return r.Releases[0].Date[:4]
}
