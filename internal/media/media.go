// Package media resolves the media attached to project stages into embeddable targets.
package media

import (
	"errors"
	"fmt"
	"regexp"
)

// Kind is the closed set of media types a stage can carry.
type Kind string

const (
	Image   Kind = "image"
	YouTube Kind = "youtube"
	PDF     Kind = "pdf"
	GIF     Kind = "gif"
)

// PlaceholderImage is shown in place of a video whose id could not be extracted.
const PlaceholderImage = "/static/placeholder.svg"

var ErrNoVideoID = errors.New("no youtube video id")

// ParseKind validates a kind read from content data.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case Image, YouTube, PDF, GIF:
		return k, nil
	}
	return "", fmt.Errorf("unknown media kind %q", s)
}

// Media is a single entry in a stage's media list.
type Media struct {
	Kind Kind   `yaml:"type" json:"type"`
	Src  string `yaml:"src" json:"src"`
	Alt  string `yaml:"alt,omitempty" json:"alt,omitempty"`
}

var (
	youtubeRe = regexp.MustCompile(`^.*(youtu.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)
	driveRe   = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)
)

// YouTubeID extracts the 11 character video id from a youtube URL.
func YouTubeID(url string) (string, error) {
	m := youtubeRe.FindStringSubmatch(url)
	if m == nil || len(m[2]) != 11 {
		return "", fmt.Errorf("%w: %s", ErrNoVideoID, url)
	}
	return m[2], nil
}

// DrivePreviewURL rewrites a Drive document URL into its preview URL.
// URLs without a file id segment are returned unchanged.
func DrivePreviewURL(url string) string {
	m := driveRe.FindStringSubmatch(url)
	if m == nil || m[1] == "" {
		return url
	}
	return "https://drive.google.com/file/d/" + m[1] + "/preview"
}

// Embed is what the templates render for one media entry.
type Embed struct {
	Kind        Kind
	Src         string // iframe or img target
	Original    string // link for "open in new tab"
	Title       string
	Badge       string
	Frame       bool
	Placeholder bool
}

// Resolve maps a media entry to its embed. fallbackTitle is used when the
// entry has no alt text. The error is non-nil only when a placeholder was
// substituted; the returned Embed is always renderable.
func Resolve(m Media, fallbackTitle string) (Embed, error) {
	title := m.Alt
	if title == "" {
		title = fallbackTitle
	}
	e := Embed{Kind: m.Kind, Original: m.Src, Title: title}

	switch m.Kind {
	case YouTube:
		id, err := YouTubeID(m.Src)
		if err != nil {
			e.Src = PlaceholderImage
			e.Placeholder = true
			return e, err
		}
		e.Src = "https://www.youtube.com/embed/" + id
		e.Frame = true
		e.Badge = "YouTube"
	case PDF:
		e.Src = DrivePreviewURL(m.Src)
		e.Frame = true
		e.Badge = "PDF"
	case Image, GIF:
		e.Src = m.Src
	default:
		return e, fmt.Errorf("unknown media kind %q", m.Kind)
	}
	return e, nil
}
