// ABOUTME: Service layer implementation for podcast RSS feed generation
// ABOUTME: Renders a show and its episodes as an RSS 2.0 document with iTunes tags

package feed

import (
	"context"
	"encoding/xml"
	"strings"
	"time"

	"anoncast-api/core/domain"
	"anoncast-api/core/errors"
	"anoncast-api/core/interfaces"
)

// fallbackAuthor is used when a show has no author recorded
const fallbackAuthor = "anoncast.net"

// Service builds podcast feeds from stored shows and episodes
type Service struct {
	deps    interfaces.Dependencies
	storage interfaces.EpisodeStorage
}

// NewService creates a new feed service
func NewService(deps interfaces.Dependencies, storage interfaces.EpisodeStorage) *Service {
	return &Service{
		deps:    deps,
		storage: storage,
	}
}

// rss is the RSS 2.0 document root with the iTunes podcast namespaces
type rss struct {
	XMLName   xml.Name `xml:"rss"`
	Version   string   `xml:"version,attr"`
	ItunesNS  string   `xml:"xmlns:itunes,attr"`
	ContentNS string   `xml:"xmlns:content,attr"`
	Channel   channel  `xml:"channel"`
}

type channel struct {
	Title          string      `xml:"title"`
	Link           string      `xml:"link,omitempty"`
	Description    string      `xml:"description"`
	Language       string      `xml:"language"`
	LastBuildDate  string      `xml:"lastBuildDate"`
	ItunesAuthor   string      `xml:"itunes:author"`
	ItunesSummary  string      `xml:"itunes:summary"`
	ItunesExplicit string      `xml:"itunes:explicit"`
	ItunesType     string      `xml:"itunes:type"`
	ItunesImage    *itunesImg  `xml:"itunes:image,omitempty"`
	ItunesCategory *itunesCat  `xml:"itunes:category,omitempty"`
	ItunesOwner    itunesOwner `xml:"itunes:owner"`
	Items          []item      `xml:"item"`
}

type itunesImg struct {
	Href string `xml:"href,attr"`
}

type itunesCat struct {
	Text string `xml:"text,attr"`
}

type itunesOwner struct {
	Name string `xml:"itunes:name"`
}

type item struct {
	Title          string     `xml:"title"`
	Description    string     `xml:"description"`
	GUID           guid       `xml:"guid"`
	PubDate        string     `xml:"pubDate"`
	Enclosure      enclosure  `xml:"enclosure"`
	ItunesDuration int        `xml:"itunes:duration"`
	ItunesImage    *itunesImg `xml:"itunes:image,omitempty"`
	ItunesExplicit string     `xml:"itunes:explicit"`
}

type guid struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type enclosure struct {
	URL    string `xml:"url,attr"`
	Length int64  `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}

// Feed renders the show's RSS 2.0 feed as bytes
func (s *Service) Feed(ctx context.Context, showID string) ([]byte, error) {
	if showID == "" {
		return nil, &errors.ValidationError{Field: "showId", Message: "show ID is required"}
	}

	show, err := s.storage.GetShow(ctx, showID)
	if err != nil {
		return nil, errors.WrapError(err, "failed to load show")
	}
	if show == nil {
		return nil, &errors.NotFoundError{Resource: "show", ID: showID}
	}

	episodes, err := s.storage.ListEpisodesByShow(ctx, showID)
	if err != nil {
		return nil, errors.WrapError(err, "failed to load episodes")
	}

	author := show.Author
	if author == "" {
		author = fallbackAuthor
	}

	doc := rss{
		Version:   "2.0",
		ItunesNS:  "http://www.itunes.com/dtds/podcast-1.0.dtd",
		ContentNS: "http://purl.org/rss/1.0/modules/content/",
		Channel: channel{
			Title:          show.Title,
			Description:    show.Description,
			Language:       "en-us",
			LastBuildDate:  time.Now().UTC().Format(time.RFC1123Z),
			ItunesAuthor:   author,
			ItunesSummary:  show.Description,
			ItunesExplicit: "no",
			ItunesType:     "episodic",
			ItunesCategory: &itunesCat{Text: "Technology"},
			ItunesOwner:    itunesOwner{Name: author},
		},
	}

	if show.ImageURL != "" {
		doc.Channel.ItunesImage = &itunesImg{Href: artworkURL(show.ImageURL)}
	}

	for _, ep := range episodes {
		doc.Channel.Items = append(doc.Channel.Items, buildItem(ep))
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.WrapError(err, "failed to render feed")
	}

	return append([]byte(xml.Header), out...), nil
}

// buildItem maps one episode to an RSS item
func buildItem(ep domain.Episode) item {
	length := ep.FileSize
	if length == 0 {
		// Podcast directories require a length; estimate from the
		// duration at the synthesis bitrate
		length = int64(ep.Duration) * 16000
	}

	it := item{
		Title:       ep.Title,
		Description: ep.Description,
		GUID:        guid{IsPermaLink: "false", Value: ep.ID},
		PubDate:     ep.PublishedAt.UTC().Format(time.RFC1123Z),
		Enclosure: enclosure{
			URL:    ep.AudioURL,
			Length: length,
			Type:   "audio/mpeg",
		},
		ItunesDuration: ep.Duration,
		ItunesExplicit: "no",
	}

	if ep.ImageURL != "" {
		it.ItunesImage = &itunesImg{Href: artworkURL(ep.ImageURL)}
	}

	return it
}

// artworkURL rewrites PNG artwork to JPEG. Some podcast directories reject
// PNG episode art; the image proxy serves either extension.
func artworkURL(imageURL string) string {
	if strings.HasSuffix(imageURL, ".png") {
		return strings.TrimSuffix(imageURL, ".png") + ".jpg"
	}
	return imageURL
}
