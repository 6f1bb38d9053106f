// ABOUTME: Mapper applying response-level fixups to scraped content
// ABOUTME: Substitutes the source domain when extraction found no byline

package mappers

import (
	"net/url"
	"strings"

	"anoncast-api/core/domain"
	"anoncast-api/core/scrape"
)

// ToScrapedContent applies the author fallback: when extraction found no
// byline, the article's source domain stands in as the author.
func ToScrapedContent(content domain.ScrapedContent, sourceURL string) domain.ScrapedContent {
	if content.Author == "" || content.Author == scrape.DefaultAuthor {
		if host := sourceHost(sourceURL); host != "" {
			content.Author = host
		}
	}
	return content
}

func sourceHost(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
