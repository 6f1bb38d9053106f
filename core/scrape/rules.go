// ABOUTME: Per-platform selector rule tables for the platform-specific extraction strategy
// ABOUTME: Rules are pure data (selector candidates plus filters), not imperative code

package scrape

import "anoncast-api/core/domain"

// platformRules collects the CSS selector candidates tuned to one
// platform's typical markup. Selector lists are tried in order; the first
// selector that matches anything wins for that field. The lists are
// illustrative of each platform's usual DOM, not exhaustive.
type platformRules struct {
	// title candidates, most specific first
	title []string

	// author byline candidates
	author []string

	// publish date candidates; content attribute preferred, else text
	date []string

	// hero image candidates; src/content attribute is taken
	image []string

	// content lists container selectors whose paragraph-level children
	// become narration paragraphs
	content []string

	// excludePhrases extends the global boilerplate denylist with
	// platform-specific chrome ("min read" labels, subscribe prompts)
	excludePhrases []string
}

// rulesByPlatform maps each known platform label to its rule table.
// Custom has no entry: the platform strategy is skipped for it and the
// generic chain takes over directly.
var rulesByPlatform = map[string]platformRules{
	domain.PlatformMedium: {
		title:  []string{`h1[data-testid="storyTitle"]`, "article h1", "h1"},
		author: []string{`a[data-testid="authorName"]`, `meta[name="author"]`, `a[rel="author"]`},
		date:   []string{`meta[property="article:published_time"]`, `article time`},
		image:  []string{`meta[property="og:image"]`, "article figure img"},
		content: []string{
			"article section",
			"article",
		},
		excludePhrases: []string{
			"min read",
			"listen",
			"follow",
			"sign up",
			"sign in",
			"open in app",
			"member-only",
			"write",
		},
	},
	domain.PlatformSubstack: {
		title:  []string{"h1.post-title", ".post-header h1", "h1"},
		author: []string{".byline-names a", `meta[name="author"]`, ".pencraft a[href*='/profile/']"},
		date:   []string{`meta[property="article:published_time"]`, ".post-header time"},
		image:  []string{`meta[property="og:image"]`, ".available-content img"},
		content: []string{
			".available-content .body.markup",
			".available-content",
			".body.markup",
		},
		excludePhrases: []string{
			"subscribe",
			"share this post",
			"leave a comment",
			"upgrade to paid",
			"thanks for reading",
			"discussion about this post",
		},
	},
	domain.PlatformWordPress: {
		title:  []string{"h1.entry-title", ".post-title", "article h1", "h1"},
		author: []string{".entry-meta .author a", `a[rel="author"]`, ".byline .author", `meta[name="author"]`},
		date:   []string{`meta[property="article:published_time"]`, "time.entry-date", ".entry-meta time"},
		image:  []string{`meta[property="og:image"]`, ".wp-post-image", ".entry-content img"},
		content: []string{
			".entry-content",
			".post-content",
			"article .content",
		},
		excludePhrases: []string{
			"related posts",
			"leave a reply",
			"posted in",
			"tagged",
		},
	},
	domain.PlatformGhost: {
		title:  []string{"h1.article-title", "h1.post-full-title", "article h1", "h1"},
		author: []string{".author-name", ".gh-article-author a", `meta[name="author"]`},
		date:   []string{`meta[property="article:published_time"]`, "time.post-full-meta-date", "article time"},
		image:  []string{`meta[property="og:image"]`, ".post-full-image img", ".gh-feature-image img"},
		content: []string{
			".gh-content",
			".post-full-content",
			"article .post-content",
		},
		excludePhrases: []string{
			"subscribe",
			"sign up",
			"read more",
		},
	},
}
