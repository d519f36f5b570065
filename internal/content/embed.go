// Package content builds the inline media markup that notes embed.
// The markup is stored opaquely; nothing in the server parses or
// sanitizes it again.
package content

import (
	"fmt"
	"regexp"
)

// youtubeRe extracts the video id from watch, short and embed URLs.
var youtubeRe = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`)

// ImageEmbed returns an inline image tag for the given URL.
func ImageEmbed(url string) string {
	return fmt.Sprintf(`<img src="%s" alt="Image">`, url)
}

// VideoEmbed returns an embedded player for the given URL. YouTube URLs
// become an iframe pointing at the embed endpoint; anything else falls
// back to a plain video tag.
func VideoEmbed(url string) string {
	if m := youtubeRe.FindStringSubmatch(url); m != nil {
		return fmt.Sprintf(`<iframe width="100%%" style="aspect-ratio: 16/9;" src="https://www.youtube.com/embed/%s" frameborder="0" allowfullscreen></iframe>`, m[1])
	}
	return fmt.Sprintf(`<video src="%s" controls style="width: 100%%;"></video>`, url)
}

// LinkEmbed returns an anchor tag for the given URL. When text is empty
// the URL itself is used as the link text.
func LinkEmbed(url, text string) string {
	if text == "" {
		text = url
	}
	return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`, url, text)
}

// AppendEmbed appends an embed to existing note content, separating
// blocks with a blank line.
func AppendEmbed(content, html string) string {
	if html == "" {
		return content
	}
	if content == "" {
		return html
	}
	return content + "\n\n" + html
}
