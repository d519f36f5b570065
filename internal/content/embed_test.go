package content

import (
	"strings"
	"testing"
)

func TestVideoEmbed(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "youtube watch URL",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "youtube short URL",
			url:  "https://youtu.be/dQw4w9WgXcQ",
			want: "youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "youtube embed URL",
			url:  "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want: "youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "watch URL with extra params",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			want: "youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "non-youtube falls back to video tag",
			url:  "https://example.com/clip.mp4",
			want: `<video src="https://example.com/clip.mp4"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VideoEmbed(tt.url)
			if !strings.Contains(got, tt.want) {
				t.Errorf("VideoEmbed(%q) = %q, want it to contain %q", tt.url, got, tt.want)
			}
		})
	}

	if got := VideoEmbed("https://www.youtube.com/watch?v=abc123"); !strings.Contains(got, "<iframe") {
		t.Errorf("VideoEmbed() youtube result is not an iframe: %q", got)
	}
}

func TestLinkEmbed(t *testing.T) {
	got := LinkEmbed("https://example.com", "Example")
	if !strings.Contains(got, `href="https://example.com"`) || !strings.Contains(got, ">Example<") {
		t.Errorf("LinkEmbed() = %q", got)
	}

	// Empty text defaults to the URL itself.
	got = LinkEmbed("https://example.com", "")
	if !strings.Contains(got, ">https://example.com<") {
		t.Errorf("LinkEmbed() with empty text = %q", got)
	}
}

func TestImageEmbed(t *testing.T) {
	got := ImageEmbed("https://example.com/pic.png")
	if !strings.Contains(got, `<img src="https://example.com/pic.png"`) {
		t.Errorf("ImageEmbed() = %q", got)
	}
}

func TestAppendEmbed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		html    string
		want    string
	}{
		{"empty content", "", "<img>", "<img>"},
		{"empty html", "text", "", "text"},
		{"separated by blank line", "text", "<img>", "text\n\n<img>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AppendEmbed(tt.content, tt.html); got != tt.want {
				t.Errorf("AppendEmbed(%q, %q) = %q, want %q", tt.content, tt.html, got, tt.want)
			}
		})
	}
}
