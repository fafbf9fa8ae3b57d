package parser

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidURL is returned for URLs no video id can be read from,
// before any network call is made.
var ErrInvalidURL = errors.New("invalid YouTube URL")

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`embed/([0-9A-Za-z_-]{11})`),
}

const (
	timedTextURL    = "https://video.google.com/timedtext"
	youtubeTimeout  = 30 * time.Second
	defaultLanguage = "en"
)

// ExtractVideoID reads the 11-character video id out of the common
// YouTube URL shapes.
func ExtractVideoID(rawURL string) (string, error) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(rawURL); m != nil {
			return m[1], nil
		}
	}
	return "", ErrInvalidURL
}

type timedText struct {
	Texts []struct {
		Value string `xml:",chardata"`
	} `xml:"text"`
}

// ExtractYouTube fetches the caption track for a video URL and returns
// the concatenated transcript. Videos without captions yield a
// descriptive error.
func ExtractYouTube(ctx context.Context, videoURL string) (string, error) {
	videoID, err := ExtractVideoID(videoURL)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, youtubeTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("lang", defaultLanguage)
	q.Set("v", videoID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, timedTextURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch transcript: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcript request failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript: %w", err)
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil || len(tt.Texts) == 0 {
		return "", fmt.Errorf("no transcript available for video %s: make sure the video has captions enabled", videoID)
	}

	parts := make([]string, 0, len(tt.Texts))
	for _, t := range tt.Texts {
		line := strings.TrimSpace(html.UnescapeString(t.Value))
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " "), nil
}
