// Package youtube extracts video identifiers from YouTube URLs and fetches
// video metadata from the Data API.
package youtube

import "regexp"

// videoIDLength is the fixed length of a YouTube video identifier.
const videoIDLength = 11

// videoIDPattern matches the URL shapes that carry a video identifier:
// youtu.be/<id>, /v/<id>, /u/<n>/<id>, embed/<id>, and watch?v=<id>
// (including extra query parameters before v=).
var videoIDPattern = regexp.MustCompile(`(?:youtu\.be/|/v/|/u/\w/|embed/|watch\?(?:[^#?]*&)?v=)([^#&?/]+)`)

// ExtractVideoID returns the 11-character video identifier named by url, or
// the empty string when the URL does not name a YouTube video. It accepts
// any input, including malformed URLs and non-URL text.
func ExtractVideoID(url string) string {
	if url == "" {
		return ""
	}
	match := videoIDPattern.FindStringSubmatch(url)
	if match == nil || len(match[1]) != videoIDLength {
		return ""
	}
	return match[1]
}

// WatchURL returns the canonical watch URL for a video identifier.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// ThumbnailURL returns the static thumbnail address for a video identifier.
func ThumbnailURL(videoID string) string {
	return "https://img.youtube.com/vi/" + videoID + "/default.jpg"
}
