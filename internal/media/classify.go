// Package media classifies files and describes scanned media.
package media

import (
	"strings"
)

// MediaType is the broad class of a file, decided by extension.
type MediaType string

const (
	TypeVideo MediaType = "video"
	TypeAudio MediaType = "audio"
	TypeNone  MediaType = "none"
)

// VideoExtensions are the lowercase extensions treated as video.
var VideoExtensions = map[string]bool{
	"mkv": true, "mp4": true, "avi": true, "mov": true, "wmv": true,
	"flv": true, "webm": true, "m4v": true, "mpg": true, "mpeg": true,
	"ts": true, "vob": true, "divx": true, "xvid": true,
}

// AudioExtensions are the lowercase extensions treated as audio.
var AudioExtensions = map[string]bool{
	"mp3": true, "flac": true, "wav": true, "aac": true, "ogg": true,
	"wma": true, "m4a": true, "opus": true, "aiff": true, "alac": true,
}

// Extension returns the lowercase text after the last dot of filename,
// or "" when it has no dot.
func Extension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

// Classify decides whether filename is video, audio or neither.
func Classify(filename string) MediaType {
	ext := Extension(filename)
	switch {
	case VideoExtensions[ext]:
		return TypeVideo
	case AudioExtensions[ext]:
		return TypeAudio
	default:
		return TypeNone
	}
}

// IsVideoFile reports whether filename has a video extension.
func IsVideoFile(filename string) bool {
	return Classify(filename) == TypeVideo
}

// IsAudioFile reports whether filename has an audio extension.
func IsAudioFile(filename string) bool {
	return Classify(filename) == TypeAudio
}
