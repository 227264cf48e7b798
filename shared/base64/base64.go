package base64

import (
	b64 "encoding/base64"
	"fmt"
	"strings"
)

// GetContentType extracts the mime type from a data URL payload
// (data:image/jpeg;base64,...). Returns "" when the payload is not a data URL.
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// Decode strips the data URL prefix and decodes the base64 body.
func Decode(file string) ([]byte, error) {
	idx := strings.Index(file, ";base64,")
	if idx != -1 {
		file = file[idx+len(";base64,"):]
	}

	data, err := b64.StdEncoding.DecodeString(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	return data, nil
}
