package domain

import (
	"fmt"
	"strings"
)

// urlSeparator joins tracking numbers inside one URL query parameter.
// The carrier tracking page expects a percent-encoded comma.
const urlSeparator = "%2C"

// ChunkTrackingURLs partitions trackingNumbers into consecutive groups of at
// most chunkSize and renders each group into one carrier URL using the given
// template (a single %s placeholder). Input order is preserved; an empty
// input yields an empty list.
func ChunkTrackingURLs(trackingNumbers []string, urlTemplate string, chunkSize int) []string {
	if chunkSize < 1 {
		chunkSize = 1
	}

	urls := make([]string, 0, (len(trackingNumbers)+chunkSize-1)/chunkSize)

	for start := 0; start < len(trackingNumbers); start += chunkSize {
		end := start + chunkSize
		if end > len(trackingNumbers) {
			end = len(trackingNumbers)
		}
		joined := strings.Join(trackingNumbers[start:end], urlSeparator)
		urls = append(urls, fmt.Sprintf(urlTemplate, joined))
	}

	return urls
}
