package utils

import "fmt"

// ShortenHash keeps the head and tail of a digest for log lines.
func ShortenHash(hash string) string {
	indexCut := 8
	if len(hash) <= 8 {
		return hash
	} else if len(hash) <= 16 {
		indexCut = 4
	}
	return fmt.Sprintf("%s...%s", hash[:indexCut], hash[len(hash)-indexCut:])
}
