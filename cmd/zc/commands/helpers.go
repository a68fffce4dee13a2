package commands

// truncate shortens a string to maxLen runes, adding "..." if truncated.
// Counting runes keeps multi-byte descriptions from being cut mid-character.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
