package flow

// maxMessageLen is the chunking threshold for long reports, in runes.
const maxMessageLen = 4000

// chunked splits msg at the size threshold and returns an ordered sequence of
// replies, with the next-action keyboard attached only to the final one.
func chunked(msg string, keyboard [][]string) []Reply {
	parts := chunkText(msg, maxMessageLen)
	replies := make([]Reply, 0, len(parts))
	for i, p := range parts {
		r := Reply{Text: p}
		if i == len(parts)-1 {
			r.Keyboard = keyboard
		}
		replies = append(replies, r)
	}
	return replies
}

func chunkText(s string, limit int) []string {
	runes := []rune(s)
	if len(runes) <= limit {
		return []string{s}
	}
	var parts []string
	for len(runes) > limit {
		parts = append(parts, string(runes[:limit]))
		runes = runes[limit:]
	}
	return append(parts, string(runes))
}
