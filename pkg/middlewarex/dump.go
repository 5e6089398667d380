package middlewarex

const truncatedSuffix = "...(truncated)"

// truncate обрезает дамп до maxLen байт. maxLen <= 0 отключает ограничение.
func truncate(dump []byte, maxLen int) []byte {
	if maxLen <= 0 || len(dump) <= maxLen {
		return dump
	}

	out := make([]byte, 0, maxLen+len(truncatedSuffix))
	out = append(out, dump[:maxLen]...)

	return append(out, truncatedSuffix...)
}
