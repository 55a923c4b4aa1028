package search

import "strings"

// RemoveToken 從查詢中移除某個篩選 chip 對應的片段
// freeText chip 由多個字組成，其中每個字都會被移除
func RemoveToken(query string, token Token) string {
	drop := map[string]struct{}{token.Original: {}}
	if token.Type == TokenFreeText {
		for _, w := range strings.Fields(token.Original) {
			drop[w] = struct{}{}
		}
	}

	fragments := strings.Fields(query)
	kept := fragments[:0]
	for _, f := range fragments {
		if _, ok := drop[f]; ok {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}
