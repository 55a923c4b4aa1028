package search

import "strings"

// 容許的長度差與錯字數
const (
	maxLengthDiff = 2
	maxMismatches = 2
)

// FuzzyMatch 判斷片段是否模糊符合標籤
// 先看不分大小寫的包含關係，否則在長度差不超過 2 時逐字比對，錯字不超過 2 個即符合
func FuzzyMatch(label, fragment string) bool {
	l := strings.ToLower(label)
	f := strings.ToLower(fragment)

	if strings.Contains(l, f) {
		return true
	}

	lr := []rune(l)
	fr := []rune(f)
	diff := len(lr) - len(fr)
	if diff < 0 {
		diff = -diff
	}
	if diff > maxLengthDiff {
		return false
	}

	n := len(lr)
	if len(fr) < n {
		n = len(fr)
	}

	mismatches := 0
	for i := 0; i < n; i++ {
		if lr[i] != fr[i] {
			mismatches++
			if mismatches > maxMismatches {
				return false
			}
		}
	}
	return true
}
