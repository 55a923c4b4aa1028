package recipe

import (
	"sort"
	"strconv"
	"strings"
)

// 排序鍵
const (
	SortByName         = "name"
	SortByNewest       = "newest"
	SortByPopularity   = "popularity"
	SortByCaloriesLow  = "calories-low"
	SortByCaloriesHigh = "calories-high"
	SortByProteinHigh  = "protein-high"
	SortByProteinLow   = "protein-low"
)

// IsSortKey 是否為支援的排序鍵
func IsSortKey(key string) bool {
	for _, opt := range sortOptions {
		if opt.Value == key {
			return true
		}
	}
	return false
}

// Sort 回傳排序後的新切片，不修改輸入；未知的排序鍵保留原順序
func Sort(recipes []Recipe, key string) []Recipe {
	sorted := make([]Recipe, len(recipes))
	copy(sorted, recipes)

	var less func(a, b Recipe) bool
	switch key {
	case SortByName:
		less = func(a, b Recipe) bool {
			la, lb := strings.ToLower(a.Name), strings.ToLower(b.Name)
			if la != lb {
				return la < lb
			}
			return a.Name < b.Name
		}
	case SortByNewest:
		// ID 越大越新
		less = func(a, b Recipe) bool { return idNumber(a.ID) > idNumber(b.ID) }
	case SortByPopularity:
		// ID 越小越熱門
		less = func(a, b Recipe) bool { return idNumber(a.ID) < idNumber(b.ID) }
	case SortByCaloriesLow:
		less = func(a, b Recipe) bool { return a.Calories < b.Calories }
	case SortByCaloriesHigh:
		less = func(a, b Recipe) bool { return a.Calories > b.Calories }
	case SortByProteinHigh:
		less = func(a, b Recipe) bool { return a.Protein > b.Protein }
	case SortByProteinLow:
		less = func(a, b Recipe) bool { return a.Protein < b.Protein }
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// idNumber 將 ID 解析為數字，非數字 ID 視為 0
func idNumber(id string) int {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return 0
	}
	return n
}
