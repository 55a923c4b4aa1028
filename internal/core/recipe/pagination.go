package recipe

// Page 分頁結果
type Page struct {
	Items        []Recipe `json:"items"`
	CurrentPage  int      `json:"current_page"`
	TotalPages   int      `json:"total_pages"`
	TotalItems   int      `json:"total_items"`
	ShowingItems int      `json:"showing_items"`
	StartIndex   int      `json:"start_index"`
	EndIndex     int      `json:"end_index"`
	CanGoNext    bool     `json:"can_go_next"`
	CanGoPrev    bool     `json:"can_go_previous"`
}

// Paginate 取出指定頁（從 1 起算），超出範圍的頁碼會被夾到有效區間
func Paginate(items []Recipe, page, perPage int) Page {
	if perPage <= 0 {
		perPage = 20
	}
	total := len(items)
	totalPages := (total + perPage - 1) / perPage

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	pageItems := make([]Recipe, end-start)
	copy(pageItems, items[start:end])

	p := Page{
		Items:        pageItems,
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ShowingItems: len(pageItems),
		EndIndex:     end,
		CanGoNext:    page < totalPages,
		CanGoPrev:    page > 1,
	}
	if len(pageItems) > 0 {
		p.StartIndex = start + 1
	}
	return p
}
