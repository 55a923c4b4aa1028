package recipe

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eatro/internal/core/cache"
	"eatro/internal/core/recipe"
	"eatro/internal/core/search"
	"eatro/internal/infrastructure/config"
	"eatro/internal/pkg/common"
)

// Handler 食譜瀏覽、搜尋與推薦的處理器
type Handler struct {
	catalog     CatalogReader
	cache       *cache.Manager
	classifier  *search.Classifier
	recommender Recommender
	profiles    PreferenceReader
	search      config.SearchConfig
}

// NewHandler 創建處理器；cacheManager 可為 nil
func NewHandler(
	catalog CatalogReader,
	cacheManager *cache.Manager,
	recommender Recommender,
	profiles PreferenceReader,
	searchCfg config.SearchConfig,
) *Handler {
	if searchCfg.PerPage <= 0 {
		searchCfg.PerPage = 20
	}
	if searchCfg.MaxPerPage < searchCfg.PerPage {
		searchCfg.MaxPerPage = searchCfg.PerPage
	}
	return &Handler{
		catalog:     catalog,
		cache:       cacheManager,
		classifier:  search.NewClassifier(search.DefaultVocabulary()),
		recommender: recommender,
		profiles:    profiles,
		search:      searchCfg,
	}
}

// ListResponse 食譜列表響應
type ListResponse struct {
	recipe.Page
	Filter recipe.FacetFilter `json:"filter"`
	Sort   string             `json:"sort"`
}

// SearchResponse 智慧搜尋響應
type SearchResponse struct {
	Query   string          `json:"query"`
	Tokens  []search.Token  `json:"tokens"`
	Recipes []recipe.Recipe `json:"recipes"`
	Total   int             `json:"total"`
	Cached  bool            `json:"cached"`
}

// RemoveFilterRequest 移除搜尋條件
type RemoveFilterRequest struct {
	Query string       `json:"query" binding:"required"`
	Token search.Token `json:"token"`
}

// HandleOptions 回傳篩選與排序選項
func (h *Handler) HandleOptions(c *gin.Context) {
	c.JSON(http.StatusOK, recipe.Options())
}

// HandleList 依下拉篩選、排序與分頁列出食譜
func (h *Handler) HandleList(c *gin.Context) {
	sortKey := strings.TrimSpace(c.DefaultQuery("sort", recipe.SortByName))
	if !recipe.IsSortKey(sortKey) {
		common.WriteError(c, common.NewValidationError("不支援的排序方式: "+sortKey))
		return
	}

	recipes, _, err := h.catalog.Get(c.Request.Context(), false)
	if err != nil {
		common.WriteError(c, err)
		return
	}

	filter := recipe.FacetFilter{
		SearchTerm:  c.Query("q"),
		Cuisines:    queryList(c, "cuisine"),
		MealTypes:   queryList(c, "meal_type"),
		HealthGoals: queryList(c, "health_goal"),
	}

	perPage := queryInt(c, "per_page", h.search.PerPage)
	if perPage <= 0 {
		perPage = h.search.PerPage
	}
	if perPage > h.search.MaxPerPage {
		perPage = h.search.MaxPerPage
	}

	sorted := recipe.Sort(recipe.FilterByFacets(recipes, filter), sortKey)
	c.JSON(http.StatusOK, ListResponse{
		Page:   recipe.Paginate(sorted, queryInt(c, "page", 1), perPage),
		Filter: filter,
		Sort:   sortKey,
	})
}

// HandleGet 依 ID 取得單一食譜
func (h *Handler) HandleGet(c *gin.Context) {
	recipes, _, err := h.catalog.Get(c.Request.Context(), false)
	if err != nil {
		common.WriteError(c, err)
		return
	}

	r, ok := recipe.FindByID(recipes, c.Param("id"))
	if !ok {
		common.WriteError(c, common.ErrRecipeNotFound)
		return
	}
	c.JSON(http.StatusOK, r)
}

// HandleRefresh 強制重新抓取目錄並清除搜尋緩存
func (h *Handler) HandleRefresh(c *gin.Context) {
	recipes, _, err := h.catalog.Get(c.Request.Context(), true)
	if err != nil {
		common.WriteError(c, err)
		return
	}
	h.cache.Clear()

	common.LogInfo("目錄已手動刷新",
		zap.Int("count", len(recipes)),
		zap.String("request_id", common.RequestID(c)),
	)
	c.JSON(http.StatusOK, h.catalog.Status())
}

// HandleSearch 智慧搜尋：分類查詢字詞並篩選
func (h *Handler) HandleSearch(c *gin.Context) {
	query := c.Query("q")

	snap, err := h.catalog.Current(c.Request.Context())
	if err != nil {
		common.WriteError(c, err)
		return
	}
	version := catalogVersion(snap)

	if cached, err := h.cache.Get(query, version); err == nil {
		var resp SearchResponse
		if err := common.ParseJSON(cached, &resp); err == nil {
			resp.Cached = true
			c.JSON(http.StatusOK, resp)
			return
		}
		common.LogWarn("搜尋緩存內容無法解析", zap.String("query", query))
	} else if !errors.Is(err, common.ErrCacheMiss) {
		common.LogDebug("搜尋緩存不可用", zap.Error(err))
	}

	result := h.classifier.Search(snap.Recipes, query)
	resp := SearchResponse{
		Query:   query,
		Tokens:  result.Tokens,
		Recipes: result.Recipes,
		Total:   len(result.Recipes),
	}
	if resp.Tokens == nil {
		resp.Tokens = []search.Token{}
	}

	if encoded, err := common.ToJSON(resp); err == nil {
		if err := h.cache.Set(query, version, encoded); err != nil && !errors.Is(err, common.ErrCacheFull) {
			common.LogDebug("搜尋結果未寫入緩存", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, resp)
}

// HandleRemoveFilter 從查詢移除一個條件並重新搜尋
func (h *Handler) HandleRemoveFilter(c *gin.Context) {
	var req RemoveFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.WriteError(c, common.ErrInvalidRequest.Wrap(err))
		return
	}

	recipes, _, err := h.catalog.Get(c.Request.Context(), false)
	if err != nil {
		common.WriteError(c, err)
		return
	}

	query := search.RemoveToken(req.Query, req.Token)
	result := h.classifier.Search(recipes, query)
	tokens := result.Tokens
	if tokens == nil {
		tokens = []search.Token{}
	}
	c.JSON(http.StatusOK, SearchResponse{
		Query:   query,
		Tokens:  tokens,
		Recipes: result.Recipes,
		Total:   len(result.Recipes),
	})
}
