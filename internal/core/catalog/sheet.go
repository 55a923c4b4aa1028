package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"eatro/internal/core/recipe"
	"eatro/internal/infrastructure/config"
	"eatro/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Source 食譜來源
type Source interface {
	Fetch(ctx context.Context) ([]recipe.Recipe, error)
}

// SheetClient 試算表 Apps Script 端點客戶端
type SheetClient struct {
	client *resty.Client
	url    string
}

// NewSheetClient 創建試算表客戶端
func NewSheetClient(cfg config.CatalogConfig) *SheetClient {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &SheetClient{
		client: client,
		url:    cfg.URL,
	}
}

// Fetch 取得並轉換所有食譜列
func (s *SheetClient) Fetch(ctx context.Context) ([]recipe.Recipe, error) {
	start := time.Now()

	resp, err := s.client.R().
		SetContext(ctx).
		Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to request recipe sheet: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("recipe sheet returned status %d", resp.StatusCode())
	}

	var rows []map[string]interface{}
	if err := common.ParseJSONBytes(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("failed to parse recipe sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, common.ErrCatalogEmpty
	}

	recipes := make([]recipe.Recipe, 0, len(rows))
	for i, row := range rows {
		recipes = append(recipes, MapRow(row, i))
	}

	common.LogDebug("試算表資料已轉換",
		zap.Int("rows", len(rows)),
		zap.Duration("duration", time.Since(start)),
	)
	return recipes, nil
}

var (
	stepStartRe   = regexp.MustCompile(`\d+\.\s`)
	stepNumberRe  = regexp.MustCompile(`^\d+\.\s*`)
	stepTrailRe   = regexp.MustCompile(`\.\s*$`)
	listSepRe     = regexp.MustCompile(`[,;]`)
	leadingNumber = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`)
)

// MapRow 將試算表的一列轉成食譜，ID 為從 1 起算的列號
func MapRow(row map[string]interface{}, index int) recipe.Recipe {
	notes := strings.TrimSpace(cell(row, "Notes"))
	steps := cell(row, "Steps")

	imageURL := strings.TrimSpace(cell(row, "Image"))
	if imageURL == "" {
		imageURL = recipe.DefaultImageURL
	}

	r := recipe.Recipe{
		ID:           strconv.Itoa(index + 1),
		Name:         cell(row, "Name"),
		Cuisine:      cell(row, "Cuisine"),
		MealType:     recipe.NewLabelList(splitList(cell(row, "Meal Type"))...),
		HealthGoals:  recipe.NewLabelList(splitList(cell(row, "Health Goals"))...),
		ImageURL:     imageURL,
		Description:  notes,
		Instructions: strings.TrimSpace(strings.ReplaceAll(steps, "\n", " ")),
		Ingredients:  splitLines(cell(row, "Ingredients")),
		Steps:        splitSteps(steps),
		Notes:        notes,
		Calories:     parseNumber(row["Calories"]),
		Protein:      parseNumber(row["Protein"]),
		Fat:          parseNumber(row["Fat"]),
		Carbs:        parseNumber(row["Carbs"]),
	}
	return r.Normalize()
}

// cell 取出欄位文字，數字欄位也轉為字串
func cell(row map[string]interface{}, key string) string {
	switch v := row[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// parseNumber 取開頭的數字，無法解析時為 0
func parseNumber(v interface{}) float64 {
	var s string
	switch n := v.(type) {
	case json.Number:
		s = n.String()
	case float64:
		return n
	case string:
		s = n
	default:
		return 0
	}

	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}

func splitList(text string) []string {
	if text == "" {
		return nil
	}
	return trimAll(listSepRe.Split(text, -1))
}

func splitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	return trimAll(strings.Split(text, "\n"))
}

// splitSteps 依 "1. 2. 3." 編號切分步驟
func splitSteps(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	var segments []string
	last := 0
	for _, loc := range stepStartRe.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, text[last:loc[0]])
		}
		last = loc[0]
	}
	segments = append(segments, text[last:])

	steps := make([]string, 0, len(segments))
	for _, seg := range segments {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		seg = stepNumberRe.ReplaceAllString(seg, "")
		seg = stepTrailRe.ReplaceAllString(seg, "")
		if seg = strings.TrimSpace(seg); seg != "" {
			steps = append(steps, seg)
		}
	}
	return steps
}

func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
