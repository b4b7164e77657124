package pricefeed

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/armctay85/FitMunch-sub002/internal/catalog"
)

// Importer refreshes catalog price estimates by scraping a supermarket
// product-search page. The static price book stays the source of truth for
// aisles and units; only prices are overridden.
type Importer struct {
	searchURL  string // e.g. "https://store.example/search?q=%s"
	httpClient *http.Client
	repo       *Repository
}

// NewImporter creates an Importer against the given search URL pattern.
// The pattern must contain a single %s placeholder for the escaped query.
func NewImporter(searchURL string, repo *Repository) *Importer {
	return &Importer{
		searchURL: searchURL,
		repo:      repo,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Refresh fetches a price for every given catalog key and stores the
// results as overrides. Keys that fail to resolve are logged and skipped;
// a partial refresh is still a useful refresh.
func (i *Importer) Refresh(ctx context.Context, keys []string) (int, error) {
	updated := 0
	for _, key := range keys {
		price, err := i.fetchPrice(ctx, key)
		if err != nil {
			log.Printf("Price refresh for '%s' failed: %v", key, err)
			continue
		}

		if err := i.repo.Upsert(ctx, Override{Key: key, Price: price, Source: i.searchURL}); err != nil {
			return updated, fmt.Errorf("failed to store override for '%s': %w", key, err)
		}
		updated++
	}
	return updated, nil
}

// fetchPrice fetches the search page for one key and returns the first
// product tile's price.
func (i *Importer) fetchPrice(ctx context.Context, key string) (float64, error) {
	pageURL := fmt.Sprintf(i.searchURL, url.QueryEscape(key))

	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch search page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("search page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to parse search page: %w", err)
	}

	var price float64
	var parseErr error
	found := false
	doc.Find(".product-tile .product-price").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		price, parseErr = parsePrice(s.Text())
		if parseErr != nil {
			return true // keep looking, some tiles carry "$-.--" placeholders
		}
		found = true
		return false
	})

	if !found {
		return 0, fmt.Errorf("no priced product tile on page")
	}
	return price, nil
}

// parsePrice extracts a dollar amount from text like "$4.50", "4.50" or
// "$4.50 / 1kg".
func parsePrice(text string) (float64, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "$")
	if idx := strings.IndexAny(text, " /"); idx >= 0 {
		text = text[:idx]
	}

	price, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable price %q: %w", text, err)
	}
	if price <= 0 {
		return 0, fmt.Errorf("non-positive price %q", text)
	}
	return price, nil
}

// Apply overlays stored overrides on a catalog. Overrides for keys no
// longer in the price book are ignored.
func Apply(ctx context.Context, c *catalog.Catalog, repo *Repository) error {
	overrides, err := repo.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load price overrides: %w", err)
	}

	for _, o := range overrides {
		if !c.SetPrice(o.Key, o.Price) {
			log.Printf("Ignoring stale price override for unknown key '%s'", o.Key)
		}
	}
	return nil
}
