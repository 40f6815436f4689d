package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Default values exported for callers that construct configs by hand.
const (
	DefaultQuery       = "golang tutorial"
	DefaultBaseURL     = "https://www.google.com"
	DefaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
	DefaultFollowDepth = 1
)

// Config holds all application configuration.
type Config struct {
	Browser BrowserConfig
	Search  SearchConfig
	Crawl   CrawlConfig
	Output  OutputConfig
	Log     LogConfig
}

// BrowserConfig controls the browser instance behind the session.
type BrowserConfig struct {
	// Headless controls whether the browser runs headless.
	Headless bool // default: true

	// NoSandbox disables Chrome's sandbox (needed in Docker).
	NoSandbox bool // default: false

	// BrowserBin overrides the Chromium binary path.
	BrowserBin string

	// DefaultProxy is the proxy URL for all requests.
	DefaultProxy string

	// UserAgent is sent on every page. Empty keeps the browser default.
	UserAgent string
}

// CategorySet selects which result regions the aggregator extracts.
// A disabled category is skipped entirely: its field stays absent from the
// aggregate rather than empty.
type CategorySet struct {
	Organic   bool
	Featured  bool
	Questions bool
	Related   bool
	Videos    bool
	Images    bool
}

// AllCategories enables every region.
func AllCategories() CategorySet {
	return CategorySet{
		Organic:   true,
		Featured:  true,
		Questions: true,
		Related:   true,
		Videos:    true,
		Images:    true,
	}
}

// SearchConfig controls the search run itself.
type SearchConfig struct {
	// BaseURL is the search surface to drive.
	BaseURL string // default: DefaultBaseURL

	// DefaultQuery is used when the CLI receives no positional query.
	DefaultQuery string // default: DefaultQuery

	// Categories selects the regions to extract.
	Categories CategorySet // default: all enabled

	// NavTimeout bounds each navigation.
	NavTimeout time.Duration // default: 20s

	// ResultsTimeout bounds the wait for the results container after submit.
	// Expiry is logged and the run continues; extractors re-check their own
	// regions.
	ResultsTimeout time.Duration // default: 10s

	// FirstRegionTimeout bounds the wait for the organic region, which
	// materializes last on slow renders.
	FirstRegionTimeout time.Duration // default: 8s

	// RegionTimeout bounds the wait for every other region.
	RegionTimeout time.Duration // default: 5s

	// SettleDelay is slept after navigation and after submission to absorb
	// asynchronous rendering before extractors start polling.
	SettleDelay time.Duration // default: 2s

	// FollowUpDepth is passed to the follow-up resolver. Values above one
	// are accepted but a single call still performs at most one hop.
	FollowUpDepth int // default: 1
}

// CrawlConfig controls the bounded multi-URL follow-up batch.
type CrawlConfig struct {
	// Enabled turns on the batch crawl of the remaining organic URLs
	// after the search run.
	Enabled bool // default: false

	// Concurrency is the number of concurrent fetch units. Each unit owns
	// its own page; pages are never shared.
	Concurrency int // default: 3

	// MaxURLs caps the batch size.
	MaxURLs int // default: 10

	// RatePerSecond is the sustained request rate across all units.
	RatePerSecond float64 // default: 1

	// HTTPTimeout is the deadline for the HTTP-first fetch attempt.
	HTTPTimeout time.Duration // default: 8s

	// PageTimeout is the deadline for a browser fallback fetch.
	PageTimeout time.Duration // default: 20s

	// CacheTTL bounds how long a fetched capture may be reused for a
	// repeated URL. Zero disables the cache.
	CacheTTL time.Duration // default: 15m

	// CacheSize caps the number of cached captures.
	CacheSize int // default: 128
}

// OutputConfig controls result persistence.
type OutputConfig struct {
	// Formats lists the encodings to write, one file each.
	Formats []string // default: ["json", "txt", "csv", "html"]

	// Screenshot captures search-results.png alongside the result files.
	Screenshot bool // default: true

	// WebhookURL, when set, receives a signed completion event after the
	// result files are written.
	WebhookURL string

	// WebhookSecret signs the webhook payload with HMAC-SHA256.
	WebhookSecret string
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "text"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Browser: BrowserConfig{
			Headless:     envBoolOr("PUP_HEADLESS", true),
			NoSandbox:    envBoolOr("PUP_NO_SANDBOX", false),
			BrowserBin:   os.Getenv("PUP_BROWSER_BIN"),
			DefaultProxy: os.Getenv("PUP_PROXY"),
			UserAgent:    envOr("PUP_USER_AGENT", DefaultUserAgent),
		},
		Search: SearchConfig{
			BaseURL:            envOr("PUP_BASE_URL", DefaultBaseURL),
			DefaultQuery:       envOr("PUP_DEFAULT_QUERY", DefaultQuery),
			Categories:         AllCategories(),
			NavTimeout:         envDurationOr("PUP_NAV_TIMEOUT", 20*time.Second),
			ResultsTimeout:     envDurationOr("PUP_RESULTS_TIMEOUT", 10*time.Second),
			FirstRegionTimeout: envDurationOr("PUP_FIRST_REGION_TIMEOUT", 8*time.Second),
			RegionTimeout:      envDurationOr("PUP_REGION_TIMEOUT", 5*time.Second),
			SettleDelay:        envDurationOr("PUP_SETTLE_DELAY", 2*time.Second),
			FollowUpDepth:      envIntOr("PUP_FOLLOWUP_DEPTH", DefaultFollowDepth),
		},
		Crawl: CrawlConfig{
			Enabled:       envBoolOr("PUP_CRAWL_ENABLED", false),
			Concurrency:   envIntOr("PUP_CRAWL_CONCURRENCY", 3),
			MaxURLs:       envIntOr("PUP_CRAWL_MAX_URLS", 10),
			RatePerSecond: envFloatOr("PUP_CRAWL_RPS", 1.0),
			HTTPTimeout:   envDurationOr("PUP_CRAWL_HTTP_TIMEOUT", 8*time.Second),
			PageTimeout:   envDurationOr("PUP_CRAWL_PAGE_TIMEOUT", 20*time.Second),
			CacheTTL:      envDurationOr("PUP_CRAWL_CACHE_TTL", 15*time.Minute),
			CacheSize:     envIntOr("PUP_CRAWL_CACHE_SIZE", 128),
		},
		Output: OutputConfig{
			Formats:       envSliceOr("PUP_FORMATS", []string{"json", "txt", "csv", "html"}),
			Screenshot:    envBoolOr("PUP_SCREENSHOT", true),
			WebhookURL:    os.Getenv("PUP_WEBHOOK_URL"),
			WebhookSecret: os.Getenv("PUP_WEBHOOK_SECRET"),
		},
		Log: LogConfig{
			Level:  envOr("PUP_LOG_LEVEL", "info"),
			Format: envOr("PUP_LOG_FORMAT", "text"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
