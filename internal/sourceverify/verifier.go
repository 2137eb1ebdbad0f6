// Package sourceverify checks that a claimed source URL is structurally
// plausible, matches its claimed platform, and is fresh. No live fetch is
// performed; network verification belongs to the fetch layer.
package sourceverify

import (
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/logger"
)

// Verification limits.
const (
	maxSourceAge = 90 * 24 * time.Hour
	cacheTTL     = time.Hour
	minHostLen   = 4
)

// placeholderHosts are hostnames that can never be real sources.
var placeholderHosts = []string{
	"example.com",
	"example.org",
	"example.net",
	"localhost",
	"127.0.0.1",
	"test.com",
	"placeholder",
	"your-domain",
}

// platformDomains maps a claimed platform to the domain suffixes it may
// legitimately link to. Platforms not listed skip the domain check.
var platformDomains = map[string][]string{
	"reddit":   {"reddit.com", "redd.it"},
	"twitter":  {"twitter.com", "x.com", "t.co"},
	"x":        {"twitter.com", "x.com", "t.co"},
	"linkedin": {"linkedin.com", "lnkd.in"},
	"g2":       {"g2.com"},
	"capterra": {"capterra.com"},
	"youtube":  {"youtube.com", "youtu.be"},
	"facebook": {"facebook.com", "fb.com"},
	"github":   {"github.com"},
}

type cacheEntry struct {
	result   domain.VerificationResult
	cachedAt time.Time
}

// Verifier validates claimed sources with a time-bounded per-URL cache.
// Safe for concurrent use; cache writes are last-write-wins.
type Verifier struct {
	mu     sync.RWMutex
	cache  map[string]cacheEntry
	logger logger.Logger
	now    func() time.Time
	onHit  func()
}

// NewVerifier creates a source verifier.
func NewVerifier(log logger.Logger) *Verifier {
	if log == nil {
		log = logger.NewNop()
	}
	return &Verifier{
		cache:  make(map[string]cacheEntry),
		logger: log,
		now:    time.Now,
	}
}

// NewVerifierWithClock creates a verifier with a fixed clock.
func NewVerifierWithClock(log logger.Logger, now func() time.Time) *Verifier {
	v := NewVerifier(log)
	if now != nil {
		v.now = now
	}
	return v
}

// OnCacheHit registers a callback fired on every cache hit. Set once at
// startup, before concurrent use.
func (v *Verifier) OnCacheHit(fn func()) {
	v.onHit = fn
}

// Verify checks one claimed source. Results are cached by URL for one hour;
// entries older than the TTL are treated as absent.
func (v *Verifier) Verify(source domain.VerifiedSource) domain.VerificationResult {
	now := v.now()

	if cached, ok := v.lookup(source.OriginalURL, now); ok {
		if v.onHit != nil {
			v.onHit()
		}
		return cached
	}

	result := v.verify(source, now)

	v.mu.Lock()
	v.cache[source.OriginalURL] = cacheEntry{result: result, cachedAt: now}
	v.mu.Unlock()

	return result
}

func (v *Verifier) lookup(rawURL string, now time.Time) (domain.VerificationResult, bool) {
	v.mu.RLock()
	entry, ok := v.cache[rawURL]
	v.mu.RUnlock()

	if !ok || now.Sub(entry.cachedAt) > cacheTTL {
		return domain.VerificationResult{}, false
	}
	return entry.result, true
}

func (v *Verifier) verify(source domain.VerifiedSource, now time.Time) domain.VerificationResult {
	result := domain.VerificationResult{
		URL:        source.OriginalURL,
		VerifiedAt: now,
	}

	if reason, ok := checkURLPattern(source.OriginalURL); !ok {
		result.Status = domain.StatusInvalid
		result.Reason = reason
		return result
	}

	if reason, ok := checkPlatformDomain(source.OriginalURL, source.Platform); !ok {
		result.Status = domain.StatusInvalid
		result.Reason = reason
		return result
	}

	if !source.ClaimedDate.IsZero() && now.Sub(source.ClaimedDate) > maxSourceAge {
		result.Status = domain.StatusArchived
		result.Reason = "claimed date older than 90 days"
		return result
	}

	result.Status = domain.StatusVerified
	return result
}

// checkURLPattern rejects missing URLs, non-http(s) schemes, too-short
// hostnames and known placeholder hosts.
func checkURLPattern(rawURL string) (string, bool) {
	if strings.TrimSpace(rawURL) == "" {
		return "missing url", false
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "unparseable url", false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "unsupported scheme", false
	}

	host := strings.ToLower(parsed.Hostname())
	if len(host) < minHostLen {
		return "hostname too short", false
	}
	for _, placeholder := range placeholderHosts {
		if host == placeholder || strings.Contains(host, placeholder) {
			return "placeholder hostname", false
		}
	}
	return "", true
}

// checkPlatformDomain verifies the URL's host against the claimed
// platform's known domains. Unknown platforms pass.
func checkPlatformDomain(rawURL, platform string) (string, bool) {
	domains, ok := platformDomains[strings.ToLower(strings.TrimSpace(platform))]
	if !ok {
		return "", true
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "unparseable url", false
	}
	host := strings.ToLower(parsed.Hostname())

	for _, d := range domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return "", true
		}
	}
	return "platform/domain mismatch", false
}

// CacheSize reports the number of cached entries, expired included.
func (v *Verifier) CacheSize() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.cache)
}
