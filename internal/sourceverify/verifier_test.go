package sourceverify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/logger"
)

var verifyNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedVerifier() *Verifier {
	return NewVerifierWithClock(logger.NewNop(), func() time.Time { return verifyNow })
}

func TestVerify_Statuses(t *testing.T) {
	tests := []struct {
		name   string
		source domain.VerifiedSource
		want   domain.VerificationStatus
	}{
		{
			"fresh reddit url verifies",
			domain.VerifiedSource{
				OriginalURL: "https://www.reddit.com/r/sales/comments/abc123",
				Platform:    "reddit",
				ClaimedDate: verifyNow.Add(-5 * 24 * time.Hour),
			},
			domain.StatusVerified,
		},
		{
			"unknown platform skips domain check",
			domain.VerifiedSource{
				OriginalURL: "https://blog.acme.io/post",
				Platform:    "blog",
				ClaimedDate: verifyNow.Add(-24 * time.Hour),
			},
			domain.StatusVerified,
		},
		{
			"missing url",
			domain.VerifiedSource{Platform: "reddit"},
			domain.StatusInvalid,
		},
		{
			"ftp scheme",
			domain.VerifiedSource{OriginalURL: "ftp://reddit.com/thing", Platform: "reddit"},
			domain.StatusInvalid,
		},
		{
			"placeholder host",
			domain.VerifiedSource{OriginalURL: "https://example.com/post", Platform: "blog"},
			domain.StatusInvalid,
		},
		{
			"short host",
			domain.VerifiedSource{OriginalURL: "https://a.b/x", Platform: "blog"},
			domain.StatusInvalid,
		},
		{
			"platform domain mismatch",
			domain.VerifiedSource{
				OriginalURL: "https://someblog.net/fake-reddit-post",
				Platform:    "reddit",
				ClaimedDate: verifyNow.Add(-24 * time.Hour),
			},
			domain.StatusInvalid,
		},
		{
			"stale source archives",
			domain.VerifiedSource{
				OriginalURL: "https://www.reddit.com/r/sales/comments/old999",
				Platform:    "reddit",
				ClaimedDate: verifyNow.Add(-120 * 24 * time.Hour),
			},
			domain.StatusArchived,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := fixedVerifier().Verify(tt.source)
			assert.Equal(t, tt.want, result.Status)
			if tt.want != domain.StatusVerified {
				assert.NotEmpty(t, result.Reason)
			}
		})
	}
}

func TestVerify_SubdomainMatchesPlatform(t *testing.T) {
	result := fixedVerifier().Verify(domain.VerifiedSource{
		OriginalURL: "https://old.reddit.com/r/sales/comments/abc",
		Platform:    "reddit",
		ClaimedDate: verifyNow.Add(-time.Hour),
	})
	assert.Equal(t, domain.StatusVerified, result.Status)
}

func TestVerify_CacheHitWithinTTL(t *testing.T) {
	current := verifyNow
	v := NewVerifierWithClock(logger.NewNop(), func() time.Time { return current })

	hits := 0
	v.OnCacheHit(func() { hits++ })

	source := domain.VerifiedSource{
		OriginalURL: "https://www.g2.com/products/acme/reviews",
		Platform:    "g2",
		ClaimedDate: verifyNow.Add(-24 * time.Hour),
	}

	first := v.Verify(source)
	assert.Equal(t, domain.StatusVerified, first.Status)
	assert.Equal(t, 1, v.CacheSize())
	assert.Zero(t, hits)

	// Within the TTL the cached result is returned untouched, even though
	// re-verifying would produce a later VerifiedAt.
	current = verifyNow.Add(30 * time.Minute)
	second := v.Verify(source)
	assert.Equal(t, first.VerifiedAt, second.VerifiedAt)
	assert.Equal(t, 1, hits)
}

func TestVerify_ExpiredCacheEntryReverifies(t *testing.T) {
	current := verifyNow
	v := NewVerifierWithClock(logger.NewNop(), func() time.Time { return current })

	source := domain.VerifiedSource{
		OriginalURL: "https://www.g2.com/products/acme/reviews",
		Platform:    "g2",
		ClaimedDate: verifyNow.Add(-85 * 24 * time.Hour),
	}

	first := v.Verify(source)
	assert.Equal(t, domain.StatusVerified, first.Status)

	// Past the TTL the entry is treated as absent; the source has also
	// crossed the 90-day line in the meantime.
	current = verifyNow.Add(10 * 24 * time.Hour)
	second := v.Verify(source)
	assert.Equal(t, domain.StatusArchived, second.Status)
	assert.NotEqual(t, first.VerifiedAt, second.VerifiedAt)
}

func TestVerify_ConcurrentAccess(t *testing.T) {
	v := fixedVerifier()
	source := domain.VerifiedSource{
		OriginalURL: "https://www.linkedin.com/posts/someone",
		Platform:    "linkedin",
		ClaimedDate: verifyNow.Add(-time.Hour),
	}

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				result := v.Verify(source)
				assert.Equal(t, domain.StatusVerified, result.Status)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
