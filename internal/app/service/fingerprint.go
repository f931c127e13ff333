package service

import (
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/atinyakov/go-deeplink-shortener/internal/models"
)

// fieldSeparator joins the semantic fields before hashing. The unit separator
// cannot appear in a URL or OG text, so "a"+"bc" and "ab"+"c" never collide.
const fieldSeparator = "\x1f"

// Fingerprint computes the 128-bit dedup hash of a creation request as 32
// lowercase hex characters. It covers every semantic field in a fixed order.
//
// Normalization: an absent optional field and an empty one hash identically,
// because both are represented as "". Two requests that differ only in
// omitted-vs-empty fields therefore map to the same record.
func Fingerprint(req models.CreateURLRequest) string {
	joined := strings.Join([]string{
		req.DefaultFallbackURL,
		req.IOSDeepLink,
		req.IOSFallbackURL,
		req.AndroidDeepLink,
		req.AndroidFallbackURL,
		req.WebhookURL,
		req.OGTitle,
		req.OGDescription,
		req.OGImageURL,
	}, fieldSeparator)

	sum := xxh3.Hash128([]byte(joined))
	return fmt.Sprintf("%016x%016x", sum.Hi, sum.Lo)
}
