package service

import (
	"strings"

	"github.com/atinyakov/go-deeplink-shortener/internal/models"
)

// Platform is the client class derived from the User-Agent header.
type Platform int

const (
	PlatformOther Platform = iota
	PlatformIOS
	PlatformAndroid
)

func (p Platform) String() string {
	switch p {
	case PlatformIOS:
		return "ios"
	case PlatformAndroid:
		return "android"
	default:
		return "other"
	}
}

// DetectPlatform classifies a User-Agent string.
func DetectPlatform(userAgent string) Platform {
	ua := strings.ToLower(userAgent)

	switch {
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"), strings.Contains(ua, "ipod"):
		return PlatformIOS
	case strings.Contains(ua, "android"):
		return PlatformAndroid
	default:
		return PlatformOther
	}
}

// RedirectPlan is the outcome of platform resolution. DeepLink is empty when
// no app open should be attempted; Fallback is always set. The server sends
// both in one response because it cannot observe whether the deep link
// actually opened the app; that fallback happens on the client.
type RedirectPlan struct {
	DeepLink string
	Fallback string
}

// Target is the single URL a client without deep-link support should load.
func (p RedirectPlan) Target() string {
	if p.DeepLink != "" {
		return p.DeepLink
	}
	return p.Fallback
}

// PlanRedirect maps a record and a User-Agent to the concrete redirect plan.
// Pure function: platform deep link first, then platform fallback, then the
// default fallback. Other platforms always get the default fallback.
func PlanRedirect(rec *models.CacheRecord, userAgent string) RedirectPlan {
	switch DetectPlatform(userAgent) {
	case PlatformIOS:
		return planFor(rec.IOSDeepLink, rec.IOSFallbackURL, rec.DefaultFallbackURL)
	case PlatformAndroid:
		return planFor(rec.AndroidDeepLink, rec.AndroidFallbackURL, rec.DefaultFallbackURL)
	default:
		return RedirectPlan{Fallback: rec.DefaultFallbackURL}
	}
}

func planFor(deepLink, fallback, defaultFallback string) RedirectPlan {
	plan := RedirectPlan{DeepLink: deepLink, Fallback: fallback}
	if plan.Fallback == "" {
		plan.Fallback = defaultFallback
	}
	return plan
}
