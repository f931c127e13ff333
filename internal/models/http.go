package models

// CreateURLRequest is the JSON body of POST /v1/urls. Only the default
// fallback URL is required; every other field is optional and an omitted
// field is treated exactly like an empty one.
type CreateURLRequest struct {
	// IOSDeepLink opens the iOS app directly when installed.
	IOSDeepLink string `json:"iosDeepLink,omitempty"`

	// IOSFallbackURL is used when the iOS app is not installed.
	IOSFallbackURL string `json:"iosFallbackUrl,omitempty"`

	// AndroidDeepLink opens the Android app directly when installed.
	AndroidDeepLink string `json:"androidDeepLink,omitempty"`

	// AndroidFallbackURL is used when the Android app is not installed.
	AndroidFallbackURL string `json:"androidFallbackUrl,omitempty"`

	// DefaultFallbackURL is the redirect target for every other client. Required.
	DefaultFallbackURL string `json:"defaultFallbackUrl"`

	// WebhookURL receives a POST notification on every redirect.
	WebhookURL string `json:"webhookUrl,omitempty"`

	// Open Graph metadata rendered into the redirect page.
	OGTitle       string `json:"ogTitle,omitempty"`
	OGDescription string `json:"ogDescription,omitempty"`
	OGImageURL    string `json:"ogImageUrl,omitempty"`
}

// CreateURLResponse is the JSON answer to a create request.
type CreateURLResponse struct {
	Message  string `json:"message"`
	ShortKey string `json:"short_key,omitempty"`
}

// DeleteURLRequest is the JSON body of DELETE /v1/urls: a list of short keys
// to deactivate. Deactivation is asynchronous.
type DeleteURLRequest struct {
	ShortKeys []string `json:"short_keys"`
}

// StatsResponse is served to the trusted subnet only.
type StatsResponse struct {
	URLs int64 `json:"urls"`
}
