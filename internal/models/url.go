// Package models defines the URL record entity and the data shapes shared
// between the service, storage and cache layers.
package models

import "time"

// URLRecord is the authoritative URL entity as stored in the database.
//
// Optional fields use the empty string for "not set"; the storage layer keeps
// the same convention so that a missing field and an empty field are
// indistinguishable everywhere, including in the dedup fingerprint.
type URLRecord struct {
	ID                 int64
	RandomKey          string
	IOSDeepLink        string
	IOSFallbackURL     string
	AndroidDeepLink    string
	AndroidFallbackURL string
	DefaultFallbackURL string
	HashedValue        string
	WebhookURL         string
	OGTitle            string
	OGDescription      string
	OGImageURL         string
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time
}

// NewURLRecord carries the fields of a record about to be inserted.
// The id and timestamps are assigned by the store.
type NewURLRecord struct {
	RandomKey          string
	IOSDeepLink        string
	IOSFallbackURL     string
	AndroidDeepLink    string
	AndroidFallbackURL string
	DefaultFallbackURL string
	HashedValue        string
	WebhookURL         string
	OGTitle            string
	OGDescription      string
	OGImageURL         string
	IsActive           bool
}

// CacheRecord is the slim projection of URLRecord kept in the redirect cache.
// It carries only what a redirect needs: no hash, no timestamps. Serialized
// as MessagePack; short field names keep the entries compact.
type CacheRecord struct {
	ID                 int64  `msgpack:"id"`
	RandomKey          string `msgpack:"rk"`
	IOSDeepLink        string `msgpack:"idl"`
	IOSFallbackURL     string `msgpack:"ifu"`
	AndroidDeepLink    string `msgpack:"adl"`
	AndroidFallbackURL string `msgpack:"afu"`
	DefaultFallbackURL string `msgpack:"dfu"`
	WebhookURL         string `msgpack:"wh"`
	OGTitle            string `msgpack:"ogt"`
	OGDescription      string `msgpack:"ogd"`
	OGImageURL         string `msgpack:"ogi"`
	IsActive           bool   `msgpack:"act"`
}

// ToCacheRecord projects the full record onto its cacheable subset.
func (r *URLRecord) ToCacheRecord() CacheRecord {
	return CacheRecord{
		ID:                 r.ID,
		RandomKey:          r.RandomKey,
		IOSDeepLink:        r.IOSDeepLink,
		IOSFallbackURL:     r.IOSFallbackURL,
		AndroidDeepLink:    r.AndroidDeepLink,
		AndroidFallbackURL: r.AndroidFallbackURL,
		DefaultFallbackURL: r.DefaultFallbackURL,
		WebhookURL:         r.WebhookURL,
		OGTitle:            r.OGTitle,
		OGDescription:      r.OGDescription,
		OGImageURL:         r.OGImageURL,
		IsActive:           r.IsActive,
	}
}

// IsLive reports whether the record is visible to lookups.
func (r *URLRecord) IsLive() bool {
	return r.DeletedAt == nil
}
