package geoip

import "context"

// CountryLookup resolves an approximate ISO2 country code for an IP.
// Implementations return an error for any transport or shape problem; the
// service turns every error into the fallback country.
type CountryLookup interface {
	CountryCode(ctx context.Context, ip string) (string, error)
}
