package middleware

import (
	"net/http"
	"net/netip"

	"go.uber.org/zap"
)

// WithSubnet restricts a route to callers whose X-Real-IP falls inside the
// trusted CIDR. An empty CIDR, an unparseable CIDR or a missing header all
// deny access.
func WithSubnet(cidr string, log *zap.Logger) func(next http.Handler) http.Handler {
	prefix, err := netip.ParsePrefix(cidr)
	if err != nil && cidr != "" {
		log.Warn("invalid trusted subnet, denying all internal requests", zap.String("cidr", cidr), zap.Error(err))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cidr == "" || err != nil {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			addr, parseErr := netip.ParseAddr(r.Header.Get("X-Real-IP"))
			if parseErr != nil || !prefix.Contains(addr) {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
