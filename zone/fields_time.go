package zone

import (
	"strconv"
	"time"
)

// parseTimestamp parses RRSIG's inception/expiration fields: either 14
// digits of YYYYMMDDHHMMSS (UTC) or a bare decimal Unix timestamp (RFC 4034
// §3.1.5 permits both forms in presentation format).
func parseTimestamp(s string) (uint32, bool) {
	if len(s) == 14 && isAllDigits(s) {
		t, err := time.Parse("20060102150405", s)
		if err != nil {
			return 0, false
		}
		return uint32(t.Unix()), true
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}
