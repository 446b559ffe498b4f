package zone

import (
	"fmt"
	"os"
)

// Debug enables package-internal trace logging, independent of the
// host-supplied LogFunc which is the normative diagnostics channel per
// the ERROR/INFO priorities in Options.Log. Mirrors the teacher's single
// DEBUG-gated Log helper (zoneparser/utils.go), rather than pulling in a
// structured-logging dependency nothing in the retrieved pack grounds
// for this domain.
var Debug = os.Getenv("ZONE_DEBUG") != ""

func trace(format string, args ...any) {
	if Debug {
		fmt.Fprintf(os.Stderr, "[zone] "+format+"\n", args...)
	}
}
