// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sanitize

import (
	"strings"
	"time"

	"github.com/pdiddy/resume-engine/pkg/types"
)

const (
	dateLayout    = "2006-01"
	displayLayout = "January 2006"
	present       = "Present"
)

// FormatDate turns "YYYY-MM" into "Month YYYY" and any casing of "present"
// into "Present". Strings that do not parse are returned unchanged.
func FormatDate(s string) string {
	if strings.EqualFold(s, present) {
		return present
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return s
	}
	return t.Format(displayLayout)
}

// FormatDateValue applies FormatDate to string values and returns a copy of
// every other value.
func FormatDateValue(v types.Value) types.Value {
	s, ok := v.(types.String)
	if !ok {
		return v.Clone()
	}
	return types.String(FormatDate(string(s)))
}
