package util

import (
	"fmt"
	"strings"
)

// FormatMultiError formats multierrors for logging, one error per line
func FormatMultiError(merrs []error) string {
	var b strings.Builder
	for _, err := range merrs {
		fmt.Fprintf(&b, "%+v\n", err)
	}
	return b.String()
}
