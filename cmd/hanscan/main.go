// hanscan audits JavaScript/TypeScript trees for hard-coded text in a
// configurable script range (CJK ideographs by default): string literals,
// template segments, and JSX text that should have gone through i18n.
package main

import (
	"os"

	"github.com/corey/hanscan/cmd/hanscan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
