// Command elcl is a small CLI front-end over the elcl package: it parses a document, checks it for errors, and
// dumps its value tree for inspection.
package main

import (
	"os"

	"github.com/erbsland-dev/elcl-go/cmd/elcl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
