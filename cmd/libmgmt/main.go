// Command libmgmt runs the library management HTTP service and its operational tasks:
// schema migrations, bootstrapping the first admin, and issuing tokens.
package main

import (
	"fmt"
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
