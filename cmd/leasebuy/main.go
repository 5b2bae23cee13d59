// Command leasebuy compares leasing a car through a salary structure with
// buying it on a loan, and serves the comparison over HTTP.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
