// Command solid runs best-first searches over weighted graphs described in
// YAML files.
//
//	solid solve --file graph.yaml --algo astar --from A --to D --metrics
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
