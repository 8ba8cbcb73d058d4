// Command junction connects the closest pairs of a point cloud and reports the
// resulting groups and the edge count needed to join everything.
//
//	junction -k 1000 --completion points.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "junction:", err)
		os.Exit(1)
	}
}
