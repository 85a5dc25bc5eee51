// Command ontoctl drives the ontology graph's CORE API (focus, cluster,
// delete, expand, fold, abstract) from the command line: load a canonical
// project file, apply one operation, write the result back out.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
