// Command kindswitch reports switch statements over variant.Kind that miss
// a kind and have no default clause.
package main

import (
	"github.com/tsatke/variant/internal/tools/analysis/kindswitch"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(kindswitch.Analyzer)
}
