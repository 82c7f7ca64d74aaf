package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/pkgmap/pkgmap/linters"
)

func main() {
	singlechecker.Main(linters.NewYamlJSONTagsAnalyzer())
}
