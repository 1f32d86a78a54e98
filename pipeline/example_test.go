// Package pipeline_test shows the end-to-end validation flow.
// Each example is runnable via “go test -run Example”.
package pipeline_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/bipval/correction"
	"github.com/katalvlaran/bipval/edgelist"
	"github.com/katalvlaran/bipval/pipeline"
	"github.com/katalvlaran/bipval/report"
	"github.com/katalvlaran/bipval/significance"
)

// ExampleRun validates the projection of a five-edge bipartite graph.
// Vertices 0 and 1 share both set-2 neighbors, which is exactly what a
// random graph with these degrees must produce, so nothing is significant.
func ExampleRun() {
	// 1) Load: set 1 = {0,1,2}, set 2 = {10,11}.
	el, err := edgelist.Parse(strings.NewReader("0 10\n0 11\n1 10\n1 11\n2 10\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Over-expression test with Bonferroni at 5%.
	res, err := pipeline.Run(context.Background(), el, pipeline.Options{
		Tail:   significance.Over,
		Method: correction.Bonferroni,
		Alpha:  0.05,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Emit the table.
	if err := report.WriteTable(os.Stdout, res); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// source target weight p-value_over test_over
	// 0 1 2 1 fail
	// 0 2 1 1 fail
	// 1 2 1 1 fail
}
