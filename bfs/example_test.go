package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/bfs"
)

// ExampleBFS walks a small tree and prints the depth of each node.
func ExampleBFS() {
	tree := map[string][]string{
		"root": {"left", "right"},
		"left": {"leaf"},
	}
	res, err := bfs.BFS("root", func(n string) []string { return tree[n] })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, n := range res.Order {
		fmt.Printf("%s=%d ", n, res.Depth[n])
	}
	fmt.Println()
	// Output: root=0 left=1 right=1 leaf=2
}
