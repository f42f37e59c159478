// Command zincdemo prints a worked example of the three-layer Morton
// pipeline: an AABB decomposes into a Region, two Regions combine via the
// set algebra, and a grid of occupied cells is flattened to a Region of
// its own.
package main

import (
	"fmt"

	"github.com/hadeaninc/libzinc/aabb"
	"github.com/hadeaninc/libzinc/gridgraph"
	"github.com/hadeaninc/libzinc/interval"
)

func printRuns[T comparable](label string, ivs []interval.Interval[T]) {
	fmt.Print(label)
	for _, iv := range ivs {
		fmt.Printf(" [%d,%d]", iv.Start, iv.End)
	}
	fmt.Println()
}

func main() {
	box := aabb.New(0, 12)
	printRuns("AABB{0,12}.ToCells()    =", box.ToCells().Intervals)
	printRuns("AABB{0,12}.ToIntervals()=", box.ToIntervals().Intervals)

	a := aabb.New(0, 63).ToIntervals()
	b := aabb.New(0, 3).ToIntervals().Union(aabb.New(48, 63).ToIntervals())
	printRuns("union       =", a.Union(b).Intervals)
	printRuns("intersection=", a.Intersect(b).Intervals)
	printRuns("difference  =", a.Difference(b).Intervals)

	grid, err := gridgraph.NewGrid([][]int{
		{1, 1, 0},
		{0, 1, 0},
		{0, 0, 1},
	}, gridgraph.DefaultGridOptions())
	if err != nil {
		fmt.Println("grid error:", err)
		return
	}
	coverage := grid.CoverageRegion()
	fmt.Printf("grid coverage area = %d, components = %d\n", coverage.Area(), grid.ComponentCount(gridgraph.Conn4))
}
