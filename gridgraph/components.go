package gridgraph

// ComponentCount returns the number of conn-connected components of land
// cells (value >= Options.LandThreshold) in the grid, via the same
// flood-fill traversal as the teacher's ConnectedComponents, rebuilt here
// to report a count instead of materializing each component's cell list
// (original_source has no equivalent feature; this is a supplemented
// feature kept from the teacher's domain, see DESIGN.md).
func (g *Grid) ComponentCount(conn Connectivity) int {
	if g.Width == 0 || g.Height == 0 {
		return 0
	}

	visited := make([][]bool, g.Height)
	for y := range visited {
		visited[y] = make([]bool, g.Width)
	}
	offsets := cellOffsets(conn)

	count := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if visited[y][x] || g.Cells[y][x] < g.Options.LandThreshold {
				continue
			}
			count++
			queue := [][2]int{{x, y}}
			visited[y][x] = true
			for qi := 0; qi < len(queue); qi++ {
				cx, cy := queue[qi][0], queue[qi][1]
				for _, d := range offsets {
					nx, ny := cx+d[0], cy+d[1]
					if !g.InBounds(nx, ny) || visited[ny][nx] || g.Cells[ny][nx] < g.Options.LandThreshold {
						continue
					}
					visited[ny][nx] = true
					queue = append(queue, [2]int{nx, ny})
				}
			}
		}
	}
	return count
}
