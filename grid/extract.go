package grid

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/paulmach/orb"
)

// Extract finds all connected regions of g whose cell values exceed
// threshold (strict inequality) and returns those with at least minArea
// cells as Objects, in row-major discovery order.
//
// Connectivity is 4-neighbor (N/S/E/W). Each component is collected with a
// breadth-first flood fill over an index-based queue with a head cursor, so
// traversal is O(area) per component. Cells are visited at most once, even
// when their component is discarded as noise.
//
// An empty grid, or a grid with no cell above threshold, yields an empty
// result and no error.
func Extract(g Grid, threshold float64, minArea int) ([]Object, error) {
	if minArea < 1 {
		return nil, ErrInvalidMinArea
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	rows, cols := g.Rows(), g.Cols()
	if rows == 0 || cols == 0 {
		return nil, nil
	}

	visited := roaring.New()

	var objects []Object
	var queue []int // reused across components; head cursor, no pop-from-front

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			if g[r][c] <= threshold || visited.Contains(uint32(idx)) {
				continue
			}

			queue = queue[:0]
			queue = append(queue, idx)
			visited.Add(uint32(idx))

			var (
				sum            float64
				maxVal         = g[r][c]
				sumRow, sumCol int
				minRow, maxRow = r, r
				minCol, maxCol = c, c
			)

			for head := 0; head < len(queue); head++ {
				cur := queue[head]
				cr, cc := cur/cols, cur%cols

				v := g[cr][cc]
				sum += v
				if v > maxVal {
					maxVal = v
				}
				sumRow += cr
				sumCol += cc
				if cr < minRow {
					minRow = cr
				}
				if cr > maxRow {
					maxRow = cr
				}
				if cc < minCol {
					minCol = cc
				}
				if cc > maxCol {
					maxCol = cc
				}

				// 4-connected neighbors above threshold.
				if cr > 0 && g[cr-1][cc] > threshold && !visited.Contains(uint32(cur-cols)) {
					visited.Add(uint32(cur - cols))
					queue = append(queue, cur-cols)
				}
				if cr < rows-1 && g[cr+1][cc] > threshold && !visited.Contains(uint32(cur+cols)) {
					visited.Add(uint32(cur + cols))
					queue = append(queue, cur+cols)
				}
				if cc > 0 && g[cr][cc-1] > threshold && !visited.Contains(uint32(cur-1)) {
					visited.Add(uint32(cur - 1))
					queue = append(queue, cur-1)
				}
				if cc < cols-1 && g[cr][cc+1] > threshold && !visited.Contains(uint32(cur+1)) {
					visited.Add(uint32(cur + 1))
					queue = append(queue, cur+1)
				}
			}

			area := len(queue)
			if area < minArea {
				// Noise: cells stay visited so they are never rescanned.
				continue
			}

			cells := make([]int, area)
			copy(cells, queue)

			objects = append(objects, Object{
				Area:     area,
				AvgValue: sum / float64(area),
				MaxValue: maxVal,
				Cells:    cells,
				Centroid: orb.Point{
					float64(sumCol) / float64(area),
					float64(sumRow) / float64(area),
				},
				Bounds: orb.Bound{
					Min: orb.Point{float64(minCol), float64(minRow)},
					Max: orb.Point{float64(maxCol), float64(maxRow)},
				},
			})
		}
	}

	return objects, nil
}
