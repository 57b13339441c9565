package shape

import "fmt"

// MaxRectangle returns the inclusive corners of the largest axis-aligned
// rectangle whose cells are all active. The bounding box is swept row by
// row, keeping a histogram of column run lengths and resolving each row
// with a monotonic stack. The first maximum found wins. ok is false for an
// empty pattern.
func MaxRectangle(p *Pattern) (lo, hi Cell, ok bool) {
	bmin, bmax, ok := p.Bounds()
	if !ok {
		return Cell{}, Cell{}, false
	}
	w := bmax.X - bmin.X + 1
	heights := make([]int, w)
	stack := make([]int, 0, w+1)
	best := 0
	for y := bmin.Y; y <= bmax.Y; y++ {
		for i := range heights {
			if p.Has(bmin.X+i, y) {
				heights[i]++
			} else {
				heights[i] = 0
			}
		}
		stack = stack[:0]
		for i := 0; i <= w; i++ {
			cur := 0
			if i < w {
				cur = heights[i]
			}
			for len(stack) > 0 && heights[stack[len(stack)-1]] >= cur {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				h := heights[top]
				left := 0
				if len(stack) > 0 {
					left = stack[len(stack)-1] + 1
				}
				if area := h * (i - left); area > best {
					best = area
					lo = Cell{bmin.X + left, y - h + 1}
					hi = Cell{bmin.X + i - 1, y}
				}
			}
			stack = append(stack, i)
		}
	}
	return lo, hi, true
}

// BSP partitions p into disjoint rectangles of at most threshold cells.
// The largest remaining rectangle is extracted and bisected along its
// longer axis until every leaf is small enough, then removed from p; this
// repeats until nothing is left.
func BSP(p *Pattern, threshold int) (*Multipattern, error) {
	if threshold < 1 {
		return nil, fmt.Errorf("bsp threshold %d: %w", threshold, ErrInvalidArgument)
	}
	out := &Multipattern{}
	remaining := p
	for !remaining.Empty() {
		lo, hi, _ := MaxRectangle(remaining)
		Logger().Debug("bsp rectangle", "lo", lo, "hi", hi, "remaining", remaining.Size())
		bisect(lo, hi, threshold, out)
		remaining = Difference(remaining, Rect(lo, hi))
	}
	return out, nil
}

func bisect(lo, hi Cell, threshold int, out *Multipattern) {
	w, h := hi.X-lo.X+1, hi.Y-lo.Y+1
	if w*h <= threshold {
		out.Append(Rect(lo, hi))
		return
	}
	if w >= h {
		mid := lo.X + w/2
		bisect(lo, Cell{mid - 1, hi.Y}, threshold, out)
		bisect(Cell{mid, lo.Y}, hi, threshold, out)
		return
	}
	mid := lo.Y + h/2
	bisect(lo, Cell{hi.X, mid - 1}, threshold, out)
	bisect(Cell{lo.X, mid}, hi, threshold, out)
}
