package shape

// Erode keeps the cells whose every neighbour under n is active. A nil
// neighbourhood means Moore.
func Erode(p *Pattern, n *Neighbourhood) *Pattern {
	n = orMoore(n)
	out := newSized(p.Size())
	for _, k := range p.keys {
		c := decode(k)
		if n.all(p, c) {
			out.insertKey(k, c)
		}
	}
	return out
}

// Dilate adds every neighbour of an active cell.
func Dilate(p *Pattern, n *Neighbourhood) *Pattern {
	n = orMoore(n)
	out := p.Clone()
	for _, k := range p.keys {
		c := decode(k)
		for _, o := range n.offsets {
			out.addIfAbsent(c.Add(o))
		}
	}
	return out
}

// Gradient is Dilate minus Erode.
func Gradient(p *Pattern, n *Neighbourhood) *Pattern {
	return Difference(Dilate(p, n), Erode(p, n))
}

// Opening is the dilation of the erosion.
func Opening(p *Pattern, n *Neighbourhood) *Pattern {
	return Dilate(Erode(p, n), n)
}

// Closing is the erosion of the dilation.
func Closing(p *Pattern, n *Neighbourhood) *Pattern {
	return Erode(Dilate(p, n), n)
}

// InteriorHull returns the active cells bordering inactive space.
func InteriorHull(p *Pattern, n *Neighbourhood) *Pattern {
	return Difference(p, Erode(p, n))
}

// ExteriorHull returns the inactive cells bordering p.
func ExteriorHull(p *Pattern, n *Neighbourhood) *Pattern {
	n = orMoore(n)
	out := New()
	for _, k := range p.keys {
		c := decode(k)
		for _, o := range n.offsets {
			nc := c.Add(o)
			if !p.HasCell(nc) {
				out.addIfAbsent(nc)
			}
		}
	}
	return out
}
