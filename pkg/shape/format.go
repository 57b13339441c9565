package shape

import (
	"fmt"
	"strings"
)

// MaxLabels is the number of distinct runes FormatMultipattern can assign.
const MaxLabels = 150

// Format renders p as rows of On/Off runes covering its bounding box, from
// the lowest Y to the highest.
func Format(p *Pattern) string {
	lo, hi, ok := p.Bounds()
	if !ok {
		return ""
	}
	var b strings.Builder
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			if p.Has(x, y) {
				b.WriteRune(p.On)
			} else {
				b.WriteRune(p.Off)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Label returns the rune assigned to the i-th component, starting at '/'
// skipping the non-printable runes after '~'.
func Label(i int) (rune, error) {
	if i < 0 || i >= MaxLabels {
		return 0, fmt.Errorf("label %d: %w", i, ErrTooManyLabels)
	}
	r := rune('/' + i)
	if r > '~' {
		r += '¡' - '~' - 1
	}
	// U+00AD is a soft hyphen and does not print.
	if r >= '\u00ad' {
		r++
	}
	return r, nil
}

// FormatMultipattern renders every component with its own label over the
// union's bounding box. Cells covered by several components show the
// label of the first.
func FormatMultipattern(m *Multipattern, off rune) (string, error) {
	if m.Len() > MaxLabels {
		return "", fmt.Errorf("%d components: %w", m.Len(), ErrTooManyLabels)
	}
	labels := make(map[int64]rune)
	for i := m.Len() - 1; i >= 0; i-- {
		r, _ := Label(i)
		for _, k := range m.patterns[i].keys {
			labels[k] = r
		}
	}
	lo, hi, ok := m.Union().Bounds()
	if !ok {
		return "", nil
	}
	var b strings.Builder
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			if r, ok := labels[encode(Cell{x, y})]; ok {
				b.WriteRune(r)
			} else {
				b.WriteRune(off)
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
