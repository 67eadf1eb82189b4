package view

// CardState is the per-product view state: the ordered color variants, the
// selected color, and the image carousel position. Each card is
// independent; selecting a color never touches other cards.
type CardState struct {
	// ColorKeys is the ordered list of color variant keys.
	ColorKeys []string
	// Selected is the currently selected color key.
	Selected string
	// CarouselIndex is the position of the image carousel.
	CarouselIndex int
}

// NewCardState builds a card state over the given variant keys, applying
// the fixed priority order and selecting the first color.
func NewCardState(keys []string) CardState {
	ordered := OrderColorKeys(keys)
	state := CardState{ColorKeys: ordered}
	if len(ordered) > 0 {
		state.Selected = ordered[0]
	}
	return state
}

// SelectColor selects the given color and advances the carousel to the
// matching index. Unknown keys leave the state unchanged.
func (s CardState) SelectColor(key string) CardState {
	for i, k := range s.ColorKeys {
		if k == key {
			s.Selected = key
			s.CarouselIndex = i
			return s
		}
	}
	return s
}

// SelectIndex selects the color at the given position in the ordered list.
// Out-of-range positions leave the state unchanged.
func (s CardState) SelectIndex(i int) CardState {
	if i < 0 || i >= len(s.ColorKeys) {
		return s
	}
	s.Selected = s.ColorKeys[i]
	s.CarouselIndex = i
	return s
}

// CycleColor moves the selection by delta, wrapping around the list.
func (s CardState) CycleColor(delta int) CardState {
	n := len(s.ColorKeys)
	if n == 0 {
		return s
	}
	i := (s.CarouselIndex + delta) % n
	if i < 0 {
		i += n
	}
	return s.SelectIndex(i)
}

// ListState is the list-level view state: paging position and the
// responsive visible-slide count.
type ListState struct {
	// Total is the number of products in the list.
	Total int
	// Visible is the number of slides shown at once.
	Visible int
	// Index is the index of the first visible slide.
	Index int
}

// NewListState builds a list state for the given product count and
// viewport width.
func NewListState(total, width int) ListState {
	return ListState{
		Total:   total,
		Visible: VisibleSlides(width),
	}
}

// VisibleSlides maps a viewport width to the number of visible slides:
// 1 below 640, 2 below 960, 3 below 1280, 4 at or above.
func VisibleSlides(width int) int {
	switch {
	case width < 640:
		return 1
	case width < 960:
		return 2
	case width < 1280:
		return 3
	default:
		return 4
	}
}

// maxIndex is the furthest the list can be paged.
func (s ListState) maxIndex() int {
	m := s.Total - s.Visible
	if m < 0 {
		return 0
	}
	return m
}

// Page moves the paging position by delta, clamped to the valid range.
func (s ListState) Page(delta int) ListState {
	s.Index += delta
	if s.Index < 0 {
		s.Index = 0
	}
	if m := s.maxIndex(); s.Index > m {
		s.Index = m
	}
	return s
}

// Resize recomputes the visible-slide count for a new viewport width and
// re-clamps the paging position.
func (s ListState) Resize(width int) ListState {
	s.Visible = VisibleSlides(width)
	return s.Page(0)
}

// Progress reports the horizontal scroll position in [0,1]:
// index / max(total - visible, 0), clamped.
func (s ListState) Progress() float64 {
	m := s.maxIndex()
	if m == 0 {
		return 0
	}
	p := float64(s.Index) / float64(m)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
