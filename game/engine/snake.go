package engine

// Snake is the ordered list of occupied cells, head first
type Snake struct {
	body []Cell
}

// NewSnake creates a snake from the given cells. The slice is copied.
func NewSnake(cells []Cell) *Snake {
	body := make([]Cell, len(cells))
	copy(body, cells)
	return &Snake{body: body}
}

// NewSnakeLine creates a straight snake of distinct cells with its head at
// head, trailing behind so that moving in heading never hits the neck.
func NewSnakeLine(head Cell, length int, heading Direction) *Snake {
	if length < 1 {
		length = 1
	}
	back := heading.Opposite()
	body := make([]Cell, 0, length)
	c := head
	for i := 0; i < length; i++ {
		body = append(body, c)
		c = c.Offset(back)
	}
	return &Snake{body: body}
}

// Head returns the current head cell
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Tail returns the last cell of the body
func (s *Snake) Tail() Cell {
	return s.body[len(s.body)-1]
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.body)
}

// Cells returns a copy of the body, head first
func (s *Snake) Cells() []Cell {
	cells := make([]Cell, len(s.body))
	copy(cells, s.body)
	return cells
}

// Advance inserts a new head one cell away in direction d and returns it.
// The tail is left in place; callers shrink it when the snake did not eat.
func (s *Snake) Advance(d Direction) Cell {
	head := s.Head().Offset(d)
	s.body = append(s.body, Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = head
	return head
}

// ShrinkTail removes the last segment. A single-segment snake is left intact.
func (s *Snake) ShrinkTail() {
	if len(s.body) <= 1 {
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// Occupies reports whether any segment, head included, is on c
func (s *Snake) Occupies(c Cell) bool {
	for _, part := range s.body {
		if part == c {
			return true
		}
	}
	return false
}

// OccupiesExcludingHead reports whether a segment other than the head is on c
func (s *Snake) OccupiesExcludingHead(c Cell) bool {
	for _, part := range s.body[1:] {
		if part == c {
			return true
		}
	}
	return false
}
