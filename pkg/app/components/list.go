package components

// Cursor tracks the selected row of a list and wraps at both ends.
type Cursor struct {
	Index int
	Len   int
}

func (c *Cursor) SetLen(n int) {
	c.Len = n
	if c.Index >= n && n > 0 {
		c.Index = n - 1
	}
	if n == 0 {
		c.Index = 0
	}
}

func (c *Cursor) Next() {
	if c.Len == 0 {
		return
	}
	c.Index++
	if c.Index >= c.Len {
		c.Index = 0
	}
}

func (c *Cursor) Prev() {
	if c.Len == 0 {
		return
	}
	c.Index--
	if c.Index < 0 {
		c.Index = c.Len - 1
	}
}

func (c *Cursor) Valid() bool {
	return c.Len > 0 && c.Index >= 0 && c.Index < c.Len
}

// Window returns the [start, end) slice of at most size rows that keeps
// selected visible.
func Window(selected, total, size int) (int, int) {
	if size <= 0 || total <= size {
		return 0, total
	}
	start := selected - size/2
	if start < 0 {
		start = 0
	}
	end := start + size
	if end > total {
		end = total
		start = end - size
	}
	return start, end
}
