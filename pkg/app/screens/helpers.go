package screens

import "strconv"

func itoa(n int) string {
	return strconv.Itoa(n)
}

// cardsPerPage is how many cards of cardHeight lines fit in height.
func cardsPerPage(height, cardHeight int) int {
	n := height / (cardHeight + 1)
	if n < 1 {
		n = 1
	}
	return n
}
