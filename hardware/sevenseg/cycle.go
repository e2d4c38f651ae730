package sevenseg

import "fmt"

// Digits is number of multiplexed digit positions.
const Digits = 4

type Position uint8

const (
	Digit1 Position = iota
	Digit2
	Digit3
	Digit4
)

func (p Position) Index() int { return int(p) }

func (p Position) String() string {
	if p > Digit4 {
		return fmt.Sprintf("digit(%d)", uint8(p))
	}
	return fmt.Sprintf("digit%d", uint8(p)+1)
}

// Toggle is one refresh step: Off goes dark, On lights, in the same update.
type Toggle struct {
	Off, On Position
}

// Next is the round robin transition 1,2,3,4,1...
func (p Position) Next() (Position, Toggle) {
	next := (p + 1) % Digits
	return next, Toggle{Off: p, On: next}
}
