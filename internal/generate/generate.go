// Package generate enumerates numeric ranges into arithmetic drill cards.
package generate

import (
	"fmt"
	"strings"

	"github.com/abhisek/flashdrill/internal/drill"
)

// Op is an arithmetic card operation.
type Op int

const (
	Addition Op = iota
	Subtraction
	Multiplication
	Division
	SquareRoot
)

// String returns the operation name as accepted by ParseOp.
func (op Op) String() string {
	switch op {
	case Addition:
		return "addition"
	case Subtraction:
		return "subtraction"
	case Multiplication:
		return "multiplication"
	case Division:
		return "division"
	case SquareRoot:
		return "sqrt"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// ParseOp parses an operation name, case-insensitively.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "addition", "add":
		return Addition, nil
	case "subtraction", "sub":
		return Subtraction, nil
	case "multiplication", "mul":
		return Multiplication, nil
	case "division", "div":
		return Division, nil
	case "sqrt", "square-root":
		return SquareRoot, nil
	default:
		return 0, fmt.Errorf("generate: unknown operation %q", s)
	}
}

// PairMode selects how two ranges combine into pairs.
type PairMode int

const (
	// CrossProduct pairs every value of the first range with every value of
	// the second.
	CrossProduct PairMode = iota
	// Zip pairs values positionally, truncating to the shorter range.
	Zip
)

// Range is an inclusive integer range.
type Range struct {
	Start int
	Stop  int
}

// Values enumerates the range in order. An inverted range is empty.
func (r Range) Values() []int {
	if r.Stop < r.Start {
		return nil
	}
	out := make([]int, 0, r.Stop-r.Start+1)
	for v := r.Start; v <= r.Stop; v++ {
		out = append(out, v)
	}
	return out
}

// Pairs combines two inclusive ranges into ordered (a, b) pairs.
func Pairs(a, b Range, mode PairMode) [][2]int {
	av, bv := a.Values(), b.Values()
	var out [][2]int
	switch mode {
	case Zip:
		n := len(av)
		if len(bv) < n {
			n = len(bv)
		}
		for i := 0; i < n; i++ {
			out = append(out, [2]int{av[i], bv[i]})
		}
	default:
		for _, x := range av {
			for _, y := range bv {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

// Cards builds arithmetic cards from (a, b) pairs for the given operation:
//
//	addition        a + b            answer a+b
//	subtraction     (a+b) - a        answer b
//	multiplication  a × b            answer a*b
//	division        (a*b) ÷ a        answer b, pairs with a == 0 skipped
//	square root     √(a*a)           answer a, b ignored
func Cards(op Op, pairs [][2]int) []*drill.Card {
	var cards []*drill.Card
	for _, p := range pairs {
		a, b := p[0], p[1]
		switch op {
		case Addition:
			cards = append(cards, drill.NewArithmetic(fmt.Sprintf("%d + %d = ", a, b), int64(a+b)))
		case Subtraction:
			cards = append(cards, drill.NewArithmetic(fmt.Sprintf("%d - %d = ", a+b, a), int64(b)))
		case Multiplication:
			cards = append(cards, drill.NewArithmetic(fmt.Sprintf("%d × %d = ", a, b), int64(a*b)))
		case Division:
			// Division by the first coordinate is undefined when it is zero.
			if a == 0 {
				continue
			}
			cards = append(cards, drill.NewArithmetic(fmt.Sprintf("%d ÷ %d = ", a*b, a), int64(b)))
		case SquareRoot:
			cards = append(cards, drill.NewArithmetic(fmt.Sprintf("√%d = ", a*a), int64(a)))
		}
	}
	return cards
}

// NewDeck builds a deck from the full cross product of r with itself, the
// shape used for range-based practice sessions.
func NewDeck(op Op, r Range, threshold float64) *drill.Deck {
	return drill.New(Cards(op, Pairs(r, r, CrossProduct)), threshold)
}
