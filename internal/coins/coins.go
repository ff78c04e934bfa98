// Package coins sorts a purse of US coins, counting the plain ones and
// announcing the state printed on each quarter.
package coins

import (
	"fmt"
	"io"
)

// State is the US state minted on a state quarter
type State int

const (
	Alabama State = iota
	Alaska
)

func (s State) String() string {
	switch s {
	case Alabama:
		return "Alabama"
	case Alaska:
		return "Alaska"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Coin is one of Penny, Nickel, Dime or Quarter.
type Coin interface {
	// Cents returns the face value
	Cents() int
	coin()
}

type Penny struct{}
type Nickel struct{}
type Dime struct{}

// Quarter carries the state it was minted for.
type Quarter struct {
	State State
}

func (Penny) Cents() int   { return 1 }
func (Nickel) Cents() int  { return 5 }
func (Dime) Cents() int    { return 10 }
func (Quarter) Cents() int { return 25 }

func (Penny) coin()   {}
func (Nickel) coin()  {}
func (Dime) coin()    {}
func (Quarter) coin() {}

// DefaultPurse returns the coins sorted by the coins command
func DefaultPurse() []Coin {
	return []Coin{
		Penny{},
		Nickel{},
		Quarter{State: Alabama},
		Dime{},
		Quarter{State: Alaska},
	}
}

// Sort walks the purse in order. Quarters are announced on w, every other
// coin is counted. It returns the number of non-quarter coins.
func Sort(w io.Writer, purse []Coin) (int, error) {
	count := 0
	for _, c := range purse {
		switch c := c.(type) {
		case Quarter:
			if _, err := fmt.Fprintf(w, "State quarter from %s!\n", c.State); err != nil {
				return count, err
			}
		case Penny, Nickel, Dime:
			count++
		default:
			return count, fmt.Errorf("unknown coin %T", c)
		}
	}
	return count, nil
}

// Report sorts the purse and writes the non-quarter count.
func Report(w io.Writer, purse []Coin) error {
	count, err := Sort(w, purse)
	if err != nil {
		return fmt.Errorf("failed to sort coins: %w", err)
	}
	_, err = fmt.Fprintf(w, "Number of non-quarter coins: %d\n", count)
	return err
}

// Total sums the face value of the purse in cents
func Total(purse []Coin) int {
	total := 0
	for _, c := range purse {
		total += c.Cents()
	}
	return total
}
