package carol

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a song has no days or its labels and gifts
// cannot be paired.
var ErrInvalidInput = errors.New("invalid input")

// Day is one position in an additive song: the ordinal label used in the
// header and the gift introduced on that day.
type Day struct {
	Label string
	Gift  string
}

// Title of the built-in song
const Title = "The Twelve Days of Christmas"

// DefaultSubject is the occasion named in every header
const DefaultSubject = "Christmas"

// https://genius.com/Christmas-songs-the-twelve-days-of-christmas-lyrics
var twelveDays = [...]Day{
	{"first", "A partridge in a pear tree"},
	{"second", "Two turtle doves and"},
	{"third", "Three french hens"},
	{"fourth", "Four calling birds"},
	{"fifth", "Five golden rings"},
	{"sixth", "Six geese a-laying"},
	{"seventh", "Seven swans a-swimming"},
	{"eighth", "Eight maids a-milking"},
	{"ninth", "Nine ladies dancing"},
	{"tenth", "Ten lords a-leaping"},
	{"eleventh", "Eleven pipers piping"},
	{"twelfth", "Twelve drummers drumming"},
}

// Christmas returns a copy of the twelve days table
func Christmas() []Day {
	days := make([]Day, len(twelveDays))
	copy(days, twelveDays[:])
	return days
}

// Pair zips parallel label and gift slices into days.
func Pair(labels, gifts []string) ([]Day, error) {
	if len(labels) != len(gifts) {
		return nil, fmt.Errorf("%w: %d labels but %d gifts", ErrInvalidInput, len(labels), len(gifts))
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no days", ErrInvalidInput)
	}

	days := make([]Day, len(labels))
	for i := range labels {
		days[i] = Day{Label: labels[i], Gift: gifts[i]}
	}
	return days, nil
}
