package util

import (
	"math"
	"strconv"
)

// Noun picks the English form of a countable noun for number.
func Noun(number int, one, many string) string {
	if int(math.Abs(float64(number))) == 1 {
		return one
	}
	return many
}

// Count renders number followed by the matching noun form, e.g. "3 wins".
func Count(number int, one, many string) string {
	return strconv.Itoa(number) + " " + Noun(number, one, many)
}
