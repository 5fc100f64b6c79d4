package selection

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrUnknownKey = errors.New("unknown component or year")

// Key is either a literal year ("2010".."2019") or the name of a decade
// component such as "Births" or "Migration".
type Key string

const (
	Change        Key = "Change"
	Natural       Key = "Natural"
	Births        Key = "Births"
	Deaths        Key = "Deaths"
	Migration     Key = "Migration"
	International Key = "International"
	Domestic      Key = "Domestic"
)

// FirstYear has no prior year in the decade to diff against.
const FirstYear Key = "2010"

var components = []Key{Change, Natural, Births, Deaths, Migration, International, Domestic}

var years = []Key{"2010", "2011", "2012", "2013", "2014", "2015", "2016", "2017", "2018", "2019"}

// Components returns the decade components in display order.
func Components() []Key {
	return append([]Key(nil), components...)
}

// Years returns the selectable years in ascending order.
func Years() []Key {
	return append([]Key(nil), years...)
}

// Keys returns every selectable key: components first, then years.
func Keys() []Key {
	keys := make([]Key, 0, len(components)+len(years))
	keys = append(keys, components...)
	return append(keys, years...)
}

func ParseKey(s string) (Key, error) {
	for _, k := range Keys() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

// IsYear reports whether k is a 4-digit year. It does not require the year
// to be one of the selectable ones.
func (k Key) IsYear() bool {
	_, ok := k.Year()
	return ok
}

func (k Key) Year() (int, bool) {
	if len(k) != 4 {
		return 0, false
	}
	for _, c := range k {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	y, err := strconv.Atoi(string(k))
	if err != nil {
		return 0, false
	}
	return y, true
}

func (k Key) IsComponent() bool {
	for _, c := range components {
		if c == k {
			return true
		}
	}
	return false
}

// Diffable reports whether a year-over-year difference exists for k.
// FirstYear and the decade components have no prior year.
func (k Key) Diffable() bool {
	y, ok := k.Year()
	if !ok {
		return false
	}
	first, _ := FirstYear.Year()
	return y > first
}

// Prior returns the year before k, or "" when k is not a year.
func (k Key) Prior() Key {
	y, ok := k.Year()
	if !ok {
		return ""
	}
	return Key(strconv.Itoa(y - 1))
}
