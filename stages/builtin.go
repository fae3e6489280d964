package stages

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"time"

	"github.com/npillmayer/strand/pipe"
)

// defaultTypeDelay is the per-character pause of the registered typewriter.
const defaultTypeDelay = 20 * time.Millisecond

// Uppercaser maps every character of the line to upper case.
func Uppercaser() pipe.Transform {
	return func(s string) (string, error) {
		return strings.ToUpper(s), nil
	}
}

// Flipper reverses the line, rune-wise.
func Flipper() pipe.Transform {
	return func(s string) (string, error) {
		runes := []rune(s)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes), nil
	}
}

// Rotator rotates the line right by one character, so "hello" becomes
// "ohell".
func Rotator() pipe.Transform {
	return func(s string) (string, error) {
		runes := []rune(s)
		if len(runes) < 2 {
			return s, nil
		}
		last := runes[len(runes)-1]
		copy(runes[1:], runes[:len(runes)-1])
		runes[0] = last
		return string(runes), nil
	}
}

// Expander inserts a single space between every pair of adjacent
// characters, turning "abc" into "a b c".
func Expander() pipe.Transform {
	return func(s string) (string, error) {
		runes := []rune(s)
		if len(runes) < 2 {
			return s, nil
		}
		var b strings.Builder
		b.Grow(2*len(runes) - 1)
		for i, r := range runes {
			if i > 0 {
				b.WriteRune(' ')
			}
			b.WriteRune(r)
		}
		return b.String(), nil
	}
}

// Logger prefixes the line with "[logger] ". Usually the terminal stage of
// a chain.
func Logger() pipe.Transform {
	return func(s string) (string, error) {
		return "[logger] " + s, nil
	}
}

// Typewriter passes the line through unchanged, pausing delay per character
// first. A delay of zero makes it a plain identity stage. The registered
// "typewriter" uses defaultTypeDelay.
func Typewriter(delay time.Duration) Factory {
	return func() pipe.Transform {
		return func(s string) (string, error) {
			if delay > 0 {
				time.Sleep(time.Duration(len([]rune(s))) * delay)
			}
			return s, nil
		}
	}
}
