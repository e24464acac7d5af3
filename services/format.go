package services

import (
	"strconv"
	"strings"
)

const defaultCurrencyPrefix = "Rp"

// Formatter renders integer amounts in the receipt currency style: a prefix,
// a space, and the digits grouped in threes with '.' separators.
type Formatter struct {
	Prefix string
}

func NewFormatter(prefix string) Formatter {
	if prefix == "" {
		prefix = defaultCurrencyPrefix
	}
	return Formatter{Prefix: prefix}
}

// Currency formats an amount of whole currency units: 1234567 becomes
// "Rp 1.234.567".
func (f Formatter) Currency(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	if s[0] == '-' {
		return f.Prefix + " -" + groupDigits(s[1:])
	}
	return f.Prefix + " " + groupDigits(s)
}

func groupDigits(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(n + (n-1)/3)
	lead := n % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < n; i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
