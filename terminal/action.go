package terminal

import (
	"strconv"
	"strings"

	"kasir-terminal/services"
)

// action is the classification of one line of selection input.
type action struct {
	kind   actionKind
	itemID int // set only for actionAdd
}

type actionKind int

const (
	actionInvalid actionKind = iota
	actionAdd
	actionCheckout
	actionQuit
)

func (k actionKind) String() string {
	switch k {
	case actionAdd:
		return "add"
	case actionCheckout:
		return "checkout"
	case actionQuit:
		return "quit"
	case actionInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// classifySelection maps one line of selection input to an action. Matching
// is case-insensitive and ignores surrounding whitespace; a digit string is
// an add only when it names a catalog item.
func classifySelection(input string, catalog *services.Catalog) action {
	input = strings.ToLower(strings.TrimSpace(input))
	switch input {
	case "c":
		return action{kind: actionCheckout}
	case "q":
		return action{kind: actionQuit}
	}
	if !isDigits(input) {
		return action{kind: actionInvalid}
	}
	id, err := strconv.Atoi(input)
	if err != nil {
		return action{kind: actionInvalid}
	}
	if _, ok := catalog.Get(id); !ok {
		return action{kind: actionInvalid}
	}
	return action{kind: actionAdd, itemID: id}
}

// parseQuantity accepts a positive whole number written in decimal digits.
func parseQuantity(input string) (int, bool) {
	input = strings.TrimSpace(input)
	if !isDigits(input) {
		return 0, false
	}
	qty, err := strconv.Atoi(input)
	if err != nil || qty <= 0 {
		return 0, false
	}
	return qty, true
}

// isDigits reports whether s is a non-empty run of ASCII digits. Signs,
// spaces, and decimal points all disqualify.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
