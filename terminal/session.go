package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kasir-terminal/services"
)

const (
	promptSelect   = "Select item number (or 'c' to checkout, 'q' to quit): "
	promptQuantity = "Enter quantity: "

	msgInvalidSelection = "Invalid selection. Please enter a valid item number, 'c', or 'q'."
	msgInvalidQuantity  = "Invalid quantity. Please enter a positive whole number."
	msgCartLimit        = "Cannot add item: bill total limit reached."
	msgGoodbye          = "Exiting without checkout. Goodbye!"
	msgThanks           = "Thank you for shopping!"
)

// Session runs one cashier interaction: the menu is shown, item selections
// with quantities accumulate into a cart, and the session ends with either a
// printed bill (checkout) or nothing (quit).
type Session struct {
	id      string
	catalog *services.Catalog
	cart    *services.Cart
	format  services.Formatter
	in      *bufio.Reader
	out     io.Writer
	log     *zap.Logger
}

func New(catalog *services.Catalog, format services.Formatter, in io.Reader, out io.Writer, log *zap.Logger) *Session {
	return &Session{
		id:      uuid.NewString(),
		catalog: catalog,
		cart:    services.NewCart(),
		format:  format,
		in:      bufio.NewReader(in),
		out:     out,
		log:     log,
	}
}

// Run drives the prompt loop until checkout, quit, or end of input (treated
// as quit). The returned error is a failed read, never bad operator input.
func (s *Session) Run() error {
	s.log.Info("session started",
		zap.String("session_id", s.id),
		zap.Int("menu_items", s.catalog.Len()),
	)
	for {
		WriteMenu(s.out, s.format, s.catalog)
		line, ok, err := s.readLine(promptSelect)
		if err != nil {
			return err
		}
		if !ok {
			s.quit()
			return nil
		}
		act := classifySelection(line, s.catalog)
		s.log.Debug("selection",
			zap.String("session_id", s.id),
			zap.Stringer("action", act.kind),
		)
		switch act.kind {
		case actionQuit:
			s.quit()
			return nil
		case actionCheckout:
			s.checkout()
			return nil
		case actionInvalid:
			fmt.Fprintln(s.out, msgInvalidSelection)
			continue
		}

		qtyLine, ok, err := s.readLine(promptQuantity)
		if err != nil {
			return err
		}
		if !ok {
			s.quit()
			return nil
		}
		qty, ok := parseQuantity(qtyLine)
		if !ok {
			fmt.Fprintln(s.out, msgInvalidQuantity)
			continue
		}
		s.addToCart(act.itemID, qty)
	}
}

// readLine prints prompt and reads one line of any length. A line that does
// not fit a fixed buffer is still input for the caller to classify, never a
// failure. The boolean is false once the stream is exhausted; a final line
// without a trailing newline is still delivered.
func (s *Session) readLine(prompt string) (string, bool, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, fmt.Errorf("read input: %w", err)
	}
	if line == "" {
		return "", false, nil
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}

func (s *Session) addToCart(itemID, qty int) {
	item, ok := s.catalog.Get(itemID)
	if !ok {
		fmt.Fprintln(s.out, msgInvalidSelection)
		return
	}
	if err := s.cart.Add(item, qty); err != nil {
		s.log.Warn("add rejected",
			zap.String("session_id", s.id),
			zap.Int("item_id", itemID),
			zap.Int("qty", qty),
			zap.Error(err),
		)
		if errors.Is(err, services.ErrTotalOverflow) {
			fmt.Fprintln(s.out, msgCartLimit)
		} else {
			fmt.Fprintln(s.out, msgInvalidQuantity)
		}
		return
	}
	fmt.Fprintf(s.out, "Added %d x %s to cart (Line subtotal: %s).\n",
		qty, item.Name, s.format.Currency(item.Price*int64(qty)))
	s.log.Debug("item added",
		zap.String("session_id", s.id),
		zap.Int("item_id", itemID),
		zap.Int("qty", qty),
		zap.Int64("cart_total", s.cart.Total()),
	)
}

func (s *Session) checkout() {
	receiptID := "r_" + uuid.NewString()
	fmt.Fprintln(s.out)
	for _, line := range services.BuildReceipt(s.format, s.cart) {
		fmt.Fprintln(s.out, line)
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, msgThanks)
	s.log.Info("checkout",
		zap.String("session_id", s.id),
		zap.String("receipt_id", receiptID),
		zap.Int("lines", s.cart.Len()),
		zap.Int64("total", s.cart.Total()),
	)
}

func (s *Session) quit() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, msgGoodbye)
	s.log.Info("session ended without checkout", zap.String("session_id", s.id))
}

// WriteMenu prints the menu block preceded by a blank separator line. The
// interactive loop and the `menu` subcommand share this rendering.
func WriteMenu(w io.Writer, f services.Formatter, catalog *services.Catalog) {
	fmt.Fprintln(w)
	for _, line := range services.BuildMenu(f, catalog) {
		fmt.Fprintln(w, line)
	}
}
