package console

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dwikikusuma/shoping-checkout/internal/checkout/domain"
	shipping "github.com/dwikikusuma/shoping-checkout/internal/shipping/domain"
)

// Printer renders receipts and shipment notices as plain text.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

func (p *Printer) ReportReceipt(_ context.Context, r domain.Receipt) error {
	ew := &errWriter{w: p.w}
	ew.printf("** Checkout receipt **\n")
	for _, ln := range r.Lines {
		ew.printf("%dx %s %s\n", ln.Quantity, ln.Name, ln.LineTotal.StringFixed(2))
	}
	ew.printf("----------------------\n")
	ew.printf("Subtotal %s\n", r.Subtotal.StringFixed(2))
	ew.printf("Shipping %s\n", r.ShippingCost.StringFixed(2))
	ew.printf("Amount %s\n", r.Total.StringFixed(2))
	ew.printf("Balance %s\n", r.RemainingBalance.StringFixed(2))
	return ew.err
}

func (p *Printer) ReportShipment(_ context.Context, m shipping.Manifest) error {
	ew := &errWriter{w: p.w}
	ew.printf("** Shipment notice **\n")
	for _, ln := range m.Lines {
		ew.printf("%dx %s %skg\n", ln.Count, ln.Name, ln.Weight().String())
	}
	ew.printf("Total package weight %skg\n", m.TotalWeight.String())
	return ew.err
}

// errWriter keeps the first write error and skips the remaining writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
