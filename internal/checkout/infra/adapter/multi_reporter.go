package adapter

import (
	"context"
	"errors"

	"github.com/dwikikusuma/shoping-checkout/internal/checkout/app"
	checkout "github.com/dwikikusuma/shoping-checkout/internal/checkout/domain"
)

// MultiReporter hands each receipt to every reporter in order. A failing
// reporter does not stop the ones after it.
type MultiReporter []app.ReceiptReporter

func NewMultiReporter(reporters ...app.ReceiptReporter) MultiReporter {
	return MultiReporter(reporters)
}

func (m MultiReporter) ReportReceipt(ctx context.Context, r checkout.Receipt) error {
	var errs []error
	for _, rep := range m {
		if rep == nil {
			continue
		}
		if err := rep.ReportReceipt(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
