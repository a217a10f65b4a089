package quotation

import (
	"permit-quotation-service/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

// PricedPermit pairs a request with its catalog entry. PermitType is nil for
// custom requests.
type PricedPermit struct {
	Request    *PermitRequest
	PermitType *catalog.PermitType
}

type LineItem struct {
	Description  string
	TimeEstimate string
	UnitPrice    decimal.Decimal
	Qty          int
	ItemRef      *string
}

func (l LineItem) Amount() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// Pricing turns permit requests into estimate line items. Custom entries have
// no catalog price and are charged FallbackPrice.
type Pricing struct {
	FallbackPrice   decimal.Decimal
	FallbackItemRef *string
}

func (p Pricing) LineItems(permits []PricedPermit) []LineItem {
	items := make([]LineItem, 0, len(permits))
	for _, pp := range permits {
		if pp.PermitType != nil {
			items = append(items, LineItem{
				Description:  pp.PermitType.Name(),
				TimeEstimate: pp.PermitType.TimeEstimate(),
				UnitPrice:    pp.PermitType.Price(),
				Qty:          1,
				ItemRef:      pp.PermitType.ExternalItemRef(),
			})
			continue
		}

		name := "Custom permit"
		if n := pp.Request.CustomName(); n != nil {
			name = *n
		}
		items = append(items, LineItem{
			Description: name,
			UnitPrice:   p.FallbackPrice,
			Qty:         1,
			ItemRef:     p.FallbackItemRef,
		})
	}
	return items
}

func Total(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount())
	}
	return total
}
