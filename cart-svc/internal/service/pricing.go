package service

import (
	"bitecart/cart-svc/internal/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// EffectivePrice applies a percentage discount. The discount is assumed to be
// within [0,100]; products are validated when they are decoded.
func EffectivePrice(unitPrice, discountPercent decimal.Decimal) decimal.Decimal {
	if !discountPercent.IsPositive() {
		return unitPrice
	}
	return unitPrice.Mul(decimal.NewFromInt(1).Sub(discountPercent.Div(hundred)))
}

func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// CartTotal sums unrounded line totals; round the result once with RoundMoney.
func CartTotal(lines []domain.PricedLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(LineTotal(line.UnitPrice, line.Quantity))
	}
	return total
}

func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PriceLines joins cart lines with their products at full precision.
func PriceLines(lines []domain.CartLine, products map[string]domain.Product) domain.PricedCart {
	priced := domain.PricedCart{Lines: make([]domain.PricedLine, 0, len(lines))}
	for _, line := range lines {
		product, ok := products[line.ProductID]
		if !ok || line.Quantity <= 0 {
			continue
		}
		unit := EffectivePrice(product.Price, product.Discount)
		priced.Lines = append(priced.Lines, domain.PricedLine{
			Product:   product,
			Quantity:  line.Quantity,
			UnitPrice: unit,
			LineTotal: LineTotal(unit, line.Quantity),
		})
		priced.ItemCount += line.Quantity
		if priced.RestaurantID == "" {
			priced.RestaurantID = product.RestaurantID
		}
	}
	priced.Total = CartTotal(priced.Lines)
	return priced
}
