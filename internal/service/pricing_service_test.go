package service

import (
	"testing"
	"time"

	"github.com/souq-next/internal/constants"
	"github.com/souq-next/internal/models"
)

func testProduct(id, categoryID uint, price int64) *models.Product {
	return &models.Product{
		ID:          id,
		CategoryID:  categoryID,
		Slug:        "p",
		Name:        "p",
		PriceAmount: models.NewMoneyFromInt(price),
		IsActive:    true,
	}
}

func TestResolveSaleSpecificityWins(t *testing.T) {
	pricing := NewPricingService()
	product := testProduct(10, 3, 1000)
	sales := []models.Sale{
		{ID: 1, ScopeType: constants.ScopeTypeGlobal, Percent: 50, IsActive: true},
		{ID: 2, ScopeType: constants.ScopeTypeCategory, ScopeRefID: 3, Percent: 20, IsActive: true},
		{ID: 3, ScopeType: constants.ScopeTypeProduct, ScopeRefID: 10, Percent: 5, IsActive: true},
	}

	sale, err := pricing.ResolveSale(product, sales)
	if err != nil {
		t.Fatalf("resolve sale: %v", err)
	}
	if sale == nil || sale.ID != 3 {
		t.Fatalf("expected product-scoped sale to win, got %+v", sale)
	}
}

func TestResolveSaleTieBreaks(t *testing.T) {
	pricing := NewPricingService()
	product := testProduct(10, 3, 1000)
	early := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	// 同级别：折扣力度大者优先
	sales := []models.Sale{
		{ID: 1, ScopeType: constants.ScopeTypeCategory, ScopeRefID: 3, Percent: 10, IsActive: true},
		{ID: 2, ScopeType: constants.ScopeTypeCategory, ScopeRefID: 3, Percent: 25, IsActive: true},
	}
	sale, err := pricing.ResolveSale(product, sales)
	if err != nil {
		t.Fatalf("resolve sale: %v", err)
	}
	if sale.ID != 2 {
		t.Fatalf("expected deeper discount to win, got sale %d", sale.ID)
	}

	// 同级别同力度：生效早者优先
	sales = []models.Sale{
		{ID: 1, ScopeType: constants.ScopeTypeCategory, ScopeRefID: 3, Percent: 10, StartsAt: &late, IsActive: true},
		{ID: 2, ScopeType: constants.ScopeTypeCategory, ScopeRefID: 3, Percent: 10, StartsAt: &early, IsActive: true},
	}
	sale, err = pricing.ResolveSale(product, sales)
	if err != nil {
		t.Fatalf("resolve sale: %v", err)
	}
	if sale.ID != 2 {
		t.Fatalf("expected earlier sale to win, got sale %d", sale.ID)
	}

	// 全同：ID 小者优先，保证确定性
	sales = []models.Sale{
		{ID: 7, ScopeType: constants.ScopeTypeCategory, ScopeRefID: 3, Percent: 10, StartsAt: &early, IsActive: true},
		{ID: 4, ScopeType: constants.ScopeTypeCategory, ScopeRefID: 3, Percent: 10, StartsAt: &early, IsActive: true},
	}
	sale, err = pricing.ResolveSale(product, sales)
	if err != nil {
		t.Fatalf("resolve sale: %v", err)
	}
	if sale.ID != 4 {
		t.Fatalf("expected lowest id to win, got sale %d", sale.ID)
	}
}

func TestResolveSaleScopeMismatch(t *testing.T) {
	pricing := NewPricingService()
	product := testProduct(10, 3, 1000)
	sales := []models.Sale{
		{ID: 1, ScopeType: constants.ScopeTypeCategory, ScopeRefID: 99, Percent: 20, IsActive: true},
		{ID: 2, ScopeType: constants.ScopeTypeProduct, ScopeRefID: 99, Percent: 20, IsActive: true},
	}
	sale, err := pricing.ResolveSale(product, sales)
	if err != nil {
		t.Fatalf("resolve sale: %v", err)
	}
	if sale != nil {
		t.Fatalf("expected no sale, got %+v", sale)
	}
}

func TestResolveSaleUnknownScopeFails(t *testing.T) {
	pricing := NewPricingService()
	product := testProduct(10, 3, 1000)
	sales := []models.Sale{
		{ID: 1, ScopeType: "brand", ScopeRefID: 3, Percent: 20, IsActive: true},
	}
	if _, err := pricing.ResolveSale(product, sales); err != ErrSaleScopeInvalid {
		t.Fatalf("expected ErrSaleScopeInvalid, got %v", err)
	}
}

func TestQuoteAppliesDiscountWithRounding(t *testing.T) {
	pricing := NewPricingService()
	// 1250 × 20% off = 1000
	product := testProduct(10, 3, 1250)
	sales := []models.Sale{
		{ID: 1, ScopeType: constants.ScopeTypeProduct, ScopeRefID: 10, Percent: 20, IsActive: true},
	}
	quote, err := pricing.Quote(product, sales)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if !quote.IsOnSale {
		t.Fatal("expected quote to be on sale")
	}
	if quote.FinalPrice.String() != "1000" {
		t.Fatalf("expected final price 1000, got %s", quote.FinalPrice.String())
	}
	if quote.OriginalPrice.String() != "1250" {
		t.Fatalf("expected original price 1250, got %s", quote.OriginalPrice.String())
	}

	// 999 × 15% off = 849.15 → 849
	product = testProduct(11, 3, 999)
	sales = []models.Sale{
		{ID: 1, ScopeType: constants.ScopeTypeProduct, ScopeRefID: 11, Percent: 15, IsActive: true},
	}
	quote, err = pricing.Quote(product, sales)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if quote.FinalPrice.String() != "849" {
		t.Fatalf("expected rounded final price 849, got %s", quote.FinalPrice.String())
	}
}

func TestQuoteNoSaleKeepsOriginal(t *testing.T) {
	pricing := NewPricingService()
	product := testProduct(10, 3, 1000)
	quote, err := pricing.Quote(product, nil)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if quote.IsOnSale || quote.SaleID != nil {
		t.Fatalf("expected no sale on quote, got %+v", quote)
	}
	if quote.FinalPrice.String() != "1000" {
		t.Fatalf("expected final price 1000, got %s", quote.FinalPrice.String())
	}
}

func TestQuoteDeterministic(t *testing.T) {
	pricing := NewPricingService()
	product := testProduct(10, 3, 777)
	sales := []models.Sale{
		{ID: 1, ScopeType: constants.ScopeTypeGlobal, Percent: 10, IsActive: true},
		{ID: 2, ScopeType: constants.ScopeTypeCategory, ScopeRefID: 3, Percent: 10, IsActive: true},
	}
	first, err := pricing.Quote(product, sales)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := pricing.Quote(product, sales)
		if err != nil {
			t.Fatalf("quote: %v", err)
		}
		if again.FinalPrice.String() != first.FinalPrice.String() || *again.SaleID != *first.SaleID {
			t.Fatalf("quote not deterministic: %+v vs %+v", again, first)
		}
	}
}
