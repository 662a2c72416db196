package service

import (
	"errors"
	"testing"

	"github.com/souq-next/internal/constants"
	"github.com/souq-next/internal/models"
	"github.com/souq-next/internal/repository"
)

func TestNormalizeCouponCode(t *testing.T) {
	if got := NormalizeCouponCode("  welcome10 "); got != "WELCOME10" {
		t.Fatalf("expected WELCOME10, got %q", got)
	}
}

func TestCouponValidate(t *testing.T) {
	db := setupTestDB(t)
	couponRepo := repository.NewCouponRepository(db)
	svc := NewCouponService(couponRepo)

	active := &models.Coupon{Code: "SAVE10", ScopeType: constants.ScopeTypeGlobal, Percent: 10, IsActive: true}
	if err := couponRepo.Create(active); err != nil {
		t.Fatalf("create coupon: %v", err)
	}
	disabled := &models.Coupon{Code: "OLD5", ScopeType: constants.ScopeTypeGlobal, Percent: 5, IsActive: false}
	if err := couponRepo.Create(disabled); err != nil {
		t.Fatalf("create coupon: %v", err)
	}

	coupon, err := svc.Validate("save10")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if coupon.Code != "SAVE10" {
		t.Fatalf("expected SAVE10, got %s", coupon.Code)
	}

	// 停用与不存在对外同一个错误
	if _, err := svc.Validate("OLD5"); !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("expected ErrCouponNotFound for disabled coupon, got %v", err)
	}
	if _, err := svc.Validate("NOPE"); !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("expected ErrCouponNotFound for unknown code, got %v", err)
	}
	if _, err := svc.Validate("   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank code, got %v", err)
	}
}

func TestApplyToLinesPerLineRounding(t *testing.T) {
	svc := NewCouponService(nil)
	coupon := &models.Coupon{Code: "SAVE10", ScopeType: constants.ScopeTypeGlobal, Percent: 10, IsActive: true}
	lines := []DiscountLine{
		// 333 × 1 × 10% = 33.3 → 33
		{ProductID: 1, CategoryID: 1, UnitPrice: models.NewMoneyFromInt(333), Quantity: 1},
		// 333 × 2 × 10% = 66.6 → 67
		{ProductID: 2, CategoryID: 1, UnitPrice: models.NewMoneyFromInt(333), Quantity: 2},
	}

	total, perLine, err := svc.ApplyToLines(coupon, lines)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if perLine[0].Amount.String() != "33" {
		t.Fatalf("expected line 0 discount 33, got %s", perLine[0].Amount.String())
	}
	if perLine[1].Amount.String() != "67" {
		t.Fatalf("expected line 1 discount 67, got %s", perLine[1].Amount.String())
	}
	// 合计必须等于各行之和
	if total.String() != "100" {
		t.Fatalf("expected total 100, got %s", total.String())
	}
}

func TestApplyToLinesScopeExclusion(t *testing.T) {
	svc := NewCouponService(nil)
	coupon := &models.Coupon{Code: "TECH5", ScopeType: constants.ScopeTypeCategory, ScopeRefID: 3, Percent: 5, IsActive: true}
	lines := []DiscountLine{
		{ProductID: 1, CategoryID: 3, UnitPrice: models.NewMoneyFromInt(1000), Quantity: 1},
		{ProductID: 2, CategoryID: 9, UnitPrice: models.NewMoneyFromInt(1000), Quantity: 1},
	}

	total, perLine, err := svc.ApplyToLines(coupon, lines)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !perLine[0].Eligible || perLine[0].Amount.String() != "50" {
		t.Fatalf("expected eligible line with discount 50, got %+v", perLine[0])
	}
	if perLine[1].Eligible || perLine[1].Amount.String() != "0" {
		t.Fatalf("expected out-of-scope line untouched, got %+v", perLine[1])
	}
	if total.String() != "50" {
		t.Fatalf("expected total 50, got %s", total.String())
	}
}

func TestApplyToLinesNoEligibleLine(t *testing.T) {
	svc := NewCouponService(nil)
	coupon := &models.Coupon{Code: "TECH5", ScopeType: constants.ScopeTypeProduct, ScopeRefID: 42, Percent: 5, IsActive: true}
	lines := []DiscountLine{
		{ProductID: 1, CategoryID: 3, UnitPrice: models.NewMoneyFromInt(1000), Quantity: 1},
	}
	if _, _, err := svc.ApplyToLines(coupon, lines); !errors.Is(err, ErrCouponScopeMismatch) {
		t.Fatalf("expected ErrCouponScopeMismatch, got %v", err)
	}
}

func TestApplyToLinesUnknownScope(t *testing.T) {
	svc := NewCouponService(nil)
	coupon := &models.Coupon{Code: "X", ScopeType: "brand", Percent: 5, IsActive: true}
	lines := []DiscountLine{
		{ProductID: 1, CategoryID: 3, UnitPrice: models.NewMoneyFromInt(1000), Quantity: 1},
	}
	if _, _, err := svc.ApplyToLines(coupon, lines); !errors.Is(err, ErrCouponScopeInvalid) {
		t.Fatalf("expected ErrCouponScopeInvalid, got %v", err)
	}
}
