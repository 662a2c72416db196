package service

import (
	"errors"
	"testing"

	"github.com/souq-next/internal/constants"
	"github.com/souq-next/internal/models"
	"github.com/souq-next/internal/repository"
)

func TestSettingDefaultsAndOverride(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewSettingRepository(db)
	svc := NewSettingService(repo, "", models.NewMoneyFromInt(3000), models.NewMoneyFromInt(5000))

	// 数据库无配置时取缺省值
	currency, err := svc.GetSiteCurrency()
	if err != nil {
		t.Fatalf("get currency: %v", err)
	}
	if currency != constants.SiteCurrencyDefault {
		t.Fatalf("expected default currency, got %s", currency)
	}
	fee, err := svc.DeliveryFee(constants.DeliveryTierInside)
	if err != nil {
		t.Fatalf("delivery fee: %v", err)
	}
	if fee.String() != "3000" {
		t.Fatalf("expected default inside fee 3000, got %s", fee.String())
	}

	// 数据库配置覆盖缺省值
	if err := svc.UpdateDeliverySetting(DeliverySetting{
		InsideFee:  models.NewMoneyFromInt(2000),
		OutsideFee: models.NewMoneyFromInt(7000),
	}); err != nil {
		t.Fatalf("update delivery: %v", err)
	}
	if err := svc.UpdateSiteCurrency("USD"); err != nil {
		t.Fatalf("update currency: %v", err)
	}

	currency, err = svc.GetSiteCurrency()
	if err != nil {
		t.Fatalf("get currency: %v", err)
	}
	if currency != "USD" {
		t.Fatalf("expected USD, got %s", currency)
	}
	fee, err = svc.DeliveryFee(constants.DeliveryTierOutside)
	if err != nil {
		t.Fatalf("delivery fee: %v", err)
	}
	if fee.String() != "7000" {
		t.Fatalf("expected outside fee 7000, got %s", fee.String())
	}

	if _, err := svc.DeliveryFee("overseas"); !errors.Is(err, ErrDeliveryTierInvalid) {
		t.Fatalf("expected ErrDeliveryTierInvalid, got %v", err)
	}
}
