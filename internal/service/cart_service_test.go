package service

import (
	"context"
	"errors"
	"testing"

	"github.com/souq-next/internal/models"
	"github.com/souq-next/internal/repository"
	"gorm.io/gorm"
)

func newTestCartService(db *gorm.DB) *CartService {
	settingService := NewSettingService(
		repository.NewSettingRepository(db), "",
		models.NewMoneyFromInt(0), models.NewMoneyFromInt(0),
	)
	return NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		NewSaleService(repository.NewSaleRepository(db)),
		NewPricingService(),
		settingService,
	)
}

func seedTestProduct(t *testing.T, db *gorm.DB, slug string, price int64, active bool) *models.Product {
	t.Helper()
	category := &models.Category{Slug: "cat-" + slug, Name: "cat"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	product := &models.Product{
		CategoryID:  category.ID,
		Slug:        slug,
		Name:        slug,
		PriceAmount: models.NewMoneyFromInt(price),
		IsActive:    active,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func TestCartAddItemIncrements(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestCartService(db)
	ctx := context.Background()
	product := seedTestProduct(t, db, "earbuds", 1000, true)

	if err := svc.AddItem(ctx, 1, product.ID, 2); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := svc.AddItem(ctx, 1, product.ID, 3); err != nil {
		t.Fatalf("add item again: %v", err)
	}

	detail, err := svc.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(detail.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(detail.Items))
	}
	if detail.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", detail.Items[0].Quantity)
	}
	if detail.Subtotal.String() != "5000" {
		t.Fatalf("expected subtotal 5000, got %s", detail.Subtotal.String())
	}
}

func TestCartSetItemQuantityOverwrites(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestCartService(db)
	ctx := context.Background()
	product := seedTestProduct(t, db, "powerbank", 500, true)

	if err := svc.AddItem(ctx, 1, product.ID, 5); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := svc.SetItemQuantity(ctx, 1, product.ID, 2); err != nil {
		t.Fatalf("set quantity: %v", err)
	}

	detail, err := svc.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if detail.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2 after overwrite, got %d", detail.Items[0].Quantity)
	}

	if err := svc.SetItemQuantity(ctx, 1, product.ID, 0); !errors.Is(err, ErrCartItemInvalid) {
		t.Fatalf("expected ErrCartItemInvalid for zero quantity, got %v", err)
	}
}

func TestCartAddItemRejectsUnsellable(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestCartService(db)
	ctx := context.Background()
	inactive := seedTestProduct(t, db, "retired", 500, false)

	if err := svc.AddItem(ctx, 1, inactive.ID, 1); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("expected ErrProductNotAvailable, got %v", err)
	}
	if err := svc.AddItem(ctx, 1, 9999, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCartGetDropsInactiveProducts(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestCartService(db)
	ctx := context.Background()
	keep := seedTestProduct(t, db, "keep", 1000, true)
	drop := seedTestProduct(t, db, "drop", 1000, true)

	if err := svc.AddItem(ctx, 1, keep.ID, 1); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := svc.AddItem(ctx, 1, drop.ID, 1); err != nil {
		t.Fatalf("add item: %v", err)
	}

	// 下架后条目应从视图剔除并清理
	if err := db.Model(&models.Product{}).Where("id = ?", drop.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product: %v", err)
	}

	detail, err := svc.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(detail.Items) != 1 || detail.Items[0].ProductID != keep.ID {
		t.Fatalf("expected only active product, got %+v", detail.Items)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("product_id = ?", drop.ID).Count(&count).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected stale row cleaned, got %d rows", count)
	}
}

func TestCartMergeOverwritesAndSkips(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestCartService(db)
	ctx := context.Background()
	existing := seedTestProduct(t, db, "existing", 1000, true)
	fresh := seedTestProduct(t, db, "fresh", 1000, true)
	inactive := seedTestProduct(t, db, "inactive", 1000, false)

	if err := svc.AddItem(ctx, 1, existing.ID, 5); err != nil {
		t.Fatalf("add item: %v", err)
	}

	guest := []GuestCartItem{
		{ProductID: existing.ID, Quantity: 2}, // 覆盖 5 → 2
		{ProductID: fresh.ID, Quantity: 3},
		{ProductID: inactive.ID, Quantity: 1}, // 跳过
		{ProductID: 9999, Quantity: 1},        // 跳过
	}
	if err := svc.MergeGuestCart(ctx, 1, guest); err != nil {
		t.Fatalf("merge: %v", err)
	}

	detail, err := svc.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	quantities := map[uint]int{}
	for _, line := range detail.Items {
		quantities[line.ProductID] = line.Quantity
	}
	if quantities[existing.ID] != 2 {
		t.Fatalf("expected overwrite to 2, got %d", quantities[existing.ID])
	}
	if quantities[fresh.ID] != 3 {
		t.Fatalf("expected fresh item quantity 3, got %d", quantities[fresh.ID])
	}
	if len(detail.Items) != 2 {
		t.Fatalf("expected skipped items absent, got %+v", detail.Items)
	}

	// 重复合并结果不变
	if err := svc.MergeGuestCart(ctx, 1, guest); err != nil {
		t.Fatalf("merge again: %v", err)
	}
	again, err := svc.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(again.Items) != 2 || again.Subtotal.String() != detail.Subtotal.String() {
		t.Fatalf("merge not idempotent: %+v vs %+v", again.Items, detail.Items)
	}
}

func TestCartClearAndRemoveIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestCartService(db)
	ctx := context.Background()
	product := seedTestProduct(t, db, "thing", 1000, true)

	if err := svc.AddItem(ctx, 1, product.ID, 1); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := svc.RemoveItem(ctx, 1, product.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.RemoveItem(ctx, 1, product.ID); err != nil {
		t.Fatalf("remove again: %v", err)
	}
	if err := svc.Clear(ctx, 1); err != nil {
		t.Fatalf("clear empty cart: %v", err)
	}

	detail, err := svc.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(detail.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", detail.Items)
	}
}
