// 初始化演示数据：分类、商品、活动价、优惠券与配送费配置。
// 可重复执行，已存在的数据跳过。
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/souq-next/internal/config"
	"github.com/souq-next/internal/constants"
	"github.com/souq-next/internal/logger"
	"github.com/souq-next/internal/models"
	"github.com/souq-next/internal/repository"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(logger.Config{Level: "info", Format: "console"}); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{}); err != nil {
		logger.Errorw("db_init_failed", "error", err)
		os.Exit(1)
	}
	if err := models.AutoMigrate(); err != nil {
		logger.Errorw("db_migrate_failed", "error", err)
		os.Exit(1)
	}

	if err := seed(); err != nil {
		logger.Errorw("seed_failed", "error", err)
		os.Exit(1)
	}
	logger.Infow("seed_done")
}

func seed() error {
	categoryRepo := repository.NewCategoryRepository(models.DB)
	productRepo := repository.NewProductRepository(models.DB)
	saleRepo := repository.NewSaleRepository(models.DB)
	couponRepo := repository.NewCouponRepository(models.DB)
	settingRepo := repository.NewSettingRepository(models.DB)

	categories := []models.Category{
		{Slug: "electronics", Name: "电子产品", SortOrder: 1},
		{Slug: "groceries", Name: "食品百货", SortOrder: 2},
	}
	categoryIDs := make(map[string]uint)
	for i := range categories {
		existing, err := categoryRepo.GetBySlug(categories[i].Slug)
		if err != nil {
			return err
		}
		if existing != nil {
			categoryIDs[existing.Slug] = existing.ID
			continue
		}
		if err := categoryRepo.Create(&categories[i]); err != nil {
			return err
		}
		categoryIDs[categories[i].Slug] = categories[i].ID
		logger.Infow("seed_category", "slug", categories[i].Slug)
	}

	products := []models.Product{
		{
			CategoryID:  categoryIDs["electronics"],
			Slug:        "wireless-earbuds",
			Name:        "无线耳机",
			PriceAmount: models.NewMoneyFromInt(45000),
			Images:      models.StringArray{"/images/earbuds.jpg"},
			IsActive:    true,
			SortOrder:   1,
		},
		{
			CategoryID:  categoryIDs["electronics"],
			Slug:        "power-bank",
			Name:        "移动电源",
			PriceAmount: models.NewMoneyFromInt(25000),
			Images:      models.StringArray{"/images/powerbank.jpg"},
			IsActive:    true,
			SortOrder:   2,
		},
		{
			CategoryID:  categoryIDs["groceries"],
			Slug:        "date-box",
			Name:        "椰枣礼盒",
			PriceAmount: models.NewMoneyFromInt(12000),
			Images:      models.StringArray{"/images/dates.jpg"},
			IsActive:    true,
			SortOrder:   1,
		},
	}
	productIDs := make(map[string]uint)
	for i := range products {
		existing, err := productRepo.GetBySlug(products[i].Slug)
		if err != nil {
			return err
		}
		if existing != nil {
			productIDs[existing.Slug] = existing.ID
			continue
		}
		if err := productRepo.Create(&products[i]); err != nil {
			return err
		}
		productIDs[products[i].Slug] = products[i].ID
		logger.Infow("seed_product", "slug", products[i].Slug)
	}

	existingSales, _, err := saleRepo.List(repository.SaleListFilter{PageSize: 1})
	if err != nil {
		return err
	}
	if len(existingSales) == 0 {
		endsAt := time.Now().Add(14 * 24 * time.Hour)
		sales := []models.Sale{
			{
				Name:       "电子产品专场",
				ScopeType:  constants.ScopeTypeCategory,
				ScopeRefID: categoryIDs["electronics"],
				Percent:    20,
				EndsAt:     &endsAt,
				IsActive:   true,
			},
			{
				Name:       "耳机直降",
				ScopeType:  constants.ScopeTypeProduct,
				ScopeRefID: productIDs["wireless-earbuds"],
				Percent:    30,
				EndsAt:     &endsAt,
				IsActive:   true,
			},
		}
		for i := range sales {
			if err := saleRepo.Create(&sales[i]); err != nil {
				return err
			}
			logger.Infow("seed_sale", "name", sales[i].Name)
		}
	}

	coupons := []models.Coupon{
		{Code: "WELCOME10", ScopeType: constants.ScopeTypeGlobal, Percent: 10, IsActive: true},
		{Code: "TECH5", ScopeType: constants.ScopeTypeCategory, ScopeRefID: categoryIDs["electronics"], Percent: 5, IsActive: true},
	}
	for i := range coupons {
		existing, err := couponRepo.GetByCode(coupons[i].Code)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := couponRepo.Create(&coupons[i]); err != nil {
			return err
		}
		logger.Infow("seed_coupon", "code", coupons[i].Code)
	}

	if err := settingRepo.Upsert(&models.Setting{
		Key: constants.SettingKeyDeliveryConfig,
		ValueJSON: models.JSON{
			constants.SettingFieldDeliveryInsideFee:  "3000",
			constants.SettingFieldDeliveryOutsideFee: "5000",
		},
	}); err != nil {
		return err
	}
	return settingRepo.Upsert(&models.Setting{
		Key: constants.SettingKeySiteConfig,
		ValueJSON: models.JSON{
			constants.SettingFieldSiteCurrency: constants.SiteCurrencyDefault,
		},
	})
}
