package service

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/souq-next/internal/constants"
	"github.com/souq-next/internal/models"
	"github.com/souq-next/internal/repository"
)

// DeliverySetting 配送费配置
type DeliverySetting struct {
	InsideFee  models.Money `json:"inside_fee"`
	OutsideFee models.Money `json:"outside_fee"`
}

// SettingService 站点配置读取（币种、配送费表）
type SettingService struct {
	settingRepo repository.SettingRepository

	defaultCurrency   string
	defaultInsideFee  models.Money
	defaultOutsideFee models.Money
}

// NewSettingService 创建配置服务。缺省值来自应用配置，
// 数据库配置存在时覆盖。
func NewSettingService(settingRepo repository.SettingRepository, currency string, insideFee, outsideFee models.Money) *SettingService {
	if currency == "" {
		currency = constants.SiteCurrencyDefault
	}
	return &SettingService{
		settingRepo:       settingRepo,
		defaultCurrency:   currency,
		defaultInsideFee:  insideFee,
		defaultOutsideFee: outsideFee,
	}
}

// GetSiteCurrency 获取站点币种
func (s *SettingService) GetSiteCurrency() (string, error) {
	setting, err := s.settingRepo.GetByKey(constants.SettingKeySiteConfig)
	if err != nil {
		return "", err
	}
	if setting == nil {
		return s.defaultCurrency, nil
	}
	if v, ok := setting.ValueJSON[constants.SettingFieldSiteCurrency].(string); ok && v != "" {
		return v, nil
	}
	return s.defaultCurrency, nil
}

// GetDeliverySetting 获取配送费表
func (s *SettingService) GetDeliverySetting() (*DeliverySetting, error) {
	result := &DeliverySetting{
		InsideFee:  s.defaultInsideFee,
		OutsideFee: s.defaultOutsideFee,
	}
	setting, err := s.settingRepo.GetByKey(constants.SettingKeyDeliveryConfig)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return result, nil
	}
	if amount, ok := parseSettingAmount(setting.ValueJSON[constants.SettingFieldDeliveryInsideFee]); ok {
		result.InsideFee = amount
	}
	if amount, ok := parseSettingAmount(setting.ValueJSON[constants.SettingFieldDeliveryOutsideFee]); ok {
		result.OutsideFee = amount
	}
	return result, nil
}

// DeliveryFee 按配送区域返回配送费
func (s *SettingService) DeliveryFee(tier string) (models.Money, error) {
	setting, err := s.GetDeliverySetting()
	if err != nil {
		return models.NewMoneyFromInt(0), err
	}
	switch tier {
	case constants.DeliveryTierInside:
		return setting.InsideFee, nil
	case constants.DeliveryTierOutside:
		return setting.OutsideFee, nil
	default:
		return models.NewMoneyFromInt(0), ErrDeliveryTierInvalid
	}
}

// UpdateDeliverySetting 写入配送费表
func (s *SettingService) UpdateDeliverySetting(setting DeliverySetting) error {
	return s.settingRepo.Upsert(&models.Setting{
		Key: constants.SettingKeyDeliveryConfig,
		ValueJSON: models.JSON{
			constants.SettingFieldDeliveryInsideFee:  setting.InsideFee.String(),
			constants.SettingFieldDeliveryOutsideFee: setting.OutsideFee.String(),
		},
	})
}

// UpdateSiteCurrency 写入站点币种
func (s *SettingService) UpdateSiteCurrency(currency string) error {
	return s.settingRepo.Upsert(&models.Setting{
		Key: constants.SettingKeySiteConfig,
		ValueJSON: models.JSON{
			constants.SettingFieldSiteCurrency: currency,
		},
	})
}

// parseSettingAmount 解析 JSON 配置中的金额字段（字符串或数字）
func parseSettingAmount(raw interface{}) (models.Money, bool) {
	switch v := raw.(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return models.Money{}, false
		}
		return models.NewMoneyFromDecimal(d), true
	case float64:
		return models.NewMoneyFromDecimal(decimal.NewFromFloat(v)), true
	case int:
		return models.NewMoneyFromInt(int64(v)), true
	case int64:
		return models.NewMoneyFromInt(v), true
	case fmt.Stringer:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return models.Money{}, false
		}
		return models.NewMoneyFromDecimal(d), true
	default:
		return models.Money{}, false
	}
}
