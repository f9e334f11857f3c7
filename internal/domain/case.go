package domain

import "strings"

// Eligibility decides whether a catalog item may drop from a case.
type Eligibility interface {
	Matches(item Item) bool
}

// PriceBand admits items whose price lies in [Min, Max] inclusive.
type PriceBand struct {
	Min int `json:"min_price"`
	Max int `json:"max_price"`
}

func (b PriceBand) Matches(item Item) bool {
	return item.Price >= b.Min && item.Price <= b.Max
}

// TypeContains admits items whose type tag contains the substring,
// case-insensitive, regardless of price.
type TypeContains struct {
	Substring string `json:"type_contains"`
}

func (t TypeContains) Matches(item Item) bool {
	return strings.Contains(strings.ToLower(item.Type), strings.ToLower(t.Substring))
}

// CaseConfig describes one openable case.
type CaseConfig struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Rarity      string      `json:"rarity"`
	PriceMoney  int         `json:"price_money"`
	PriceDonate int         `json:"price_donate"`
	Eligibility Eligibility `json:"-"`
}

// Price returns the case price for the given payment method.
func (c CaseConfig) Price(method PaymentMethod) int {
	if method == PayMoney {
		return c.PriceMoney
	}
	return c.PriceDonate
}

// PaymentMethod selects which of the two balances pays for a case.
type PaymentMethod string

const (
	PayMoney  PaymentMethod = "money"
	PayDonate PaymentMethod = "donate"
)

// ParsePaymentMethod validates a request value, defaulting to donate.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch s {
	case "", string(PayDonate):
		return PayDonate, true
	case string(PayMoney):
		return PayMoney, true
	}
	return "", false
}

// DefaultCases is the static catalog used when the web_cases table is
// empty. IDs and prices match the live game configuration.
func DefaultCases() []CaseConfig {
	return []CaseConfig{
		{
			ID: 1, Name: "Стартовый кейс", PriceMoney: 5000, PriceDonate: 50,
			Description: "Базовые предметы для выживания (до 1000₽)",
			Image:       "📦", Rarity: "common",
			Eligibility: PriceBand{Min: 0, Max: 999},
		},
		{
			ID: 2, Name: "Военный кейс", PriceMoney: 15000, PriceDonate: 150,
			Description: "Оружие и боеприпасы (1000-5000₽)",
			Image:       "🎖️", Rarity: "rare",
			Eligibility: PriceBand{Min: 1000, Max: 4999},
		},
		{
			ID: 3, Name: "Премиум кейс", PriceMoney: 50000, PriceDonate: 500,
			Description: "Эксклюзивные предметы (5000+₽)",
			Image:       "💎", Rarity: "legendary",
			Eligibility: PriceBand{Min: 5000, Max: 999999},
		},
		{
			ID: 4, Name: "Кейс выживальщика", PriceMoney: 10000, PriceDonate: 100,
			Description: "Еда, вода, медикаменты",
			Image:       "🏥", Rarity: "uncommon",
			Eligibility: TypeContains{Substring: "food"},
		},
	}
}
