package market

import (
	"strings"
	"testing"

	"github.com/jnew00/pool-manager-sub000/internal/models"
)

func TestValidateBothMoneylinesPositive(t *testing.T) {
	result := ValidateMarketData(&models.MarketData{
		MoneylineHome: intPtr(110),
		MoneylineAway: intPtr(120),
	})
	if result.IsValid {
		t.Fatal("two positive moneylines should be invalid")
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "negative vig") {
		t.Errorf("expected negative vig error, got %v", result.Errors)
	}
}

func TestValidateHighVigWarning(t *testing.T) {
	result := ValidateMarketData(&models.MarketData{
		MoneylineHome: intPtr(-400),
		MoneylineAway: intPtr(150),
	})
	if !result.IsValid {
		t.Fatal("high vig is suspicious, not invalid")
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "high vig") {
		t.Errorf("expected high vig warning, got %v", result.Warnings)
	}
}

func TestValidateExtremeSpreadWarning(t *testing.T) {
	result := ValidateMarketData(&models.MarketData{Spread: floatPtr(-24.5)})
	if !result.IsValid {
		t.Fatal("extreme spread is suspicious, not invalid")
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "extreme spread") {
		t.Errorf("expected extreme spread warning, got %v", result.Warnings)
	}
}

func TestValidateUnusualTotalWarning(t *testing.T) {
	result := ValidateMarketData(&models.MarketData{Total: floatPtr(25)})
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "unusual total") {
		t.Errorf("expected unusual total warning, got %v", result.Warnings)
	}
}

func TestValidateSpreadMoneylineDisagreement(t *testing.T) {
	// Spread says heavy home favorite while the moneyline says underdog.
	result := ValidateMarketData(&models.MarketData{
		Spread:        floatPtr(-10),
		MoneylineHome: intPtr(130),
		MoneylineAway: intPtr(-150),
	})
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "disagree") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected disagreement warning, got %v", result.Warnings)
	}
}

func TestValidateCleanData(t *testing.T) {
	result := ValidateMarketData(&models.MarketData{
		Spread:        floatPtr(-3),
		Total:         floatPtr(47.5),
		MoneylineHome: intPtr(-155),
		MoneylineAway: intPtr(135),
	})
	if !result.IsValid {
		t.Errorf("clean data marked invalid: %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("clean data should carry no warnings, got %v", result.Warnings)
	}
}

func TestValidateNilData(t *testing.T) {
	if result := ValidateMarketData(nil); !result.IsValid {
		t.Error("nil data should validate trivially")
	}
}
