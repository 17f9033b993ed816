package utils

import (
	"fmt"
	"time"
)

// FormatCurrency formata um valor monetário para exibição no dashboard
func FormatCurrency(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// FormatPeriod formata um mês como "Jan 2006", o rótulo usado nos cohorts e
// nas séries de receita
func FormatPeriod(t time.Time) string {
	return t.Format("Jan 2006")
}

// RiskClass mapeia o risco de churn para a classe CSS usada pelo front
func RiskClass(risk string) string {
	switch risk {
	case "High":
		return "risk-high"
	case "Medium":
		return "risk-medium"
	case "Low":
		return "risk-low"
	default:
		return "risk-unknown"
	}
}

// TierClass mapeia o tier do cliente para a classe CSS usada pelo front
func TierClass(tier string) string {
	switch tier {
	case "Platinum":
		return "tier-platinum"
	case "Gold":
		return "tier-gold"
	case "Silver":
		return "tier-silver"
	case "Bronze":
		return "tier-bronze"
	default:
		return "tier-unknown"
	}
}

// FormatHealthScore formata o health score com uma casa decimal
func FormatHealthScore(score float64) string {
	return fmt.Sprintf("%.1f", score)
}
