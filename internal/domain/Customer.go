package domain

import (
	"time"
)

// Níveis de risco de churn atribuídos pelo motor de scoring
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Tiers de cliente
const (
	TierBronze   = "Bronze"
	TierSilver   = "Silver"
	TierGold     = "Gold"
	TierPlatinum = "Platinum"
)

// Customer é o snapshot imutável de um cliente como retornado pela fonte de
// dados. O motor de agregação nunca modifica esses registros.
type Customer struct {
	CustomerID       string     `json:"customer_id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone,omitempty"`
	Region           string     `json:"region"`
	RegistrationDate time.Time  `json:"registration_date"`
	LastActivity     *time.Time `json:"last_activity"`
	HealthScore      float64    `json:"health_score"`
	ChurnRisk        string     `json:"churn_risk"`
	CustomerTier     string     `json:"customer_tier"`
	TotalOrders      int        `json:"total_orders"`
	TotalSpent       float64    `json:"total_spent"`
	LifetimeValue    float64    `json:"lifetime_value"`
	SupportTickets   int        `json:"support_tickets"`
	AvgRating        float64    `json:"avg_rating"`
}

// ActivityDate retorna a data usada para bucketing de cohorts: última
// atividade quando existe, senão a data de registro.
func (c *Customer) ActivityDate() time.Time {
	if c.LastActivity != nil {
		return *c.LastActivity
	}
	return c.RegistrationDate
}

// CustomerFilters são os filtros aceitos pela listagem de clientes
type CustomerFilters struct {
	Skip         int
	Limit        int
	ChurnRisk    *string
	CustomerTier *string
	Region       *string
}

// CustomerDetail agrega o cliente com seu histórico completo
type CustomerDetail struct {
	Customer       *Customer        `json:"customer"`
	Orders         []*Order         `json:"orders"`
	SupportTickets []*SupportTicket `json:"support_tickets"`
	Feedback       []*Feedback      `json:"feedback"`
}
