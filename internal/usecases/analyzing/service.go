package analyzing

import (
	"fmt"
	"math"

	"github.com/vfg2006/customer-health-api/internal/domain"
	"github.com/vfg2006/customer-health-api/pkg/utils"
)

// Valor unitário estimado de upsell por cliente Gold de baixo risco
const upsellUnitValue = 500

// Limite de churn rate (em pontos percentuais) acima do qual o alerta dispara
const churnRateAlertThreshold = 15.0

type Service struct{}

// NewService cria o motor de agregação. O serviço não guarda estado: cada
// chamada recalcula tudo a partir do snapshot recebido.
func NewService() Analyzer {
	return &Service{}
}

// DeriveInsights avalia as quatro regras de insight em ordem fixa. Regras que
// não disparam não contribuem com nada; a saída preserva a ordem de avaliação.
func (s *Service) DeriveInsights(metrics *domain.DashboardMetrics, customers []*domain.Customer) []*domain.Insight {
	insights := []*domain.Insight{}

	// Regra 1: churn rate acima do limite
	if metrics != nil && metrics.ChurnRate > churnRateAlertThreshold {
		insights = append(insights, &domain.Insight{
			Kind:           domain.InsightAlert,
			Title:          "High churn rate",
			Description:    fmt.Sprintf("Churn rate is at %.1f%%, above the %.0f%% threshold", metrics.ChurnRate, churnRateAlertThreshold),
			Impact:         domain.ImpactHigh,
			Recommendation: "Prioritize retention campaigns for high risk customers",
		})
	}

	// Regra 2: clientes Gold de baixo risco são candidatos a upsell
	goldLowRisk := 0
	for _, c := range customers {
		if c.CustomerTier == domain.TierGold && c.ChurnRisk == domain.RiskLow {
			goldLowRisk++
		}
	}
	if goldLowRisk > 0 {
		insights = append(insights, &domain.Insight{
			Kind:           domain.InsightOpportunity,
			Title:          "Upsell opportunity in Gold tier",
			Description:    fmt.Sprintf("%d Gold customers with low churn risk are prime candidates for a Platinum upgrade", goldLowRisk),
			Impact:         domain.ImpactMedium,
			Recommendation: fmt.Sprintf("Offer Platinum upgrades; estimated potential of $%d", goldLowRisk*upsellUnitValue),
		})
	}

	// Regra 3: clientes com histórico de compra em alto risco
	activeHighRisk := 0
	for _, c := range customers {
		if c.TotalOrders > 0 && c.ChurnRisk == domain.RiskHigh {
			activeHighRisk++
		}
	}
	if activeHighRisk > 0 {
		insights = append(insights, &domain.Insight{
			Kind:           domain.InsightWarning,
			Title:          "Active customers at high churn risk",
			Description:    fmt.Sprintf("%d customers with purchase history are at high risk of churning", activeHighRisk),
			Impact:         domain.ImpactMedium,
			Recommendation: "Trigger win-back outreach before these customers lapse",
		})
	}

	// Regra 4: comparação regional de health score. A seleção de melhor e
	// pior região mantém o primeiro candidato em caso de empate, na ordem em
	// que as regiões aparecem na entrada.
	if len(customers) > 0 {
		best, worst := compareRegions(customers)
		insights = append(insights, &domain.Insight{
			Kind:  domain.InsightInfo,
			Title: "Regional health comparison",
			Description: fmt.Sprintf(
				"Region %s leads with an average health score of %.1f; %s trails at %.1f (gap of %.1f)",
				best.name, best.avg, worst.name, worst.avg, best.avg-worst.avg,
			),
			Impact:         domain.ImpactLow,
			Recommendation: fmt.Sprintf("Review what works in %s and apply it to %s", best.name, worst.name),
		})
	}

	return insights
}

type regionAverage struct {
	name string
	avg  float64
}

// compareRegions calcula a média de health score por região e devolve a
// melhor e a pior. Toda região no agrupamento tem pelo menos um membro, então
// a divisão nunca é por zero.
func compareRegions(customers []*domain.Customer) (best, worst regionAverage) {
	type accumulator struct {
		sum   float64
		count int
	}

	totals := make(map[string]*accumulator)
	order := make([]string, 0)

	for _, c := range customers {
		acc, ok := totals[c.Region]
		if !ok {
			acc = &accumulator{}
			totals[c.Region] = acc
			order = append(order, c.Region)
		}
		acc.sum += c.HealthScore
		acc.count++
	}

	averages := make([]regionAverage, 0, len(order))
	for _, region := range order {
		acc := totals[region]
		averages = append(averages, regionAverage{
			name: region,
			avg:  acc.sum / float64(acc.count),
		})
	}

	// Reduce que mantém o primeiro candidato em empates
	best, worst = averages[0], averages[0]
	for _, ra := range averages[1:] {
		if ra.avg > best.avg {
			best = ra
		}
		if ra.avg < worst.avg {
			worst = ra
		}
	}

	return best, worst
}

// segmentRule é um dos seis segmentos fixos da segmentação RFM
type segmentRule struct {
	name  string
	match func(*domain.Customer) bool
}

// Ordem e predicados fixos. Cada segmento filtra a base completa de forma
// independente, então um cliente pode aparecer em mais de um segmento.
var segmentRules = []segmentRule{
	{"Champions", func(c *domain.Customer) bool {
		return c.HealthScore >= 80 && c.TotalSpent > 1000
	}},
	{"Loyal Customers", func(c *domain.Customer) bool {
		return c.HealthScore >= 60 && c.HealthScore < 80 && c.TotalOrders >= 5
	}},
	{"Potential Loyalists", func(c *domain.Customer) bool {
		return c.HealthScore >= 50 && c.HealthScore < 60 && c.TotalOrders >= 2
	}},
	{"At Risk", func(c *domain.Customer) bool {
		return c.HealthScore >= 30 && c.HealthScore < 50
	}},
	{"Cannot Lose Them", func(c *domain.Customer) bool {
		return c.HealthScore < 30 && c.TotalSpent > 1000
	}},
	{"Hibernating", func(c *domain.Customer) bool {
		return c.HealthScore < 30 && c.TotalSpent <= 1000
	}},
}

// DeriveSegmentation devolve os seis segmentos na ordem fixa.
//
// Percentage replica o comportamento histórico do front: a contagem do
// segmento dividida por ela mesma, portanto 100 para qualquer segmento não
// vazio. PopulationShare carrega a fração real da base.
func (s *Service) DeriveSegmentation(customers []*domain.Customer) []*domain.Segment {
	if len(customers) == 0 {
		return []*domain.Segment{}
	}

	total := len(customers)
	segments := make([]*domain.Segment, 0, len(segmentRules))

	for _, rule := range segmentRules {
		count := 0
		valueSum := 0.0
		for _, c := range customers {
			if rule.match(c) {
				count++
				valueSum += c.LifetimeValue
			}
		}

		segment := &domain.Segment{Name: rule.name, Count: count}
		if count > 0 {
			segment.AvgValue = utils.RoundWithTwoDecimalPlace(valueSum / float64(count))
			segment.Percentage = float64(count) / float64(count) * 100
		}
		segment.PopulationShare = utils.RoundWithTwoDecimalPlace(float64(count) / float64(total) * 100)

		segments = append(segments, segment)
	}

	return segments
}

// DeriveCohorts agrupa os clientes pelo mês da última atividade (ou da data
// de registro quando não há atividade). Os buckets saem na ordem em que os
// períodos aparecem na entrada.
func (s *Service) DeriveCohorts(customers []*domain.Customer) []*domain.CohortBucket {
	if len(customers) == 0 {
		return []*domain.CohortBucket{}
	}

	type accumulator struct {
		count     int
		spent     float64
		healthSum float64
		retained  int
	}

	buckets := make(map[string]*accumulator)
	order := make([]string, 0)

	for _, c := range customers {
		period := utils.FormatPeriod(c.ActivityDate())
		acc, ok := buckets[period]
		if !ok {
			acc = &accumulator{}
			buckets[period] = acc
			order = append(order, period)
		}
		acc.count++
		acc.spent += c.TotalSpent
		acc.healthSum += c.HealthScore
		if c.ChurnRisk != domain.RiskHigh {
			acc.retained++
		}
	}

	cohorts := make([]*domain.CohortBucket, 0, len(order))
	for _, period := range order {
		acc := buckets[period]
		cohorts = append(cohorts, &domain.CohortBucket{
			Period:         period,
			Count:          acc.count,
			TotalSpent:     utils.RoundWithTwoDecimalPlace(acc.spent),
			AvgHealthScore: utils.RoundWithTwoDecimalPlace(acc.healthSum / float64(acc.count)),
			RetentionRate:  utils.RoundWithTwoDecimalPlace(float64(acc.retained) / float64(acc.count) * 100),
		})
	}

	return cohorts
}

// DeriveRevenueForecast pega os últimos seis pontos da série, calcula o
// crescimento percentual médio entre períodos consecutivos e projeta a
// receita futura compondo o último valor real. Um período anterior com
// receita zero contribui com crescimento zero em vez de propagar infinito.
func (s *Service) DeriveRevenueForecast(series []*domain.RevenueTrendPoint, periods int) []*domain.ForecastPoint {
	if len(series) == 0 || periods <= 0 {
		return []*domain.ForecastPoint{}
	}

	recent := series
	if len(recent) > 6 {
		recent = recent[len(recent)-6:]
	}

	meanGrowth := 0.0
	if len(recent) > 1 {
		growthSum := 0.0
		for i := 1; i < len(recent); i++ {
			prev := recent[i-1].Revenue
			if prev == 0 {
				continue // crescimento indefinido conta como zero
			}
			growthSum += (recent[i].Revenue - prev) / prev * 100
		}
		meanGrowth = growthSum / float64(len(recent)-1)
	}

	forecast := make([]*domain.ForecastPoint, 0, len(recent)+periods)
	for _, point := range recent {
		forecast = append(forecast, &domain.ForecastPoint{
			Period:  point.Label(),
			Revenue: point.Revenue,
		})
	}

	last := recent[len(recent)-1].Revenue
	for i := 1; i <= periods; i++ {
		forecast = append(forecast, &domain.ForecastPoint{
			Period:    fmt.Sprintf("Prediction %d", i),
			Revenue:   utils.RoundWithTwoDecimalPlace(last * math.Pow(1+meanGrowth/100, float64(i))),
			Projected: true,
		})
	}

	return forecast
}
