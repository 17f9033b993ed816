package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/customer-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer-health-api/internal/domain"
	"github.com/vfg2006/customer-health-api/pkg/utils"
)

const customersTable = "customers"

var customerColumns = []string{
	"customer_id",
	"name",
	"email",
	"phone",
	"region",
	"registration_date",
	"last_activity",
	"health_score",
	"churn_risk",
	"customer_tier",
	"total_orders",
	"total_spent",
	"lifetime_value",
	"support_tickets",
	"avg_rating",
}

type CustomerRepository interface {
	ListCustomers(filters *domain.CustomerFilters) ([]*domain.Customer, error)
	ListAllCustomers() ([]*domain.Customer, error)
	ListHighRiskCustomers(limit int) ([]*domain.Customer, error)
	GetCustomerByID(customerID string) (*domain.Customer, error)
	CreateCustomer(customer *domain.Customer) error
	UpdateCustomerHealth(customerID string, score float64, risk string, lifetimeValue float64) error
	GetDashboardMetrics() (*domain.DashboardMetrics, error)
	DeleteAllCustomers() error
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) ListCustomers(filters *domain.CustomerFilters) ([]*domain.Customer, error) {
	queryBuilder := squirrel.
		Select(customerColumns...).
		From(customersTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.ChurnRisk != nil && *filters.ChurnRisk != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"churn_risk": *filters.ChurnRisk})
		}

		if filters.CustomerTier != nil && *filters.CustomerTier != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"customer_tier": *filters.CustomerTier})
		}

		if filters.Region != nil && *filters.Region != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"region": *filters.Region})
		}

		if filters.Skip > 0 {
			queryBuilder = queryBuilder.Offset(uint64(filters.Skip))
		}

		if filters.Limit > 0 {
			queryBuilder = queryBuilder.Limit(uint64(filters.Limit))
		}
	}

	customersSQL, customersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(customersSQL, customersArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCustomers(rows)
}

func (r *customerRepository) ListAllCustomers() ([]*domain.Customer, error) {
	return r.ListCustomers(nil)
}

// ListHighRiskCustomers retorna os clientes de alto risco ordenados do pior
// health score para o melhor
func (r *customerRepository) ListHighRiskCustomers(limit int) ([]*domain.Customer, error) {
	queryBuilder := squirrel.
		Select(customerColumns...).
		From(customersTable).
		Where(squirrel.Eq{"churn_risk": domain.RiskHigh}).
		OrderBy("health_score ASC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	customersSQL, customersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(customersSQL, customersArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCustomers(rows)
}

func (r *customerRepository) GetCustomerByID(customerID string) (*domain.Customer, error) {
	queryBuilder := squirrel.
		Select(customerColumns...).
		From(customersTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		PlaceholderFormat(squirrel.Dollar)

	customerSQL, customerArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	customer, err := scanCustomer(r.conn.QueryRow(customerSQL, customerArgs...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return customer, nil
}

func (r *customerRepository) CreateCustomer(customer *domain.Customer) error {
	queryBuilder := squirrel.
		Insert(customersTable).
		Columns(customerColumns...).
		Values(
			customer.CustomerID,
			customer.Name,
			customer.Email,
			customer.Phone,
			customer.Region,
			customer.RegistrationDate,
			customer.LastActivity,
			customer.HealthScore,
			customer.ChurnRisk,
			customer.CustomerTier,
			customer.TotalOrders,
			customer.TotalSpent,
			customer.LifetimeValue,
			customer.SupportTickets,
			customer.AvgRating,
		).
		PlaceholderFormat(squirrel.Dollar)

	customerSQL, customerArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(customerSQL, customerArgs...)
	return err
}

func (r *customerRepository) UpdateCustomerHealth(customerID string, score float64, risk string, lifetimeValue float64) error {
	queryBuilder := squirrel.
		Update(customersTable).
		Set("health_score", score).
		Set("churn_risk", risk).
		Set("lifetime_value", lifetimeValue).
		Where(squirrel.Eq{"customer_id": customerID}).
		PlaceholderFormat(squirrel.Dollar)

	updateSQL, updateArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(updateSQL, updateArgs...)
	return err
}

// GetDashboardMetrics consolida os indicadores do topo do dashboard em uma
// única query. A taxa de churn (alto risco / total) é calculada aqui para a
// divisão por zero nunca chegar ao consumidor.
func (r *customerRepository) GetDashboardMetrics() (*domain.DashboardMetrics, error) {
	metrics := &domain.DashboardMetrics{}

	err := r.conn.QueryRow(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE churn_risk = 'High'),
			COUNT(*) FILTER (WHERE churn_risk = 'Medium'),
			COUNT(*) FILTER (WHERE churn_risk = 'Low'),
			COALESCE(SUM(total_spent), 0),
			COALESCE(AVG(lifetime_value), 0)
		FROM customers`).Scan(
		&metrics.TotalCustomers,
		&metrics.HighRiskCustomers,
		&metrics.MediumRiskCustomers,
		&metrics.LowRiskCustomers,
		&metrics.TotalRevenue,
		&metrics.AvgLifetimeValue,
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar métricas do dashboard")
	}

	if metrics.TotalCustomers > 0 {
		metrics.ChurnRate = utils.RoundWithTwoDecimalPlace(
			float64(metrics.HighRiskCustomers) / float64(metrics.TotalCustomers) * 100,
		)
	}

	metrics.TotalRevenue = utils.RoundWithTwoDecimalPlace(metrics.TotalRevenue)
	metrics.AvgLifetimeValue = utils.RoundWithTwoDecimalPlace(metrics.AvgLifetimeValue)

	return metrics, nil
}

func (r *customerRepository) DeleteAllCustomers() error {
	_, err := r.conn.Exec("DELETE FROM customers")
	return err
}

func scanCustomers(rows *sql.Rows) ([]*domain.Customer, error) {
	customers := make([]*domain.Customer, 0)

	for rows.Next() {
		var customer domain.Customer
		err := rows.Scan(
			&customer.CustomerID,
			&customer.Name,
			&customer.Email,
			&customer.Phone,
			&customer.Region,
			&customer.RegistrationDate,
			&customer.LastActivity,
			&customer.HealthScore,
			&customer.ChurnRisk,
			&customer.CustomerTier,
			&customer.TotalOrders,
			&customer.TotalSpent,
			&customer.LifetimeValue,
			&customer.SupportTickets,
			&customer.AvgRating,
		)
		if err != nil {
			return nil, err
		}
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

func scanCustomer(row *sql.Row) (*domain.Customer, error) {
	var customer domain.Customer
	err := row.Scan(
		&customer.CustomerID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.Region,
		&customer.RegistrationDate,
		&customer.LastActivity,
		&customer.HealthScore,
		&customer.ChurnRisk,
		&customer.CustomerTier,
		&customer.TotalOrders,
		&customer.TotalSpent,
		&customer.LifetimeValue,
		&customer.SupportTickets,
		&customer.AvgRating,
	)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
