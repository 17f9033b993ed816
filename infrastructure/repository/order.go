package repository

import (
	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/customer-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer-health-api/internal/domain"
	"github.com/vfg2006/customer-health-api/pkg/utils"
)

const ordersTable = "orders"

type OrderRepository interface {
	ListOrdersByCustomer(customerID string) ([]*domain.Order, error)
	CreateOrder(order *domain.Order) error
	GetRevenueTrends() ([]*domain.RevenueTrendPoint, error)
	DeleteAllOrders() error
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func (r *orderRepository) ListOrdersByCustomer(customerID string) ([]*domain.Order, error) {
	queryBuilder := squirrel.
		Select("order_id", "customer_id", "order_date", "total_amount", "items_count", "status").
		From(ordersTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("order_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	ordersSQL, ordersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ordersSQL, ordersArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.OrderID,
			&order.CustomerID,
			&order.OrderDate,
			&order.TotalAmount,
			&order.ItemsCount,
			&order.Status,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) CreateOrder(order *domain.Order) error {
	queryBuilder := squirrel.
		Insert(ordersTable).
		Columns("order_id", "customer_id", "order_date", "total_amount", "items_count", "status").
		Values(order.OrderID, order.CustomerID, order.OrderDate, order.TotalAmount, order.ItemsCount, order.Status).
		PlaceholderFormat(squirrel.Dollar)

	orderSQL, orderArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(orderSQL, orderArgs...)
	return err
}

// GetRevenueTrends agrega a receita mensal dos pedidos concluídos, ordenada
// de forma ascendente por (ano, mês) como o motor de agregação espera
func (r *orderRepository) GetRevenueTrends() ([]*domain.RevenueTrendPoint, error) {
	rows, err := r.conn.Query(`
		SELECT
			EXTRACT(YEAR FROM order_date)::int,
			EXTRACT(MONTH FROM order_date)::int,
			SUM(total_amount),
			COUNT(*)
		FROM orders
		WHERE status = 'Completed'
		GROUP BY 1, 2
		ORDER BY 1, 2`)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar tendências de receita")
	}
	defer rows.Close()

	trends := make([]*domain.RevenueTrendPoint, 0)
	for rows.Next() {
		var point domain.RevenueTrendPoint
		err := rows.Scan(&point.Year, &point.Month, &point.Revenue, &point.Orders)
		if err != nil {
			return nil, err
		}
		point.Revenue = utils.RoundWithTwoDecimalPlace(point.Revenue)
		trends = append(trends, &point)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return trends, nil
}

func (r *orderRepository) DeleteAllOrders() error {
	_, err := r.conn.Exec("DELETE FROM orders")
	return err
}
