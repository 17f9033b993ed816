package repository

import (
	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/customer-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer-health-api/internal/domain"
)

const supportTicketsTable = "support_tickets"

type SupportTicketRepository interface {
	ListTicketsByCustomer(customerID string) ([]*domain.SupportTicket, error)
	CreateTicket(ticket *domain.SupportTicket) error
	DeleteAllTickets() error
}

type supportTicketRepository struct {
	conn *postgres.Connection
}

func NewSupportTicketRepository(conn *postgres.Connection) SupportTicketRepository {
	return &supportTicketRepository{
		conn: conn,
	}
}

func (r *supportTicketRepository) ListTicketsByCustomer(customerID string) ([]*domain.SupportTicket, error) {
	queryBuilder := squirrel.
		Select("ticket_id", "customer_id", "created_date", "issue_type", "priority", "status", "resolution_time").
		From(supportTicketsTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("created_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	ticketsSQL, ticketsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ticketsSQL, ticketsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*domain.SupportTicket, 0)
	for rows.Next() {
		var ticket domain.SupportTicket
		err := rows.Scan(
			&ticket.TicketID,
			&ticket.CustomerID,
			&ticket.CreatedDate,
			&ticket.IssueType,
			&ticket.Priority,
			&ticket.Status,
			&ticket.ResolutionTime,
		)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *supportTicketRepository) CreateTicket(ticket *domain.SupportTicket) error {
	queryBuilder := squirrel.
		Insert(supportTicketsTable).
		Columns("ticket_id", "customer_id", "created_date", "issue_type", "priority", "status", "resolution_time").
		Values(
			ticket.TicketID,
			ticket.CustomerID,
			ticket.CreatedDate,
			ticket.IssueType,
			ticket.Priority,
			ticket.Status,
			ticket.ResolutionTime,
		).
		PlaceholderFormat(squirrel.Dollar)

	ticketSQL, ticketArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(ticketSQL, ticketArgs...)
	return err
}

func (r *supportTicketRepository) DeleteAllTickets() error {
	_, err := r.conn.Exec("DELETE FROM support_tickets")
	return err
}
