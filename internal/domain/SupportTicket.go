package domain

import "time"

type SupportTicket struct {
	TicketID       string    `json:"ticket_id"`
	CustomerID     string    `json:"customer_id"`
	CreatedDate    time.Time `json:"created_date"`
	IssueType      string    `json:"issue_type"`      // Technical, Billing, General
	Priority       string    `json:"priority"`        // Low, Medium, High
	Status         string    `json:"status"`          // Open, In Progress, Resolved
	ResolutionTime *int      `json:"resolution_time"` // horas até a resolução
}
