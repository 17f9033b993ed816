package repository

import (
	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/customer-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer-health-api/internal/domain"
)

const feedbackTable = "feedback"

type FeedbackRepository interface {
	ListFeedbackByCustomer(customerID string) ([]*domain.Feedback, error)
	CreateFeedback(feedback *domain.Feedback) error
	DeleteAllFeedback() error
}

type feedbackRepository struct {
	conn *postgres.Connection
}

func NewFeedbackRepository(conn *postgres.Connection) FeedbackRepository {
	return &feedbackRepository{
		conn: conn,
	}
}

func (r *feedbackRepository) ListFeedbackByCustomer(customerID string) ([]*domain.Feedback, error) {
	queryBuilder := squirrel.
		Select("feedback_id", "customer_id", "rating", "comment", "date", "product_id").
		From(feedbackTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar)

	feedbackSQL, feedbackArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(feedbackSQL, feedbackArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedbackItems := make([]*domain.Feedback, 0)
	for rows.Next() {
		var item domain.Feedback
		err := rows.Scan(
			&item.FeedbackID,
			&item.CustomerID,
			&item.Rating,
			&item.Comment,
			&item.Date,
			&item.ProductID,
		)
		if err != nil {
			return nil, err
		}
		feedbackItems = append(feedbackItems, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return feedbackItems, nil
}

func (r *feedbackRepository) CreateFeedback(feedback *domain.Feedback) error {
	queryBuilder := squirrel.
		Insert(feedbackTable).
		Columns("feedback_id", "customer_id", "rating", "comment", "date", "product_id").
		Values(
			feedback.FeedbackID,
			feedback.CustomerID,
			feedback.Rating,
			feedback.Comment,
			feedback.Date,
			feedback.ProductID,
		).
		PlaceholderFormat(squirrel.Dollar)

	feedbackSQL, feedbackArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(feedbackSQL, feedbackArgs...)
	return err
}

func (r *feedbackRepository) DeleteAllFeedback() error {
	_, err := r.conn.Exec("DELETE FROM feedback")
	return err
}
