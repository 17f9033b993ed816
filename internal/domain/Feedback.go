package domain

import "time"

type Feedback struct {
	FeedbackID string    `json:"feedback_id"`
	CustomerID string    `json:"customer_id"`
	Rating     int       `json:"rating"` // escala de 1 a 5
	Comment    string    `json:"comment"`
	Date       time.Time `json:"date"`
	ProductID  string    `json:"product_id"`
}
