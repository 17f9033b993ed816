package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/customer-health-api/internal/usecases/reporting"
	"github.com/vfg2006/customer-health-api/pkg/log"
)

func GetDashboardMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		metrics, err := service.DashboardMetrics()
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to compute metrics")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"total_customers": metrics.TotalCustomers,
			"churn_rate":      metrics.ChurnRate,
		}).Info("dashboard: metrics computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
