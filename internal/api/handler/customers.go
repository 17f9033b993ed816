package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/customer-health-api/internal/domain"
	"github.com/vfg2006/customer-health-api/internal/usecases/reporting"
	"github.com/vfg2006/customer-health-api/pkg/log"
)

const (
	defaultCustomerLimit = 100
	maxCustomerLimit     = 1000
)

func parseCustomerFilters(r *http.Request) *domain.CustomerFilters {
	query := r.URL.Query()

	filters := &domain.CustomerFilters{
		Limit: defaultCustomerLimit,
	}

	if skip, err := strconv.Atoi(query.Get("skip")); err == nil && skip > 0 {
		filters.Skip = skip
	}

	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 {
		if limit > maxCustomerLimit {
			limit = maxCustomerLimit
		}
		filters.Limit = limit
	}

	if risk := query.Get("churn_risk"); risk != "" {
		filters.ChurnRisk = &risk
	}

	if tier := query.Get("customer_tier"); tier != "" {
		filters.CustomerTier = &tier
	}

	if region := query.Get("region"); region != "" {
		filters.Region = &region
	}

	return filters
}

func ListCustomers(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters := parseCustomerFilters(r)

		customers, err := service.ListCustomers(filters)
		if err != nil {
			logger.WithError(err).Error("customers: failed to list customers")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"count": len(customers),
			"skip":  filters.Skip,
			"limit": filters.Limit,
		}).Info("customers: listed customers")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(customers); err != nil {
			logger.WithError(err).Error("customers: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetCustomerDetail(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("customer_id", id).Info("customers: fetching customer detail")

		detail, err := service.GetCustomerDetail(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": id,
				"error":       err.Error(),
			}).Error("customers: failed to get customer detail")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if detail == nil {
			logger.WithField("customer_id", id).Warn("customers: customer not found")
			http.Error(w, "customer not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(detail); err != nil {
			logger.WithFields(log.Fields{
				"customer_id": id,
				"error":       err.Error(),
			}).Error("customers: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ExportCustomers entrega a base completa como download CSV
func ExportCustomers(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("customers: exporting customer base as CSV")

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="customers.csv"`)

		if err := service.WriteCustomersCSV(w); err != nil {
			logger.WithError(err).Error("customers: failed to write CSV export")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
