package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/vfg2006/customer-health-api/internal/usecases/generating"
	"github.com/vfg2006/customer-health-api/pkg/log"
)

// GenerateSampleData descarta a base atual e gera dados de demonstração
func GenerateSampleData(service generating.Generator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		numCustomers, _ := strconv.Atoi(r.URL.Query().Get("num_customers"))

		logger.WithField("num_customers", numCustomers).Info("sample-data: generating demo dataset")

		count, err := service.Generate(numCustomers)
		if err != nil {
			logger.WithError(err).Error("sample-data: generation failed")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithField("customers", count).Info("sample-data: demo dataset generated")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": fmt.Sprintf("Successfully generated %d customers with sample data", count),
		})
	})
}
