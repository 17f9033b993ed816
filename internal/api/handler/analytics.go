package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/vfg2006/customer-health-api/internal/usecases/predicting"
	"github.com/vfg2006/customer-health-api/internal/usecases/reporting"
	"github.com/vfg2006/customer-health-api/pkg/log"
)

func GetChurnPredictions(service predicting.Predictor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		predictions, err := service.TopPredictions(limit)
		if err != nil {
			logger.WithError(err).Error("analytics: failed to build churn predictions")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithField("count", len(predictions)).Info("analytics: churn predictions built")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(predictions); err != nil {
			logger.WithError(err).Error("analytics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetRevenueTrends(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		trends, err := service.RevenueTrends()
		if err != nil {
			logger.WithError(err).Error("analytics: failed to load revenue trends")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithField("months", len(trends.Trends)).Info("analytics: revenue trends loaded")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(trends); err != nil {
			logger.WithError(err).Error("analytics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetRevenueForecast(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		periods, _ := strconv.Atoi(r.URL.Query().Get("periods"))

		forecast, err := service.RevenueForecast(periods)
		if err != nil {
			logger.WithError(err).Error("analytics: failed to build revenue forecast")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithField("points", len(forecast)).Info("analytics: revenue forecast built")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(forecast); err != nil {
			logger.WithError(err).Error("analytics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetInsights(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		insights, err := service.Insights()
		if err != nil {
			logger.WithError(err).Error("analytics: failed to derive insights")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithField("count", len(insights)).Info("analytics: insights derived")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(insights); err != nil {
			logger.WithError(err).Error("analytics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetSegments(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		segments, err := service.Segments()
		if err != nil {
			logger.WithError(err).Error("analytics: failed to derive segments")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithField("count", len(segments)).Info("analytics: segments derived")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(segments); err != nil {
			logger.WithError(err).Error("analytics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetCohorts(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cohorts, err := service.Cohorts()
		if err != nil {
			logger.WithError(err).Error("analytics: failed to derive cohorts")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithField("count", len(cohorts)).Info("analytics: cohorts derived")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cohorts); err != nil {
			logger.WithError(err).Error("analytics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
