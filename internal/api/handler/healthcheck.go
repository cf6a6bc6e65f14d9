package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type healthStatus struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(healthStatus{Status: "ok", Time: time.Now()}); err != nil {
			logrus.WithError(err).Warn("erro ao responder o healthcheck")
		}
	})
}
