package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/DamienOReilly/reddit-stats/internal/models"
	"github.com/DamienOReilly/reddit-stats/internal/providers"
	"github.com/DamienOReilly/reddit-stats/internal/services"
)

const snapshotParam = "s"

type ApiController struct {
	logger  providers.Logger
	service services.StatisticServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.StatisticServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

type seriesResponse struct {
	Kind   string    `json:"kind"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type statsResponse struct {
	User      string           `json:"user"`
	Timestamp int64            `json:"timestamp"`
	Series    []seriesResponse `json:"series"`
	Share     string           `json:"share,omitempty"`
}

func toStatsResponse(res *models.SnapshotResult) statsResponse {
	series := make([]seriesResponse, 0, len(res.Data))
	for _, s := range res.Data {
		series = append(series, seriesResponse{
			Kind:   s.Kind.String(),
			Labels: s.Data.Labels,
			Values: s.Data.Values,
		})
	}
	return statsResponse{
		User:      res.User.Name,
		Timestamp: res.Timestamp,
		Series:    series,
	}
}

// GetUserStats runs one statistics cycle for ?user= and returns the six
// series plus a share parameter. Fetch failures collapse to one user-visible
// state; the share parameter is best-effort and simply absent when encoding
// fails.
func (ac *ApiController) GetUserStats(w http.ResponseWriter, r *http.Request) {
	user := models.NewUser(r.URL.Query().Get("user"))
	if user.Name == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	cacheKey := "stats:" + user.Name
	if data, ok := ac.cache.Get(cacheKey); ok {
		writeJSON(w, data)
		return
	}

	result, err := ac.service.FetchUserStats(r.Context(), user)
	if err != nil {
		http.Error(w, "Failed to retrieve statistics", http.StatusBadGateway)
		return
	}

	resp := toStatsResponse(result)
	if share, err := ac.service.EncodeSnapshot(result); err == nil {
		resp.Share = share
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		ac.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "Failed to marshal stats for %s: %s", user.Name, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)
	writeJSON(w, gson)
}

// GetSnapshot renders a shared snapshot without touching the upstream API.
// Every decode failure is the same "invalid shared link" to the caller.
func (ac *ApiController) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	payload := r.URL.Query().Get(snapshotParam)
	if payload == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := ac.service.DecodeSnapshot(payload)
	if err != nil {
		http.Error(w, "Invalid shared link", http.StatusBadRequest)
		return
	}

	resp := toStatsResponse(result)
	resp.Share = payload

	gson, err := json.Marshal(resp)
	if err != nil {
		ac.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "Failed to marshal snapshot response: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, gson)
}

func writeJSON(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
