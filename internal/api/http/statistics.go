package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"log/slog"

	v "github.com/asaskevich/govalidator"
	"github.com/go-chi/render"
	"github.com/jekabolt/grbpwr-dashboard/internal/dto"
	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
	"github.com/jekabolt/grbpwr-dashboard/internal/statistics"
)

const errFetchStatistics = "failed to fetch statistics"

// StatisticsResponse is always served with 200. Error is set when the
// store could not be reached and the snapshot is the empty one.
type StatisticsResponse struct {
	Statistics *dto.Statistics `json:"statistics"`
	Error      string          `json:"error,omitempty"`
}

func (sr *StatisticsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, http.StatusOK)
	return nil
}

// parseDays reads the optional days query parameter.
func parseDays(r *http.Request) (int, bool, error) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return 0, false, nil
	}
	if !v.IsInt(raw) {
		return 0, false, fmt.Errorf("%w: days must be an integer", gerr.ErrInvalidWindow)
	}
	days, err := strconv.Atoi(raw)
	if err != nil || !v.InRangeInt(days, 1, statistics.MaxWindowDays) {
		return 0, false, fmt.Errorf("%w: days must be between 1 and %d", gerr.ErrInvalidWindow, statistics.MaxWindowDays)
	}
	return days, true, nil
}

func (s *Server) getStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var opts []statistics.Option
	days, ok, err := parseDays(r)
	if err != nil {
		_ = render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if ok {
		opts = append(opts, statistics.WithWindowDays(days))
	}

	st, err := s.agg.Compute(ctx, opts...)
	resp := &StatisticsResponse{
		Statistics: dto.ConvertEntityStatistics(st),
	}
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't compute statistics",
			slog.String("err", err.Error()),
		)
		resp.Error = errFetchStatistics
	}
	_ = render.Render(w, r, resp)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if err := s.pinger.Ping(r.Context()); err != nil {
		slog.Default().ErrorContext(r.Context(), "health check failed",
			slog.String("err", err.Error()),
		)
		render.Status(r, http.StatusServiceUnavailable)
		render.PlainText(w, r, http.StatusText(http.StatusServiceUnavailable))
		return
	}
	render.PlainText(w, r, "OK")
}
