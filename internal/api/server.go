package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"

	"github.com/eaobservatory/jcmt-itc-heterodyne/catalog"
	"github.com/eaobservatory/jcmt-itc-heterodyne/core"
	"github.com/eaobservatory/jcmt-itc-heterodyne/internal/logging"
	"github.com/eaobservatory/jcmt-itc-heterodyne/internal/observability"
	"github.com/eaobservatory/jcmt-itc-heterodyne/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Server exposes the calculation engine over a JSON HTTP API.
type Server struct {
	itc     *core.ITC
	log     logging.Logger
	metrics *observability.Collector
	tracer  trace.Tracer
}

// NewServer wires the engine, logger and metrics collector into a
// ready-to-route server. Logger and collector may be nil.
func NewServer(itc *core.ITC, log logging.Logger, metrics *observability.Collector) *Server {
	if log == nil {
		log = logging.Noop()
	}
	return &Server{
		itc:     itc,
		log:     log,
		metrics: metrics,
		tracer:  otel.Tracer("itc-api"),
	}
}

// Routes builds the HTTP handler with logging and metrics middleware
// applied per endpoint.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST /api/v1/time",
		s.instrument("calculate_time", s.handleCalculate("calculate_time", s.itc.CalculateTime)))
	mux.Handle("POST /api/v1/rms/elapsed",
		s.instrument("calculate_rms_elapsed", s.handleCalculate("calculate_rms_elapsed", s.itc.CalculateRMSForElapsedTime)))
	mux.Handle("POST /api/v1/rms/int",
		s.instrument("calculate_rms_int", s.handleCalculate("calculate_rms_int", s.itc.CalculateRMSForIntTime)))
	mux.Handle("GET /api/v1/receivers",
		s.instrument("list_receivers", http.HandlerFunc(s.handleReceivers)))
	mux.Handle("GET /api/v1/lines",
		s.instrument("list_lines", http.HandlerFunc(s.handleLines)))
	return mux
}

// instrument attaches the request-ID logger and, when a collector is
// present, the count/duration middleware.
func (s *Server) instrument(endpoint string, next http.Handler) http.Handler {
	wrapped := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, _ := logging.WithRequestLogger(r.Context(), s.log)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
	if s.metrics == nil {
		return wrapped
	}
	return s.metrics.Middleware(endpoint, wrapped)
}

func (s *Server) handleCalculate(endpoint string, calculate func(model.Request) (model.Result, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.Request
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			s.log.Warn(ctx, "rejecting malformed request body",
				logging.String("endpoint", endpoint),
				logging.String("error", err.Error()),
			)
			s.writeError(w, http.StatusBadRequest, errorResponse{
				Error: "malformed request body: " + err.Error(),
				Kind:  "configuration",
			})
			return
		}

		ctx, span := s.tracer.Start(ctx, endpoint,
			trace.WithAttributes(
				attribute.String("itc.receiver", req.Receiver.String()),
				attribute.String("itc.map_mode", req.MapMode.String()),
				attribute.String("itc.switch_mode", req.SwitchMode.String()),
				attribute.Float64("itc.freq_ghz", req.FreqGHz),
			),
		)
		defer span.End()

		result, err := calculate(req)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s.metrics.RecordCalculation(req.Receiver.String(), req.MapMode.String(), "error")
			s.log.Warn(ctx, "calculation failed",
				logging.String("endpoint", endpoint),
				logging.String("receiver", req.Receiver.String()),
				logging.String("error", err.Error()),
			)
			s.writeError(w, httpStatus(err), errorResponse{
				Error: err.Error(),
				Kind:  errorKind(err),
			})
			return
		}

		s.metrics.RecordCalculation(req.Receiver.String(), req.MapMode.String(), "ok")
		s.log.Info(ctx, "calculation complete",
			logging.String("endpoint", endpoint),
			logging.String("receiver", req.Receiver.String()),
			logging.Float64("value", result.Value),
		)
		s.writeJSON(w, http.StatusOK, result)
	})
}

// receiverSummary is the list entry returned by the receivers endpoint.
type receiverSummary struct {
	Name            string              `json:"Name"`
	Band            model.FrequencyBand `json:"Band"`
	NMix            int                 `json:"NMix"`
	NPixels         int                 `json:"NPixels"`
	SSBAvailable    bool                `json:"SSBAvailable"`
	DSBAvailable    bool                `json:"DSBAvailable"`
	FreqSwAvailable bool                `json:"FreqSwAvailable"`
	BeamFWHMArcsec  float64             `json:"BeamFWHMArcsec"`
	IFBandwidthHz   float64             `json:"IFBandwidthHz"`
	JigglePatterns  []string            `json:"JigglePatterns,omitempty"`
}

func (s *Server) handleReceivers(w http.ResponseWriter, r *http.Request) {
	infos := s.itc.Registry().Receivers()
	summaries := make([]receiverSummary, 0, len(infos))
	for _, info := range infos {
		summary := receiverSummary{
			Name:            info.Name,
			Band:            info.Band,
			NMix:            info.NMix,
			NPixels:         info.NPixels,
			SSBAvailable:    info.SSBAvailable,
			DSBAvailable:    info.DSBAvailable,
			FreqSwAvailable: info.FreqSwAvailable,
			BeamFWHMArcsec:  info.BeamFWHMArcsec,
			IFBandwidthHz:   info.IFBandwidthHz,
		}
		if info.Array != nil {
			for name := range info.Array.JigglePatterns {
				summary.JigglePatterns = append(summary.JigglePatterns, name)
			}
			sort.Strings(summary.JigglePatterns)
		}
		summaries = append(summaries, summary)
	}
	s.writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleLines(w http.ResponseWriter, r *http.Request) {
	species, err := catalog.Load()
	if err != nil {
		s.log.Error(r.Context(), "line catalog unavailable",
			logging.String("error", err.Error()))
		s.writeError(w, http.StatusInternalServerError, errorResponse{
			Error: "line catalog unavailable",
			Kind:  "internal",
		})
		return
	}
	s.writeJSON(w, http.StatusOK, species)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error(context.Background(), "encoding response failed", logging.String("error", err.Error()))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, body errorResponse) {
	s.writeJSON(w, status, body)
}
