package telemetry

import (
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Build metadata, overridden at build time via -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

type Metrics struct {
	UpdatesTotal          prometheus.Counter
	RenderErrorsTotal     prometheus.Counter
	MinutesUntilDeparture prometheus.Gauge
}

func NewMetrics(registry *prometheus.Registry) *Metrics {
	metrics := &Metrics{
		UpdatesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "nextbus_updates_total",
				Help: "Display updates since process start",
			},
		),
		RenderErrorsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "nextbus_render_errors_total",
				Help: "Render attempts that returned an error",
			},
		),
		MinutesUntilDeparture: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "nextbus_minutes_until_departure",
				Help: "Minutes until the next departure, as of the last update",
			},
		),
	}

	registry.MustRegister(
		metrics.UpdatesTotal,
		metrics.RenderErrorsTotal,
		metrics.MinutesUntilDeparture,
	)

	return metrics
}

// RecordUpdate notes one completed display update.
func (metrics *Metrics) RecordUpdate(minutes int) {
	metrics.UpdatesTotal.Inc()
	metrics.MinutesUntilDeparture.Set(float64(minutes))
}

type Server struct {
	addr     string
	mux      *http.ServeMux
	registry *prometheus.Registry

	server   *http.Server
	listener net.Listener
}

func NewServer(addr string) *Server {
	telemetry := &Server{
		addr:     addr,
		registry: prometheus.NewRegistry(),
		mux:      http.NewServeMux(),
	}

	telemetry.mux.Handle(
		"/metrics",
		promhttp.HandlerFor(telemetry.registry, promhttp.HandlerOpts{}),
	)

	buildInfo := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nextbus_build_info",
			Help: "Build metadata",
		},
		[]string{"version", "git_commit"},
	)

	telemetry.registry.MustRegister(
		collectors.NewGoCollector(), // Go runtime metrics
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		buildInfo,
	)

	buildInfo.WithLabelValues(Version, GitCommit).Set(1)

	telemetry.mux.HandleFunc("/debug/pprof/", pprof.Index)
	telemetry.mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	telemetry.mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	telemetry.mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	telemetry.mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return telemetry
}

func (telemetry *Server) Registry() *prometheus.Registry {
	return telemetry.registry
}

func (telemetry *Server) Start() error {
	telemetry.server = &http.Server{
		Addr:              telemetry.addr,
		Handler:           telemetry.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	listener, err := net.Listen("tcp", telemetry.addr)
	if err != nil {
		return err
	}

	telemetry.listener = listener

	go telemetry.server.Serve(telemetry.listener)

	return nil
}

func (telemetry *Server) Stop() error {
	if telemetry.server == nil {
		return nil
	}

	return telemetry.server.Close()
}
