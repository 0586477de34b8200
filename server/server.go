package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"shipcool/config"
	"shipcool/metrics"
	"shipcool/model"
	"shipcool/optimizer"
	"shipcool/plant"
	"shipcool/simulator"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	cfg      *config.Config

	registry  *prometheus.Registry
	collector *metrics.Collector
}

func NewServer(cfg *config.Config, upgrader websocket.Upgrader) *Server {
	reg := prometheus.NewRegistry()
	return &Server{
		addr:      cfg.Server.Addr,
		upgrader:  upgrader,
		cfg:       cfg,
		registry:  reg,
		collector: metrics.New(reg),
	}
}

// newRunner builds one independent plant per websocket session.
func (s *Server) newRunner() *simulator.Runner {
	opt := optimizer.New(s.cfg.Optimizer)
	opt.SetSystemAge(s.cfg.SystemAgeMonths)
	r := simulator.New(s.cfg.Simulator, plant.New(s.cfg.Plant), opt, s.cfg.Voyage)
	return r.WithMetrics(s.collector)
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	hub := NewHub(conn, s.newRunner(), s.cfg.Server)
	go hub.handleResponse()
	go hub.handleRequest()
	defer hub.close()

	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithFields(log.Fields{"session": hub.id}).WithError(err).Warn("read failed")
			}
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return mux
}

func (s *Server) Serve() error {
	log.WithFields(log.Fields{"addr": s.addr}).Info("serving")
	return http.ListenAndServe(s.addr, s.Handler())
}
