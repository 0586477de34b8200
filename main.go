package main

import (
	"flag"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"shipcool/config"
	"shipcool/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	path := flag.String("config", "conf/config.ini", "path of the ini configuration")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		log.WithError(err).Warn("using built-in defaults")
		cfg = config.Default()
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Warn("unknown log level, keeping info")
		level = log.InfoLevel
	}
	log.SetLevel(level)

	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	s := server.NewServer(cfg, upgrader)
	if err := s.Serve(); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
