package server

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"shipcool/config"
	"shipcool/model"
	"shipcool/simulator"
)

// Hub drives one simulation for one websocket client. Only handleRequest touches
// the runner; only handleResponse writes to the connection.
type Hub struct {
	id     uuid.UUID
	conn   *websocket.Conn
	runner *simulator.Runner
	cfg    config.Server

	// request
	msg chan model.Msg
	// response
	reply chan model.Msg

	done chan struct{}
}

func NewHub(conn *websocket.Conn, runner *simulator.Runner, cfg config.Server) *Hub {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 100
	}
	if cfg.TicksPerPush <= 0 {
		cfg.TicksPerPush = 1
	}
	h := &Hub{
		id:     uuid.New(),
		conn:   conn,
		runner: runner,
		cfg:    cfg,
		msg:    make(chan model.Msg, 10),
		reply:  make(chan model.Msg, 10),
		done:   make(chan struct{}),
	}
	log.WithFields(log.Fields{"session": h.id}).Info("session opened")
	return h
}

func (h *Hub) close() {
	close(h.done)
	log.WithFields(log.Fields{"session": h.id}).Info("session closed")
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithFields(log.Fields{"session": h.id}).WithError(err).Warn("write failed")
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) send(msg model.Msg) {
	select {
	case h.reply <- msg:
	case <-h.done:
	}
}

func (h *Hub) sendJSON(typ string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		h.send(model.Msg{Type: model.MsgError, Content: err.Error()})
		return
	}
	h.send(model.Msg{Type: typ, Content: string(data)})
}

func (h *Hub) handleRequest() {
	ticker := time.NewTicker(time.Duration(h.cfg.TickInterval) * time.Millisecond)
	defer ticker.Stop()
	running := false
	for {
		select {
		case msg := <-h.msg:
			running = h.dispatch(msg, running)
		case <-ticker.C:
			if running {
				h.sendJSON(model.MsgFrame, h.runner.Run(h.cfg.TicksPerPush))
			}
		case <-h.done:
			return
		}
	}
}

// dispatch applies one client command and reports whether the simulation runs.
func (h *Hub) dispatch(msg model.Msg, running bool) bool {
	fields := log.Fields{"session": h.id, "type": msg.Type}
	switch msg.Type {
	case model.MsgStart:
		log.WithFields(fields).Info("simulation started")
		h.send(model.Msg{Type: model.MsgStarted})
		return true
	case model.MsgStop:
		log.WithFields(fields).Info("simulation stopped")
		h.send(model.Msg{Type: model.MsgStopped, Content: "stopped"})
		return false
	case model.MsgReset:
		h.runner.Reset()
		h.send(model.Msg{Type: model.MsgResetOK})
	case model.MsgAge:
		months, err := strconv.ParseFloat(msg.Content, 64)
		if err != nil {
			h.send(model.Msg{Type: model.MsgError, Content: "age must be a number of months"})
			break
		}
		h.runner.Optimizer().SetSystemAge(months)
		h.send(model.Msg{Type: model.MsgAgeSet, Content: msg.Content})
	case model.MsgStatus:
		h.sendJSON(model.MsgStatus, model.Status{
			Elapsed:     h.runner.Elapsed(),
			Running:     running,
			Frequencies: h.runner.Frequencies(),
			State:       h.runner.Engine().State(),
			Savings:     h.runner.Optimizer().Average24hSavings(),
		})
	default:
		log.WithFields(fields).Warn("no such type")
		h.send(model.Msg{Type: model.MsgError, Content: "no such type: " + msg.Type})
	}
	return running
}
