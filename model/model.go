package model

import (
	"shipcool/optimizer"
	"shipcool/plant"
)

// Msg is the envelope exchanged with websocket clients.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

const (
	MsgStart   = "start"
	MsgStop    = "stop"
	MsgReset   = "reset"
	MsgAge     = "age"
	MsgStatus  = "status"
	MsgStarted = "started"
	MsgStopped = "stopped"
	MsgResetOK = "reset_ok"
	MsgAgeSet  = "age_set"
	MsgFrame   = "frame"
	MsgError   = "error"
)

// Frequencies currently commanded to each equipment class.
type Frequencies struct {
	SWPump float64 `json:"sw_pump"`
	FWPump float64 `json:"fw_pump"`
	Fan    float64 `json:"fan"`
}

// Frame is the result of one simulated second.
type Frame struct {
	Elapsed     float64                `json:"elapsed"` // simulated seconds
	Inputs      plant.Inputs           `json:"inputs"`
	Snapshot    plant.Snapshot         `json:"snapshot"`
	Frequencies Frequencies            `json:"frequencies"`
	Pump        *optimizer.Performance `json:"pump,omitempty"`
	Fan         *optimizer.Performance `json:"fan,omitempty"`
	Savings     optimizer.Averages     `json:"savings"`
}

// Status answers a "status" request.
type Status struct {
	Elapsed     float64            `json:"elapsed"`
	Running     bool               `json:"running"`
	Frequencies Frequencies        `json:"frequencies"`
	State       plant.State        `json:"state"`
	Savings     optimizer.Averages `json:"savings"`
}
