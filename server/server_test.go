package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipcool/config"
	"shipcool/model"
)

func newTestServer(t *testing.T) *httptest.Server {
	cfg := config.Default()
	cfg.Server.TickInterval = 5
	cfg.Server.TicksPerPush = 10
	cfg.Simulator.OptimizeEvery = 5
	srv := httptest.NewServer(NewServer(cfg, websocket.Upgrader{}).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readUntil skips frames until a message of the wanted type arrives.
func readUntil(t *testing.T, conn *websocket.Conn, typ string) model.Msg {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var msg model.Msg
		require.NoError(t, conn.ReadJSON(&msg))
		if msg.Type == typ {
			return msg
		}
	}
}

func TestHub_StartStreamsFrames(t *testing.T) {
	conn := dial(t, newTestServer(t))

	require.NoError(t, conn.WriteJSON(model.Msg{Type: model.MsgStart}))
	readUntil(t, conn, model.MsgStarted)

	var first, second model.Frame
	require.NoError(t, json.Unmarshal([]byte(readUntil(t, conn, model.MsgFrame).Content), &first))
	require.NoError(t, json.Unmarshal([]byte(readUntil(t, conn, model.MsgFrame).Content), &second))
	assert.Equal(t, 10.0, first.Elapsed)
	assert.Equal(t, 20.0, second.Elapsed)
	require.NotNil(t, second.Pump)
	assert.Equal(t, second.Pump.OptimizedFreq, second.Frequencies.SWPump)

	require.NoError(t, conn.WriteJSON(model.Msg{Type: model.MsgStop}))
	readUntil(t, conn, model.MsgStopped)
}

func TestHub_ResetAndStatus(t *testing.T) {
	conn := dial(t, newTestServer(t))

	require.NoError(t, conn.WriteJSON(model.Msg{Type: model.MsgStart}))
	readUntil(t, conn, model.MsgFrame)
	require.NoError(t, conn.WriteJSON(model.Msg{Type: model.MsgStop}))
	readUntil(t, conn, model.MsgStopped)

	require.NoError(t, conn.WriteJSON(model.Msg{Type: model.MsgReset}))
	readUntil(t, conn, model.MsgResetOK)

	require.NoError(t, conn.WriteJSON(model.Msg{Type: model.MsgStatus}))
	var st model.Status
	require.NoError(t, json.Unmarshal([]byte(readUntil(t, conn, model.MsgStatus).Content), &st))
	assert.Equal(t, 0.0, st.Elapsed)
	assert.False(t, st.Running)
	assert.Equal(t, 0, st.Savings.Samples)
}

func TestHub_Age(t *testing.T) {
	conn := dial(t, newTestServer(t))

	require.NoError(t, conn.WriteJSON(model.Msg{Type: model.MsgAge, Content: "7.5"}))
	assert.Equal(t, "7.5", readUntil(t, conn, model.MsgAgeSet).Content)

	require.NoError(t, conn.WriteJSON(model.Msg{Type: model.MsgAge, Content: "old"}))
	readUntil(t, conn, model.MsgError)
}

func TestHub_UnknownType(t *testing.T) {
	conn := dial(t, newTestServer(t))
	require.NoError(t, conn.WriteJSON(model.Msg{Type: "env"}))
	assert.Contains(t, readUntil(t, conn, model.MsgError).Content, "env")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	conn := dial(t, srv)
	require.NoError(t, conn.WriteJSON(model.Msg{Type: model.MsgStart}))
	readUntil(t, conn, model.MsgFrame)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "shipcool_plant_temperature_celsius")
}
