package opponent

import (
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"connectfour/env"
	"connectfour/game"
)

// moveRequest is one opponent query on the wire: the flattened
// observation from the remote player's perspective plus the mask of
// columns still open.
type moveRequest struct {
	Observation []float64 `json:"observation"`
	Legal       []bool    `json:"legal"`
}

// moveReply is the remote player's answer.
type moveReply struct {
	Column int `json:"column"`
}

// Remote bridges the opponent contract over an established websocket:
// each query writes one JSON frame and blocks until the peer answers
// with a column. All decision making lives on the peer; this side only
// ferries frames and reports transport failures.
func Remote(conn *websocket.Conn) env.Opponent {
	return func(obs game.Observation, legal []bool) (int, error) {
		req := moveRequest{Observation: obs.Vector(), Legal: legal}
		if err := conn.WriteJSON(req); err != nil {
			return 0, errors.Wrap(err, "sending observation")
		}
		var reply moveReply
		if err := conn.ReadJSON(&reply); err != nil {
			return 0, errors.Wrap(err, "reading move")
		}
		return reply.Column, nil
	}
}

// DialRemote connects to a remote opponent server and returns the
// opponent plus a close function for the underlying connection.
func DialRemote(url string) (env.Opponent, func() error, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "dialing remote opponent %s", url)
	}
	return Remote(conn), conn.Close, nil
}

// RemoteFactory keeps one connection across episodes; the peer is
// expected to treat each observation statelessly.
func RemoteFactory(conn *websocket.Conn) env.OpponentFactory {
	pick := Remote(conn)
	return func() env.Opponent {
		return pick
	}
}
