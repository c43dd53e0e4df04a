package types

import (
	"sync"

	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"
)

// Watcher is a websocket client following a game. Writes are serialized, as
// a websocket connection supports one concurrent writer only.
type Watcher struct {
	id    string
	conn  *websocket.Conn
	mutex *sync.Mutex
}

func NewWatcher(conn *websocket.Conn) *Watcher {
	return &Watcher{
		id:    uuid.NewV4().String(),
		conn:  conn,
		mutex: &sync.Mutex{},
	}
}

func (w *Watcher) GetId() string {
	return w.id
}

func (w *Watcher) WriteJSON(v interface{}) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return w.conn.WriteJSON(v)
}

func (w *Watcher) WriteMessage(data []byte) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return w.conn.WriteMessage(websocket.TextMessage, data)
}

func (w *Watcher) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return w.conn.Close()
}
