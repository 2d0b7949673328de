package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

var singletonMutex sync.Mutex

// NotificationHub fans profile events out to websocket listeners. Topics are
// user uids; a listener only ever subscribes to its own uid.
type NotificationHub struct {
	registrationMutex sync.Mutex
	listeners         map[string][]*websocket.Conn
}

func (hub *NotificationHub) RegisterListener(uid string, conn *websocket.Conn) {
	hub.registrationMutex.Lock()
	defer hub.registrationMutex.Unlock()

	if hub.listeners[uid] == nil {
		hub.listeners[uid] = []*websocket.Conn{conn}
		return
	}
	hub.listeners[uid] = append(hub.listeners[uid], conn)
}

func (hub *NotificationHub) UnregisterListener(uid string, conn *websocket.Conn) {
	hub.registrationMutex.Lock()
	defer hub.registrationMutex.Unlock()

	connAddrToClose := conn.RemoteAddr()

	if len(hub.listeners[uid]) <= 1 {
		delete(hub.listeners, uid)
		return
	}

	var indexToDelete int
	for i, listener := range hub.listeners[uid] {
		if listener.RemoteAddr() == connAddrToClose {
			indexToDelete = i
			break
		}
	}

	hub.listeners[uid] = append(hub.listeners[uid][:indexToDelete], hub.listeners[uid][indexToDelete+1:]...)
}

func (hub *NotificationHub) Publish(uid string, event any) {
	hub.registrationMutex.Lock()
	defer hub.registrationMutex.Unlock()

	for _, listener := range hub.listeners[uid] {
		_ = listener.WriteJSON(event)
	}
}

var notificationHubSingleton *NotificationHub

func NewNotificationHub() *NotificationHub {
	singletonMutex.Lock()
	defer singletonMutex.Unlock()

	if notificationHubSingleton == nil {
		notificationHubSingleton = &NotificationHub{
			listeners: make(map[string][]*websocket.Conn),
		}
	}

	return notificationHubSingleton
}
