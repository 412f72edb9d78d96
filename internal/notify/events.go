package notify

import (
	"encoding/json"
	"time"
)

// Collection 事件涉及的集合名。
type Collection string

const (
	CollectionCars           Collection = "cars"
	CollectionAvailableDates Collection = "available_dates"
	CollectionBookings       Collection = "bookings"
	CollectionRenters        Collection = "car_renters"
)

// Action 变更类型。
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Event 是推给前端的变更事件信封。
// 带上实体 ID 和完整载荷，客户端按 ID 做定向合并即可，无需整表重拉。
type Event struct {
	Collection Collection  `json:"collection"`
	Action     Action      `json:"action"`
	EntityID   string      `json:"entity_id"`
	Payload    interface{} `json:"payload,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

// Broadcaster 把领域层的变更翻译成事件广播出去。
type Broadcaster struct {
	hub *Hub
}

func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

// CollectionChanged 广播一条集合变更事件。删除事件的 payload 可为 nil。
func (b *Broadcaster) CollectionChanged(c Collection, a Action, entityID string, payload interface{}) {
	if b == nil || b.hub == nil {
		return
	}
	ev := Event{
		Collection: c,
		Action:     a,
		EntityID:   entityID,
		Payload:    payload,
		Timestamp:  time.Now().UTC(),
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	b.hub.Broadcast(data)
}
