package model

// Room 教室 — 对应 rooms
type Room struct {
	RoomID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"room_id"`
	Name   string `gorm:"type:varchar(100);not null"                     json:"name"`
	BaseModel
}

// TableName 指定表名
func (Room) TableName() string { return "rooms" }
