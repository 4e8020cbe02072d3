package studioservice

// Studio модель студии из StudioService
type Studio struct {
	ID           int64        `json:"id"`
	OwnerID      int64        `json:"owner_id"`
	Name         string       `json:"name"`
	City         string       `json:"city"`
	Address      string       `json:"address"`
	WorkingHours WeekSchedule `json:"working_hours"`
}

// Room модель комнаты (зала) студии
type Room struct {
	ID       int64  `json:"id"`
	StudioID int64  `json:"studio_id"`
	Name     string `json:"name"`
	AreaSqm  int    `json:"area_sqm"`
}

// WeekSchedule расписание работы студии по дням недели
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// DaySchedule расписание работы на один день недели
// OpenTime и CloseTime в формате "HH:MM", nil если студия закрыта
type DaySchedule struct {
	IsOpen    bool    `json:"is_open"`
	OpenTime  *string `json:"open_time,omitempty"`
	CloseTime *string `json:"close_time,omitempty"`
}

// ErrorResponse модель ошибки от StudioService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
