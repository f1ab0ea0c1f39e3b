package domain

// TimeSlot represents one of the fixed one-hour reservation windows
type TimeSlot struct {
	ID    string
	Label string
}

// timeSlots фиксированный закрытый список окон бронирования.
// Шесть часовых окон в рабочем дне, пользователем не редактируется.
var timeSlots = []TimeSlot{
	{ID: "09-10", Label: "9:00 AM - 10:00 AM"},
	{ID: "10-11", Label: "10:00 AM - 11:00 AM"},
	{ID: "11-12", Label: "11:00 AM - 12:00 PM"},
	{ID: "14-15", Label: "2:00 PM - 3:00 PM"},
	{ID: "15-16", Label: "3:00 PM - 4:00 PM"},
	{ID: "16-17", Label: "4:00 PM - 5:00 PM"},
}

// TimeSlots returns the defined slots in display order
func TimeSlots() []TimeSlot {
	slots := make([]TimeSlot, len(timeSlots))
	copy(slots, timeSlots)
	return slots
}

// TotalSlots returns the number of defined slots per bookable day
func TotalSlots() int {
	return len(timeSlots)
}

// SlotByID returns the slot with the given id
func SlotByID(id string) (TimeSlot, bool) {
	for _, s := range timeSlots {
		if s.ID == id {
			return s, true
		}
	}
	return TimeSlot{}, false
}

// IsValidSlotID returns true if the id belongs to a defined slot
func IsValidSlotID(id string) bool {
	_, ok := SlotByID(id)
	return ok
}
