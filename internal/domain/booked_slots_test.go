package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookedSlots_AddDeduplicates(t *testing.T) {
	bs := BookedSlots{}

	bs.Add("2026-03-18", "10-11")
	bs.Add("2026-03-18", "09-10")
	bs.Add("2026-03-18", "10-11") // повтор

	assert.Equal(t, 2, bs.CountFor("2026-03-18"))
	assert.Equal(t, []string{"09-10", "10-11"}, bs["2026-03-18"])
	assert.True(t, bs.Has("2026-03-18", "09-10"))
	assert.False(t, bs.Has("2026-03-18", "11-12"))
	assert.False(t, bs.Has("2026-03-19", "09-10"))
}

func TestBookedSlots_FullyBookedThreshold(t *testing.T) {
	bs := BookedSlots{}
	dateKey := "2026-03-18"

	slots := TimeSlots()
	for i, slot := range slots[:len(slots)-1] {
		bs.Add(dateKey, slot.ID)
		assert.False(t, bs.IsFullyBooked(dateKey), "after %d slots", i+1)
	}

	// Шестой слот переводит дату в "занято целиком"
	bs.Add(dateKey, slots[len(slots)-1].ID)
	assert.True(t, bs.IsFullyBooked(dateKey))
}

func TestBookedSlots_AvailableAndBookedOrdering(t *testing.T) {
	bs := BookedSlots{}
	dateKey := "2026-03-18"

	// Добавляем не по порядку определения
	bs.Add(dateKey, "15-16")
	bs.Add(dateKey, "09-10")

	booked := bs.BookedFor(dateKey)
	assert.Equal(t, []string{"09-10", "15-16"}, slotIDs(booked))

	available := bs.AvailableFor(dateKey)
	assert.Equal(t, []string{"10-11", "11-12", "14-15", "16-17"}, slotIDs(available))
}

func TestBookedSlots_CloneIsIndependent(t *testing.T) {
	bs := BookedSlots{}
	bs.Add("2026-03-18", "09-10")

	clone := bs.Clone()
	clone.Add("2026-03-18", "10-11")
	clone.Add("2026-03-19", "09-10")

	assert.Equal(t, 1, bs.CountFor("2026-03-18"))
	assert.Equal(t, 0, bs.CountFor("2026-03-19"))
}

func slotIDs(slots []TimeSlot) []string {
	ids := make([]string, 0, len(slots))
	for _, s := range slots {
		ids = append(ids, s.ID)
	}
	return ids
}
