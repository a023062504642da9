package dto

import (
	"errors"
	"time"

	"ministry_backend/internals/features/events/model"
)

// ============================
// Create / Update Request DTO
// ============================

// EventRequest carries the five writable event fields. Updates replace all
// five on every call; time, description and location fall back to empty
// strings when omitted.
type EventRequest struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

var ErrInvalidDate = errors.New("invalid date format")

// event dates arrive either as a plain calendar date or a full timestamp
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseEventDate converts the submitted date string into a UTC time value.
// Malformed dates are rejected here, before anything reaches the store.
func ParseEventDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// ============================
// Converter
// ============================

func (r EventRequest) ToModel() (model.EventModel, error) {
	date, err := ParseEventDate(r.Date)
	if err != nil {
		return model.EventModel{}, err
	}
	return model.EventModel{
		Title:       r.Title,
		Date:        date,
		Time:        r.Time,
		Description: r.Description,
		Location:    r.Location,
	}, nil
}
