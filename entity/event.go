package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

type Category string

const (
	CategoryAll      Category = "All"
	CategoryMusic    Category = "Music"
	CategoryTech     Category = "Tech"
	CategorySports   Category = "Sports"
	CategoryFood     Category = "Food"
	CategoryArt      Category = "Art"
	CategoryComedy   Category = "Comedy"
	CategoryBusiness Category = "Business"
)

// Categories is the fixed selector list shown in the catalog. CategoryAll is
// a sentinel meaning "no category filter" and never appears on an event.
var Categories = []Category{
	CategoryAll,
	CategoryMusic,
	CategoryTech,
	CategorySports,
	CategoryFood,
	CategoryArt,
	CategoryComedy,
	CategoryBusiness,
}

type EventSummary struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	Date           Time     `json:"date"`
	Price          Price    `json:"price"`
	Category       Category `json:"category"`
	ImageURL       string   `json:"image_url,omitempty"`
	AvailableSeats int      `json:"available_seats"`
}

// Price is a whole-currency-unit amount. Zero means the event is free.
// The backend serializes prices as JSON numbers that may carry a fractional
// part, so decoding accepts both 4999 and 4999.0.
type Price int64

func (p Price) Free() bool {
	return p == 0
}

func (p *Price) UnmarshalJSON(data []byte) error {
	f, err := strconv.ParseFloat(string(bytes.TrimSpace(data)), 64)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", data, err)
	}
	*p = Price(f)
	return nil
}

// Time decodes the backend's ISO-8601 timestamps, which come with or without
// a timezone offset depending on the endpoint.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", s)
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339))
}
