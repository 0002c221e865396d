package gcalendar

import "time"

// CreateEventRequest describes the calendar event created for a task
// deadline. An empty CalendarID targets the "primary" calendar.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "UTC"
}

// Event is the subset of a Google Calendar event this service reads back.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
}

// ListEventsRequest bounds an event listing to the [TimeMin, TimeMax)
// window. MaxResults of zero leaves the API default in place.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
