package hotelsearch

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// SearchPath is the hotel search endpoint relative to BaseURL.
	SearchPath = "/api/hotels"
	// AvailabilityPath is the room availability endpoint relative to BaseURL.
	AvailabilityPath = "/api/check-availability"
)

// Query is one hotel search. CheckIn <= CheckOut is not checked here; an
// inverted range is sent as-is and left for the server to reject.
type Query struct {
	Destination string
	CheckIn     time.Time
	CheckOut    time.Time
}

// Encode renders q as a query string in destination, checkIn, checkOut
// order. The destination is percent-encoded so '&', '?', '#', spaces, and
// non-ASCII text stay inside the one parameter.
func (q Query) Encode() string {
	var b strings.Builder
	b.WriteString("destination=")
	b.WriteString(url.QueryEscape(q.Destination))
	b.WriteString("&checkIn=")
	b.WriteString(FormatDate(q.CheckIn))
	b.WriteString("&checkOut=")
	b.WriteString(FormatDate(q.CheckOut))
	return b.String()
}

// Outcome is the result of one search: either Result is set and Err is nil,
// or Err describes the failure.
type Outcome struct {
	Result Result
	Err    *Error
}

// OK reports whether the search succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// SearchURL returns the full request URL for q.
func (c *Client) SearchURL(q Query) string {
	return c.baseURL() + SearchPath + "?" + q.Encode()
}

// SearchHotels looks up hotels in destination for the given stay.
// Any returned error is an *Error.
func (c *Client) SearchHotels(ctx context.Context, destination string, checkIn, checkOut time.Time) (Result, error) {
	q := Query{Destination: destination, CheckIn: checkIn, CheckOut: checkOut}
	return c.Do(ctx, c.SearchURL(q), nil)
}

// Search runs q and folds the result into an Outcome.
func (c *Client) Search(ctx context.Context, q Query) Outcome {
	res, err := c.SearchHotels(ctx, q.Destination, q.CheckIn, q.CheckOut)
	if err != nil {
		return Outcome{Err: AsError(err)}
	}
	return Outcome{Result: res}
}

type availabilityRequest struct {
	RoomID   string `json:"room_id"`
	CheckIn  string `json:"check_in_date"`
	CheckOut string `json:"check_out_date"`
}

type availabilityResponse struct {
	Available *bool `json:"available"`
}

// CheckAvailability asks whether roomID is free for the stay.
func (c *Client) CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	res, err := c.Do(ctx, c.baseURL()+AvailabilityPath, &RequestOptions{
		Method: http.MethodPost,
		Body: availabilityRequest{
			RoomID:   roomID,
			CheckIn:  FormatDate(checkIn),
			CheckOut: FormatDate(checkOut),
		},
	})
	if err != nil {
		return false, err
	}

	var out availabilityResponse
	if err := res.Decode(&out); err != nil {
		perr := parseError(err)
		c.logError(ctx, perr)
		return false, perr
	}
	if out.Available == nil {
		perr := &Error{Kind: KindParse, Message: `response is missing "available"`}
		c.logError(ctx, perr)
		return false, perr
	}
	return *out.Available, nil
}
