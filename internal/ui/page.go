package ui

import (
	"context"
	"strings"
	"time"

	"github.com/pkordes/smartstay/internal/hotelsearch"
)

// Searcher runs a hotel search. *hotelsearch.Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, q hotelsearch.Query) hotelsearch.Outcome
}

// SearchForm holds the raw values of the search form inputs.
type SearchForm struct {
	Destination string
	CheckIn     string
	CheckOut    string
}

// View is what the page shows after a submit. Exactly one of Result and
// Notification is meaningful: Notification is nil on success.
type View struct {
	Result       hotelsearch.Result
	Notification *Notification
	Constraints  DateConstraints
}

// Page drives the search form.
type Page struct {
	searcher Searcher
	now      func() time.Time
	loc      *time.Location
}

// NewPage returns a Page that searches through s using the wall clock and
// the local time zone.
func NewPage(s Searcher) *Page {
	return &Page{searcher: s, now: time.Now, loc: time.Local}
}

// WithClock returns a copy of p that reads the current time from now.
func (p *Page) WithClock(now func() time.Time) *Page {
	cp := *p
	cp.now = now
	return &cp
}

// Search submits form. Inputs the browser would have refused are reported
// as a warning without contacting the server; client failures come back as
// a danger notification carrying the failure message.
func (p *Page) Search(ctx context.Context, form SearchForm) View {
	now := p.now()
	v := View{Constraints: NewDateConstraints(now.In(p.loc), form.CheckIn)}

	dest := strings.TrimSpace(form.Destination)
	if dest == "" {
		return p.notify(v, "Please enter a destination", TypeWarning, now)
	}
	checkIn, err := hotelsearch.ParseDate(form.CheckIn, p.loc)
	if err != nil {
		return p.notify(v, "Please select a valid check-in date", TypeWarning, now)
	}
	checkOut, err := hotelsearch.ParseDate(form.CheckOut, p.loc)
	if err != nil {
		return p.notify(v, "Please select a valid check-out date", TypeWarning, now)
	}

	out := p.searcher.Search(ctx, hotelsearch.Query{
		Destination: dest,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
	})
	if !out.OK() {
		return p.notify(v, out.Err.Message, TypeDanger, now)
	}
	v.Result = out.Result
	return v
}

func (p *Page) notify(v View, msg string, typ NotificationType, now time.Time) View {
	n := NewNotification(msg, typ, now)
	v.Notification = &n
	return v
}
