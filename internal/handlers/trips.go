package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"travel-planner/internal/models"
	"travel-planner/internal/planner"
)

// CalendarRow is one trip line in the calendar view.
type CalendarRow struct {
	Date        string
	Destination string
	Mode        string
	Cost        string
}

// CalendarViewModel is the data passed to the calendar view template.
type CalendarViewModel struct {
	Rows []CalendarRow
}

// Calendar renders the user's trips sorted by date. This is also the
// post-login landing page.
func (h *Handlers) Calendar(w http.ResponseWriter, r *http.Request) {
	trips, err := h.plannerFor(r).ViewCalendar()
	if err != nil {
		log.Printf("Calendar error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	vm := CalendarViewModel{Rows: make([]CalendarRow, 0, len(trips))}
	for _, t := range trips {
		vm.Rows = append(vm.Rows, CalendarRow{
			Date:        t.Date,
			Destination: t.Destination,
			Mode:        t.Mode,
			Cost:        planner.FormatRupees(t.Cost),
		})
	}

	h.render(w, r, "calendar.html", vm)
}

// BookViewModel is the data passed to the booking form template.
type BookViewModel struct {
	Error      string
	Modes      []string
	Categories []string

	// Filled in after a booking attempt.
	Result  *planner.BookingResult
	Summary *BookingSummary
}

// BookingSummary is the formatted outcome of an accepted booking.
type BookingSummary struct {
	Destination string
	Days        int64
	Mode        string
	TripCost    string
	TotalSpent  string
	Remaining   string
}

// BookTripForm renders the booking form.
func (h *Handlers) BookTripForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "book.html", BookViewModel{Modes: models.TravelModes, Categories: models.TripCategories})
}

// BookTrip handles the booking form submission.
func (h *Handlers) BookTrip(w http.ResponseWriter, r *http.Request) {
	vm := BookViewModel{Modes: models.TravelModes, Categories: models.TripCategories}

	req, err := parseBookingForm(r)
	if err != nil {
		vm.Error = err.Error()
		h.render(w, r, "book.html", vm)
		return
	}

	result, err := h.plannerFor(r).BookTrip(req)
	if err != nil {
		log.Printf("BookTrip error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	vm.Result = result
	if result.Denied {
		vm.Error = "Trip cost " + planner.FormatRupees(result.TripCost) +
			" exceeds your total budget " + planner.FormatRupees(result.TotalBudget) + ". Booking denied."
	} else {
		vm.Summary = &BookingSummary{
			Destination: result.Destination,
			Days:        result.Days,
			Mode:        result.Mode,
			TripCost:    planner.FormatRupees(result.TripCost),
			TotalSpent:  planner.FormatRupees(result.TotalSpent),
			Remaining:   planner.FormatRupees(result.Remaining),
		}
	}

	h.render(w, r, "book.html", vm)
}

type formError string

func (e formError) Error() string { return string(e) }

func parseBookingForm(r *http.Request) (planner.BookingRequest, error) {
	var req planner.BookingRequest

	if err := r.ParseForm(); err != nil {
		return req, formError("Invalid form submission")
	}

	req.Destination = strings.TrimSpace(r.FormValue("destination"))
	req.Mode = r.FormValue("mode")
	req.Date = r.FormValue("date")
	req.Category = r.FormValue("category")

	if req.Destination == "" {
		return req, formError("Destination is required")
	}
	if req.Date == "" {
		return req, formError("Start date is required")
	}

	var err error
	if req.Days, err = strconv.ParseInt(r.FormValue("days"), 10, 64); err != nil {
		return req, formError("Number of days must be a whole number")
	}
	if req.CostPerDay, err = strconv.ParseInt(r.FormValue("cost_per_day"), 10, 64); err != nil {
		return req, formError("Cost per day must be a whole number")
	}
	if req.TotalBudget, err = strconv.ParseInt(r.FormValue("total_budget"), 10, 64); err != nil {
		return req, formError("Total budget must be a whole number")
	}

	return req, nil
}
