// Package planner implements the per-user trip operations: booking,
// recommendations, export, statistics, and the calendar. All operations
// return structured results; rendering to text happens in the front ends.
package planner

import (
	"encoding/csv"
	"os"
	"strconv"

	"travel-planner/internal/models"
	"travel-planner/internal/recommend"
	"travel-planner/internal/storage"
)

// Planner exposes trip operations for one authenticated user.
type Planner struct {
	db       *storage.DB
	username string
}

// New returns a Planner bound to the given storage handle and user.
func New(db *storage.DB, username string) *Planner {
	return &Planner{db: db, username: username}
}

// Username returns the account this planner is bound to.
func (p *Planner) Username() string {
	return p.username
}

// BookingRequest holds the user-supplied inputs for one booking attempt.
// TotalBudget applies to this call only; it is never persisted.
type BookingRequest struct {
	Destination string
	Mode        string
	CostPerDay  int64
	Days        int64
	Date        string
	Category    string
	TotalBudget int64
}

// BookingResult reports the outcome of a booking attempt. When Denied is
// true nothing was persisted and TotalSpent/Remaining are zero.
type BookingResult struct {
	Denied      bool
	Destination string
	Mode        string
	Days        int64
	TripCost    int64
	TotalBudget int64
	TotalSpent  int64
	Remaining   int64
}

// BookTrip books a trip if its total cost fits the supplied budget. The
// persisted cost is the pre-multiplied total (cost per day times days).
// Total spent is recomputed from all stored trips, so the remaining budget
// reflects every booking made so far against this call's budget.
func (p *Planner) BookTrip(req BookingRequest) (*BookingResult, error) {
	tripCost := req.CostPerDay * req.Days

	res := &BookingResult{
		Destination: req.Destination,
		Mode:        req.Mode,
		Days:        req.Days,
		TripCost:    tripCost,
		TotalBudget: req.TotalBudget,
	}

	if tripCost > req.TotalBudget {
		res.Denied = true
		return res, nil
	}

	_, err := p.db.AddTrip(models.Trip{
		Username:    p.username,
		Destination: req.Destination,
		Mode:        req.Mode,
		Cost:        tripCost,
		Date:        req.Date,
		Category:    req.Category,
	})
	if err != nil {
		return nil, err
	}

	trips, err := p.db.GetTrips(p.username)
	if err != nil {
		return nil, err
	}
	for _, t := range trips {
		res.TotalSpent += t.Cost
	}
	res.Remaining = req.TotalBudget - res.TotalSpent

	return res, nil
}

// Recommend returns catalog destinations within budget, in catalog order.
func (p *Planner) Recommend(budget int64) []recommend.Destination {
	return recommend.ForBudget(budget)
}

// BudgetPlanner is an alias for Recommend kept as its own menu entry.
func (p *Planner) BudgetPlanner(budget int64) []recommend.Destination {
	return p.Recommend(budget)
}

// ExportResult reports what an export wrote.
type ExportResult struct {
	Filename string
	Count    int
}

// exportHeader matches the trips table's columns in storage order.
var exportHeader = []string{"id", "username", "destination", "mode", "cost", "date", "category"}

// ExportItinerary writes all of the user's trips to filename as
// tab-separated values with a header row, overwriting any existing file.
// With no trips it writes nothing and returns Count == 0.
func (p *Planner) ExportItinerary(filename string) (*ExportResult, error) {
	trips, err := p.db.GetTrips(p.username)
	if err != nil {
		return nil, err
	}
	if len(trips) == 0 {
		return &ExportResult{Filename: filename}, nil
	}

	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, t := range trips {
		record := []string{
			strconv.FormatInt(t.ID, 10),
			t.Username,
			t.Destination,
			t.Mode,
			strconv.FormatInt(t.Cost, 10),
			t.Date,
			t.Category,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &ExportResult{Filename: filename, Count: len(trips)}, nil
}

// Stats summarizes a user's travel history. Count == 0 means no trips yet
// and the other fields are zero values.
type Stats struct {
	Count       int
	TotalSpent  int64
	MostVisited string
}

// TripStatistics reports trip count, total spend, and the most frequently
// booked destination. Ties go to the destination booked first.
func (p *Planner) TripStatistics() (*Stats, error) {
	trips, err := p.db.GetTrips(p.username)
	if err != nil {
		return nil, err
	}
	if len(trips) == 0 {
		return &Stats{}, nil
	}

	stats := &Stats{Count: len(trips)}
	for _, t := range trips {
		stats.TotalSpent += t.Cost
	}

	counts, err := p.db.DestinationCounts(p.username)
	if err != nil {
		return nil, err
	}
	if len(counts) > 0 {
		stats.MostVisited = counts[0].Destination
	}

	return stats, nil
}

// ViewCalendar returns the user's trips sorted ascending by date string.
// An empty slice means no upcoming trips.
func (p *Planner) ViewCalendar() ([]models.Trip, error) {
	return p.db.GetTripsByDate(p.username)
}
