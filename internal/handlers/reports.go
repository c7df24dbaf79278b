package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"travel-planner/internal/planner"
)

// RecommendationItem is one destination in the recommendation list.
type RecommendationItem struct {
	Index       int
	Name        string
	Cost        string
	Description string
}

// RecommendViewModel is the data passed to the recommendation templates.
type RecommendViewModel struct {
	Title    string
	Action   string
	Error    string
	Budget   string
	Searched bool
	Items    []RecommendationItem
}

// Recommend renders the destination recommendation page. A budget query
// parameter triggers the catalog lookup.
func (h *Handlers) Recommend(w http.ResponseWriter, r *http.Request) {
	h.recommendPage(w, r, "Destination Recommendations", "/recommend")
}

// BudgetPlanner renders the budget planner page. It shares the
// recommendation logic and differs only in presentation.
func (h *Handlers) BudgetPlanner(w http.ResponseWriter, r *http.Request) {
	h.recommendPage(w, r, "Budget Planner", "/budget")
}

func (h *Handlers) recommendPage(w http.ResponseWriter, r *http.Request, title, action string) {
	vm := RecommendViewModel{Title: title, Action: action}

	budgetStr := r.URL.Query().Get("budget")
	if budgetStr == "" {
		h.render(w, r, "recommend.html", vm)
		return
	}

	vm.Budget = budgetStr
	budget, err := strconv.ParseInt(budgetStr, 10, 64)
	if err != nil {
		vm.Error = "Budget must be a whole number"
		h.render(w, r, "recommend.html", vm)
		return
	}

	vm.Searched = true
	for i, d := range h.plannerFor(r).Recommend(budget) {
		vm.Items = append(vm.Items, RecommendationItem{
			Index:       i + 1,
			Name:        d.Name,
			Cost:        planner.FormatRupees(d.Cost),
			Description: d.Description,
		})
	}

	h.render(w, r, "recommend.html", vm)
}

// ExportViewModel is the data passed to the export template.
type ExportViewModel struct {
	Error    string
	Message  string
	Filename string
}

// ExportForm renders the itinerary export form.
func (h *Handlers) ExportForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "export.html", ExportViewModel{Filename: "my_trips.txt"})
}

// Export writes the user's trips to the requested file on the server host.
func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	vm := ExportViewModel{Filename: "my_trips.txt"}

	if err := r.ParseForm(); err != nil {
		vm.Error = "Invalid form submission"
		h.render(w, r, "export.html", vm)
		return
	}

	if filename := strings.TrimSpace(r.FormValue("filename")); filename != "" {
		vm.Filename = filename
	}

	result, err := h.plannerFor(r).ExportItinerary(vm.Filename)
	if err != nil {
		log.Printf("Export error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if result.Count == 0 {
		vm.Message = "No trips to export."
	} else {
		vm.Message = "Exported " + strconv.Itoa(result.Count) + " trips to " + result.Filename
	}

	h.render(w, r, "export.html", vm)
}

// StatsViewModel is the data passed to the statistics template.
type StatsViewModel struct {
	HasTrips    bool
	Count       int
	TotalSpent  string
	MostVisited string
}

// Statistics renders the trip statistics page.
func (h *Handlers) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.plannerFor(r).TripStatistics()
	if err != nil {
		log.Printf("Statistics error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	vm := StatsViewModel{
		HasTrips:    stats.Count > 0,
		Count:       stats.Count,
		TotalSpent:  planner.FormatRupees(stats.TotalSpent),
		MostVisited: stats.MostVisited,
	}

	h.render(w, r, "stats.html", vm)
}
