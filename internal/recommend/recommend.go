// Package recommend holds the static destination catalog and budget filter.
package recommend

// Destination is one entry in the fixed catalog. Cost is the listed price in
// rupees.
type Destination struct {
	Name        string
	Mode        string
	Cost        int64
	Description string
}

// Catalog is the fixed list of recommendable destinations, in display order.
var Catalog = []Destination{
	{"Ooty", "Bus", 1500, "Cool Weather, Hills"},
	{"Pondicherry", "Bus", 1200, "Beach"},
	{"Munnar", "Bus", 1700, "Nature & Tea Estates"},
	{"Chennai", "Train", 300, "Hot & Busy City"},
	{"Goa", "Flight", 4800, "Beaches & Nightlife"},
}

// ForBudget returns the catalog entries whose listed cost is within budget,
// preserving catalog order.
func ForBudget(budget int64) []Destination {
	var options []Destination
	for _, d := range Catalog {
		if d.Cost <= budget {
			options = append(options, d)
		}
	}
	return options
}
