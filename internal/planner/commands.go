package planner

// Command identifies one menu operation. Both front ends dispatch on this
// enum instead of carrying their own switch over raw menu strings.
type Command int

const (
	CommandBookTrip Command = iota + 1
	CommandRecommend
	CommandBudgetPlanner
	CommandExport
	CommandStats
	CommandCalendar
	CommandLogout
)

// Commands lists every command in menu order. Terminal menu numbers are the
// 1-based index into this slice; the web nav renders it top to bottom.
var Commands = []Command{
	CommandBookTrip,
	CommandRecommend,
	CommandBudgetPlanner,
	CommandExport,
	CommandStats,
	CommandCalendar,
	CommandLogout,
}

var commandNames = map[Command]string{
	CommandBookTrip:      "Book Trip",
	CommandRecommend:     "Recommend Destinations",
	CommandBudgetPlanner: "Budget Planner",
	CommandExport:        "Export Itinerary",
	CommandStats:         "View Trip Stats",
	CommandCalendar:      "Calendar View",
	CommandLogout:        "Logout",
}

var commandSlugs = map[Command]string{
	CommandBookTrip:      "trips/book",
	CommandRecommend:     "recommend",
	CommandBudgetPlanner: "budget",
	CommandExport:        "export",
	CommandStats:         "stats",
	CommandCalendar:      "trips",
	CommandLogout:        "logout",
}

// String returns the menu label for the command.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Slug returns the web route path (without leading slash) for the command.
func (c Command) Slug() string {
	return commandSlugs[c]
}

// ParseCommand maps a 1-based menu number to its command. ok is false for
// numbers outside the menu.
func ParseCommand(n int) (Command, bool) {
	if n < 1 || n > len(Commands) {
		return 0, false
	}
	return Commands[n-1], true
}
