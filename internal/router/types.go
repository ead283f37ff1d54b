package router

// Route is the pipeline a raw command is dispatched to.
type Route string

const (
	RouteMeeting      Route = "MEETING"
	RouteTask         Route = "TASK"
	RouteScheduling   Route = "SCHEDULING"
	RouteItinerary    Route = "ITINERARY"
	RouteConversation Route = "CONVERSATION"
)

// Output is the classification of one command. Keyword is the matched
// trigger, empty for conversation.
type Output struct {
	Route   Route  `json:"route"`
	Keyword string `json:"keyword,omitempty"`
}
