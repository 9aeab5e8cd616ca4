// Package entities contains core business entities.
// These are the enterprise business rules - pure domain objects with no external dependencies.
package entities

// Location represents a campus point of interest.
// JSON tags reproduce the seeded document shape so the location list can be
// embedded verbatim in the model's grounding instruction.
type Location struct {
	Name             string    `json:"name"`
	Coordinates      []float64 `json:"coordinates"` // [longitude, latitude], always 2 elements
	Description      string    `json:"description"`
	BriefDescription string    `json:"briefDescription"`
	FunFact          string    `json:"funFact,omitempty"`
	LocationID       string    `json:"location_id,omitempty"`
}

// NavigationRequest is one inbound navigation turn.
// ChatID empty means "start a new conversation".
type NavigationRequest struct {
	UserCoordinate []float64 `json:"user_coordinate"` // [longitude, latitude]
	ChatID         string    `json:"chat_id"`
	UserMessage    string    `json:"user_message"`
}

// NavigationResult is the structured reply shape the model is instructed to emit.
type NavigationResult struct {
	AgentMessage     string    `json:"agent_message"`
	FinalQuery       string    `json:"final_query"`
	FinalCoordinates []float64 `json:"final_coordinates"` // empty until the destination is resolved
}

// TurnResult is the outcome of one navigation turn.
// Exactly one of Parsed or Raw is set: Parsed when the model honored the
// structured contract, Raw plus ParseError when it replied with text that
// could not be decoded. Callers must handle both branches.
type TurnResult struct {
	Parsed     *NavigationResult
	Raw        string
	ParseError string
	ChatID     string
	Created    bool // true when this turn opened the session
}
