package models

// CurrentUserID is the reserved participant ID standing in for the app
// user. Some flows accept it as a payer or split entry, but it is never
// stored as a real participant of a party.
const CurrentUserID = "YO"

// PartyStatus is the lifecycle state of a party. The only transition is
// active -> settled; a settled party never reopens.
type PartyStatus string

const (
	PartyActive  PartyStatus = "active"
	PartySettled PartyStatus = "settled"
)

// Participant is a person tracked within a single party's ledger. It is
// scoped to its party, not a global user account.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string `json:"id"`

	// Name is the display name. The only mutable field.
	Name string `json:"name"`
}

// Party represents a shared-expense event with named participants.
// Expenses reference the party by ID rather than being embedded.
type Party struct {
	// ID is the unique identifier for the party (UUID format).
	ID string `json:"id"`

	// Name is the display name of the party (e.g., "Trip", "Asado").
	Name string `json:"name"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// Date is the event date as entered by the user.
	Date string `json:"date,omitempty"`

	// Participants is the list of people sharing this party's expenses.
	// Their order is significant: balance and settlement computations
	// walk participants in this order.
	Participants []Participant `json:"participants"`

	// Status is the lifecycle state (active or settled).
	Status PartyStatus `json:"status"`

	// CreatedAt is the Unix timestamp when the party was created.
	CreatedAt int64 `json:"createdAt"`
}

// ParticipantIDs returns the IDs of the party's participants in their
// stored order.
func (p *Party) ParticipantIDs() []string {
	ids := make([]string, len(p.Participants))
	for i, pp := range p.Participants {
		ids[i] = pp.ID
	}
	return ids
}

// HasParticipant reports whether id names one of the party's
// participants.
func (p *Party) HasParticipant(id string) bool {
	for _, pp := range p.Participants {
		if pp.ID == id {
			return true
		}
	}
	return false
}
