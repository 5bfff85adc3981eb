package audit

import "time"

// Action names recorded for hub status changes.
const (
	ActionStatusUpdated  = "link_status_updated"
	ActionLinkVisited    = "link_visited"
	ActionStatusesSeeded = "link_statuses_seeded"
	ActionStatusesReset  = "link_statuses_reset"
)

// Event is emitted when a hub status map changes. Keep it transport-agnostic
// so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	CaseID    string    `json:"caseId"`
	UserID    string    `json:"userId"`
	Flow      string    `json:"flow"`
	Link      string    `json:"link,omitempty"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to,omitempty"`
	Action    string    `json:"action"`
	RequestID string    `json:"requestId,omitempty"`
	Device    string    `json:"device,omitempty"`
}
