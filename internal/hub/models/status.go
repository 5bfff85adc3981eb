package models

import dErrors "ethub/pkg/domain-errors"

// LinkStatus is the current state of a workflow stage.
type LinkStatus string

const (
	StatusCompleted          LinkStatus = "completed"
	StatusSubmitted          LinkStatus = "submitted"
	StatusOptional           LinkStatus = "optional"
	StatusViewed             LinkStatus = "viewed"
	StatusNotViewedYet       LinkStatus = "notViewedYet"
	StatusNotAvailableYet    LinkStatus = "notAvailableYet"
	StatusWaitingForTribunal LinkStatus = "waitingForTheTribunal"
	StatusSubmittedAndViewed LinkStatus = "submittedAndViewed"
	StatusInProgress         LinkStatus = "inProgress"
	StatusStored             LinkStatus = "stored"
	StatusNotStartedYet      LinkStatus = "notStartedYet"
	StatusUpdated            LinkStatus = "updated"
	StatusReadyToView        LinkStatus = "readyToView"
)

// validStatuses is the single source of truth for known statuses.
var validStatuses = map[LinkStatus]bool{
	StatusCompleted:          true,
	StatusSubmitted:          true,
	StatusOptional:           true,
	StatusViewed:             true,
	StatusNotViewedYet:       true,
	StatusNotAvailableYet:    true,
	StatusWaitingForTribunal: true,
	StatusSubmittedAndViewed: true,
	StatusInProgress:         true,
	StatusStored:             true,
	StatusNotStartedYet:      true,
	StatusUpdated:            true,
	StatusReadyToView:        true,
}

// AllStatuses returns every known status.
func AllStatuses() []LinkStatus {
	return []LinkStatus{
		StatusCompleted,
		StatusSubmitted,
		StatusOptional,
		StatusViewed,
		StatusNotViewedYet,
		StatusNotAvailableYet,
		StatusWaitingForTribunal,
		StatusSubmittedAndViewed,
		StatusInProgress,
		StatusStored,
		StatusNotStartedYet,
		StatusUpdated,
		StatusReadyToView,
	}
}

// ParseLinkStatus constructs a LinkStatus from external input.
func ParseLinkStatus(s string) (LinkStatus, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "status cannot be empty")
	}
	st := LinkStatus(s)
	if !st.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown link status")
	}
	return st, nil
}

// IsValid checks if the status is one of the supported values.
func (s LinkStatus) IsValid() bool {
	return validStatuses[s]
}

func (s LinkStatus) String() string {
	return string(s)
}

// Statuses maps each link of a flow to its current status.
type Statuses map[LinkName]LinkStatus

// Clone returns an independent copy.
func (s Statuses) Clone() Statuses {
	if s == nil {
		return nil
	}
	out := make(Statuses, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
