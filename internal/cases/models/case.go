package models

import (
	"strings"
	"time"

	hubmodels "ethub/internal/hub/models"
)

// Case is the slice of the remote case record this service reads and writes.
// Unknown fields of the upstream record are not modelled.
type Case struct {
	ID                          string             `json:"id"`
	EthosCaseReference          string             `json:"ethosCaseReference,omitempty"`
	ClaimantFirstNames          string             `json:"claimantFirstNames,omitempty"`
	ClaimantLastName            string             `json:"claimantLastName,omitempty"`
	RespondentName              string             `json:"respondentName,omitempty"`
	UserIDs                     []string           `json:"userIds,omitempty"`
	HubLinksStatuses            hubmodels.Statuses `json:"hubLinksStatuses,omitempty"`
	ET3HubLinksStatuses         hubmodels.Statuses `json:"et3HubLinksStatuses,omitempty"`
	ET3CaseDetailsLinksStatuses hubmodels.Statuses `json:"et3CaseDetailsLinksStatuses,omitempty"`
	LastModified                time.Time          `json:"lastModified"`
}

// StatusesFor returns the status map of the flow, or nil when never seeded.
func (c *Case) StatusesFor(flow hubmodels.Flow) hubmodels.Statuses {
	switch flow {
	case hubmodels.FlowClaimantHub:
		return c.HubLinksStatuses
	case hubmodels.FlowET3Hub:
		return c.ET3HubLinksStatuses
	case hubmodels.FlowCaseDetails:
		return c.ET3CaseDetailsLinksStatuses
	default:
		return nil
	}
}

// SetStatusesFor replaces the status map of the flow.
func (c *Case) SetStatusesFor(flow hubmodels.Flow, s hubmodels.Statuses) {
	switch flow {
	case hubmodels.FlowClaimantHub:
		c.HubLinksStatuses = s
	case hubmodels.FlowET3Hub:
		c.ET3HubLinksStatuses = s
	case hubmodels.FlowCaseDetails:
		c.ET3CaseDetailsLinksStatuses = s
	}
}

// HasParticipant reports whether userID may view the case.
func (c *Case) HasParticipant(userID string) bool {
	for _, id := range c.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ClaimantName joins the claimant's names for display.
func (c *Case) ClaimantName() string {
	return strings.TrimSpace(c.ClaimantFirstNames + " " + c.ClaimantLastName)
}
