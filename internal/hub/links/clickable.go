package links

import "ethub/internal/hub/models"

// IsClickable reports whether a claimant hub link renders as a link.
// Pass an empty name when the link is unknown; no exemption applies then.
func IsClickable(status models.LinkStatus, name models.LinkName) bool {
	if status == models.StatusNotAvailableYet {
		return false
	}
	if status == models.StatusWaitingForTribunal && !waitingForTribunalExempt(name) {
		return false
	}
	return true
}

// IsCaseDetailsClickable is the respondent variant: only notAvailableYet
// blocks the link.
func IsCaseDetailsClickable(status models.LinkStatus) bool {
	return status != models.StatusNotAvailableYet
}

// IsClickableIn applies the rule of the given flow.
func IsClickableIn(flow models.Flow, status models.LinkStatus, name models.LinkName) bool {
	if flow == models.FlowClaimantHub {
		return IsClickable(status, name)
	}
	return IsCaseDetailsClickable(status)
}

// Applications stay reachable while waiting for the tribunal so the user can
// follow up on them.
func waitingForTribunalExempt(name models.LinkName) bool {
	return name == models.LinkRequestsAndApplications || name == models.LinkRespondentApplications
}
