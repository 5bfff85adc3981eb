package links

import "ethub/internal/hub/models"

// DefaultStatuses returns the seeded status map for a flow. Every link of the
// flow is present. Repeated calls return equal, independent maps.
func DefaultStatuses(flow models.Flow) models.Statuses {
	names := flow.Links()
	out := make(models.Statuses, len(names))
	for _, name := range names {
		out[name] = defaultStatus(flow, name)
	}
	return out
}

// StatusOf returns the stored status for name, or its seeded default when the
// case has no entry for it.
func StatusOf(flow models.Flow, statuses models.Statuses, name models.LinkName) models.LinkStatus {
	if st, ok := statuses[name]; ok && st != "" {
		return st
	}
	return defaultStatus(flow, name)
}

func defaultStatus(flow models.Flow, name models.LinkName) models.LinkStatus {
	switch flow {
	case models.FlowClaimantHub:
		return claimantHubDefault(name)
	case models.FlowET3Hub:
		return et3HubDefault(name)
	case models.FlowCaseDetails:
		return caseDetailsDefault(name)
	default:
		return models.StatusNotAvailableYet
	}
}

func claimantHubDefault(name models.LinkName) models.LinkStatus {
	switch name {
	case models.LinkEt1ClaimForm:
		return models.StatusNotViewedYet
	case models.LinkRespondentResponse, models.LinkAboutYou:
		return models.StatusNotStartedYet
	case models.LinkContactTribunal:
		return models.StatusOptional
	case models.LinkDocuments:
		return models.StatusReadyToView
	default:
		return models.StatusNotAvailableYet
	}
}

func et3HubDefault(name models.LinkName) models.LinkStatus {
	if name == models.LinkCheckYourAnswers {
		return models.StatusNotAvailableYet
	}
	return models.StatusNotStartedYet
}

// The respondent response only becomes available on the case details hub once
// the ET3 has been submitted, so it is not seeded like the claimant hub.
func caseDetailsDefault(name models.LinkName) models.LinkStatus {
	switch name {
	case models.LinkAboutYou:
		return models.StatusNotStartedYet
	case models.LinkEt1ClaimForm:
		return models.StatusNotViewedYet
	case models.LinkContactTribunal:
		return models.StatusOptional
	case models.LinkDocuments:
		return models.StatusReadyToView
	default:
		return models.StatusNotAvailableYet
	}
}
