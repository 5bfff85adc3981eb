package models

import dErrors "ethub/pkg/domain-errors"

// Flow identifies which task list a status map belongs to.
type Flow string

const (
	// FlowClaimantHub is the general response hub (hubLinksStatuses).
	FlowClaimantHub Flow = "hub"
	// FlowET3Hub is the respondent's ET3 response task list (et3HubLinksStatuses).
	FlowET3Hub Flow = "et3"
	// FlowCaseDetails is the respondent case details hub (et3CaseDetailsLinksStatuses).
	FlowCaseDetails Flow = "case-details"
)

// Flows lists every supported flow.
func Flows() []Flow {
	return []Flow{FlowClaimantHub, FlowET3Hub, FlowCaseDetails}
}

// ParseFlow validates a flow identifier from a route parameter.
func ParseFlow(s string) (Flow, error) {
	f := Flow(s)
	switch f {
	case FlowClaimantHub, FlowET3Hub, FlowCaseDetails:
		return f, nil
	case "":
		return "", dErrors.New(dErrors.CodeInvalidInput, "flow cannot be empty")
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown flow")
	}
}

// Links returns the enumerated, ordered link set of the flow.
// The claimant hub and case details flows share the same names but keep
// independent status tables.
func (f Flow) Links() []LinkName {
	switch f {
	case FlowClaimantHub, FlowCaseDetails:
		return []LinkName{
			LinkAboutYou,
			LinkEt1ClaimForm,
			LinkRespondentResponse,
			LinkHearingDetails,
			LinkRequestsAndApplications,
			LinkRespondentApplications,
			LinkContactTribunal,
			LinkTribunalOrders,
			LinkTribunalJudgements,
			LinkDocuments,
		}
	case FlowET3Hub:
		return []LinkName{
			LinkContactDetails,
			LinkEmployerDetails,
			LinkConciliationAndEmployeeDetails,
			LinkPayPensionBenefitDetails,
			LinkContestClaim,
			LinkEmployersContractClaim,
			LinkCheckYourAnswers,
		}
	default:
		return nil
	}
}

// Has reports whether name belongs to the flow's link set.
func (f Flow) Has(name LinkName) bool {
	for _, l := range f.Links() {
		if l == name {
			return true
		}
	}
	return false
}

func (f Flow) String() string {
	return string(f)
}
