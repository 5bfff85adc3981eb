package models

import dErrors "ethub/pkg/domain-errors"

// LinkName identifies one workflow stage shown as a link on a hub.
// Values are persisted on the case record and double as translation keys.
type LinkName string

// Claimant hub and case details links.
const (
	LinkAboutYou                LinkName = "aboutYou"
	LinkEt1ClaimForm            LinkName = "et1ClaimForm"
	LinkRespondentResponse      LinkName = "respondentResponse"
	LinkHearingDetails          LinkName = "hearingDetails"
	LinkRequestsAndApplications LinkName = "requestsAndApplications"
	LinkRespondentApplications  LinkName = "respondentApplications"
	LinkContactTribunal         LinkName = "contactTribunal"
	LinkTribunalOrders          LinkName = "tribunalOrders"
	LinkTribunalJudgements      LinkName = "tribunalJudgements"
	LinkDocuments               LinkName = "documents"
)

// ET3 response links.
const (
	LinkContactDetails                 LinkName = "contactDetails"
	LinkEmployerDetails                LinkName = "employerDetails"
	LinkConciliationAndEmployeeDetails LinkName = "conciliationAndEmployeeDetails"
	LinkPayPensionBenefitDetails       LinkName = "payPensionBenefitDetails"
	LinkContestClaim                   LinkName = "contestClaim"
	LinkEmployersContractClaim         LinkName = "employersContractClaim"
	LinkCheckYourAnswers               LinkName = "checkYourAnswers"
)

// ParseLinkName validates a link name against the flow's link set.
func ParseLinkName(flow Flow, s string) (LinkName, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "link name cannot be empty")
	}
	name := LinkName(s)
	if !flow.Has(name) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown link for flow")
	}
	return name, nil
}

func (n LinkName) String() string {
	return string(n)
}
