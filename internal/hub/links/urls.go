package links

import (
	"strings"

	"ethub/internal/hub/models"
)

const (
	welshParam   = "?lng=cy"
	englishParam = "?lng=en"

	// NotImplementedURL is the placeholder destination for pages that do not exist yet.
	NotImplementedURL = "#"
)

// LanguageParam returns the language query suffix for links built from url.
// Welsh is matched first; anything else, including malformed input, is English.
func LanguageParam(url string) string {
	if strings.Contains(url, "lng=cy") {
		return welshParam
	}
	return englishParam
}

var claimantHubPaths = map[models.LinkName]string{
	models.LinkAboutYou:                NotImplementedURL,
	models.LinkEt1ClaimForm:            "/claimant-et1-form",
	models.LinkRespondentResponse:      "/respondent-response-landing",
	models.LinkHearingDetails:          NotImplementedURL,
	models.LinkRequestsAndApplications: NotImplementedURL,
	models.LinkRespondentApplications:  NotImplementedURL,
	models.LinkContactTribunal:         NotImplementedURL,
	models.LinkTribunalOrders:          NotImplementedURL,
	models.LinkTribunalJudgements:      NotImplementedURL,
	models.LinkDocuments:               "/case-documents",
}

var caseDetailsPaths = map[models.LinkName]string{
	models.LinkAboutYou:                "/respondent-contact-details",
	models.LinkEt1ClaimForm:            "/claimant-et1-form",
	models.LinkRespondentResponse:      NotImplementedURL,
	models.LinkHearingDetails:          NotImplementedURL,
	models.LinkRequestsAndApplications: NotImplementedURL,
	models.LinkRespondentApplications:  NotImplementedURL,
	models.LinkContactTribunal:         "/contact-tribunal",
	models.LinkTribunalOrders:          NotImplementedURL,
	models.LinkTribunalJudgements:      NotImplementedURL,
	models.LinkDocuments:               "/case-documents",
}

var et3HubPaths = map[models.LinkName]string{
	models.LinkContactDetails:                 "/respondent-name",
	models.LinkEmployerDetails:                "/hearing-preferences",
	models.LinkConciliationAndEmployeeDetails: "/acas-early-conciliation-certificate",
	models.LinkPayPensionBenefitDetails:       "/claimant-pay-details",
	models.LinkContestClaim:                   NotImplementedURL,
	models.LinkEmployersContractClaim:         NotImplementedURL,
	models.LinkCheckYourAnswers:               "/check-your-answers-et3",
}

func pathsFor(flow models.Flow) map[models.LinkName]string {
	switch flow {
	case models.FlowClaimantHub:
		return claimantHubPaths
	case models.FlowCaseDetails:
		return caseDetailsPaths
	case models.FlowET3Hub:
		return et3HubPaths
	default:
		return nil
	}
}

// URLMap returns every link of the flow mapped to its path with languageParam
// appended. Unimplemented destinations keep the "#" placeholder.
func URLMap(flow models.Flow, languageParam string) map[models.LinkName]string {
	paths := pathsFor(flow)
	out := make(map[models.LinkName]string, len(paths))
	for name, path := range paths {
		out[name] = path + languageParam
	}
	return out
}

// IsPlaceholder reports whether url points at an unimplemented destination.
func IsPlaceholder(url string) bool {
	return strings.HasPrefix(url, NotImplementedURL)
}
