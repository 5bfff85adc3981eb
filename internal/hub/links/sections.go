package links

import (
	"errors"
	"fmt"

	"ethub/internal/hub/models"
)

// ErrUnknownStatus signals a status with no entry in the colour table. It is a
// configuration error and is never replaced by a guessed default.
var ErrUnknownStatus = errors.New("unknown link status")

var statusColors = map[models.LinkStatus]string{
	models.StatusCompleted:          "--green",
	models.StatusSubmitted:          "--turquoise",
	models.StatusOptional:           "--blue",
	models.StatusViewed:             "--turquoise",
	models.StatusNotViewedYet:       "--red",
	models.StatusNotAvailableYet:    "--grey",
	models.StatusWaitingForTribunal: "--grey",
	models.StatusSubmittedAndViewed: "--turquoise",
	models.StatusInProgress:         "--yellow",
	models.StatusStored:             "--yellow",
	models.StatusNotStartedYet:      "--red",
	models.StatusUpdated:            "--yellow",
	models.StatusReadyToView:        "--blue",
}

// Section layouts, in on-screen order.
var (
	claimantHubSections = [][]models.LinkName{
		{models.LinkEt1ClaimForm},
		{models.LinkAboutYou, models.LinkRespondentResponse},
		{models.LinkHearingDetails},
		{models.LinkRequestsAndApplications, models.LinkRespondentApplications, models.LinkContactTribunal},
		{models.LinkTribunalOrders, models.LinkTribunalJudgements},
		{models.LinkDocuments},
	}

	caseDetailsSections = [][]models.LinkName{
		{models.LinkAboutYou},
		{models.LinkEt1ClaimForm, models.LinkRespondentResponse},
		{models.LinkHearingDetails},
		{models.LinkRequestsAndApplications, models.LinkRespondentApplications, models.LinkContactTribunal},
		{models.LinkTribunalOrders, models.LinkTribunalJudgements},
		{models.LinkDocuments},
	}

	et3HubSections = [][]models.LinkName{
		{models.LinkContactDetails, models.LinkEmployerDetails},
		{models.LinkConciliationAndEmployeeDetails, models.LinkPayPensionBenefitDetails},
		{models.LinkContestClaim, models.LinkEmployersContractClaim},
		{models.LinkCheckYourAnswers},
	}
)

// SectionLayout returns the ordered section table of a flow.
func SectionLayout(flow models.Flow) [][]models.LinkName {
	switch flow {
	case models.FlowClaimantHub:
		return claimantHubSections
	case models.FlowCaseDetails:
		return caseDetailsSections
	case models.FlowET3Hub:
		return et3HubSections
	default:
		return nil
	}
}

// StatusColor returns the tag colour modifier for status.
func StatusColor(status models.LinkStatus) (string, error) {
	color, ok := statusColors[status]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	return color, nil
}

// BuildSections assembles the renderable sections of a flow in table order.
// Links missing from statuses use their seeded default.
func BuildSections(flow models.Flow, statuses models.Statuses, languageParam string) ([]models.Section, error) {
	layout := SectionLayout(flow)
	urls := URLMap(flow, languageParam)

	sections := make([]models.Section, 0, len(layout))
	for i, names := range layout {
		section := models.Section{
			TitleKey: fmt.Sprintf("%s.section%d", flow, i+1),
			Links:    make([]models.Link, 0, len(names)),
		}
		for _, name := range names {
			link, err := buildLink(flow, statuses, name, urls[name])
			if err != nil {
				return nil, err
			}
			section.Links = append(section.Links, link)
		}
		sections = append(sections, section)
	}
	return sections, nil
}

// BuildLink assembles the view-model of a single link.
func BuildLink(flow models.Flow, statuses models.Statuses, name models.LinkName, languageParam string) (models.Link, error) {
	return buildLink(flow, statuses, name, URLMap(flow, languageParam)[name])
}

func buildLink(flow models.Flow, statuses models.Statuses, name models.LinkName, url string) (models.Link, error) {
	status := StatusOf(flow, statuses, name)
	color, err := StatusColor(status)
	if err != nil {
		return models.Link{}, fmt.Errorf("link %s: %w", name, err)
	}
	return models.Link{
		Name:          name,
		LinkTextKey:   "links." + string(name),
		StatusTextKey: "statuses." + string(status),
		Status:        status,
		Clickable:     IsClickableIn(flow, status, name),
		URL:           url,
		StatusColor:   color,
	}, nil
}
