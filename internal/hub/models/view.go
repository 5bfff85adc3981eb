package models

// Link is the view-model of one hub link.
type Link struct {
	Name          LinkName   `json:"name"`
	LinkTextKey   string     `json:"linkTextKey"`
	StatusTextKey string     `json:"statusTextKey"`
	Status        LinkStatus `json:"status"`
	Clickable     bool       `json:"clickable"`
	URL           string     `json:"url"`
	StatusColor   string     `json:"statusColor"`
}

// Section groups links under a heading. Computed per render, never persisted.
type Section struct {
	TitleKey string `json:"titleKey"`
	Links    []Link `json:"links"`
}

// HubView is everything a hub page needs to render.
type HubView struct {
	CaseID         string    `json:"caseId"`
	CaseReference  string    `json:"caseReference,omitempty"`
	ClaimantName   string    `json:"claimantName,omitempty"`
	RespondentName string    `json:"respondentName,omitempty"`
	Flow           Flow      `json:"flow"`
	LanguageParam  string    `json:"languageParam"`
	Sections       []Section `json:"sections"`
}
