package links

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ethub/internal/hub/models"
)

func allLinkNames() []models.LinkName {
	names := append([]models.LinkName{""}, models.FlowClaimantHub.Links()...)
	return append(names, models.FlowET3Hub.Links()...)
}

func TestIsClickableNotAvailableYetNeverClickable(t *testing.T) {
	for _, name := range allLinkNames() {
		assert.False(t, IsClickable(models.StatusNotAvailableYet, name), "name %q", name)
	}
}

func TestIsClickableWaitingForTribunal(t *testing.T) {
	assert.True(t, IsClickable(models.StatusWaitingForTribunal, models.LinkRequestsAndApplications))
	assert.True(t, IsClickable(models.StatusWaitingForTribunal, models.LinkRespondentApplications))
	assert.False(t, IsClickable(models.StatusWaitingForTribunal, models.LinkDocuments))
	assert.False(t, IsClickable(models.StatusWaitingForTribunal, ""))
}

func TestIsClickableOtherStatuses(t *testing.T) {
	assert.True(t, IsClickable(models.StatusInProgress, ""))
	for _, st := range models.AllStatuses() {
		if st == models.StatusNotAvailableYet || st == models.StatusWaitingForTribunal {
			continue
		}
		assert.True(t, IsClickable(st, models.LinkHearingDetails), "status %s", st)
	}
}

func TestIsCaseDetailsClickable(t *testing.T) {
	for _, st := range models.AllStatuses() {
		assert.Equal(t, st != models.StatusNotAvailableYet, IsCaseDetailsClickable(st), "status %s", st)
	}
}

func TestIsClickableIn(t *testing.T) {
	assert.False(t, IsClickableIn(models.FlowClaimantHub, models.StatusWaitingForTribunal, models.LinkDocuments))
	assert.True(t, IsClickableIn(models.FlowCaseDetails, models.StatusWaitingForTribunal, models.LinkDocuments))
	assert.True(t, IsClickableIn(models.FlowET3Hub, models.StatusWaitingForTribunal, models.LinkContestClaim))
}
