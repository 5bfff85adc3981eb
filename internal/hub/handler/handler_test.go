package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	casemodels "ethub/internal/cases/models"
	casestore "ethub/internal/cases/store"
	"ethub/internal/features"
	"ethub/internal/hub/handler/mocks"
	"ethub/internal/hub/links"
	"ethub/internal/hub/models"
	hubservice "ethub/internal/hub/service"
	"ethub/internal/i18n"
	"ethub/internal/platform/middleware"
	dErrors "ethub/pkg/domain-errors"
	"ethub/pkg/testutil"
)

const (
	testUser  = "user-1"
	testCase  = "1700000000000001"
	testToken = "valid-token"
)

type stubValidator struct{}

func (stubValidator) ValidateToken(token string) (*middleware.JWTClaims, error) {
	if token != testToken {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	return &middleware.JWTClaims{UserID: testUser, SessionID: "sess-1"}, nil
}

//go:generate mockgen -source=handler.go -destination=mocks/hub-mocks.go -package=mocks Service
type HubHandlerSuite struct {
	suite.Suite
	router  *chi.Mux
	service *mocks.MockService
}

func TestHubHandlerSuite(t *testing.T) {
	suite.Run(t, new(HubHandlerSuite))
}

func (s *HubHandlerSuite) SetupTest() {
	s.router, s.service = newTestRouter(s.T(), features.StaticFlags{Welsh: true})
}

func newTestRouter(t *testing.T, flags features.Flags) (*chi.Mux, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	bundle, err := i18n.Load(logger)
	require.NoError(t, err)

	h := New(mockService, bundle, flags, logger, nil, stubValidator{})
	r := chi.NewRouter()
	h.Register(r)
	return r, mockService
}

func authed(req *http.Request) *http.Request {
	return testutil.WithBearer(req, testToken)
}

func sampleView(t *testing.T, flow models.Flow, langParam string) *models.HubView {
	t.Helper()
	sections, err := links.BuildSections(flow, links.DefaultStatuses(flow), langParam)
	require.NoError(t, err)
	return &models.HubView{
		CaseID:         testCase,
		CaseReference:  "6000001/2024",
		ClaimantName:   "Jane Doe",
		RespondentName: "Acme Ltd",
		Flow:           flow,
		LanguageParam:  langParam,
		Sections:       sections,
	}
}

func (s *HubHandlerSuite) TestHubPage() {
	s.Run("renders the claimant hub in English", func() {
		s.service.EXPECT().
			Hub(gomock.Any(), testUser, testCase, models.FlowClaimantHub, "/response-hub/"+testCase).
			Return(sampleView(s.T(), models.FlowClaimantHub, "?lng=en"), nil)

		rr := testutil.DoRequest(s.router, authed(testutil.NewRequest(s.T(), http.MethodGet, "/response-hub/"+testCase)))

		testutil.AssertStatusOK(s.T(), rr)
		testutil.AssertHTML(s.T(), rr,
			`<html lang="en">`,
			"Your claim",
			"6000001/2024",
			`href="/hub/`+testCase+`/links/hub/et1ClaimForm?lng=en"`,
			`data-colour="--red"`,
			"Cymraeg",
		)
		assert.NotContains(s.T(), rr.Body.String(), `/links/hub/hearingDetails`, "not available yet links are plain text")
	})

	s.Run("language cookie selects the page language", func() {
		s.service.EXPECT().
			Hub(gomock.Any(), testUser, testCase, models.FlowCaseDetails, "/case-details/"+testCase).
			Return(sampleView(s.T(), models.FlowCaseDetails, "?lng=en"), nil)

		req := testutil.WithLanguageCookie(testutil.NewRequest(s.T(), http.MethodGet, "/case-details/"+testCase), "cy")
		rr := testutil.DoRequest(s.router, authed(req))

		testutil.AssertStatusOK(s.T(), rr)
		testutil.AssertHTML(s.T(), rr, `<html lang="cy">`)
	})

	s.Run("renders Welsh when asked", func() {
		s.service.EXPECT().
			Hub(gomock.Any(), testUser, testCase, models.FlowET3Hub, "/case-details/"+testCase+"/et3-response?lng=cy").
			Return(sampleView(s.T(), models.FlowET3Hub, "?lng=cy"), nil)

		rr := testutil.DoRequest(s.router, authed(testutil.NewRequest(s.T(), http.MethodGet, "/case-details/"+testCase+"/et3-response?lng=cy")))

		testutil.AssertStatusOK(s.T(), rr)
		assert.Contains(s.T(), rr.Body.String(), `<html lang="cy">`)
		assert.Contains(s.T(), rr.Body.String(), `/links/et3/contactDetails?lng=cy`)
	})

	s.Run("not found renders the error page", func() {
		s.service.EXPECT().
			Hub(gomock.Any(), testUser, "missing", models.FlowCaseDetails, gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "case not found"))

		rr := testutil.DoRequest(s.router, authed(testutil.NewRequest(s.T(), http.MethodGet, "/case-details/missing")))

		testutil.AssertStatus(s.T(), rr, http.StatusNotFound)
		assert.Contains(s.T(), rr.Body.String(), "Page not found")
	})

	s.Run("unauthenticated request is rejected", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/response-hub/"+testCase))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, "unauthorized")
	})
}

func TestHubPageWithoutWelsh(t *testing.T) {
	router, service := newTestRouter(t, features.StaticFlags{Welsh: false})
	service.EXPECT().
		Hub(gomock.Any(), testUser, testCase, models.FlowClaimantHub, gomock.Any()).
		Return(sampleView(t, models.FlowClaimantHub, "?lng=en"), nil)

	rr := testutil.DoRequest(router, authed(testutil.NewRequest(t, http.MethodGet, "/response-hub/"+testCase+"?lng=cy")))

	testutil.AssertStatusOK(t, rr)
	assert.Contains(t, rr.Body.String(), `<html lang="en">`)
	assert.NotContains(t, rr.Body.String(), "Cymraeg")
}

func (s *HubHandlerSuite) TestVisit() {
	s.Run("redirects to the link destination", func() {
		s.service.EXPECT().
			RecordVisit(gomock.Any(), testUser, testCase, models.FlowClaimantHub, models.LinkEt1ClaimForm, gomock.Any()).
			Return(models.Link{Name: models.LinkEt1ClaimForm, Clickable: true, URL: "/claimant-et1-form?lng=cy"}, nil)

		rr := testutil.DoRequest(s.router, authed(testutil.NewRequest(s.T(), http.MethodGet, "/hub/"+testCase+"/links/hub/et1ClaimForm?lng=cy")))

		testutil.AssertRedirect(s.T(), rr, "/claimant-et1-form?lng=cy")
	})

	s.Run("placeholder destination returns to the hub", func() {
		s.service.EXPECT().
			RecordVisit(gomock.Any(), testUser, testCase, models.FlowClaimantHub, models.LinkAboutYou, gomock.Any()).
			Return(models.Link{Name: models.LinkAboutYou, Clickable: true, URL: "#?lng=en"}, nil)

		rr := testutil.DoRequest(s.router, authed(testutil.NewRequest(s.T(), http.MethodGet, "/hub/"+testCase+"/links/hub/aboutYou")))

		testutil.AssertRedirect(s.T(), rr, "/response-hub/"+testCase+"?lng=en")
	})

	s.Run("return to the hub keeps the language the service resolved", func() {
		s.service.EXPECT().
			RecordVisit(gomock.Any(), testUser, testCase, models.FlowClaimantHub, models.LinkHearingDetails, gomock.Any()).
			Return(models.Link{Name: models.LinkHearingDetails, Clickable: false, URL: "#?lng=en"}, nil)

		rr := testutil.DoRequest(s.router, authed(testutil.NewRequest(s.T(), http.MethodGet, "/hub/"+testCase+"/links/hub/hearingDetails?lng=cy")))

		testutil.AssertRedirect(s.T(), rr, "/response-hub/"+testCase+"?lng=en")
	})

	s.Run("link from another flow is not found", func() {
		rr := testutil.DoRequest(s.router, authed(testutil.NewRequest(s.T(), http.MethodGet, "/hub/"+testCase+"/links/hub/contestClaim")))
		testutil.AssertStatus(s.T(), rr, http.StatusNotFound)
	})
}

func (s *HubHandlerSuite) TestGetHubAPI() {
	s.service.EXPECT().
		Hub(gomock.Any(), testUser, testCase, models.FlowET3Hub, gomock.Any()).
		Return(sampleView(s.T(), models.FlowET3Hub, "?lng=en"), nil)

	rr := testutil.DoRequest(s.router, authed(testutil.NewRequest(s.T(), http.MethodGet, "/api/cases/"+testCase+"/hub/et3")))

	testutil.AssertStatusOK(s.T(), rr)
	view := testutil.UnmarshalResponse[models.HubView](s.T(), rr)
	s.Equal(models.FlowET3Hub, view.Flow)
	s.Require().Len(view.Sections, 4)
	s.Equal(models.LinkCheckYourAnswers, view.Sections[3].Links[0].Name)
	s.False(view.Sections[3].Links[0].Clickable)
}

func (s *HubHandlerSuite) TestGetHubAPIUnknownFlow() {
	rr := testutil.DoRequest(s.router, authed(testutil.NewRequest(s.T(), http.MethodGet, "/api/cases/"+testCase+"/hub/claims")))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "invalid_input")
}

func (s *HubHandlerSuite) TestUpdateStatusAPI() {
	path := "/api/cases/" + testCase + "/hub/hub/links/requestsAndApplications"

	testutil.Given(s.T(), "a valid status", func(t *testing.T) {
		s.service.EXPECT().
			UpdateLinkStatus(gomock.Any(), testUser, testCase, models.FlowClaimantHub,
				models.LinkRequestsAndApplications, models.StatusWaitingForTribunal).
			Return(nil)

		rr := testutil.DoRequest(s.router, authed(testutil.NewJSONRequest(t, http.MethodPut, path,
			UpdateStatusRequest{Status: "waitingForTheTribunal"})))
		testutil.AssertStatus(t, rr, http.StatusNoContent)
	})

	testutil.Given(s.T(), "an unknown status", func(t *testing.T) {
		rr := testutil.DoRequest(s.router, authed(testutil.NewJSONRequest(t, http.MethodPut, path,
			UpdateStatusRequest{Status: "finished"})))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "invalid_input")
	})

	testutil.Given(s.T(), "a malformed body", func(t *testing.T) {
		rr := testutil.DoRequest(s.router, authed(testutil.NewRequestWithBody(t, http.MethodPut, path, "{")))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})

	testutil.Given(s.T(), "a case the user cannot access", func(t *testing.T) {
		s.service.EXPECT().
			UpdateLinkStatus(gomock.Any(), testUser, testCase, models.FlowClaimantHub,
				models.LinkRequestsAndApplications, models.StatusViewed).
			Return(dErrors.New(dErrors.CodeForbidden, "case not accessible"))

		rr := testutil.DoRequest(s.router, authed(testutil.NewJSONRequest(t, http.MethodPut, path,
			UpdateStatusRequest{Status: "viewed"})))
		testutil.AssertStatusAndError(t, rr, http.StatusForbidden, "forbidden")
	})
}

func (s *HubHandlerSuite) TestResetAPI() {
	s.service.EXPECT().ResetStatuses(gomock.Any(), testUser, testCase, models.FlowCaseDetails).Return(nil)

	rr := testutil.DoRequest(s.router, authed(testutil.NewRequest(s.T(), http.MethodPost, "/api/cases/"+testCase+"/hub/case-details/reset")))
	testutil.AssertStatus(s.T(), rr, http.StatusNoContent)
}

func (s *HubHandlerSuite) TestInternalErrorsHideDetail() {
	s.service.EXPECT().
		Hub(gomock.Any(), testUser, testCase, models.FlowClaimantHub, gomock.Any()).
		Return(nil, dErrors.Wrap(assert.AnError, dErrors.CodeInternal, "failed to build hub"))

	rr := testutil.DoRequest(s.router, authed(testutil.NewRequest(s.T(), http.MethodGet, "/api/cases/"+testCase+"/hub/hub")))

	testutil.AssertStatus(s.T(), rr, http.StatusInternalServerError)
	errResp := testutil.UnmarshalErrorResponse(s.T(), rr)
	s.Equal("internal_error", errResp["error"])
	s.NotContains(errResp["error_description"], assert.AnError.Error())
}

func TestPagePath(t *testing.T) {
	assert.Equal(t, "/response-hub/1", PagePath(models.FlowClaimantHub, "1"))
	assert.Equal(t, "/case-details/1", PagePath(models.FlowCaseDetails, "1"))
	assert.Equal(t, "/case-details/1/et3-response", PagePath(models.FlowET3Hub, "1"))
}

func TestVisitWithoutWelshReturnsToEnglishHub(t *testing.T) {
	flags := features.StaticFlags{Welsh: false}
	cases := casestore.NewInMemory()
	require.NoError(t, cases.Save(context.Background(), &casemodels.Case{ID: testCase, UserIDs: []string{testUser}}))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bundle, err := i18n.Load(logger)
	require.NoError(t, err)
	svc := hubservice.New(cases, hubservice.WithFlags(flags), hubservice.WithLogger(logger))

	r := chi.NewRouter()
	New(svc, bundle, flags, logger, nil, stubValidator{}).Register(r)

	testutil.Given(t, "a placeholder link visited with lng=cy", func(t *testing.T) {
		rr := testutil.DoRequest(r, authed(testutil.NewRequest(t, http.MethodGet, "/hub/"+testCase+"/links/hub/aboutYou?lng=cy")))
		testutil.AssertRedirect(t, rr, "/response-hub/"+testCase+"?lng=en")
	})
}
