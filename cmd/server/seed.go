package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	casemodels "ethub/internal/cases/models"
	casestore "ethub/internal/cases/store"
	jwttoken "ethub/internal/jwt_token"
)

const (
	demoCaseID = "1700000000000001"
	demoUserID = "demo-respondent"
)

// seedDemoCase stores a case with no hub statuses, so the first page view
// seeds them. The demo respondent's session token is only logged at Debug.
func seedDemoCase(ctx context.Context, cases casestore.Store, jwt *jwttoken.JWTService, log *slog.Logger) error {
	err := cases.Save(ctx, &casemodels.Case{
		ID:                 demoCaseID,
		EthosCaseReference: "6000001/2024",
		ClaimantFirstNames: "Jane",
		ClaimantLastName:   "Doe",
		RespondentName:     "Acme Widgets Ltd",
		UserIDs:            []string{demoUserID},
	})
	if err != nil {
		return err
	}

	token, err := jwt.GenerateSessionToken(demoUserID, uuid.NewString(), 24*time.Hour)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "demo case seeded", "case_id", demoCaseID, "hub", "/response-hub/"+demoCaseID)
	log.DebugContext(ctx, "demo session token", "user_id", demoUserID, "session_token", token)
	return nil
}
