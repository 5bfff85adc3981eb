package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ethub/internal/audit"
	casestore "ethub/internal/cases/store"
	jwttoken "ethub/internal/jwt_token"
	"ethub/internal/platform/config"
)

func TestOpenStoresInMemory(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	stores, err := openStores(ctx, config.Config{CaseStore: config.CaseStoreMemory}, log)
	require.NoError(t, err)
	defer stores.Close()

	jwt := jwttoken.NewJWTService("k", "iss", "aud")
	require.NoError(t, seedDemoCase(ctx, stores.cases, jwt, log))

	c, err := stores.cases.FindByID(ctx, demoCaseID)
	require.NoError(t, err)
	assert.True(t, c.HasParticipant(demoUserID))
	assert.Nil(t, c.HubLinksStatuses, "statuses are seeded on first view")

	_, isStore := stores.auditSink().(audit.Store)
	assert.True(t, isStore, "without kafka events only go to the store")

	rr := httptest.NewRecorder()
	stores.healthHandler()(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestSeedDemoCaseKeepsTokenOutOfInfoLogs(t *testing.T) {
	ctx := context.Background()
	jwt := jwttoken.NewJWTService("k", "iss", "aud")

	var info bytes.Buffer
	require.NoError(t, seedDemoCase(ctx, casestore.NewInMemory(), jwt, slog.New(slog.NewTextHandler(&info, nil))))
	assert.Contains(t, info.String(), "demo case seeded")
	assert.NotContains(t, info.String(), "session_token")

	var debug bytes.Buffer
	debugLog := slog.New(slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}))
	require.NoError(t, seedDemoCase(ctx, casestore.NewInMemory(), jwt, debugLog))
	assert.Contains(t, debug.String(), "session_token=")
}
