package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ruebydash/appctx"
	"ruebydash/core"
	"ruebydash/models"
	"ruebydash/services"
)

const (
	testGuildID = "904467951327887411"
	testRoleID  = "804467951327887433"
)

type handlerMocks struct {
	guildSettings *services.MockGuildSettingsService
	antiNuke      *services.MockAntiNukeService
	joinGate      *services.MockJoinGateService
	verification  *services.MockVerificationService
	heat          *services.MockHeatService
	logsRouting   *services.MockLogsRoutingService
	permits       *services.MockPermitsService
	panicState    *services.MockPanicService
	discordGuild  *services.MockDiscordGuildService
}

func setupHandlerTest() (*DashboardHTTPHandler, *handlerMocks) {
	mocks := &handlerMocks{
		guildSettings: new(services.MockGuildSettingsService),
		antiNuke:      new(services.MockAntiNukeService),
		joinGate:      new(services.MockJoinGateService),
		verification:  new(services.MockVerificationService),
		heat:          new(services.MockHeatService),
		logsRouting:   new(services.MockLogsRoutingService),
		permits:       new(services.MockPermitsService),
		panicState:    new(services.MockPanicService),
		discordGuild:  new(services.MockDiscordGuildService),
	}
	handler := NewDashboardHTTPHandler(
		mocks.guildSettings,
		mocks.antiNuke,
		mocks.joinGate,
		mocks.verification,
		mocks.heat,
		mocks.logsRouting,
		mocks.permits,
		mocks.panicState,
		mocks.discordGuild,
		nil,
	)
	return handler, mocks
}

// authedRequest builds a request carrying an authenticated user and the
// guildId path variable, as the middleware and router would
func authedRequest(method, target string, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		if method == http.MethodPut {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	user := &models.User{ID: "u_01ARZ3NDEKTSV4RRFFQ69G5FAV", AuthProvider: "test"}
	req = req.WithContext(appctx.SetUser(context.Background(), user))
	return mux.SetURLVars(req, map[string]string{"guildId": testGuildID})
}

func TestHandleGetGuildSettings_Unauthenticated(t *testing.T) {
	handler, _ := setupHandlerTest()
	req := httptest.NewRequest(http.MethodGet, "/guilds/"+testGuildID+"/settings", nil)
	req = mux.SetURLVars(req, map[string]string{"guildId": testGuildID})
	rec := httptest.NewRecorder()

	handler.HandleGetGuildSettings(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleGetGuildSettings_ReturnsDefaultsWhenUnconfigured(t *testing.T) {
	handler, mocks := setupHandlerTest()
	mocks.guildSettings.On("GetGuildSettings", mock.Anything, testGuildID).
		Return(mo.None[*models.GuildSettings](), nil)

	rec := httptest.NewRecorder()
	handler.HandleGetGuildSettings(rec, authedRequest(http.MethodGet, "/guilds/"+testGuildID+"/settings", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var settings models.GuildSettings
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&settings))
	assert.Equal(t, testGuildID, settings.GuildID)
	assert.Equal(t, models.DefaultPrefix, settings.Prefix)
	assert.Equal(t, models.DefaultTimezone, settings.Timezone)
}

func TestHandleGetGuildSettings_InvalidGuildID(t *testing.T) {
	handler, _ := setupHandlerTest()
	req := httptest.NewRequest(http.MethodGet, "/guilds/nope/settings", nil)
	user := &models.User{ID: "u_01ARZ3NDEKTSV4RRFFQ69G5FAV"}
	req = req.WithContext(appctx.SetUser(context.Background(), user))
	req = mux.SetURLVars(req, map[string]string{"guildId": "nope"})
	rec := httptest.NewRecorder()

	handler.HandleGetGuildSettings(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePutAntiNuke_NormalizesBeforeSave(t *testing.T) {
	handler, mocks := setupHandlerTest()
	mocks.antiNuke.On("UpsertAntiNukeLimits", mock.Anything, mock.MatchedBy(func(l *models.AntiNukeLimits) bool {
		// malformed minute_ban falls back to the default, valid hour_ban sticks
		return l.GuildID == testGuildID && l.MinuteBan == 5 && l.HourBan == 12
	})).Return(&models.AntiNukeLimits{GuildID: testGuildID}, nil)

	form := url.Values{}
	form.Set("minute_ban", "abc")
	form.Set("hour_ban", "12")
	rec := httptest.NewRecorder()
	handler.HandlePutAntiNuke(rec, authedRequest(http.MethodPut, "/guilds/"+testGuildID+"/antinuke", form.Encode()))

	require.Equal(t, http.StatusOK, rec.Code)
	mocks.antiNuke.AssertExpectations(t)
}

func TestHandlePutHeat_RejectsInvalidThresholdsWhenEnabled(t *testing.T) {
	handler, mocks := setupHandlerTest()

	form := url.Values{}
	form.Set("enabled", "on")
	form.Set("t_T1", "50")
	form.Set("t_T2", "10")
	rec := httptest.NewRecorder()
	handler.HandlePutHeat(rec, authedRequest(http.MethodPut, "/guilds/"+testGuildID+"/heat", form.Encode()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mocks.heat.AssertNotCalled(t, "UpsertHeatConfig", mock.Anything, mock.Anything)
}

func TestHandlePutHeat_AcceptsAnyOrderWhenDisabled(t *testing.T) {
	handler, mocks := setupHandlerTest()
	mocks.heat.On("UpsertHeatConfig", mock.Anything, mock.MatchedBy(func(c *models.HeatConfig) bool {
		return !c.Enabled && c.ThresholdT1 == 50 && c.ThresholdT2 == 10
	})).Return(&models.HeatConfig{GuildID: testGuildID}, nil)

	form := url.Values{}
	form.Set("t_T1", "50")
	form.Set("t_T2", "10")
	rec := httptest.NewRecorder()
	handler.HandlePutHeat(rec, authedRequest(http.MethodPut, "/guilds/"+testGuildID+"/heat", form.Encode()))

	require.Equal(t, http.StatusOK, rec.Code)
	mocks.heat.AssertExpectations(t)
}

func TestHandleAddPermit_InvalidLevel(t *testing.T) {
	handler, mocks := setupHandlerTest()

	body := `{"role_id":"` + testRoleID + `","level":"L9"}`
	rec := httptest.NewRecorder()
	handler.HandleAddPermit(rec, authedRequest(http.MethodPost, "/guilds/"+testGuildID+"/permits", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mocks.permits.AssertNotCalled(t, "AddPermit", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleDeletePermit_NotFound(t *testing.T) {
	handler, mocks := setupHandlerTest()
	mocks.permits.On("RemovePermit", mock.Anything, testGuildID, "prm_01ARZ3NDEKTSV4RRFFQ69G5FAV").
		Return(false, nil)

	req := authedRequest(http.MethodDelete, "/guilds/"+testGuildID+"/permits/prm_01ARZ3NDEKTSV4RRFFQ69G5FAV", "")
	req = mux.SetURLVars(req, map[string]string{
		"guildId":  testGuildID,
		"permitId": "prm_01ARZ3NDEKTSV4RRFFQ69G5FAV",
	})
	rec := httptest.NewRecorder()
	handler.HandleDeletePermit(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	mocks.permits.AssertExpectations(t)
}

func TestHandleGetPanicState_DefaultsToInactive(t *testing.T) {
	handler, mocks := setupHandlerTest()
	mocks.panicState.On("GetPanicState", mock.Anything, testGuildID).
		Return(mo.None[*models.PanicState](), nil)

	rec := httptest.NewRecorder()
	handler.HandleGetPanicState(rec, authedRequest(http.MethodGet, "/guilds/"+testGuildID+"/panic", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var state models.PanicState
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&state))
	assert.False(t, state.Active)
}

func TestHandleListChannels_DiscordFailure(t *testing.T) {
	handler, mocks := setupHandlerTest()
	mocks.discordGuild.On("ListTextChannels", mock.Anything, testGuildID).
		Return(nil, assert.AnError)

	rec := httptest.NewRecorder()
	handler.HandleListChannels(rec, authedRequest(http.MethodGet, "/guilds/"+testGuildID+"/channels", ""))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleSendVerificationPanel_NotConfigured(t *testing.T) {
	handler, mocks := setupHandlerTest()
	mocks.verification.On("SendVerificationPanel", mock.Anything, testGuildID).
		Return(fmt.Errorf("verification is not configured for guild %s: %w", testGuildID, core.ErrNotFound))

	rec := httptest.NewRecorder()
	handler.HandleSendVerificationPanel(rec, authedRequest(http.MethodPost, "/guilds/"+testGuildID+"/verification/panel", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSetupLockdown_DiscordFailure(t *testing.T) {
	handler, mocks := setupHandlerTest()
	mocks.verification.On("SetupLockdown", mock.Anything, testGuildID).
		Return(assert.AnError)

	rec := httptest.NewRecorder()
	handler.HandleSetupLockdown(rec, authedRequest(http.MethodPost, "/guilds/"+testGuildID+"/verification/lockdown", ""))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
