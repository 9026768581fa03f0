package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"ruebydash/appctx"
	"ruebydash/core"
	"ruebydash/forms"
	"ruebydash/middleware"
	"ruebydash/models"
	"ruebydash/services"
	"ruebydash/usecases/setup"
)

// DashboardHTTPHandler serves the guild configuration API consumed by the
// dashboard frontend. PUT bodies arrive form-encoded, exactly as the
// dashboard forms submit them, and go through the forms normalizers; GET
// returns the stored record, or the defaults record when the guild has not
// configured that entity yet.
type DashboardHTTPHandler struct {
	guildSettingsService services.GuildSettingsService
	antiNukeService      services.AntiNukeService
	joinGateService      services.JoinGateService
	verificationService  services.VerificationService
	heatService          services.HeatService
	logsRoutingService   services.LogsRoutingService
	permitsService       services.PermitsService
	panicService         services.PanicService
	discordGuildService  services.DiscordGuildService
	setupUseCase         *setup.SetupUseCase
}

func NewDashboardHTTPHandler(
	guildSettingsService services.GuildSettingsService,
	antiNukeService services.AntiNukeService,
	joinGateService services.JoinGateService,
	verificationService services.VerificationService,
	heatService services.HeatService,
	logsRoutingService services.LogsRoutingService,
	permitsService services.PermitsService,
	panicService services.PanicService,
	discordGuildService services.DiscordGuildService,
	setupUseCase *setup.SetupUseCase,
) *DashboardHTTPHandler {
	return &DashboardHTTPHandler{
		guildSettingsService: guildSettingsService,
		antiNukeService:      antiNukeService,
		joinGateService:      joinGateService,
		verificationService:  verificationService,
		heatService:          heatService,
		logsRoutingService:   logsRoutingService,
		permitsService:       permitsService,
		panicService:         panicService,
		discordGuildService:  discordGuildService,
		setupUseCase:         setupUseCase,
	}
}

type PermitRequest struct {
	RoleID string `json:"role_id"`
	Level  string `json:"level"`
}

// requireGuild extracts and validates the guild ID path variable and checks
// that the auth middleware has put a user on the context. Everything the
// router serves is behind authentication, so a missing user is a 401.
func (h *DashboardHTTPHandler) requireGuild(w http.ResponseWriter, r *http.Request) (string, bool) {
	if _, ok := appctx.GetUser(r.Context()); !ok {
		log.Printf("❌ User not found in context")
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return "", false
	}

	guildID := mux.Vars(r)["guildId"]
	if !core.IsValidSnowflake(guildID) {
		log.Printf("❌ Invalid guild ID: %s", guildID)
		http.Error(w, "invalid guild id", http.StatusBadRequest)
		return "", false
	}
	return guildID, true
}

func parseFormBody(w http.ResponseWriter, r *http.Request) (url.Values, bool) {
	if err := r.ParseForm(); err != nil {
		log.Printf("❌ Failed to parse form body: %v", err)
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return nil, false
	}
	return r.PostForm, true
}

// --- Guild settings ---

func (h *DashboardHTTPHandler) HandleGetGuildSettings(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}

	maybeSettings, err := h.guildSettingsService.GetGuildSettings(r.Context(), guildID)
	if err != nil {
		log.Printf("❌ Failed to get guild settings: %v", err)
		http.Error(w, "failed to get guild settings", http.StatusInternalServerError)
		return
	}

	settings := maybeSettings.OrElse(forms.NormalizeGuildSettings(guildID, url.Values{}))
	h.writeJSONResponse(w, http.StatusOK, settings)
}

func (h *DashboardHTTPHandler) HandlePutGuildSettings(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}
	values, ok := parseFormBody(w, r)
	if !ok {
		return
	}

	saved, err := h.guildSettingsService.UpsertGuildSettings(r.Context(), forms.NormalizeGuildSettings(guildID, values))
	if err != nil {
		log.Printf("❌ Failed to save guild settings: %v", err)
		http.Error(w, "failed to save guild settings", http.StatusInternalServerError)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, saved)
}

// --- Anti-nuke ---

func (h *DashboardHTTPHandler) HandleGetAntiNuke(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}

	maybeLimits, err := h.antiNukeService.GetAntiNukeLimits(r.Context(), guildID)
	if err != nil {
		log.Printf("❌ Failed to get anti-nuke limits: %v", err)
		http.Error(w, "failed to get anti-nuke limits", http.StatusInternalServerError)
		return
	}

	limits := maybeLimits.OrElse(forms.NormalizeAntiNuke(guildID, url.Values{}))
	h.writeJSONResponse(w, http.StatusOK, limits)
}

func (h *DashboardHTTPHandler) HandlePutAntiNuke(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}
	values, ok := parseFormBody(w, r)
	if !ok {
		return
	}

	saved, err := h.antiNukeService.UpsertAntiNukeLimits(r.Context(), forms.NormalizeAntiNuke(guildID, values))
	if err != nil {
		log.Printf("❌ Failed to save anti-nuke limits: %v", err)
		http.Error(w, "failed to save anti-nuke limits", http.StatusInternalServerError)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, saved)
}

// --- Join gate ---

func (h *DashboardHTTPHandler) HandleGetJoinGate(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}

	maybeGate, err := h.joinGateService.GetJoinGate(r.Context(), guildID)
	if err != nil {
		log.Printf("❌ Failed to get join gate: %v", err)
		http.Error(w, "failed to get join gate", http.StatusInternalServerError)
		return
	}

	gate := maybeGate.OrElse(forms.NormalizeJoinGate(guildID, url.Values{}))
	h.writeJSONResponse(w, http.StatusOK, gate)
}

func (h *DashboardHTTPHandler) HandlePutJoinGate(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}
	values, ok := parseFormBody(w, r)
	if !ok {
		return
	}

	saved, err := h.joinGateService.UpsertJoinGate(r.Context(), forms.NormalizeJoinGate(guildID, values))
	if err != nil {
		log.Printf("❌ Failed to save join gate: %v", err)
		http.Error(w, "failed to save join gate", http.StatusInternalServerError)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, saved)
}

// --- Verification ---

func (h *DashboardHTTPHandler) HandleGetVerification(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}

	maybeSettings, err := h.verificationService.GetVerificationSettings(r.Context(), guildID)
	if err != nil {
		log.Printf("❌ Failed to get verification settings: %v", err)
		http.Error(w, "failed to get verification settings", http.StatusInternalServerError)
		return
	}

	settings := maybeSettings.OrElse(forms.NormalizeVerification(guildID, url.Values{}))
	h.writeJSONResponse(w, http.StatusOK, settings)
}

func (h *DashboardHTTPHandler) HandlePutVerification(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}
	values, ok := parseFormBody(w, r)
	if !ok {
		return
	}

	saved, err := h.verificationService.UpsertVerificationSettings(
		r.Context(),
		forms.NormalizeVerification(guildID, values),
	)
	if err != nil {
		log.Printf("❌ Failed to save verification settings: %v", err)
		http.Error(w, "failed to save verification settings", http.StatusInternalServerError)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, saved)
}

func (h *DashboardHTTPHandler) HandleSendVerificationPanel(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}

	if err := h.verificationService.SendVerificationPanel(r.Context(), guildID); err != nil {
		log.Printf("❌ Failed to send verification panel: %v", err)
		if core.IsNotFoundError(err) {
			http.Error(w, "verification is not configured", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to send verification panel", http.StatusBadGateway)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]string{"status": "panel sent"})
}

func (h *DashboardHTTPHandler) HandleSetupLockdown(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}

	if err := h.verificationService.SetupLockdown(r.Context(), guildID); err != nil {
		log.Printf("❌ Failed to set up lockdown: %v", err)
		if core.IsNotFoundError(err) {
			http.Error(w, "verification is not configured", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to set up lockdown", http.StatusBadGateway)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]string{"status": "lockdown applied"})
}

// --- Heat ---

func (h *DashboardHTTPHandler) HandleGetHeat(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}

	maybeConfig, err := h.heatService.GetHeatConfig(r.Context(), guildID)
	if err != nil {
		log.Printf("❌ Failed to get heat config: %v", err)
		http.Error(w, "failed to get heat config", http.StatusInternalServerError)
		return
	}

	cfg := maybeConfig.OrElse(forms.NormalizeHeatConfig(guildID, url.Values{}))
	h.writeJSONResponse(w, http.StatusOK, cfg)
}

func (h *DashboardHTTPHandler) HandlePutHeat(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}
	values, ok := parseFormBody(w, r)
	if !ok {
		return
	}

	cfg := forms.NormalizeHeatConfig(guildID, values)
	if cfg.Enabled {
		if err := cfg.Validate(); err != nil {
			log.Printf("❌ Rejected heat config: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	saved, err := h.heatService.UpsertHeatConfig(r.Context(), cfg)
	if err != nil {
		log.Printf("❌ Failed to save heat config: %v", err)
		http.Error(w, "failed to save heat config", http.StatusInternalServerError)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, saved)
}

// --- Logs routing ---

func (h *DashboardHTTPHandler) HandleGetLogs(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}

	maybeRouting, err := h.logsRoutingService.GetLogsRouting(r.Context(), guildID)
	if err != nil {
		log.Printf("❌ Failed to get logs routing: %v", err)
		http.Error(w, "failed to get logs routing", http.StatusInternalServerError)
		return
	}

	routing := maybeRouting.OrElse(forms.NormalizeLogsRouting(guildID, url.Values{}))
	h.writeJSONResponse(w, http.StatusOK, routing)
}

func (h *DashboardHTTPHandler) HandlePutLogs(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}
	values, ok := parseFormBody(w, r)
	if !ok {
		return
	}

	saved, err := h.logsRoutingService.UpsertLogsRouting(r.Context(), forms.NormalizeLogsRouting(guildID, values))
	if err != nil {
		log.Printf("❌ Failed to save logs routing: %v", err)
		http.Error(w, "failed to save logs routing", http.StatusInternalServerError)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, saved)
}

// --- Permits ---

func (h *DashboardHTTPHandler) HandleListPermits(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}

	guildPermits, err := h.permitsService.ListPermits(r.Context(), guildID)
	if err != nil {
		log.Printf("❌ Failed to list permits: %v", err)
		http.Error(w, "failed to list permits", http.StatusInternalServerError)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, guildPermits)
}

func (h *DashboardHTTPHandler) HandleAddPermit(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}

	var req PermitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Failed to decode permit request: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !core.IsValidSnowflake(req.RoleID) || !models.IsValidPermitLevel(req.Level) {
		http.Error(w, "invalid role id or permit level", http.StatusBadRequest)
		return
	}

	grant := models.PermitGrant{RoleID: req.RoleID, Level: models.PermitLevel(req.Level)}
	if err := h.permitsService.AddPermit(r.Context(), guildID, grant); err != nil {
		log.Printf("❌ Failed to add permit: %v", err)
		http.Error(w, "failed to add permit", http.StatusInternalServerError)
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, map[string]string{"status": "permit added"})
}

func (h *DashboardHTTPHandler) HandleDeletePermit(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}
	permitID := mux.Vars(r)["permitId"]

	deleted, err := h.permitsService.RemovePermit(r.Context(), guildID, permitID)
	if err != nil {
		log.Printf("❌ Failed to remove permit: %v", err)
		http.Error(w, "failed to remove permit", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "permit not found", http.StatusNotFound)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]string{"status": "permit removed"})
}

// --- Panic state ---

func (h *DashboardHTTPHandler) HandleGetPanicState(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}

	maybeState, err := h.panicService.GetPanicState(r.Context(), guildID)
	if err != nil {
		log.Printf("❌ Failed to get panic state: %v", err)
		http.Error(w, "failed to get panic state", http.StatusInternalServerError)
		return
	}

	state := maybeState.OrElse(&models.PanicState{GuildID: guildID, Active: false})
	h.writeJSONResponse(w, http.StatusOK, state)
}

// --- Discord read-through ---

func (h *DashboardHTTPHandler) HandleListChannels(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}

	channels, err := h.discordGuildService.ListTextChannels(r.Context(), guildID)
	if err != nil {
		log.Printf("❌ Failed to list channels: %v", err)
		http.Error(w, "failed to list channels", http.StatusBadGateway)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, channels)
}

func (h *DashboardHTTPHandler) HandleListRoles(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}

	roles, err := h.discordGuildService.ListRoles(r.Context(), guildID)
	if err != nil {
		log.Printf("❌ Failed to list roles: %v", err)
		http.Error(w, "failed to list roles", http.StatusBadGateway)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, roles)
}

// --- Setup wizard ---

func (h *DashboardHTTPHandler) HandleCompleteSetup(w http.ResponseWriter, r *http.Request) {
	guildID, ok := h.requireGuild(w, r)
	if !ok {
		return
	}

	var draft models.SetupDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Printf("❌ Failed to decode setup draft: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.setupUseCase.CompleteSetup(r.Context(), guildID, &draft); err != nil {
		log.Printf("❌ Failed to complete setup: %v", err)
		http.Error(w, "failed to complete setup", http.StatusInternalServerError)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]string{"status": "setup complete"})
}

// SetupEndpoints registers the dashboard API routes on the given router
func (h *DashboardHTTPHandler) SetupEndpoints(router *mux.Router, authMiddleware *middleware.ClerkAuthMiddleware) {
	router.HandleFunc("/guilds/{guildId}/settings", authMiddleware.WithAuth(h.HandleGetGuildSettings)).Methods("GET")
	router.HandleFunc("/guilds/{guildId}/settings", authMiddleware.WithAuth(h.HandlePutGuildSettings)).Methods("PUT")
	log.Printf("✅ /guilds/{guildId}/settings endpoints registered")

	router.HandleFunc("/guilds/{guildId}/antinuke", authMiddleware.WithAuth(h.HandleGetAntiNuke)).Methods("GET")
	router.HandleFunc("/guilds/{guildId}/antinuke", authMiddleware.WithAuth(h.HandlePutAntiNuke)).Methods("PUT")
	log.Printf("✅ /guilds/{guildId}/antinuke endpoints registered")

	router.HandleFunc("/guilds/{guildId}/joingate", authMiddleware.WithAuth(h.HandleGetJoinGate)).Methods("GET")
	router.HandleFunc("/guilds/{guildId}/joingate", authMiddleware.WithAuth(h.HandlePutJoinGate)).Methods("PUT")
	log.Printf("✅ /guilds/{guildId}/joingate endpoints registered")

	router.HandleFunc("/guilds/{guildId}/verification", authMiddleware.WithAuth(h.HandleGetVerification)).
		Methods("GET")
	router.HandleFunc("/guilds/{guildId}/verification", authMiddleware.WithAuth(h.HandlePutVerification)).
		Methods("PUT")
	router.HandleFunc("/guilds/{guildId}/verification/panel", authMiddleware.WithAuth(h.HandleSendVerificationPanel)).
		Methods("POST")
	router.HandleFunc("/guilds/{guildId}/verification/lockdown", authMiddleware.WithAuth(h.HandleSetupLockdown)).
		Methods("POST")
	log.Printf("✅ /guilds/{guildId}/verification endpoints registered")

	router.HandleFunc("/guilds/{guildId}/heat", authMiddleware.WithAuth(h.HandleGetHeat)).Methods("GET")
	router.HandleFunc("/guilds/{guildId}/heat", authMiddleware.WithAuth(h.HandlePutHeat)).Methods("PUT")
	log.Printf("✅ /guilds/{guildId}/heat endpoints registered")

	router.HandleFunc("/guilds/{guildId}/logs", authMiddleware.WithAuth(h.HandleGetLogs)).Methods("GET")
	router.HandleFunc("/guilds/{guildId}/logs", authMiddleware.WithAuth(h.HandlePutLogs)).Methods("PUT")
	log.Printf("✅ /guilds/{guildId}/logs endpoints registered")

	router.HandleFunc("/guilds/{guildId}/permits", authMiddleware.WithAuth(h.HandleListPermits)).Methods("GET")
	router.HandleFunc("/guilds/{guildId}/permits", authMiddleware.WithAuth(h.HandleAddPermit)).Methods("POST")
	router.HandleFunc("/guilds/{guildId}/permits/{permitId}", authMiddleware.WithAuth(h.HandleDeletePermit)).
		Methods("DELETE")
	log.Printf("✅ /guilds/{guildId}/permits endpoints registered")

	router.HandleFunc("/guilds/{guildId}/panic", authMiddleware.WithAuth(h.HandleGetPanicState)).Methods("GET")
	log.Printf("✅ GET /guilds/{guildId}/panic endpoint registered")

	router.HandleFunc("/guilds/{guildId}/channels", authMiddleware.WithAuth(h.HandleListChannels)).Methods("GET")
	router.HandleFunc("/guilds/{guildId}/roles", authMiddleware.WithAuth(h.HandleListRoles)).Methods("GET")
	log.Printf("✅ /guilds/{guildId} Discord read-through endpoints registered")

	router.HandleFunc("/guilds/{guildId}/setup", authMiddleware.WithAuth(h.HandleCompleteSetup)).Methods("POST")
	log.Printf("✅ POST /guilds/{guildId}/setup endpoint registered")

	log.Printf("✅ All dashboard API endpoints registered successfully")
}

func (h *DashboardHTTPHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("❌ Failed to encode JSON response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
