package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ugordi/gladialore-admin/internal/glapi"
	"github.com/ugordi/gladialore-admin/internal/model"
	"github.com/ugordi/gladialore-admin/internal/validate"
)

// SettingsHandler handles the game settings page
type SettingsHandler struct {
	api    *glapi.Client
	logger *slog.Logger
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(api *glapi.Client, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{api: api, logger: logger}
}

type settingsPage struct {
	Settings    *model.Settings
	RewardsJSON string
	XpRules     *model.XpRules
}

// Show renders the settings bundle
func (h *SettingsHandler) Show(w http.ResponseWriter, r *http.Request) {
	data := settingsPage{Settings: &model.Settings{}}

	settings, err := h.api.GetSettings(r.Context())
	if err != nil {
		renderError(w, r, "settings", "Settings", "settings", data, errorMessage(err))
		return
	}
	data.Settings = settings
	data.RewardsJSON = rewardsJSON(settings.BattleRewards)

	// The XP curve preview is optional
	if rules, err := h.api.GetXpRules(r.Context()); err != nil {
		h.logger.Warn("failed to load xp rules", slog.Any("error", err))
	} else {
		data.XpRules = rules
	}

	render(w, r, "settings", "Settings", "settings", data)
}

// UpdateAdmin saves the admin settings sub-section
func (h *SettingsHandler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, "error", "Invalid form data", "/settings")
		return
	}

	settings := model.AdminSettings{PointsPerLevel: formInt(r, "points_per_level")}
	if err := h.api.UpdateAdminSettings(r.Context(), settings); err != nil {
		flashRedirect(w, r, "error", errorMessage(err), "/settings")
		return
	}

	flashRedirect(w, r, "success", "Admin settings saved", "/settings")
}

// UpdateEnergy saves the energy settings sub-section
func (h *SettingsHandler) UpdateEnergy(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, "error", "Invalid form data", "/settings")
		return
	}

	settings := model.EnergySettings{BattleCost: formInt(r, "battle_cost")}
	if err := h.api.UpdateEnergySettings(r.Context(), settings); err != nil {
		flashRedirect(w, r, "error", errorMessage(err), "/settings")
		return
	}

	flashRedirect(w, r, "success", "Energy settings saved", "/settings")
}

// UpdatePvp saves the PvP settings sub-section
func (h *SettingsHandler) UpdatePvp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, "error", "Invalid form data", "/settings")
		return
	}

	settings := model.PvpSettings{
		StealPctMin: formInt(r, "steal_pct_min"),
		StealPctMax: formInt(r, "steal_pct_max"),
	}
	if err := h.api.UpdatePvpSettings(r.Context(), settings); err != nil {
		flashRedirect(w, r, "error", errorMessage(err), "/settings")
		return
	}

	flashRedirect(w, r, "success", "PvP settings saved", "/settings")
}

// ReplaceRewards validates and full-replaces the battle reward table. The
// whole submission is rejected on the first invalid row; nothing reaches
// the backend until every row passes.
func (h *SettingsHandler) ReplaceRewards(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, "error", "Invalid form data", "/settings")
		return
	}

	var rewards []model.BattleReward
	raw := strings.TrimSpace(r.FormValue("rewards"))
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &rewards); err != nil {
			flashRedirect(w, r, "error", "Rewards must be a JSON array: "+err.Error(), "/settings")
			return
		}
	}

	for i, row := range rewards {
		if err := validate.RewardRow(row); err != nil {
			flashRedirect(w, r, "error", fmt.Sprintf("row %d: %v", i+1, err), "/settings")
			return
		}
	}

	if _, err := h.api.ReplaceBattleRewards(r.Context(), rewards); err != nil {
		flashRedirect(w, r, "error", errorMessage(err), "/settings")
		return
	}

	flashRedirect(w, r, "success", "Battle rewards replaced", "/settings")
}

func rewardsJSON(rewards []model.BattleReward) string {
	if rewards == nil {
		rewards = []model.BattleReward{}
	}
	buf, err := json.MarshalIndent(rewards, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(buf)
}
