package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/ugordi/gladialore-admin/internal/glapi"
	"github.com/ugordi/gladialore-admin/internal/model"
	"github.com/ugordi/gladialore-admin/internal/validate"
)

// EnemiesHandler handles the enemy type pages
type EnemiesHandler struct {
	api    *glapi.Client
	logger *slog.Logger
}

// NewEnemiesHandler creates a new EnemiesHandler
func NewEnemiesHandler(api *glapi.Client, logger *slog.Logger) *EnemiesHandler {
	return &EnemiesHandler{api: api, logger: logger}
}

type enemiesPage struct {
	Query   string
	Boss    string
	Enemies *model.EnemyList
	Pager
}

// List renders the filterable enemy type list
func (h *EnemiesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := glapi.EnemyFilter{
		Query:  q.Get("q"),
		Limit:  pageSize,
		Offset: formInt(r, "offset"),
	}
	boss := q.Get("boss")
	switch boss {
	case "1":
		isBoss := true
		filter.IsBoss = &isBoss
	case "0":
		isBoss := false
		filter.IsBoss = &isBoss
	}

	data := enemiesPage{Query: filter.Query, Boss: boss, Enemies: &model.EnemyList{}}

	enemies, err := h.api.ListEnemies(r.Context(), filter)
	if err != nil {
		renderError(w, r, "enemies", "Enemies", "enemies", data, errorMessage(err))
		return
	}

	data.Enemies = enemies
	data.Pager = paginate("/enemies", q, filter.Offset, enemies.Total)
	render(w, r, "enemies", "Enemies", "enemies", data)
}

// Create adds a new enemy type
func (h *EnemiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, "error", "Invalid form data", "/enemies")
		return
	}

	enemy := model.EnemyType{
		Code:          strings.TrimSpace(r.FormValue("code")),
		Name:          strings.TrimSpace(r.FormValue("name")),
		BaseLevel:     formInt(r, "base_level"),
		Strength:      formInt(r, "guc"),
		Agility:       formInt(r, "ceviklik"),
		Endurance:     formInt(r, "dayaniklilik"),
		Charisma:      formInt(r, "karizma"),
		Intellect:     formInt(r, "zeka"),
		Skill:         formInt(r, "beceri"),
		Description:   strings.TrimSpace(r.FormValue("description")),
		BattleAnimURL: strings.TrimSpace(r.FormValue("battle_anim_url")),
		IsBoss:        r.FormValue("is_boss") == "1",
	}
	if enemy.Code == "" || enemy.Name == "" {
		flashRedirect(w, r, "error", "Code and name are required", "/enemies")
		return
	}

	if profile := strings.TrimSpace(r.FormValue("ai_profile")); profile != "" {
		if !json.Valid([]byte(profile)) {
			flashRedirect(w, r, "error", "AI profile must be valid JSON", "/enemies")
			return
		}
		enemy.AIProfile = json.RawMessage(profile)
	}

	if _, err := h.api.CreateEnemy(r.Context(), enemy); err != nil {
		flashRedirect(w, r, "error", errorMessage(err), "/enemies")
		return
	}

	flashRedirect(w, r, "success", "Enemy type created", "/enemies")
}

// UpdateLoot saves an enemy's drop table, validating it locally first
func (h *EnemiesHandler) UpdateLoot(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, "error", "Invalid form data", "/enemies")
		return
	}

	loot := model.EnemyLoot{
		LootChanceTotal: formInt(r, "loot_chance_total"),
		LootT1:          formInt(r, "loot_t1"),
		LootT2:          formInt(r, "loot_t2"),
		LootT3:          formInt(r, "loot_t3"),
		LootT4:          formInt(r, "loot_t4"),
		LootT5:          formInt(r, "loot_t5"),
	}

	if err := validate.Loot(loot); err != nil {
		flashRedirect(w, r, "error", err.Error(), backTo(r, "/enemies"))
		return
	}

	if _, err := h.api.UpdateEnemyLoot(r.Context(), model.EnemyTypeID(id), loot); err != nil {
		flashRedirect(w, r, "error", errorMessage(err), backTo(r, "/enemies"))
		return
	}

	flashRedirect(w, r, "success", "Loot table updated", backTo(r, "/enemies"))
}

// Delete removes an enemy type
func (h *EnemiesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.api.DeleteEnemy(r.Context(), model.EnemyTypeID(id)); err != nil {
		flashRedirect(w, r, "error", errorMessage(err), "/enemies")
		return
	}

	flashRedirect(w, r, "success", "Enemy type deleted", "/enemies")
}
