package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/ugordi/gladialore-admin/internal/glapi"
	"github.com/ugordi/gladialore-admin/internal/model"
)

// RegionsHandler handles region pages, including each region's enemy
// population
type RegionsHandler struct {
	api    *glapi.Client
	logger *slog.Logger
}

// NewRegionsHandler creates a new RegionsHandler
func NewRegionsHandler(api *glapi.Client, logger *slog.Logger) *RegionsHandler {
	return &RegionsHandler{api: api, logger: logger}
}

type regionsPage struct {
	Query   string
	Regions *model.RegionList
}

// List renders the region list
func (h *RegionsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := glapi.RegionFilter{Query: r.URL.Query().Get("q")}
	data := regionsPage{Query: filter.Query, Regions: &model.RegionList{}}

	regions, err := h.api.ListRegions(r.Context(), filter)
	if err != nil {
		renderError(w, r, "regions", "Regions", "regions", data, errorMessage(err))
		return
	}

	data.Regions = regions
	render(w, r, "regions", "Regions", "regions", data)
}

type regionDetailPage struct {
	Region     *model.Region
	Population *model.RegionEnemyList
	EnemyTypes *model.EnemyList
}

// Detail renders one region with its spawn population and the enemy types
// available to add
func (h *RegionsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := model.RegionID(mux.Vars(r)["id"])

	region, err := h.api.GetRegion(r.Context(), id)
	if err != nil {
		flashRedirect(w, r, "error", errorMessage(err), "/regions")
		return
	}

	data := regionDetailPage{
		Region:     region,
		Population: &model.RegionEnemyList{},
		EnemyTypes: &model.EnemyList{},
	}

	if population, err := h.api.ListRegionEnemies(r.Context(), id); err != nil {
		h.logger.Warn("failed to list region enemies", slog.Any("error", err))
	} else {
		data.Population = population
	}
	if enemies, err := h.api.ListEnemies(r.Context(), glapi.EnemyFilter{}); err != nil {
		h.logger.Warn("failed to list enemy types", slog.Any("error", err))
	} else {
		data.EnemyTypes = enemies
	}

	render(w, r, "region_detail", region.Name, "regions", data)
}

// Create adds a new region
func (h *RegionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, "error", "Invalid form data", "/regions")
		return
	}

	region := regionFromForm(r)
	if region.Name == "" {
		flashRedirect(w, r, "error", "Region name is required", "/regions")
		return
	}

	created, err := h.api.CreateRegion(r.Context(), region)
	if err != nil {
		flashRedirect(w, r, "error", errorMessage(err), "/regions")
		return
	}

	flashRedirect(w, r, "success", "Region created", "/regions/"+string(created.ID))
}

// Update saves a region's fields
func (h *RegionsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, "error", "Invalid form data", "/regions/"+id)
		return
	}

	region := regionFromForm(r)
	if _, err := h.api.UpdateRegion(r.Context(), model.RegionID(id), region); err != nil {
		flashRedirect(w, r, "error", errorMessage(err), "/regions/"+id)
		return
	}

	flashRedirect(w, r, "success", "Region updated", "/regions/"+id)
}

// Delete removes a region
func (h *RegionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.api.DeleteRegion(r.Context(), model.RegionID(id)); err != nil {
		flashRedirect(w, r, "error", errorMessage(err), "/regions")
		return
	}

	flashRedirect(w, r, "success", "Region deleted", "/regions")
}

// AddEnemy places an enemy type in the region's population
func (h *RegionsHandler) AddEnemy(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	back := "/regions/" + id
	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, "error", "Invalid form data", back)
		return
	}

	def := defFromForm(r)
	if def.EnemyTypeID == "" {
		flashRedirect(w, r, "error", "Enemy type is required", back)
		return
	}

	if _, err := h.api.AddRegionEnemy(r.Context(), model.RegionID(id), def); err != nil {
		flashRedirect(w, r, "error", errorMessage(err), back)
		return
	}

	flashRedirect(w, r, "success", "Enemy added to region", back)
}

// UpdateEnemy saves a population entry's level band and weight
func (h *RegionsHandler) UpdateEnemy(w http.ResponseWriter, r *http.Request) {
	defID := mux.Vars(r)["id"]
	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, "error", "Invalid form data", "/regions")
		return
	}
	back := regionBack(r)

	if _, err := h.api.UpdateRegionEnemy(r.Context(), defID, defFromForm(r)); err != nil {
		flashRedirect(w, r, "error", errorMessage(err), back)
		return
	}

	flashRedirect(w, r, "success", "Population entry updated", back)
}

// RemoveEnemy drops a population entry
func (h *RegionsHandler) RemoveEnemy(w http.ResponseWriter, r *http.Request) {
	defID := mux.Vars(r)["id"]
	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, "error", "Invalid form data", "/regions")
		return
	}
	back := regionBack(r)

	if err := h.api.RemoveRegionEnemy(r.Context(), defID); err != nil {
		flashRedirect(w, r, "error", errorMessage(err), back)
		return
	}

	flashRedirect(w, r, "success", "Enemy removed from region", back)
}

func regionFromForm(r *http.Request) model.Region {
	return model.Region{
		Name:             strings.TrimSpace(r.FormValue("name")),
		MinLevel:         formInt(r, "min_level"),
		ShortDescription: strings.TrimSpace(r.FormValue("short_description")),
		Story:            strings.TrimSpace(r.FormValue("story")),
		IconAssetID:      strings.TrimSpace(r.FormValue("icon_asset_id")),
	}
}

func defFromForm(r *http.Request) model.RegionEnemyDef {
	return model.RegionEnemyDef{
		EnemyTypeID: model.EnemyTypeID(r.FormValue("enemy_type_id")),
		MinLevel:    formInt(r, "min_level"),
		MaxLevel:    formInt(r, "max_level"),
		Weight:      formInt(r, "weight"),
	}
}

// regionBack points population actions back at the owning region's page
func regionBack(r *http.Request) string {
	if regionID := r.FormValue("region_id"); regionID != "" {
		return "/regions/" + regionID
	}
	return "/regions"
}
