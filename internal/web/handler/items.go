package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/ugordi/gladialore-admin/internal/glapi"
	"github.com/ugordi/gladialore-admin/internal/model"
)

// ItemsHandler handles the item template pages
type ItemsHandler struct {
	api    *glapi.Client
	logger *slog.Logger
}

// NewItemsHandler creates a new ItemsHandler
func NewItemsHandler(api *glapi.Client, logger *slog.Logger) *ItemsHandler {
	return &ItemsHandler{api: api, logger: logger}
}

type itemsPage struct {
	Query    string
	Category string
	Rarity   string
	Tier     int
	Items    *model.ItemTemplateList
	Slots    *model.EquipmentSlotList
	Pager
}

// List renders the filterable item template list
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := glapi.ItemFilter{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		Rarity:   q.Get("rarity"),
		Tier:     formInt(r, "tier"),
		Limit:    pageSize,
		Offset:   formInt(r, "offset"),
	}

	data := itemsPage{
		Query:    filter.Query,
		Category: filter.Category,
		Rarity:   filter.Rarity,
		Tier:     filter.Tier,
		Items:    &model.ItemTemplateList{},
		Slots:    &model.EquipmentSlotList{},
	}

	items, err := h.api.ListItemTemplates(r.Context(), filter)
	if err != nil {
		renderError(w, r, "items", "Items", "items", data, errorMessage(err))
		return
	}
	data.Items = items
	data.Pager = paginate("/items", q, filter.Offset, items.Total)

	// The slot list feeds the create form; losing it only degrades the form
	if slots, err := h.api.ListEquipmentSlots(r.Context()); err != nil {
		h.logger.Warn("failed to list equipment slots", slog.Any("error", err))
	} else {
		data.Slots = slots
	}

	render(w, r, "items", "Items", "items", data)
}

// Create adds a new item template
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, "error", "Invalid form data", "/items")
		return
	}

	item := model.ItemTemplate{
		Code:     strings.TrimSpace(r.FormValue("code")),
		Name:     strings.TrimSpace(r.FormValue("name")),
		Category: r.FormValue("category"),
		Rarity:   r.FormValue("rarity"),
		Tier:     formInt(r, "tier"),
		Slot:     r.FormValue("slot"),

		StrengthFlat:  formInt(r, "guc_flat"),
		AgilityFlat:   formInt(r, "ceviklik_flat"),
		EnduranceFlat: formInt(r, "dayaniklilik_flat"),
		CharismaFlat:  formInt(r, "karizma_flat"),
		IntellectFlat: formInt(r, "zeka_flat"),
		AbilityFlat:   formInt(r, "yetenek_flat"),

		StrengthPct:  formInt(r, "guc_pct"),
		AgilityPct:   formInt(r, "ceviklik_pct"),
		EndurancePct: formInt(r, "dayaniklilik_pct"),
		CharismaPct:  formInt(r, "karizma_pct"),
		IntellectPct: formInt(r, "zeka_pct"),
		AbilityPct:   formInt(r, "yetenek_pct"),
	}

	if item.Code == "" || item.Name == "" {
		flashRedirect(w, r, "error", "Code and name are required", "/items")
		return
	}

	if _, err := h.api.CreateItemTemplate(r.Context(), item); err != nil {
		flashRedirect(w, r, "error", errorMessage(err), "/items")
		return
	}

	flashRedirect(w, r, "success", "Item template created", "/items")
}

// Delete removes an item template
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.api.DeleteItemTemplate(r.Context(), model.ItemTemplateID(id)); err != nil {
		flashRedirect(w, r, "error", errorMessage(err), "/items")
		return
	}

	flashRedirect(w, r, "success", "Item template deleted", "/items")
}
