package testutil

import (
	"encoding/json"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

func (p *Platform) instanceRoutes(r chi.Router) {
	r.Get("/content/models", p.listModels)
	r.Post("/content/models", p.createModel)
	r.Get("/content/models/{model}", p.getModel)
	r.Put("/content/models/{model}", p.updateModel)
	r.Delete("/content/models/{model}", p.deleteModel)

	r.Get("/content/models/{model}/fields", p.listFields)
	r.Post("/content/models/{model}/fields", p.createField)
	r.Get("/content/models/{model}/fields/{field}", p.getField)
	r.Put("/content/models/{model}/fields/{field}", p.updateField)
	r.Delete("/content/models/{model}/fields/{field}", p.deleteField)

	r.Get("/content/models/{model}/items", p.listItems)
	r.Post("/content/models/{model}/items", p.createItem)
	r.Get("/content/models/{model}/items/{item}", p.getItem)
	r.Put("/content/models/{model}/items/{item}", p.updateItem)
	r.Delete("/content/models/{model}/items/{item}", p.deleteItem)
	r.Get("/content/models/{model}/items/{item}/versions", p.listVersions)
	r.Get("/content/models/{model}/items/{item}/versions/{version}", p.getVersion)
	r.Get("/content/models/{model}/items/{item}/publishings", p.listPublishings)
	r.Post("/content/models/{model}/items/{item}/publishings", p.createPublishing)
	r.Delete("/content/models/{model}/items/{item}/publishings/{publishing}", p.deletePublishing)

	r.Get("/search/items", p.searchItems)

	r.Get("/env/settings", p.listSettings)
	r.Post("/env/settings", p.createSetting)
	r.Get("/env/settings/{setting}", p.getSetting)
	r.Put("/env/settings/{setting}", p.updateSetting)
	r.Delete("/env/settings/{setting}", p.deleteSetting)

	r.Get("/env/audits", p.listAudits)
	r.Get("/env/audits/{audit}", p.getAudit)
}

func decodeJSON(r *http.Request, target interface{}) error {
	return json.NewDecoder(r.Body).Decode(target)
}

func (p *Platform) listModels(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	writeData(w, r, http.StatusOK, p.store.models)
}

func (p *Platform) findModel(zuid string) int {
	return slices.IndexFunc(p.store.models, func(m zesty.Model) bool { return m.ZUID == zuid })
}

func (p *Platform) getModel(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	idx := p.findModel(chi.URLParam(r, "model"))
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "Model not found")

		return
	}

	writeData(w, r, http.StatusOK, p.store.models[idx])
}

func (p *Platform) createModel(w http.ResponseWriter, r *http.Request) {
	var model zesty.Model
	if err := decodeJSON(r, &model); err != nil || model.Name == "" {
		writeError(w, r, http.StatusBadRequest, "Missing required field: name")

		return
	}

	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	model.ZUID = newZUID("6")
	p.store.models = append(p.store.models, model)

	writeData(w, r, http.StatusCreated, model)
}

func (p *Platform) updateModel(w http.ResponseWriter, r *http.Request) {
	var update zesty.Model
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid JSON")

		return
	}

	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	idx := p.findModel(chi.URLParam(r, "model"))
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "Model not found")

		return
	}

	model := &p.store.models[idx]
	if update.Label != "" {
		model.Label = update.Label
	}

	if update.Description != "" {
		model.Description = update.Description
	}

	writeData(w, r, http.StatusOK, *model)
}

func (p *Platform) deleteModel(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	zuid := chi.URLParam(r, "model")

	idx := p.findModel(zuid)
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "Model not found")

		return
	}

	p.store.models = slices.Delete(p.store.models, idx, idx+1)

	writeData(w, r, http.StatusOK, map[string]string{"ZUID": zuid})
}

func (p *Platform) findField(modelZUID, fieldZUID string) int {
	return slices.IndexFunc(p.store.fields[modelZUID], func(f zesty.Field) bool { return f.ZUID == fieldZUID })
}

func (p *Platform) listFields(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	modelZUID := chi.URLParam(r, "model")
	if p.findModel(modelZUID) < 0 {
		writeError(w, r, http.StatusNotFound, "Model not found")

		return
	}

	fields := p.store.fields[modelZUID]
	if fields == nil {
		fields = []zesty.Field{}
	}

	writeData(w, r, http.StatusOK, fields)
}

func (p *Platform) getField(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	modelZUID := chi.URLParam(r, "model")

	idx := p.findField(modelZUID, chi.URLParam(r, "field"))
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "Field not found")

		return
	}

	writeData(w, r, http.StatusOK, p.store.fields[modelZUID][idx])
}

func (p *Platform) createField(w http.ResponseWriter, r *http.Request) {
	var field zesty.Field
	if err := decodeJSON(r, &field); err != nil || field.Name == "" || field.Datatype == "" {
		writeError(w, r, http.StatusBadRequest, "Missing required fields: name, datatype")

		return
	}

	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	modelZUID := chi.URLParam(r, "model")
	if p.findModel(modelZUID) < 0 {
		writeError(w, r, http.StatusNotFound, "Model not found")

		return
	}

	field.ZUID = newZUID("12")
	field.ContentModelZUID = modelZUID
	p.store.fields[modelZUID] = append(p.store.fields[modelZUID], field)

	writeData(w, r, http.StatusCreated, field)
}

func (p *Platform) updateField(w http.ResponseWriter, r *http.Request) {
	var update zesty.Field
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid JSON")

		return
	}

	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	modelZUID := chi.URLParam(r, "model")

	idx := p.findField(modelZUID, chi.URLParam(r, "field"))
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "Field not found")

		return
	}

	field := &p.store.fields[modelZUID][idx]
	if update.Label != "" {
		field.Label = update.Label
	}

	field.Required = update.Required

	writeData(w, r, http.StatusOK, *field)
}

func (p *Platform) deleteField(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	modelZUID := chi.URLParam(r, "model")
	fieldZUID := chi.URLParam(r, "field")

	idx := p.findField(modelZUID, fieldZUID)
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "Field not found")

		return
	}

	p.store.fields[modelZUID] = slices.Delete(p.store.fields[modelZUID], idx, idx+1)

	writeData(w, r, http.StatusOK, map[string]string{"ZUID": fieldZUID})
}

func (p *Platform) findItem(modelZUID, itemZUID string) int {
	return slices.IndexFunc(p.store.items[modelZUID], func(i zesty.Item) bool { return i.Meta.ZUID == itemZUID })
}

func (p *Platform) listItems(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	items := p.store.items[chi.URLParam(r, "model")]
	if items == nil {
		items = []zesty.Item{}
	}

	writeData(w, r, http.StatusOK, items)
}

func (p *Platform) getItem(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	modelZUID := chi.URLParam(r, "model")

	idx := p.findItem(modelZUID, chi.URLParam(r, "item"))
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "Item not found")

		return
	}

	writeData(w, r, http.StatusOK, p.store.items[modelZUID][idx])
}

func (p *Platform) createItem(w http.ResponseWriter, r *http.Request) {
	var item zesty.Item
	if err := decodeJSON(r, &item); err != nil || len(item.Data) == 0 {
		writeError(w, r, http.StatusBadRequest, "Missing required field: data")

		return
	}

	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	modelZUID := chi.URLParam(r, "model")
	if p.findModel(modelZUID) < 0 {
		writeError(w, r, http.StatusNotFound, "Model not found")

		return
	}

	item.Meta.ZUID = newZUID("7")
	item.Meta.ContentModelZUID = modelZUID
	item.Meta.Version = 1
	p.store.items[modelZUID] = append(p.store.items[modelZUID], item)
	p.store.versions[item.Meta.ZUID] = []zesty.Item{item}

	writeData(w, r, http.StatusCreated, item)
}

func (p *Platform) updateItem(w http.ResponseWriter, r *http.Request) {
	var update zesty.Item
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid JSON")

		return
	}

	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	modelZUID := chi.URLParam(r, "model")
	itemZUID := chi.URLParam(r, "item")

	idx := p.findItem(modelZUID, itemZUID)
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "Item not found")

		return
	}

	item := &p.store.items[modelZUID][idx]
	item.Meta.Version = p.latestVersion(itemZUID) + 1

	if update.Data != nil {
		item.Data = update.Data
	}

	p.store.versions[itemZUID] = append(p.store.versions[itemZUID], *item)

	writeData(w, r, http.StatusOK, *item)
}

func (p *Platform) latestVersion(itemZUID string) int {
	latest := 0

	for _, version := range p.store.versions[itemZUID] {
		latest = max(latest, version.Meta.Version)
	}

	return latest
}

func (p *Platform) deleteItem(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	modelZUID := chi.URLParam(r, "model")
	itemZUID := chi.URLParam(r, "item")

	idx := p.findItem(modelZUID, itemZUID)
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "Item not found")

		return
	}

	p.store.items[modelZUID] = slices.Delete(p.store.items[modelZUID], idx, idx+1)
	delete(p.store.versions, itemZUID)

	writeData(w, r, http.StatusOK, map[string]string{"ZUID": itemZUID})
}

func (p *Platform) listVersions(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	versions, ok := p.store.versions[chi.URLParam(r, "item")]
	if !ok {
		writeError(w, r, http.StatusNotFound, "Item not found")

		return
	}

	writeData(w, r, http.StatusOK, versions)
}

func (p *Platform) getVersion(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	number, err := strconv.Atoi(chi.URLParam(r, "version"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid version")

		return
	}

	for _, version := range p.store.versions[chi.URLParam(r, "item")] {
		if version.Meta.Version == number {
			writeData(w, r, http.StatusOK, version)

			return
		}
	}

	writeError(w, r, http.StatusNotFound, "Version not found")
}

func (p *Platform) listPublishings(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	publishings := p.store.publishings[chi.URLParam(r, "item")]
	if publishings == nil {
		publishings = []zesty.Publishing{}
	}

	writeData(w, r, http.StatusOK, publishings)
}

func (p *Platform) createPublishing(w http.ResponseWriter, r *http.Request) {
	var request zesty.PublishRequest
	if err := decodeJSON(r, &request); err != nil || request.Version < 1 {
		writeError(w, r, http.StatusBadRequest, "Missing required field: version")

		return
	}

	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	itemZUID := chi.URLParam(r, "item")
	if request.Version > p.latestVersion(itemZUID) {
		writeError(w, r, http.StatusNotFound, "Version not found")

		return
	}

	publishing := zesty.Publishing{
		ZUID:        newZUID("18"),
		ItemZUID:    itemZUID,
		Version:     request.Version,
		PublishAt:   request.PublishAt,
		UnpublishAt: request.UnpublishAt,
	}
	p.store.publishings[itemZUID] = append(p.store.publishings[itemZUID], publishing)

	writeData(w, r, http.StatusCreated, publishing)
}

func (p *Platform) deletePublishing(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	itemZUID := chi.URLParam(r, "item")
	publishingZUID := chi.URLParam(r, "publishing")

	idx := slices.IndexFunc(p.store.publishings[itemZUID], func(pub zesty.Publishing) bool {
		return pub.ZUID == publishingZUID
	})
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "Publishing not found")

		return
	}

	p.store.publishings[itemZUID] = slices.Delete(p.store.publishings[itemZUID], idx, idx+1)

	writeData(w, r, http.StatusOK, map[string]string{"ZUID": publishingZUID})
}

func (p *Platform) searchItems(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, r, http.StatusBadRequest, "Missing required parameter: q")

		return
	}

	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	matches := []zesty.Item{}

	for _, items := range p.store.items {
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Web.MetaTitle), query) {
				matches = append(matches, item)
			}
		}
	}

	writeData(w, r, http.StatusOK, matches)
}

func (p *Platform) findSetting(zuid string) int {
	return slices.IndexFunc(p.store.settings, func(s zesty.Setting) bool { return s.ZUID == zuid })
}

func (p *Platform) listSettings(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	writeData(w, r, http.StatusOK, p.store.settings)
}

func (p *Platform) getSetting(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	idx := p.findSetting(chi.URLParam(r, "setting"))
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "Setting not found")

		return
	}

	writeData(w, r, http.StatusOK, p.store.settings[idx])
}

func (p *Platform) createSetting(w http.ResponseWriter, r *http.Request) {
	var setting zesty.Setting
	if err := decodeJSON(r, &setting); err != nil || setting.Key == "" {
		writeError(w, r, http.StatusBadRequest, "Missing required field: key")

		return
	}

	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	setting.ID = len(p.store.settings) + 1
	setting.ZUID = newZUID("29")
	p.store.settings = append(p.store.settings, setting)

	writeData(w, r, http.StatusCreated, setting)
}

func (p *Platform) updateSetting(w http.ResponseWriter, r *http.Request) {
	var update zesty.Setting
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid JSON")

		return
	}

	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	idx := p.findSetting(chi.URLParam(r, "setting"))
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "Setting not found")

		return
	}

	p.store.settings[idx].Value = update.Value

	writeData(w, r, http.StatusOK, p.store.settings[idx])
}

func (p *Platform) deleteSetting(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	zuid := chi.URLParam(r, "setting")

	idx := p.findSetting(zuid)
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "Setting not found")

		return
	}

	p.store.settings = slices.Delete(p.store.settings, idx, idx+1)

	writeData(w, r, http.StatusOK, map[string]string{"ZUID": zuid})
}

func (p *Platform) listAudits(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	affected := r.URL.Query().Get("affectedZUID")
	audits := []zesty.AuditLog{}

	for _, audit := range p.store.audits {
		if affected == "" || audit.AffectedZUID == affected {
			audits = append(audits, audit)
		}
	}

	writeData(w, r, http.StatusOK, audits)
}

func (p *Platform) getAudit(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	zuid := chi.URLParam(r, "audit")

	for _, audit := range p.store.audits {
		if audit.ZUID == zuid {
			writeData(w, r, http.StatusOK, audit)

			return
		}
	}

	writeError(w, r, http.StatusNotFound, "Audit log not found")
}

func (p *Platform) legacyPublish(w http.ResponseWriter, r *http.Request) {
	var body struct {
		VersionNum int `json:"version_num"`
	}

	if err := decodeJSON(r, &body); err != nil || body.VersionNum < 1 {
		writeError(w, r, http.StatusBadRequest, "Missing required field: version_num")

		return
	}

	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	itemZUID := chi.URLParam(r, "item")
	publishing := zesty.Publishing{ZUID: newZUID("18"), ItemZUID: itemZUID, Version: body.VersionNum, PublishAt: "now"}
	p.store.publishings[itemZUID] = append(p.store.publishings[itemZUID], publishing)

	writeData(w, r, http.StatusOK, publishing)
}

func (p *Platform) legacyUnpublish(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TakeOfflineAt string `json:"take_offline_at"`
	}

	if err := decodeJSON(r, &body); err != nil || body.TakeOfflineAt == "" {
		writeError(w, r, http.StatusBadRequest, "Missing required field: take_offline_at")

		return
	}

	writeData(w, r, http.StatusOK, map[string]string{
		"ZUID":            chi.URLParam(r, "publishing"),
		"take_offline_at": body.TakeOfflineAt,
	})
}

func (p *Platform) getInstance(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "instance") != p.InstanceZUID {
		writeError(w, r, http.StatusNotFound, "Instance not found")

		return
	}

	writeData(w, r, http.StatusOK, zesty.Instance{
		ZUID:   p.InstanceZUID,
		Name:   "Midgar Times",
		Domain: "midgar.example.com",
	})
}

func (p *Platform) getInstanceUsers(w http.ResponseWriter, r *http.Request) {
	writeData(w, r, http.StatusOK, []zesty.InstanceUser{
		{ZUID: "5-user-cloud", FirstName: "Cloud", LastName: "Strife", Email: "cloud@example.com", Role: zesty.Role{Name: "Owner"}},
		{ZUID: "5-user-tifa", FirstName: "Tifa", LastName: "Lockhart", Email: "tifa@example.com", Role: zesty.Role{Name: "Editor"}},
	})
}

func (p *Platform) getInstanceDomains(w http.ResponseWriter, r *http.Request) {
	writeData(w, r, http.StatusOK, []zesty.Domain{
		{ZUID: "9-domain01", InstanceZUID: p.InstanceZUID, Domain: "midgar.example.com", Branch: "live"},
	})
}
