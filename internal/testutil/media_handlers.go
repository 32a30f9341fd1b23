package testutil

import (
	"io"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

const maxUploadMemory = 10 << 20

func (p *Platform) mediaRoutes(r chi.Router) {
	r.Get("/site/{site}/bins", p.listBins)
	r.Get("/bin/{bin}", p.getBin)
	r.Patch("/bin/{bin}", p.updateBin)
	r.Get("/bin/{bin}/groups", p.listGroups)
	r.Get("/bin/{bin}/files", p.listFiles)

	r.Post("/group", p.createGroup)
	r.Get("/group/{group}", p.getGroup)
	r.Patch("/group/{group}", p.updateGroup)
	r.Delete("/group/{group}", p.deleteGroup)

	r.Get("/file/{file}", p.getFile)
	r.Patch("/file/{file}", p.updateFile)
	r.Delete("/file/{file}", p.deleteFile)
}

func (p *Platform) findBin(zuid string) int {
	return slices.IndexFunc(p.store.bins, func(b zesty.Bin) bool { return b.ID == zuid })
}

func (p *Platform) findGroup(zuid string) int {
	return slices.IndexFunc(p.store.groups, func(g zesty.Group) bool { return g.ID == zuid })
}

func (p *Platform) findFile(zuid string) int {
	return slices.IndexFunc(p.store.files, func(f zesty.File) bool { return f.ID == zuid })
}

func (p *Platform) listBins(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	site := chi.URLParam(r, "site")
	bins := []zesty.Bin{}

	for _, bin := range p.store.bins {
		if bin.SiteID == site {
			bins = append(bins, bin)
		}
	}

	writeMedia(w, r, http.StatusOK, bins)
}

func (p *Platform) getBin(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	idx := p.findBin(chi.URLParam(r, "bin"))
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "Bin not found")

		return
	}

	writeMedia(w, r, http.StatusOK, []zesty.Bin{p.store.bins[idx]})
}

func (p *Platform) updateBin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, r, http.StatusBadRequest, "Expected multipart form data")

		return
	}

	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	idx := p.findBin(chi.URLParam(r, "bin"))
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "Bin not found")

		return
	}

	if name := r.FormValue("name"); name != "" {
		p.store.bins[idx].Name = name
	}

	writeMedia(w, r, http.StatusOK, []zesty.Bin{p.store.bins[idx]})
}

func (p *Platform) listGroups(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	binZUID := chi.URLParam(r, "bin")
	groups := []zesty.Group{}

	for _, group := range p.store.groups {
		if group.BinID == binZUID {
			groups = append(groups, group)
		}
	}

	writeMedia(w, r, http.StatusOK, groups)
}

func (p *Platform) listFiles(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	binZUID := chi.URLParam(r, "bin")
	files := []zesty.File{}

	for _, file := range p.store.files {
		if file.BinID == binZUID {
			files = append(files, file)
		}
	}

	writeMedia(w, r, http.StatusOK, files)
}

func (p *Platform) createGroup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, r, http.StatusBadRequest, "Expected multipart form data")

		return
	}

	binZUID := r.FormValue("bin_id")
	name := r.FormValue("name")

	if binZUID == "" || name == "" {
		writeError(w, r, http.StatusBadRequest, "Missing required fields: bin_id, name")

		return
	}

	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	if p.findBin(binZUID) < 0 {
		writeError(w, r, http.StatusNotFound, "Bin not found")

		return
	}

	parent := r.FormValue("group_id")
	if parent == "" {
		parent = binZUID
	}

	group := zesty.Group{ID: newZUID("2"), BinID: binZUID, GroupID: parent, Name: name}
	p.store.groups = append(p.store.groups, group)

	writeMedia(w, r, http.StatusCreated, []zesty.Group{group})
}

func (p *Platform) getGroup(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	idx := p.findGroup(chi.URLParam(r, "group"))
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "Group not found")

		return
	}

	writeMedia(w, r, http.StatusOK, []zesty.Group{p.store.groups[idx]})
}

func (p *Platform) updateGroup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, r, http.StatusBadRequest, "Expected multipart form data")

		return
	}

	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	idx := p.findGroup(chi.URLParam(r, "group"))
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "Group not found")

		return
	}

	if name := r.FormValue("name"); name != "" {
		p.store.groups[idx].Name = name
	}

	if parent := r.FormValue("group_id"); parent != "" {
		p.store.groups[idx].GroupID = parent
	}

	writeMedia(w, r, http.StatusOK, []zesty.Group{p.store.groups[idx]})
}

func (p *Platform) deleteGroup(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	zuid := chi.URLParam(r, "group")

	idx := p.findGroup(zuid)
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "Group not found")

		return
	}

	p.store.groups = slices.Delete(p.store.groups, idx, idx+1)

	writeMedia(w, r, http.StatusOK, map[string]string{"id": zuid})
}

func (p *Platform) getFile(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	idx := p.findFile(chi.URLParam(r, "file"))
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "File not found")

		return
	}

	writeMedia(w, r, http.StatusOK, []zesty.File{p.store.files[idx]})
}

func (p *Platform) updateFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, r, http.StatusBadRequest, "Expected multipart form data")

		return
	}

	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	idx := p.findFile(chi.URLParam(r, "file"))
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "File not found")

		return
	}

	if title := r.FormValue("title"); title != "" {
		p.store.files[idx].Title = title
	}

	if filename := r.FormValue("filename"); filename != "" {
		p.store.files[idx].Filename = filename
	}

	if group := r.FormValue("group_id"); group != "" {
		p.store.files[idx].GroupID = group
	}

	writeMedia(w, r, http.StatusOK, []zesty.File{p.store.files[idx]})
}

func (p *Platform) deleteFile(w http.ResponseWriter, r *http.Request) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	zuid := chi.URLParam(r, "file")

	idx := p.findFile(zuid)
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "File not found")

		return
	}

	p.store.files = slices.Delete(p.store.files, idx, idx+1)

	writeMedia(w, r, http.StatusOK, map[string]string{"id": zuid})
}

func (p *Platform) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, r, http.StatusBadRequest, "Expected multipart form data")

		return
	}

	binZUID := r.FormValue("bin_id")

	part, header, err := r.FormFile("file")
	if err != nil || binZUID == "" {
		writeError(w, r, http.StatusBadRequest, "Missing required fields: bin_id, file")

		return
	}
	defer part.Close()

	if _, err := io.Copy(io.Discard, part); err != nil {
		writeError(w, r, http.StatusBadRequest, "Unreadable file part")

		return
	}

	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	idx := p.findBin(binZUID)
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "Bin not found")

		return
	}

	bin := p.store.bins[idx]
	if bin.StorageDriver != chi.URLParam(r, "driver") || bin.StorageName != chi.URLParam(r, "bucket") {
		writeError(w, r, http.StatusBadRequest, "Storage does not match bin")

		return
	}

	group := r.FormValue("group_id")
	if group == "" {
		group = binZUID
	}

	file := zesty.File{
		ID:       newZUID("3"),
		BinID:    binZUID,
		GroupID:  group,
		Filename: header.Filename,
		Title:    r.FormValue("title"),
		URL:      "https://cdn.example.com/" + header.Filename,
		Type:     "file",
	}
	p.store.files = append(p.store.files, file)

	writeMedia(w, r, http.StatusCreated, []zesty.File{file})
}
