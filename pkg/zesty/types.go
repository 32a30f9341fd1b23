package zesty

// Timestamps are kept as the strings the platform sends; they are not
// validated client-side.

// Model represents a content model (schema).
type Model struct {
	ZUID              string `json:"ZUID"              yaml:"ZUID"`
	MasterZUID        string `json:"masterZUID"        yaml:"masterZUID"`
	ParentZUID        string `json:"parentZUID"        yaml:"parentZUID"`
	Name              string `json:"name"              yaml:"name"`
	Label             string `json:"label"             yaml:"label"`
	Description       string `json:"description"       yaml:"description"`
	Type              string `json:"type"              yaml:"type"`
	Listed            bool   `json:"listed"            yaml:"listed"`
	CreatedByUserZUID string `json:"createdByUserZUID" yaml:"createdByUserZUID"`
	UpdatedByUserZUID string `json:"updatedByUserZUID" yaml:"updatedByUserZUID"`
	CreatedAt         string `json:"createdAt"         yaml:"createdAt"`
	UpdatedAt         string `json:"updatedAt"         yaml:"updatedAt"`
}

// ModelCreateRequest is the payload for creating a model.
type ModelCreateRequest struct {
	Name        string `json:"name"                  yaml:"name"`
	Label       string `json:"label"                 yaml:"label"`
	Type        string `json:"type"                  yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	ParentZUID  string `json:"parentZUID,omitempty"  yaml:"parentZUID,omitempty"`
	Listed      *bool  `json:"listed,omitempty"      yaml:"listed,omitempty"`
}

// Field represents a field of a content model.
type Field struct {
	ZUID             string         `json:"ZUID"                      yaml:"ZUID"`
	ContentModelZUID string         `json:"contentModelZUID"          yaml:"contentModelZUID"`
	Name             string         `json:"name"                      yaml:"name"`
	Label            string         `json:"label"                     yaml:"label"`
	Description      string         `json:"description"               yaml:"description"`
	Datatype         string         `json:"datatype"                  yaml:"datatype"`
	Required         bool           `json:"required"                  yaml:"required"`
	Sort             int            `json:"sort"                      yaml:"sort"`
	Settings         map[string]any `json:"settings,omitempty"        yaml:"settings,omitempty"`
	RelatedModelZUID string         `json:"relatedModelZUID,omitempty" yaml:"relatedModelZUID,omitempty"`
	RelatedFieldZUID string         `json:"relatedFieldZUID,omitempty" yaml:"relatedFieldZUID,omitempty"`
	CreatedAt        string         `json:"createdAt"                 yaml:"createdAt"`
	UpdatedAt        string         `json:"updatedAt"                 yaml:"updatedAt"`
}

// Item represents a content item (or one version of it).
type Item struct {
	Meta       ItemMeta       `json:"meta"                 yaml:"meta"`
	Web        ItemWeb        `json:"web"                  yaml:"web"`
	Data       map[string]any `json:"data"                 yaml:"data"`
	Publishing *Publishing    `json:"publishing,omitempty" yaml:"publishing,omitempty"`
}

// ItemMeta holds the identity and version of an item.
type ItemMeta struct {
	ZUID              string `json:"ZUID"              yaml:"ZUID"`
	ContentModelZUID  string `json:"contentModelZUID"  yaml:"contentModelZUID"`
	MasterZUID        string `json:"masterZUID"        yaml:"masterZUID"`
	Version           int    `json:"version"           yaml:"version"`
	LangID            int    `json:"langID"            yaml:"langID"`
	CreatedByUserZUID string `json:"createdByUserZUID" yaml:"createdByUserZUID"`
	CreatedAt         string `json:"createdAt"         yaml:"createdAt"`
	UpdatedAt         string `json:"updatedAt"         yaml:"updatedAt"`
}

// ItemWeb holds the routing and SEO fields of an item.
type ItemWeb struct {
	Version          int     `json:"version"          yaml:"version"`
	MetaTitle        string  `json:"metaTitle"        yaml:"metaTitle"`
	MetaDescription  string  `json:"metaDescription"  yaml:"metaDescription"`
	MetaKeywords     string  `json:"metaKeywords"     yaml:"metaKeywords"`
	MetaLinkText     string  `json:"metaLinkText"     yaml:"metaLinkText"`
	Path             string  `json:"path"             yaml:"path"`
	PathPart         string  `json:"pathPart"         yaml:"pathPart"`
	ParentZUID       string  `json:"parentZUID"       yaml:"parentZUID"`
	SitemapPriority  float64 `json:"sitemapPriority"  yaml:"sitemapPriority"`
	CanonicalTagMode int     `json:"canonicalTagMode" yaml:"canonicalTagMode"`
}

// Publishing represents a publish record of an item version.
type Publishing struct {
	ZUID                string `json:"ZUID"                yaml:"ZUID"`
	ItemZUID            string `json:"itemZUID"            yaml:"itemZUID"`
	Version             int    `json:"version"             yaml:"version"`
	VersionZUID         string `json:"versionZUID"         yaml:"versionZUID"`
	PublishAt           string `json:"publishAt"           yaml:"publishAt"`
	UnpublishAt         string `json:"unpublishAt"         yaml:"unpublishAt"`
	PublishedByUserZUID string `json:"publishedByUserZUID" yaml:"publishedByUserZUID"`
	CreatedAt           string `json:"createdAt"           yaml:"createdAt"`
}

// PublishRequest is the payload for publishing an item version.
type PublishRequest struct {
	Version     int    `json:"version"               yaml:"version"`
	PublishAt   string `json:"publishAt,omitempty"   yaml:"publishAt,omitempty"`
	UnpublishAt string `json:"unpublishAt,omitempty" yaml:"unpublishAt,omitempty"`
}

// Setting represents an instance setting.
type Setting struct {
	ID          int    `json:"ID"          yaml:"ID"`
	ZUID        string `json:"ZUID"        yaml:"ZUID"`
	Category    string `json:"category"    yaml:"category"`
	Key         string `json:"key"         yaml:"key"`
	KeyFriendly string `json:"keyFriendly" yaml:"keyFriendly"`
	Value       string `json:"value"       yaml:"value"`
	Admin       bool   `json:"admin"       yaml:"admin"`
	ParseAs     string `json:"parseAs"     yaml:"parseAs"`
	DataType    string `json:"dataType"    yaml:"dataType"`
	Options     string `json:"options"     yaml:"options"`
	Tips        string `json:"tips"        yaml:"tips"`
	CreatedAt   string `json:"createdAt"   yaml:"createdAt"`
	UpdatedAt   string `json:"updatedAt"   yaml:"updatedAt"`
}

// AuditLog represents one audit trail entry.
type AuditLog struct {
	ZUID             string         `json:"ZUID"             yaml:"ZUID"`
	AffectedZUID     string         `json:"affectedZUID"     yaml:"affectedZUID"`
	ActionByUserZUID string         `json:"actionByUserZUID" yaml:"actionByUserZUID"`
	Action           int            `json:"action"           yaml:"action"`
	Meta             map[string]any `json:"meta,omitempty"   yaml:"meta,omitempty"`
	FirstName        string         `json:"firstName"        yaml:"firstName"`
	LastName         string         `json:"lastName"         yaml:"lastName"`
	Email            string         `json:"email"            yaml:"email"`
	CreatedAt        string         `json:"createdAt"        yaml:"createdAt"`
}

// Bin represents a media bin.
type Bin struct {
	ID             string `json:"id"               yaml:"id"`
	Name           string `json:"name"             yaml:"name"`
	SiteID         string `json:"site_id"          yaml:"site_id"`
	EcoID          string `json:"eco_id"           yaml:"eco_id"`
	StorageDriver  string `json:"storage_driver"   yaml:"storage_driver"`
	StorageName    string `json:"storage_name"     yaml:"storage_name"`
	StorageBaseURL string `json:"storage_base_url" yaml:"storage_base_url"`
	CDNDriver      string `json:"cdn_driver"       yaml:"cdn_driver"`
	CDNBaseURL     string `json:"cdn_base_url"     yaml:"cdn_base_url"`
	Default        bool   `json:"default"          yaml:"default"`
	CreatedAt      string `json:"created_at"       yaml:"created_at"`
}

// Group represents a media group (folder) inside a bin.
type Group struct {
	ID        string `json:"id"         yaml:"id"`
	BinID     string `json:"bin_id"     yaml:"bin_id"`
	GroupID   string `json:"group_id"   yaml:"group_id"`
	Name      string `json:"name"       yaml:"name"`
	Type      string `json:"type"       yaml:"type"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

// File represents a media file.
type File struct {
	ID        string `json:"id"         yaml:"id"`
	BinID     string `json:"bin_id"     yaml:"bin_id"`
	GroupID   string `json:"group_id"   yaml:"group_id"`
	Filename  string `json:"filename"   yaml:"filename"`
	Title     string `json:"title"      yaml:"title"`
	URL       string `json:"url"        yaml:"url"`
	Type      string `json:"type"       yaml:"type"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
}

// FileOptions describes an upload.
type FileOptions struct {
	Title    string
	FileName string
	// GroupZUID places the file in a group; defaults to the bin itself.
	GroupZUID   string
	ContentType string
}

// Instance represents an account-level instance record.
type Instance struct {
	ZUID         string `json:"ZUID"         yaml:"ZUID"`
	Name         string `json:"name"         yaml:"name"`
	EcoZUID      string `json:"ecoZUID"      yaml:"ecoZUID"`
	RandomHashID string `json:"randomHashID" yaml:"randomHashID"`
	Domain       string `json:"domain"       yaml:"domain"`
	Blueprint    string `json:"blueprintZUID" yaml:"blueprintZUID"`
	CreatedAt    string `json:"createdAt"    yaml:"createdAt"`
	UpdatedAt    string `json:"updatedAt"    yaml:"updatedAt"`
}

// InstanceUser represents a user with a role on an instance.
type InstanceUser struct {
	ZUID      string `json:"ZUID"      yaml:"ZUID"`
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName"  yaml:"lastName"`
	Email     string `json:"email"     yaml:"email"`
	Role      Role   `json:"role"      yaml:"role"`
}

// Role represents a role granted on an instance.
type Role struct {
	ZUID           string `json:"ZUID"           yaml:"ZUID"`
	Name           string `json:"name"           yaml:"name"`
	SystemRoleZUID string `json:"systemRoleZUID" yaml:"systemRoleZUID"`
}

// Domain represents a domain attached to an instance.
type Domain struct {
	ZUID         string `json:"ZUID"         yaml:"ZUID"`
	InstanceZUID string `json:"instanceZUID" yaml:"instanceZUID"`
	Domain       string `json:"domain"       yaml:"domain"`
	Branch       string `json:"branch"       yaml:"branch"`
	CreatedAt    string `json:"createdAt"    yaml:"createdAt"`
}

// Session is the payload returned when a token is verified.
type Session struct {
	UserZUID  string `json:"userZUID"  yaml:"userZUID"`
	ExpiresAt string `json:"expiresAt" yaml:"expiresAt"`
}
