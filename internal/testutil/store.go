package testutil

import (
	"sync"

	"github.com/google/uuid"

	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

// Fixture identifiers seeded into every Platform.
const (
	ArticlesModelZUID = "6-556370-8gp8bs"
	AuthorsModelZUID  = "6-a1b2c3-authors"
	TitleFieldZUID    = "12-f1e2d3-title"
	BodyFieldZUID     = "12-f1e2d3-body"
	ArticleItemZUID   = "7-b939a4-457q19"
	DraftItemZUID     = "7-c0ffee-draft1"
	ProtocolSetting   = "29-abc123-protocol"
	DomainSetting     = "29-abc123-domain"
	SlashSetting      = "29-abc123-slash"
	FirstAuditZUID    = "15-aud001-first"
	SecondAuditZUID   = "15-aud002-second"
	MediaBinZUID      = "1-6c9618c-r26pt"
	MediaGroupZUID    = "2-6c9618c-gp01"
	MediaFileZUID     = "3-6c9618c-fl01"
	StorageDriver     = "gcp"
	StorageName       = "zesty-media-bucket"
	ArticleLatest     = 3
)

type store struct {
	mu sync.Mutex

	models      []zesty.Model
	fields      map[string][]zesty.Field
	items       map[string][]zesty.Item
	versions    map[string][]zesty.Item
	publishings map[string][]zesty.Publishing
	settings    []zesty.Setting
	audits      []zesty.AuditLog
	bins        []zesty.Bin
	groups      []zesty.Group
	files       []zesty.File
}

func newStore() *store {
	// Versions are deliberately unordered.
	articleVersions := make([]zesty.Item, 0, ArticleLatest)
	for _, version := range []int{2, ArticleLatest, 1} {
		articleVersions = append(articleVersions, articleItem(version))
	}

	draft := zesty.Item{
		Meta: zesty.ItemMeta{ZUID: DraftItemZUID, ContentModelZUID: ArticlesModelZUID, Version: 1},
		Web:  zesty.ItemWeb{MetaTitle: "Draft post", PathPart: "draft-post"},
		Data: map[string]any{"title": "Draft post"},
	}

	return &store{
		models: []zesty.Model{
			{ZUID: ArticlesModelZUID, Name: "articles", Label: "Articles", Type: "templateset", Listed: true},
			{ZUID: AuthorsModelZUID, Name: "authors", Label: "Authors", Type: "dataset", Listed: true},
		},
		fields: map[string][]zesty.Field{
			ArticlesModelZUID: {
				{ZUID: TitleFieldZUID, ContentModelZUID: ArticlesModelZUID, Name: "title", Label: "Title", Datatype: "text", Required: true, Sort: 1},
				{ZUID: BodyFieldZUID, ContentModelZUID: ArticlesModelZUID, Name: "body", Label: "Body", Datatype: "wysiwyg_basic", Sort: 2},
			},
		},
		items: map[string][]zesty.Item{
			ArticlesModelZUID: {articleItem(ArticleLatest), draft},
		},
		versions: map[string][]zesty.Item{
			ArticleItemZUID: articleVersions,
			DraftItemZUID:   {draft},
		},
		publishings: map[string][]zesty.Publishing{
			ArticleItemZUID: {{ZUID: "18-pub001", ItemZUID: ArticleItemZUID, Version: 2}},
		},
		settings: []zesty.Setting{
			{ID: 1, ZUID: ProtocolSetting, Category: "general", Key: "site_protocol", Value: "https"},
			{ID: 2, ZUID: DomainSetting, Category: "general", Key: "preferred_domain_prefix", Value: "www"},
			{ID: 3, ZUID: SlashSetting, Category: "seo", Key: "trailing_slash", Value: "0"},
		},
		audits: []zesty.AuditLog{
			{ZUID: FirstAuditZUID, AffectedZUID: ArticleItemZUID, Action: 2, Email: "cloud@example.com"},
			{ZUID: SecondAuditZUID, AffectedZUID: ArticlesModelZUID, Action: 1, Email: "tifa@example.com"},
		},
		bins: []zesty.Bin{
			{
				ID: MediaBinZUID, Name: "Main bin", SiteID: TestInstanceZUID,
				StorageDriver: StorageDriver, StorageName: StorageName, Default: true,
			},
		},
		groups: []zesty.Group{
			{ID: MediaGroupZUID, BinID: MediaBinZUID, GroupID: MediaBinZUID, Name: "Heroes"},
		},
		files: []zesty.File{
			{ID: MediaFileZUID, BinID: MediaBinZUID, GroupID: MediaGroupZUID, Filename: "cloud.jpg", Title: "Cloud"},
		},
	}
}

func articleItem(version int) zesty.Item {
	return zesty.Item{
		Meta: zesty.ItemMeta{ZUID: ArticleItemZUID, ContentModelZUID: ArticlesModelZUID, Version: version},
		Web:  zesty.ItemWeb{Version: version, MetaTitle: "Welcome to Midgar", PathPart: "welcome-to-midgar"},
		Data: map[string]any{"title": "Welcome to Midgar"},
	}
}

func newZUID(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}
