package postgres

// Error messages
const (
	ErrMsgSyncMetadataNotFound = "sync metadata not found"
	ErrMsgUnknownCollection    = "unknown catalog collection"
)

// collectionTables maps catalog collections to their tables
var collectionTables = map[string]string{
	"items":        "items",
	"quests":       "quests",
	"workstations": "workstations",
	"projects":     "projects",
}
