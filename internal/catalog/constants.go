package catalog

// File operation error messages
const (
	ErrMsgReadFileFailed   = "failed to read %s: %w"
	ErrMsgParseFileFailed  = "failed to parse %s: %w"
	ErrMsgSchemaFailed     = "schema validation failed for %s: %w"
	ErrMsgMissingKey       = "%w: %s has no %q array"
	ErrMsgLoadExisting     = "failed to load existing %s: %w"
	ErrMsgUpsertFailed     = "failed to upsert %s '%s': %w"
	ErrMsgDeleteStale      = "failed to remove stale %s: %w"
	ErrMsgLoadCollection   = "failed to load %s from repository: %w"
	ErrMsgFingerprintBuild = "failed to fingerprint catalog: %w"
)

// Validation error format strings
const (
	ErrFmtEmptyID        = "%w: %s at index %d has empty id"
	ErrFmtDuplicateID    = "%w: duplicate %s id '%s'"
	ErrFmtNegativeValue  = "%w: item '%s' has negative value"
	ErrFmtBadRarity      = "%w: item '%s' has unknown rarity %q"
	ErrFmtBadRecipeQty   = "%w: item '%s' recycles into '%s' with quantity %d"
	ErrFmtLevelsExceeded = "%w: workstation '%s' defines %d levels but max_level is %d"
)

// Referential integrity warnings
const (
	WarnFmtUnknownOutput      = "item '%s' recycles into unknown item '%s'"
	WarnFmtRecipeCycle        = "item '%s' is part of a recycling cycle"
	WarnFmtUnknownQuestItem   = "quest '%s' references unknown item '%s'"
	WarnFmtUnknownQuestLink   = "quest '%s' links to unknown quest '%s'"
	WarnFmtUnknownLevelItem   = "workstation '%s' level %d requires unknown item '%s'"
	WarnFmtUnknownPhaseItem   = "project '%s' phase %d requires unknown item '%s'"
	WarnFmtAsymmetricQuestDAG = "quest '%s' lists '%s' as next but '%s' does not list it as previous"
)

// Log messages
const (
	LogMsgCollectionUnchanged = "Catalog collection unchanged, skipping sync"
	LogMsgCollectionSynced    = "Catalog collection synced"
	LogMsgUpdateMetadata      = "Failed to update sync metadata"
	LogMsgValidationWarning   = "Catalog validation warning"
	LogMsgSnapshotLoaded      = "Catalog snapshot loaded"
)

// snapshotKey is the single cache slot of the provider
const snapshotKey = "catalog"

// fileName returns the JSON file that holds a collection
func fileName(collection string) string {
	return collection + ".json"
}
