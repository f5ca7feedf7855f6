package domain

// Catalog collection names, used as sync metadata keys and config file stems
const (
	CollectionItems        = "items"
	CollectionQuests       = "quests"
	CollectionWorkstations = "workstations"
	CollectionProjects     = "projects"
)

// CategoryCustom is the bucket for calculator entries whose item is not in the catalog
const CategoryCustom = "Custom"

// CategoryUncategorized is the bucket for catalog items without a type
const CategoryUncategorized = "Uncategorized"

// Recycling search defaults
const (
	DefaultPathMaxDepth = 10
	MaxChainDepth       = 32
)
