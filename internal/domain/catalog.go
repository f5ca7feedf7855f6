package domain

// Catalog is an immutable snapshot of every catalog collection with id lookups.
// Build it with NewCatalog and never mutate the slices afterwards.
type Catalog struct {
	Items        []Item
	Quests       []Quest
	Workstations []Workstation
	Projects     []Project
	// Version identifies the snapshot (content hash or load time); empty for ad-hoc catalogs
	Version string

	itemsByID        map[string]*Item
	questsByID       map[string]*Quest
	workstationsByID map[string]*Workstation
	projectsByID     map[string]*Project
}

// NewCatalog indexes the given collections. Later duplicates of an id shadow earlier ones.
func NewCatalog(items []Item, quests []Quest, workstations []Workstation, projects []Project) *Catalog {
	c := &Catalog{
		Items:            items,
		Quests:           quests,
		Workstations:     workstations,
		Projects:         projects,
		itemsByID:        make(map[string]*Item, len(items)),
		questsByID:       make(map[string]*Quest, len(quests)),
		workstationsByID: make(map[string]*Workstation, len(workstations)),
		projectsByID:     make(map[string]*Project, len(projects)),
	}
	for i := range items {
		c.itemsByID[items[i].ID] = &c.Items[i]
	}
	for i := range quests {
		c.questsByID[quests[i].ID] = &c.Quests[i]
	}
	for i := range workstations {
		c.workstationsByID[workstations[i].ID] = &c.Workstations[i]
	}
	for i := range projects {
		c.projectsByID[projects[i].ID] = &c.Projects[i]
	}
	return c
}

// Item looks up an item by id
func (c *Catalog) Item(id string) (*Item, bool) {
	if c == nil {
		return nil, false
	}
	item, ok := c.itemsByID[id]
	return item, ok
}

// Quest looks up a quest by id
func (c *Catalog) Quest(id string) (*Quest, bool) {
	if c == nil {
		return nil, false
	}
	q, ok := c.questsByID[id]
	return q, ok
}

// Workstation looks up a workstation by id
func (c *Catalog) Workstation(id string) (*Workstation, bool) {
	if c == nil {
		return nil, false
	}
	w, ok := c.workstationsByID[id]
	return w, ok
}

// Project looks up a project by id
func (c *Catalog) Project(id string) (*Project, bool) {
	if c == nil {
		return nil, false
	}
	p, ok := c.projectsByID[id]
	return p, ok
}
