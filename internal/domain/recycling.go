package domain

// RecyclingNode is one position in a recycling tree. The same item may appear at
// several positions with different quantities; PathID keeps them distinct.
type RecyclingNode struct {
	Item     *Item            `json:"item"`
	Quantity int              `json:"quantity"`
	Depth    int              `json:"depth"`
	Produces map[string]int   `json:"produces"`
	Children []*RecyclingNode `json:"children"`
	PathID   string           `json:"path_id"`
	// Cycle marks a node whose item already appears among its ancestors; it is not expanded.
	Cycle bool `json:"cycle,omitempty"`
}

// IsLeaf reports whether the node has no children
func (n *RecyclingNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// RecyclingMetrics summarizes how an item behaves when recycled
type RecyclingMetrics struct {
	ItemID        string `json:"item_id"`
	Depth         int    `json:"depth"`
	Efficiency    int    `json:"efficiency"`
	IsTerminal    bool   `json:"is_terminal"`
	TotalValue    int    `json:"total_value"`
	CanBeRecycled bool   `json:"can_be_recycled"`
}

// RecyclingStep is a single decomposition within a RecyclingPath
type RecyclingStep struct {
	InputItem  *Item          `json:"input_item"`
	Outputs    map[string]int `json:"outputs"`
	StepNumber int            `json:"step_number"`
}

// RecyclingPath is one walk from a recyclable source item down to a target material
type RecyclingPath struct {
	SourceItem     *Item           `json:"source_item"`
	TargetMaterial *Item           `json:"target_material"`
	Steps          []RecyclingStep `json:"steps"`
	TotalSteps     int             `json:"total_steps"`
	Efficiency     int             `json:"efficiency"`
	FinalQuantity  int             `json:"final_quantity"`
	ValueCost      int             `json:"value_cost"`
}
