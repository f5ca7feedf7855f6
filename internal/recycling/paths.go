package recycling

import (
	"math"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

// FindPaths searches the whole catalog for every recyclable item whose decomposition,
// possibly over several steps, yields targetID. maxDepth bounds the number of steps per
// path (values <= 0 use domain.DefaultPathMaxDepth). Paths are returned in discovery order;
// filtering and sorting are left to the caller.
func FindPaths(targetID string, catalog *domain.Catalog, maxDepth int) []domain.RecyclingPath {
	if maxDepth <= 0 {
		maxDepth = domain.DefaultPathMaxDepth
	}

	paths := []domain.RecyclingPath{}
	target, ok := catalog.Item(targetID)
	if !ok {
		return paths
	}

	for i := range catalog.Items {
		source := &catalog.Items[i]
		if source.IsTerminal() {
			continue
		}
		f := &pathFinder{
			catalog:  catalog,
			source:   source,
			target:   target,
			maxDepth: maxDepth,
		}
		f.search(source, nil, 1)
		paths = append(paths, f.found...)
	}

	return paths
}

// pathFinder walks the recipe graph below a single source item
type pathFinder struct {
	catalog  *domain.Catalog
	source   *domain.Item
	target   *domain.Item
	maxDepth int
	found    []domain.RecyclingPath
}

// search explores current with the steps taken so far and the quantity of current
// obtained from one unit of the source.
func (f *pathFinder) search(current *domain.Item, steps []domain.RecyclingStep, quantity int) {
	if len(steps) >= f.maxDepth {
		return
	}
	for _, step := range steps {
		if step.InputItem.ID == current.ID {
			return
		}
	}

	next := make([]domain.RecyclingStep, len(steps), len(steps)+1)
	copy(next, steps)
	next = append(next, domain.RecyclingStep{
		InputItem:  current,
		Outputs:    current.RecyclesInto,
		StepNumber: len(steps) + 1,
	})

	if qty, ok := current.RecyclesInto[f.target.ID]; ok {
		f.record(next, quantity*qty)
	}

	for _, outputID := range sortedOutputs(current.RecyclesInto) {
		if outputID == f.target.ID {
			continue
		}
		output, ok := f.catalog.Item(outputID)
		if !ok || output.IsTerminal() {
			continue
		}
		f.search(output, next, quantity*current.RecyclesInto[outputID])
	}
}

// record stores a completed path. Efficiency is end-to-end: the value of the target
// obtained versus the value of the source consumed.
func (f *pathFinder) record(steps []domain.RecyclingStep, finalQuantity int) {
	eff := 0
	if f.source.Value != 0 {
		outputValue := float64(finalQuantity * f.target.Value)
		eff = int(math.Round(outputValue / float64(f.source.Value) * 100))
	}

	f.found = append(f.found, domain.RecyclingPath{
		SourceItem:     f.source,
		TargetMaterial: f.target,
		Steps:          steps,
		TotalSteps:     len(steps),
		Efficiency:     eff,
		FinalQuantity:  finalQuantity,
		ValueCost:      f.source.Value,
	})
}
