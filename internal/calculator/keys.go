package calculator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

const (
	workstationKeySep = "-level-"
	projectKeySep     = "-phase-"
)

// WorkstationKey builds the selection key for a workstation level by its index in Levels
func WorkstationKey(workstationID string, index int) string {
	return workstationID + workstationKeySep + strconv.Itoa(index)
}

// ProjectKey builds the selection key for a project phase by phase number
func ProjectKey(projectID string, phase int) string {
	return projectID + projectKeySep + strconv.Itoa(phase)
}

// ParseWorkstationKey splits "{workstationId}-level-{index}"
func ParseWorkstationKey(key string) (string, int, error) {
	return splitKey(key, workstationKeySep)
}

// ParseProjectKey splits "{projectId}-phase-{phaseNumber}"
func ParseProjectKey(key string) (string, int, error) {
	return splitKey(key, projectKeySep)
}

// splitKey uses the last separator so ids may themselves contain it
func splitKey(key, sep string) (string, int, error) {
	i := strings.LastIndex(key, sep)
	if i <= 0 {
		return "", 0, fmt.Errorf("%w: %q", domain.ErrInvalidSelectionKey, key)
	}
	n, err := strconv.Atoi(key[i+len(sep):])
	if err != nil || n < 0 {
		return "", 0, fmt.Errorf("%w: %q", domain.ErrInvalidSelectionKey, key)
	}
	return key[:i], n, nil
}
