package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/waypoint/config"
	"github.com/quasilyte/gdata"
)

// progressKey is the gdata item holding SavedProgress.
const progressKey = "progress"

var gdataManager *gdata.Manager

// SavedProgress is what survives between launches.
type SavedProgress struct {
	LastLevel string `json:"lastLevel"`
}

// InitPersistence opens the gdata store. Saving stays disabled if this fails
// or WAYPOINT_NO_SAVE is set.
func InitPersistence() error {
	if cfg.Debug.NoSave {
		return nil
	}
	m, err := gdata.Open(gdata.Config{
		AppName: "waypoint",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadProgress returns the saved progress, or nil if there is none.
func LoadProgress() *SavedProgress {
	if gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem(progressKey)
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil
	}
	return &progress
}

// SaveLastLevel records level as the one to start in next time.
func SaveLastLevel(level string) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(SavedProgress{LastLevel: level})
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(progressKey, data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
		return err
	}
	return nil
}
