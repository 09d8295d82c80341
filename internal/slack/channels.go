package slack

import (
	"encoding/json"
	"fmt"
	"os"
)

// Channel is one entry of channels.json.
type Channel struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Created    int64  `json:"created"`
	Creator    string `json:"creator"`
	IsArchived bool   `json:"is_archived"`
}

// LoadChannels reads and decodes a channels.json file.
func LoadChannels(path string) ([]Channel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read channels: %w", err)
	}
	var channels []Channel
	if err := json.Unmarshal(data, &channels); err != nil {
		return nil, fmt.Errorf("parse channels %s: %w", path, err)
	}
	return channels, nil
}
