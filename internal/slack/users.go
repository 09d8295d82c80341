package slack

import (
	"encoding/json"
	"fmt"
	"os"
)

// User is one entry of users.json.
type User struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	RealName string  `json:"real_name"`
	Profile  Profile `json:"profile"`
	IsBot    bool    `json:"is_bot"`
	Deleted  bool    `json:"deleted"`
}

// Profile is the nested profile object of a user.
type Profile struct {
	RealName    string `json:"real_name"`
	DisplayName string `json:"display_name"`
}

// DisplayName picks the best human-readable name for the user:
// profile real name, then top-level real name, then display name, then the
// login name.
func (u User) DisplayName() string {
	switch {
	case u.Profile.RealName != "":
		return u.Profile.RealName
	case u.RealName != "":
		return u.RealName
	case u.Profile.DisplayName != "":
		return u.Profile.DisplayName
	default:
		return u.Name
	}
}

// Directory maps an opaque user ID to a display name. It is presentation
// only: extraction and aggregation always work on raw IDs.
type Directory map[string]string

// NewDirectory builds the ID-to-name mapping from users.json entries.
func NewDirectory(users []User) Directory {
	dir := make(Directory, len(users))
	for _, u := range users {
		dir[u.ID] = u.DisplayName()
	}
	return dir
}

// LoadUsers reads and decodes a users.json file.
func LoadUsers(path string) ([]User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse users %s: %w", path, err)
	}
	return users, nil
}
