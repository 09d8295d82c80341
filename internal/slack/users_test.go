package slack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayNameFallbacks(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{
			name: "profile real name wins",
			user: User{Name: "abel", RealName: "A. Kidane", Profile: Profile{RealName: "Abel Kidane"}},
			want: "Abel Kidane",
		},
		{
			name: "top-level real name",
			user: User{Name: "abel", RealName: "Abel Kidane"},
			want: "Abel Kidane",
		},
		{
			name: "display name",
			user: User{Name: "abel", Profile: Profile{DisplayName: "abel.k"}},
			want: "abel.k",
		},
		{
			name: "login name last",
			user: User{Name: "abel"},
			want: "abel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.DisplayName())
		})
	}
}

func TestNewDirectory(t *testing.T) {
	dir := NewDirectory([]User{
		{ID: "U01", Profile: Profile{RealName: "Abel Kidane"}},
		{ID: "U02", Name: "bot", IsBot: true},
	})

	assert.Equal(t, "Abel Kidane", dir["U01"])
	assert.Equal(t, "bot", dir["U02"])
	_, ok := dir["U99"]
	assert.False(t, ok)
}

func TestLoadUsers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	data := `[
		{"id": "U01", "name": "abel", "profile": {"real_name": "Abel Kidane"}, "is_bot": false},
		{"id": "U02", "name": "reminder", "is_bot": true, "deleted": true}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	users, err := LoadUsers(path)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "U01", users[0].ID)
	assert.True(t, users[1].IsBot)
	assert.True(t, users[1].Deleted)
}

func TestLoadUsersMissingFile(t *testing.T) {
	_, err := LoadUsers(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadChannels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channels.json")
	data := `[{"id": "C01", "name": "general", "created": 1599934232, "creator": "U01"}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	channels, err := LoadChannels(path)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, "general", channels[0].Name)
}
