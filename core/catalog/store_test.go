package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Roundtrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	saved := New([]Influencer{record("tt_a", 75_000), record("tt_b", 300)})
	require.NoError(t, store.Save("tiktok.json", saved))

	loaded, err := store.Load("tiktok.json")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved.Count, loaded.Count)
	assert.Equal(t, ids(saved), ids(loaded))
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := NewFileStore(t.TempDir())

	c, err := store.Load("youtube.json")
	assert.NoError(t, err, "a missing catalog is a first run, not an error")
	assert.Nil(t, c)
}

func TestFileStore_LoadIndex(t *testing.T) {
	store := NewFileStore(t.TempDir())

	yt := record("yt_UC1", 100)
	yt.YouTube = &YouTubeExtra{ChannelID: "UC1"}
	require.NoError(t, store.Save("youtube.json", New([]Influencer{yt})))

	index, err := store.LoadIndex("youtube.json")
	require.NoError(t, err)
	assert.Contains(t, index, "UC1", "index keys on the identity key, not the id")

	empty, err := store.LoadIndex("instagram.json")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFileStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	require.NoError(t, store.Save("tiktok.json", New(nil)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tiktok.json", entries[0].Name())
}

func TestFileStore_SaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewFileStore(dir)

	require.NoError(t, store.Save("tiktok.json", New(nil)))
	assert.FileExists(t, store.Path("tiktok.json"))
}

func TestFileStore_ReadRaw(t *testing.T) {
	store := NewFileStore(t.TempDir())
	require.NoError(t, store.Save("tiktok.json", New(nil)))

	data, err := store.ReadRaw("tiktok.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"influencers"`)

	_, err = store.ReadRaw("youtube.json")
	assert.Error(t, err, "publication needs the file to exist")
}
