package playground

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authorizedbuyers/marketplace-samples/internal/marketplace"
)

func TestStatePersistence_SaveAndLoad(t *testing.T) {
	config := &PersistenceConfig{
		Enabled:  true,
		FilePath: filepath.Join(t.TempDir(), "nested", "state.json"),
	}
	state := newTestState(t)
	_, err := state.CreateClient(testBuyer, &marketplace.Client{
		DisplayName: marketplace.String("Persisted"),
		Role:        marketplace.String("CLIENT_DEAL_VIEWER"),
	})
	require.NoError(t, err)

	sp, err := NewStatePersistence(state, config)
	require.NoError(t, err)
	require.NotNil(t, sp)
	assert.True(t, sp.LastSave().IsZero())

	require.NoError(t, sp.SaveStateWithRetry())
	assert.False(t, sp.LastSave().IsZero())
	_, err = os.Stat(config.FilePath + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file is renamed away")

	export, err := LoadStateFromFile(config)
	require.NoError(t, err)
	require.NotNil(t, export)

	restored := NewState()
	require.NoError(t, restored.Import(export))
	assert.Equal(t, 3, restored.Counts()["clients"])
}

func TestLoadStateFromFile(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		export, err := LoadStateFromFile(&PersistenceConfig{FilePath: filepath.Join(t.TempDir(), "none.json")})
		assert.NoError(t, err)
		assert.Nil(t, export)
	})

	t.Run("Corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := LoadStateFromFile(&PersistenceConfig{FilePath: path})
		assert.Error(t, err)
	})

	t.Run("Nil config", func(t *testing.T) {
		export, err := LoadStateFromFile(nil)
		assert.NoError(t, err)
		assert.Nil(t, export)
	})
}

func TestStatePersistence_Stop(t *testing.T) {
	config := &PersistenceConfig{
		Enabled:      true,
		FilePath:     filepath.Join(t.TempDir(), "state.json"),
		AutoSave:     true,
		SaveInterval: 3600,
	}
	sp, err := NewStatePersistence(newTestState(t), config)
	require.NoError(t, err)
	require.NotNil(t, sp.scheduler)

	require.NoError(t, sp.Stop())
	assert.Nil(t, sp.scheduler)
	_, err = os.Stat(config.FilePath)
	assert.NoError(t, err, "Stop performs a final save")

	var nilPersistence *StatePersistence
	assert.NoError(t, nilPersistence.Stop())
}

func TestNewServerWithConfig_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	config := &PlaygroundConfig{Persistence: &PersistenceConfig{Enabled: true, FilePath: path}}

	first := newTestServer(t, config)
	rec := doRequest(t, first, "POST", "/v1/buyers/12345678/clients", `{"displayName":"Saved client","role":"CLIENT_DEAL_VIEWER"}`)
	require.Equal(t, 200, rec.Code, rec.Body.String())
	rec = doRequest(t, first, "POST", "/state/save", "")
	require.Equal(t, 200, rec.Code, rec.Body.String())

	second := newTestServer(t, config)
	assert.Equal(t, 3, second.GetState().Counts()["clients"], "persisted state replaces the seed")
}
