package playgroundcli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authorizedbuyers/marketplace-samples/internal/playground"
)

func TestNewCommand(t *testing.T) {
	cmd := NewCommand("playground")
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"start", "status", "config"}, names)

	start, _, err := cmd.Find([]string{"start"})
	require.NoError(t, err)
	port, err := start.Flags().GetInt("port")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)
}

func TestPrintStatus(t *testing.T) {
	playground.SetLogOutput(io.Discard)
	server, err := playground.NewServerWithConfig(0, "localhost", &playground.PlaygroundConfig{})
	require.NoError(t, err)
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	var out bytes.Buffer
	require.NoError(t, printStatus(&out, ts.Client(), ts.URL+"/"))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 1+len(resourceKinds))
	assert.Contains(t, lines[0], "Playground server is running at "+ts.URL)
	assert.Equal(t, "  clients              2", lines[1])
	assert.Equal(t, "  publisher_profiles   2", lines[len(lines)-1])
}

func TestPrintStatus_Errors(t *testing.T) {
	t.Run("Unhealthy", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer ts.Close()
		err := printStatus(io.Discard, ts.Client(), ts.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("No server", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		url := ts.URL
		ts.Close()
		err := printStatus(io.Discard, &http.Client{Timeout: time.Second}, url)
		require.Error(t, err)
		assert.Equal(t, "no playground server found at "+url, err.Error())
	})
}

func TestConfigCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := NewConfigCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	header, body, ok := strings.Cut(out.String(), "\n")
	require.True(t, ok)
	assert.Contains(t, header, "config.json")

	var config playground.PlaygroundConfig
	require.NoError(t, json.Unmarshal([]byte(body), &config))
}
