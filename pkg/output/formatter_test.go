package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/BRAVO68WEB/greeter/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintRoutes_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintRoutes(&buf, server.Routes(), "table"))

	out := buf.String()
	assert.Contains(t, out, "METHOD")
	assert.Contains(t, out, "GET")
	assert.Contains(t, out, "Static JSON greeting")
}

func TestPrintRoutes_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintRoutes(&buf, server.Routes(), "json"))

	var got []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "GET", got[0]["method"])
	assert.Equal(t, "/", got[0]["path"])
}

func TestPrintRoutes_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, PrintRoutes(&buf, server.Routes(), "yaml"))
	assert.Empty(t, buf.String())
}

func TestPrintError_ReturnsMessage(t *testing.T) {
	err := PrintError("boom")
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
}
