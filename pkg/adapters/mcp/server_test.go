package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/extrude"
	"github.com/aretw0/extrude/pkg/domain"
	"github.com/aretw0/extrude/pkg/geom"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func rpc(t *testing.T, s *Server, method string, params any) string {
	t.Helper()
	msg, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)
	resp := s.mcpServer.HandleMessage(context.Background(), msg)
	out, err := json.Marshal(resp)
	require.NoError(t, err)
	return string(out)
}

func TestServer_Tools(t *testing.T) {
	s := NewServer(extrude.New(), nil)
	assert.Equal(t, []string{
		"generate_frame", "generate_rail", "generate_track",
		"get_result", "list_results",
	}, s.Tools())
}

func TestServer_Generate(t *testing.T) {
	eng := extrude.New()
	s := NewServer(eng, nil)

	resp, err := s.handleGenerate(context.Background(), "rail", map[string]any{"degradation_state": 10.0})
	require.NoError(t, err)
	require.NotNil(t, resp.Result)
	assert.Equal(t, 15.0, resp.Result.Dimensions["wear"])

	stored, err := eng.Result(context.Background(), resp.Result.ID)
	require.NoError(t, err)
	assert.Equal(t, "rail", stored.Unit)
}

func TestServer_GenerateInfeasible(t *testing.T) {
	s := NewServer(extrude.New(), nil)

	_, err := s.handleGenerate(context.Background(), "frame", map[string]any{"wall_thickness": 20.0})
	assert.ErrorIs(t, err, geom.ErrInfeasible)
}

func TestServer_GenerateOverRPC(t *testing.T) {
	s := NewServer(extrude.New(), nil)

	out := rpc(t, s, "tools/call", map[string]any{
		"name":      "generate_track",
		"arguments": map[string]any{"profile_scale": 2},
	})
	assert.Contains(t, out, `"unit":"track"`)
	assert.NotContains(t, out, `"isError":true`)

	out = rpc(t, s, "tools/call", map[string]any{
		"name":      "generate_frame",
		"arguments": map[string]any{"wall_thickness": 20},
	})
	assert.Contains(t, out, `"isError":true`)
	assert.Contains(t, out, "non-positive cavity")
}

func TestServer_GetResult(t *testing.T) {
	eng := extrude.New()
	s := NewServer(eng, nil)
	res, err := eng.Generate(context.Background(), "frame", nil)
	require.NoError(t, err)

	got, err := s.handleGetResult(context.Background(), call("get_result", map[string]any{"id": res.ID}))
	require.NoError(t, err)
	require.False(t, got.IsError)
	require.Len(t, got.Content, 1)
	text, ok := got.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var decoded domain.Result
	require.NoError(t, json.Unmarshal([]byte(text.Text), &decoded))
	assert.Equal(t, res.Solid.Fingerprint, decoded.Solid.Fingerprint)

	missing, err := s.handleGetResult(context.Background(), call("get_result", map[string]any{"id": "nope"}))
	require.NoError(t, err)
	assert.True(t, missing.IsError)

	empty, err := s.handleGetResult(context.Background(), call("get_result", nil))
	require.NoError(t, err)
	assert.True(t, empty.IsError)
}

func TestServer_UnitsResource(t *testing.T) {
	s := NewServer(extrude.New(), nil)

	contents, err := s.readUnits(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text := contents[0].(mcp.TextResourceContents)
	assert.Equal(t, UnitsURI, text.URI)

	var units []domain.Unit
	require.NoError(t, json.Unmarshal([]byte(text.Text), &units))
	require.Len(t, units, 3)
	assert.Equal(t, "track", units[2].Name)
}
