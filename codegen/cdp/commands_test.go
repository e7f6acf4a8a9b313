package cdp

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCommand(t *testing.T, domain, raw string) Command {
	t.Helper()
	var node CommandNode
	require.NoError(t, json.Unmarshal([]byte(raw), &node))
	return newCommand(node, domain)
}

func TestEmitCommandNoParamsNoReturns(t *testing.T) {
	cmd := mustCommand(t, "Accessibility", `{
		"name": "disable",
		"description": "Disables the accessibility domain."
	}`)
	imports := newImportSet()
	r := newResolver("Accessibility", imports)

	got, err := emitCommand(&cmd, r)
	require.NoError(t, err)
	assert.Equal(t, `// Disables the accessibility domain.
func Disable() *DisableCall {
	return &DisableCall{req: wire.Request{Method: "Accessibility.disable"}}
}

// DisableCall is the in-flight state of the Accessibility.disable command. It accepts
// exactly one response.
type DisableCall struct {
	req wire.Request
	done bool
}

// Request returns the wire request to hand to the transport.
func (c *DisableCall) Request() wire.Request {
	return c.req
}

// Resume decodes the wire response and completes the call. Resuming a
// completed call reports wire.ErrCallDone.
func (c *DisableCall) Resume(result []byte) error {
	if c.done {
		return wire.ErrCallDone
	}
	c.done = true
	return nil
}`, got)
	assert.True(t, imports.needWire)
	assert.False(t, imports.needJSON)
}

func TestEmitCommandOptionalCrossDomainParams(t *testing.T) {
	cmd := mustCommand(t, "Accessibility", `{
		"name": "getPartialAXTree",
		"description": "Fetches the accessibility node and partial accessibility tree for this DOM node, if it exists.",
		"experimental": true,
		"parameters": [
			{"name": "nodeId", "$ref": "DOM.NodeId", "optional": true},
			{"name": "backendNodeId", "$ref": "DOM.BackendNodeId", "optional": true},
			{"name": "objectId", "$ref": "Runtime.RemoteObjectId", "optional": true},
			{"name": "fetchRelatives", "type": "boolean", "optional": true}
		],
		"returns": [
			{"name": "nodes", "type": "array", "items": {"$ref": "AXNode"}}
		]
	}`)
	imports := newImportSet()
	r := newResolver("Accessibility", imports)

	got, err := emitCommand(&cmd, r)
	require.NoError(t, err)
	assert.Equal(t, golden(`// Fetches the accessibility node and partial accessibility tree for this DOM node, if it exists.
//
// Experimental.
func GetPartialAXTree(nodeID *dom.NodeId, backendNodeID *dom.BackendNodeId, objectID *runtime.RemoteObjectId, fetchRelatives *bool) *GetPartialAXTreeCall {
	params := make(map[string]any)
	if nodeID != nil {
		params["nodeId"] = *nodeID
	}
	if backendNodeID != nil {
		params["backendNodeId"] = *backendNodeID
	}
	if objectID != nil {
		params["objectId"] = *objectID
	}
	if fetchRelatives != nil {
		params["fetchRelatives"] = *fetchRelatives
	}
	return &GetPartialAXTreeCall{req: wire.Request{Method: "Accessibility.getPartialAXTree", Params: params}}
}

// GetPartialAXTreeCall is the in-flight state of the Accessibility.getPartialAXTree command. It accepts
// exactly one response.
type GetPartialAXTreeCall struct {
	req wire.Request
	done bool
}

// Request returns the wire request to hand to the transport.
func (c *GetPartialAXTreeCall) Request() wire.Request {
	return c.req
}

// Resume decodes the wire response and completes the call. Resuming a
// completed call reports wire.ErrCallDone.
func (c *GetPartialAXTreeCall) Resume(result []byte) ([]AXNode, error) {
	var res struct {
		Nodes []AXNode ~json:"nodes"~
	}
	if c.done {
		return res.Nodes, wire.ErrCallDone
	}
	c.done = true
	err := json.Unmarshal(result, &res)
	return res.Nodes, err
}`), got)
	assert.True(t, imports.needWire)
	assert.True(t, imports.needJSON)
	assert.True(t, imports.domains["dom"])
	assert.True(t, imports.domains["runtime"])
}

func TestEmitCommandMultipleReturns(t *testing.T) {
	cmd := mustCommand(t, "Network", `{
		"name": "getEncodedResponse",
		"parameters": [
			{"name": "requestId", "$ref": "RequestId"}
		],
		"returns": [
			{"name": "body", "type": "string", "optional": true},
			{"name": "base64Encoded", "type": "boolean"},
			{"name": "originalSize", "type": "integer"}
		]
	}`)
	r := newResolver("Network", newImportSet())

	got, err := emitCommand(&cmd, r)
	require.NoError(t, err)
	assert.Equal(t, golden(`func GetEncodedResponse(requestID RequestId) *GetEncodedResponseCall {
	params := make(map[string]any)
	params["requestId"] = requestID
	return &GetEncodedResponseCall{req: wire.Request{Method: "Network.getEncodedResponse", Params: params}}
}

// GetEncodedResponseCall is the in-flight state of the Network.getEncodedResponse command. It accepts
// exactly one response.
type GetEncodedResponseCall struct {
	req wire.Request
	done bool
}

// Request returns the wire request to hand to the transport.
func (c *GetEncodedResponseCall) Request() wire.Request {
	return c.req
}

// Resume decodes the wire response and completes the call. Resuming a
// completed call reports wire.ErrCallDone.
func (c *GetEncodedResponseCall) Resume(result []byte) (*string, bool, int64, error) {
	var res struct {
		Body *string ~json:"body,omitempty"~
		Base64Encoded bool ~json:"base64Encoded"~
		OriginalSize int64 ~json:"originalSize"~
	}
	if c.done {
		return res.Body, res.Base64Encoded, res.OriginalSize, wire.ErrCallDone
	}
	c.done = true
	err := json.Unmarshal(result, &res)
	return res.Body, res.Base64Encoded, res.OriginalSize, err
}`), got)
}

// Required parameters precede optional ones in the constructor signature,
// and nil optional arguments never reach the request parameters.
func TestEmitCommandParameterOrdering(t *testing.T) {
	cmd := mustCommand(t, "Browser", `{
		"name": "grantPermissions",
		"parameters": [
			{"name": "browserContextId", "$ref": "BrowserContextID", "optional": true},
			{"name": "permissions", "type": "array", "items": {"$ref": "PermissionType"}},
			{"name": "origin", "type": "string", "optional": true}
		]
	}`)
	r := newResolver("Browser", newImportSet())

	got, err := emitCommand(&cmd, r)
	require.NoError(t, err)
	assert.Contains(t, got, "func GrantPermissions(permissions []PermissionType, browserContextID *BrowserContextID, origin *string) *GrantPermissionsCall {")
	assert.Contains(t, got, `	params["permissions"] = permissions
	if browserContextID != nil {
		params["browserContextId"] = *browserContextID
	}
	if origin != nil {
		params["origin"] = *origin
	}`)
}

// Parameter names that collide with Go keywords gain a trailing underscore.
func TestEmitCommandKeywordParameter(t *testing.T) {
	cmd := mustCommand(t, "Input", `{
		"name": "dispatchKeyEvent",
		"parameters": [
			{"name": "type", "type": "string"}
		]
	}`)
	r := newResolver("Input", newImportSet())

	got, err := emitCommand(&cmd, r)
	require.NoError(t, err)
	assert.Contains(t, got, "func DispatchKeyEvent(type_ string) *DispatchKeyEventCall {")
	assert.Contains(t, got, `params["type"] = type_`)
}
