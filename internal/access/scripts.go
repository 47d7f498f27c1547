package access

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

type scriptRequest struct {
	Script    string   `json:"script"`
	Arguments []string `json:"arguments"`
}

// ExecuteScript runs a read-only Cadence script against the latest sealed block.
func (c *Client) ExecuteScript(ctx context.Context, script []byte, args []Value) (Value, error) {
	req := scriptRequest{
		Script:    base64.StdEncoding.EncodeToString(script),
		Arguments: make([]string, 0, len(args)),
	}
	for i, arg := range args {
		encoded, err := json.Marshal(arg)
		if err != nil {
			return Value{}, fmt.Errorf("encoding argument %d: %w", i, err)
		}
		req.Arguments = append(req.Arguments, base64.StdEncoding.EncodeToString(encoded))
	}

	body, err := c.post(ctx, "/v1/scripts?block_height=sealed", req)
	if err != nil {
		return Value{}, fmt.Errorf("executing script: %w", err)
	}
	return decodeScriptResult(body)
}

// decodeScriptResult parses the response: a JSON string holding base64 JSON-Cadence.
func decodeScriptResult(body []byte) (Value, error) {
	var encoded string
	if err := json.Unmarshal(body, &encoded); err != nil {
		return Value{}, fmt.Errorf("parsing script response: %w", err)
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Value{}, fmt.Errorf("decoding script result: %w", err)
	}
	var v Value
	if err := json.Unmarshal(raw, &v); err != nil {
		return Value{}, fmt.Errorf("parsing cadence value: %w", err)
	}
	return v, nil
}
