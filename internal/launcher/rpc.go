package launcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrUnknownMethod is returned for requests naming a method the plugin does
// not implement.
var ErrUnknownMethod = errors.New("unknown method")

// Request is a JSON-RPC call sent by Flow Launcher.
type Request struct {
	Method     string            `json:"method"`
	Parameters []json.RawMessage `json:"parameters"`
}

// Response is the reply to a query call.
type Response struct {
	Result []Entry `json:"result"`
}

// Handler implements the plugin side of the protocol.
type Handler interface {
	Query(ctx context.Context, query string) []Entry
	OpenURL(ctx context.Context, url string) error
	PlayPause(ctx context.Context) error
	Stop(ctx context.Context) error
}

// DecodeRequest parses the JSON request passed by the launcher.
func DecodeRequest(data []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, fmt.Errorf("decode request: %w", err)
	}
	if req.Method == "" {
		return Request{}, errors.New("decode request: missing method")
	}
	return req, nil
}

// StringParam returns parameter i as a string.
// Missing and null parameters read as "".
func (r Request) StringParam(i int) (string, error) {
	if i >= len(r.Parameters) {
		return "", nil
	}
	var s string
	raw := r.Parameters[i]
	if string(raw) == "null" {
		return "", nil
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("parameter %d of %s: %w", i, r.Method, err)
	}
	return s, nil
}

// Dispatch runs req against h. Query results are written to w as a JSON
// response; action methods write nothing.
func Dispatch(ctx context.Context, h Handler, req Request, w io.Writer) error {
	switch req.Method {
	case MethodQuery:
		query, err := req.StringParam(0)
		if err != nil {
			return err
		}
		entries := h.Query(ctx, query)
		if entries == nil {
			entries = []Entry{}
		}
		return WriteResponse(w, entries)
	case MethodOpenURL:
		url, err := req.StringParam(0)
		if err != nil {
			return err
		}
		if url == "" {
			return errors.New("open_url: missing url")
		}
		return h.OpenURL(ctx, url)
	case MethodPlayPause:
		return h.PlayPause(ctx)
	case MethodStop:
		return h.Stop(ctx)
	}
	return fmt.Errorf("%w: %q", ErrUnknownMethod, req.Method)
}

// WriteResponse writes entries as a JSON-RPC result.
func WriteResponse(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Response{Result: entries}); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}
