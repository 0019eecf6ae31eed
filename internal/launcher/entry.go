// Package launcher defines the result entries shown by the launcher and the
// Flow Launcher JSON-RPC protocol used to exchange them.
package launcher

// Callback method names the launcher invokes when an entry is selected.
const (
	MethodQuery     = "query"
	MethodOpenURL   = "open_url"
	MethodPlayPause = "play_pause_desktop"
	MethodStop      = "stop_desktop"
)

// DefaultIcon is the icon shipped with the plugin, relative to its directory.
const DefaultIcon = "Icons/app.png"

// NoURLSuffix marks entries that have nothing to open.
const NoURLSuffix = " (No URL found)"

// Action names the callback to run when an entry is selected.
type Action struct {
	Method     string `json:"method"     yaml:"method"`
	Parameters []any  `json:"parameters" yaml:"parameters"`
}

// Entry is one line of the launcher result list.
type Entry struct {
	Title    string  `json:"Title"                   yaml:"title"`
	SubTitle string  `json:"SubTitle"                yaml:"subtitle"`
	IcoPath  string  `json:"IcoPath,omitempty"       yaml:"icon,omitempty"`
	Action   *Action `json:"JsonRPCAction,omitempty" yaml:"action,omitempty"`
}

// Actionable reports whether selecting the entry does anything.
func (e Entry) Actionable() bool {
	return e.Action != nil
}

// URL returns the link an open_url entry points to, or "".
func (e Entry) URL() string {
	if e.Action == nil || e.Action.Method != MethodOpenURL || len(e.Action.Parameters) == 0 {
		return ""
	}
	url, _ := e.Action.Parameters[0].(string)
	return url
}

// OpenURL returns an action opening url in the browser.
func OpenURL(url string) *Action {
	return &Action{Method: MethodOpenURL, Parameters: []any{url}}
}

// PlayPause returns an action toggling playback of the desktop player.
func PlayPause() *Action {
	return &Action{Method: MethodPlayPause, Parameters: []any{}}
}

// Stop returns an action stopping the desktop player.
func Stop() *Action {
	return &Action{Method: MethodStop, Parameters: []any{}}
}
