// Package style names the colors the editor draws with and maps them to
// terminal escape sequences through a Theme.
package style

// Color is a named role in the editor's palette. The Theme decides the
// actual foreground and background of each role.
type Color uint8

const (
	// Default and Reset both render as the terminal's reset sequence.
	Default Color = iota
	Reset

	ClearColor
	ExitMessage

	// Header
	Header
	HeaderFilename
	HeaderModeEdit
	HeaderModeCmd
	HeaderHelp
	HeaderHelpBinding
	ExitRequest
	ExitRequestBinding

	// Content
	EditorContent
	EditorGutter
	EditorGutterCursor
	EditorDetail
	EditorSelection
	EditorKeyword
	EditorString
	EditorNumber
	EditorComment

	// Footer
	Footer
	FooterStatusInfo
	FooterStatusInfoContent
	FooterStatusError
	FooterStatusErrorContent

	colorCount
)

var colorNames = [colorCount]string{
	Default:                  "default",
	Reset:                    "reset",
	ClearColor:               "clear",
	ExitMessage:              "exit_message",
	Header:                   "header",
	HeaderFilename:           "header_filename",
	HeaderModeEdit:           "header_mode_edit",
	HeaderModeCmd:            "header_mode_cmd",
	HeaderHelp:               "header_help",
	HeaderHelpBinding:        "header_help_binding",
	ExitRequest:              "exit_request",
	ExitRequestBinding:       "exit_request_binding",
	EditorContent:            "editor_content",
	EditorGutter:             "editor_gutter",
	EditorGutterCursor:       "editor_gutter_cursor",
	EditorDetail:             "editor_detail",
	EditorSelection:          "editor_selection",
	EditorKeyword:            "editor_keyword",
	EditorString:             "editor_string",
	EditorNumber:             "editor_number",
	EditorComment:            "editor_comment",
	Footer:                   "footer",
	FooterStatusInfo:         "footer_status_info",
	FooterStatusInfoContent:  "footer_status_info_content",
	FooterStatusError:        "footer_status_error",
	FooterStatusErrorContent: "footer_status_error_content",
}

// String returns the configuration name of the color.
func (c Color) String() string {
	if c < colorCount {
		return colorNames[c]
	}
	return "unknown"
}

// IsReset returns true for colors that render as the reset sequence.
func (c Color) IsReset() bool {
	return c == Default || c == Reset
}

// ParseColor looks up a color by its configuration name.
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return Default, false
}

// Colors returns every named color in declaration order.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}
