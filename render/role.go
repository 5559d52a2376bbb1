package render

// Role is a semantic rendering category. Styles resolves each role to
// concrete terminal attributes; callers never deal in raw colors.
type Role uint8

const (
	RoleText   Role = iota // body text
	RoleAltRow             // alternate row shading
	RoleHidden
	RoleSearch // search hit highlight
	RoleOK
	RoleWarning
	RoleError

	// Status bar family
	RoleStatus
	RoleWarnStatus
	RoleAlertStatus
	RoleActiveStatus
	RoleActiveStatus2
	RoleBoldStatus
	RoleViewStatus
	RoleInactiveStatus

	RolePopup

	// Syntax categories
	RoleKeyword
	RoleString
	RoleComment
	RoleVariable
	RoleSymbol
	RoleFile

	// Diff views
	RoleDiffDelete
	RoleDiffAdd
	RoleDiffSection

	// Severity threshold bands
	RoleLowThreshold
	RoleMedThreshold
	RoleHighThreshold

	roleCount
)

var roleNames = [roleCount]string{
	RoleText:           "text",
	RoleAltRow:         "alt-row",
	RoleHidden:         "hidden",
	RoleSearch:         "search",
	RoleOK:             "ok",
	RoleWarning:        "warning",
	RoleError:          "error",
	RoleStatus:         "status",
	RoleWarnStatus:     "warn-status",
	RoleAlertStatus:    "alert-status",
	RoleActiveStatus:   "active-status",
	RoleActiveStatus2:  "active-status2",
	RoleBoldStatus:     "bold-status",
	RoleViewStatus:     "view-status",
	RoleInactiveStatus: "inactive-status",
	RolePopup:          "popup",
	RoleKeyword:        "keyword",
	RoleString:         "string",
	RoleComment:        "comment",
	RoleVariable:       "variable",
	RoleSymbol:         "symbol",
	RoleFile:           "file",
	RoleDiffDelete:     "diff-delete",
	RoleDiffAdd:        "diff-add",
	RoleDiffSection:    "diff-section",
	RoleLowThreshold:   "low-threshold",
	RoleMedThreshold:   "med-threshold",
	RoleHighThreshold:  "high-threshold",
}

func (r Role) String() string {
	if r >= roleCount {
		return "unknown"
	}
	return roleNames[r]
}
