package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PermissionLevel is the totally ordered access level a user holds on a
// document. Higher levels subsume lower ones.
type PermissionLevel int

const (
	PermissionNone PermissionLevel = iota
	PermissionRead
	PermissionModify
	PermissionManage
	PermissionFull
)

var permissionNames = map[PermissionLevel]string{
	PermissionNone:   "none",
	PermissionRead:   "read",
	PermissionModify: "modify",
	PermissionManage: "manage",
	PermissionFull:   "full",
}

// String returns the lowercase name of the level, or "none" for anything
// outside the known range.
func (l PermissionLevel) String() string {
	if name, ok := permissionNames[l]; ok {
		return name
	}
	return "none"
}

// Grantable reports whether the level may be stored as an explicit grant.
// Granting "none" is not a supported way to remove access; use revoke.
func (l PermissionLevel) Grantable() bool {
	return l >= PermissionRead && l <= PermissionFull
}

// ParsePermissionLevel parses a level name such as "read" or "manage".
func ParsePermissionLevel(s string) (PermissionLevel, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for level, name := range permissionNames {
		if name == needle {
			return level, nil
		}
	}
	return PermissionNone, fmt.Errorf("%w: unknown permission level %q", ErrInvalidPermission, s)
}

// MarshalJSON renders the level as its name.
func (l PermissionLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON accepts a level name.
func (l *PermissionLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	level, err := ParsePermissionLevel(s)
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// AuditAction identifies the kind of event recorded in the audit log.
type AuditAction string

const (
	ActionRegister AuditAction = "REGISTER"
	ActionCreate   AuditAction = "CREATE"
	ActionUpdate   AuditAction = "UPDATE"
	ActionShare    AuditAction = "SHARE"
	ActionAccess   AuditAction = "ACCESS"
)
