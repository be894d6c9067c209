package models

import "strings"

// UserPatch is a partial update of a user. Nil fields are left untouched.
type UserPatch struct {
	Username     *string
	Name         *string
	Email        *string
	Role         *Role
	RTNumber     *string
	PasswordHash *string
}

// IsEmpty reports whether the patch carries no fields
func (p UserPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

// Columns returns the column values to write for every present field.
// An empty email or RT number clears the column.
func (p UserPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})

	if p.Username != nil {
		cols["username"] = strings.TrimSpace(*p.Username)
	}
	if p.Name != nil {
		cols["name"] = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		cols["email"] = nullableString(*p.Email)
	}
	if p.Role != nil {
		cols["role"] = *p.Role
	}
	if p.RTNumber != nil {
		cols["rt_number"] = nullableString(*p.RTNumber)
	}
	if p.PasswordHash != nil {
		cols["password"] = *p.PasswordHash
	}

	return cols
}

func nullableString(s string) interface{} {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}
