// Package access maps operator roles to resource permissions.
package access

import (
	"strings"

	"rentalhub/internal/domain"
)

// Permission has the form "resource:action"; either side may be "*".
type Permission string

func NewPermission(resource, action string) Permission {
	return Permission(resource + ":" + action)
}

func (p Permission) Parse() (resource, action string) {
	parts := strings.SplitN(string(p), ":", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}

const wildcard = "*"

// Matches reports whether a granted permission p covers requested.
func (p Permission) Matches(requested Permission) bool {
	if p == requested {
		return true
	}
	res, act := p.Parse()
	reqRes, reqAct := requested.Parse()
	if res == "" || reqRes == "" {
		return false
	}
	return (res == wildcard || res == reqRes) && (act == wildcard || act == reqAct)
}

const (
	InventoryManage   Permission = "inventory:manage"
	CustomerManage    Permission = "customer:manage"
	RentalManage      Permission = "rental:manage"
	MaintenanceManage Permission = "maintenance:manage"
	FinanceView       Permission = "finance:view"
	FinanceManage     Permission = "finance:manage"
	UserManage        Permission = "user:manage"
	DashboardStaff    Permission = "dashboard:staff"
	DashboardAdmin    Permission = "dashboard:admin"
)

var grants = map[domain.UserRole][]Permission{
	domain.RoleAdmin: {"*:*"},
	domain.RoleStaff: {
		"inventory:*",
		"customer:*",
		"rental:*",
		"maintenance:*",
		DashboardStaff,
	},
}

// Allows reports whether role holds permission p. Unknown roles hold nothing.
func Allows(role domain.UserRole, p Permission) bool {
	for _, g := range grants[role] {
		if g.Matches(p) {
			return true
		}
	}
	return false
}

// CanViewFinancials decides whether monetary fields may leave the API for role.
func CanViewFinancials(role domain.UserRole) bool {
	return Allows(role, FinanceView)
}
