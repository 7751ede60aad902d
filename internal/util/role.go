package util

import (
	"errors"
	"slices"

	"github.com/hankosign/hankosign/internal/constant"
)

var roleCapabilities = map[constant.UserRole][]constant.Capability{
	constant.RoleUser: {
		constant.CanCreateHankos,
		constant.CanUploadDocs,
		constant.CanSignDocs,
		constant.CanApproveWorkflow,
	},
	constant.RoleAdmin: {
		constant.CanCreateHankos,
		constant.CanUploadDocs,
		constant.CanSignDocs,
		constant.CanApproveWorkflow,
		constant.CanManageRoles,
		constant.CanManageOrg,
		constant.CanViewReports,
	},
	constant.RoleSuperAdmin: {
		constant.CanCreateHankos,
		constant.CanUploadDocs,
		constant.CanSignDocs,
		constant.CanApproveWorkflow,
		constant.CanManageRoles,
		constant.CanManageOrg,
		constant.CanViewReports,
		constant.CanAssignSuperAdmin,
		constant.CanManageSystem,
		constant.CanViewAuditLogs,
	},
}

// Can checks a single capability against the closed per-role table.
func Can(role constant.UserRole, capability constant.Capability) bool {
	return slices.Contains(roleCapabilities[role], capability)
}

func HasAdminAccess(role constant.UserRole) bool {
	return role == constant.RoleAdmin || role == constant.RoleSuperAdmin
}

func HasSuperAdminAccess(role constant.UserRole) bool {
	return role == constant.RoleSuperAdmin
}

var (
	ErrInvalidRole          = errors.New("invalid role")
	ErrRoleChangeForbidden  = errors.New("only admins can change roles")
	ErrSuperAdminAssignment = errors.New("only super admins can assign super admin role")
	ErrSelfRoleChange       = errors.New("cannot change your own role")
)

// ValidateRoleChange enforces the role administration rules: the actor must be
// an admin, may not touch their own role, and only a super admin can hand out
// SUPER_ADMIN.
func ValidateRoleChange(actorID string, actorRole constant.UserRole, targetID string, newRole constant.UserRole) error {
	if !HasAdminAccess(actorRole) {
		return ErrRoleChangeForbidden
	}

	if !newRole.Valid() {
		return ErrInvalidRole
	}

	if newRole == constant.RoleSuperAdmin && !HasSuperAdminAccess(actorRole) {
		return ErrSuperAdminAssignment
	}

	if actorID == targetID {
		return ErrSelfRoleChange
	}

	return nil
}
