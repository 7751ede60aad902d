package util

import (
	"errors"
	"testing"

	"github.com/hankosign/hankosign/internal/constant"
)

func TestCan(t *testing.T) {
	if !Can(constant.RoleUser, constant.CanSignDocs) {
		t.Error("Expected USER to be able to sign documents")
	}
	if Can(constant.RoleUser, constant.CanManageRoles) {
		t.Error("Expected USER to not manage roles")
	}
	if Can(constant.RoleAdmin, constant.CanViewAuditLogs) {
		t.Error("Expected ADMIN to not view audit logs")
	}
	if !Can(constant.RoleSuperAdmin, constant.CanViewAuditLogs) {
		t.Error("Expected SUPER_ADMIN to view audit logs")
	}
}

func TestValidateRoleChange(t *testing.T) {
	tests := []struct {
		name      string
		actorID   string
		actorRole constant.UserRole
		targetID  string
		newRole   constant.UserRole
		wantErr   error
	}{
		{"admin promotes user to admin", "a1", constant.RoleAdmin, "u1", constant.RoleAdmin, nil},
		{"super admin assigns super admin", "s1", constant.RoleSuperAdmin, "u1", constant.RoleSuperAdmin, nil},
		{"user cannot change roles", "u1", constant.RoleUser, "u2", constant.RoleAdmin, ErrRoleChangeForbidden},
		{"admin cannot assign super admin", "a1", constant.RoleAdmin, "u1", constant.RoleSuperAdmin, ErrSuperAdminAssignment},
		{"self change forbidden for admin", "a1", constant.RoleAdmin, "a1", constant.RoleUser, ErrSelfRoleChange},
		{"self change forbidden for super admin", "s1", constant.RoleSuperAdmin, "s1", constant.RoleUser, ErrSelfRoleChange},
		{"invalid role rejected", "a1", constant.RoleAdmin, "u1", constant.UserRole("OWNER"), ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRoleChange(tt.actorID, tt.actorRole, tt.targetID, tt.newRole)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateRoleChange() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
