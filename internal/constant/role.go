package constant

type UserRole string

const (
	RoleUser       UserRole = "USER"
	RoleAdmin      UserRole = "ADMIN"
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}

	return false
}

type Capability string

const (
	CanCreateHankos     Capability = "hanko:create"
	CanUploadDocs       Capability = "document:upload"
	CanSignDocs         Capability = "document:sign"
	CanApproveWorkflow  Capability = "workflow:approve"
	CanManageRoles      Capability = "roles:manage"
	CanManageOrg        Capability = "org:manage"
	CanViewReports      Capability = "reports:view"
	CanAssignSuperAdmin Capability = "roles:assign-super-admin"
	CanManageSystem     Capability = "system:manage"
	CanViewAuditLogs    Capability = "audit-logs:view"
)
