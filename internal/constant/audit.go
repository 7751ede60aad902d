package constant

type AuditAction string

const (
	AuditUserRegistered         AuditAction = "USER_REGISTERED"
	AuditRoleChanged            AuditAction = "ROLE_CHANGED"
	AuditProfileUpdated         AuditAction = "PROFILE_UPDATED"
	AuditCompanyInfoUpdated     AuditAction = "COMPANY_INFO_UPDATED"
	AuditPasswordChanged        AuditAction = "PASSWORD_CHANGED"
	AuditPasswordResetRequested AuditAction = "PASSWORD_RESET_REQUESTED"
	AuditPasswordResetCompleted AuditAction = "PASSWORD_RESET_COMPLETED"
	AuditPreferencesUpdated     AuditAction = "PREFERENCES_UPDATED"
	AuditDocumentUploaded       AuditAction = "DOCUMENT_UPLOADED"
	AuditDocumentDeleted        AuditAction = "DOCUMENT_DELETED"
	AuditDocumentStatusChanged  AuditAction = "DOCUMENT_STATUS_CHANGED"
	AuditDocumentSigned         AuditAction = "DOCUMENT_SIGNED"
	AuditHankoCreated           AuditAction = "HANKO_CREATED"
	AuditHankoDeleted           AuditAction = "HANKO_DELETED"
	AuditWorkflowCreated        AuditAction = "WORKFLOW_CREATED"
	AuditApprovalDecided        AuditAction = "APPROVAL_DECIDED"
)
