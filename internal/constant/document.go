package constant

type DocumentStatus string

const (
	DocumentStatusDraft      DocumentStatus = "DRAFT"
	DocumentStatusPending    DocumentStatus = "PENDING"
	DocumentStatusInProgress DocumentStatus = "IN_PROGRESS"
	DocumentStatusCompleted  DocumentStatus = "COMPLETED"
	DocumentStatusRejected   DocumentStatus = "REJECTED"
	DocumentStatusArchived   DocumentStatus = "ARCHIVED"
)

func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentStatusDraft, DocumentStatusPending, DocumentStatusInProgress,
		DocumentStatusCompleted, DocumentStatusRejected, DocumentStatusArchived:
		return true
	}

	return false
}

type HankoType string

const (
	HankoTypeMitomein HankoType = "MITOMEIN"
	HankoTypeGinkoin  HankoType = "GINKOIN"
	HankoTypeJitsuin  HankoType = "JITSUIN"
)

func (t HankoType) Valid() bool {
	switch t {
	case HankoTypeMitomein, HankoTypeGinkoin, HankoTypeJitsuin:
		return true
	}

	return false
}

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

const (
	// Max length of a hanko image data URI (~375KB decoded, generous for a hanko PNG).
	MaxHankoImageDataLength = 500_000

	// Max document upload size in bytes.
	MaxDocumentFileSize = 20 * 1024 * 1024
)

// Allowed MIME types for document upload.
var AllowedDocumentMimeTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"image/jpeg",
	"image/png",
}
