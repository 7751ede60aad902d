package repository

import (
	"time"

	"github.com/hankosign/hankosign/internal/constant"
	"github.com/hankosign/hankosign/internal/model"
)

// VerificationView is the public projection of a document returned by the
// verification endpoint. It deliberately carries no file location, no signer
// network metadata and no account details beyond display names.
type VerificationView struct {
	ID               string                  `json:"id"`
	VerificationCode string                  `json:"verificationCode"`
	Title            string                  `json:"title"`
	Description      string                  `json:"description"`
	FileName         string                  `json:"fileName"`
	Status           constant.DocumentStatus `json:"status"`
	PageCount        int                     `json:"pageCount"`
	CreatedByName    string                  `json:"createdByName"`
	CreatedByCompany string                  `json:"createdByCompany"`
	CreatedAt        *time.Time              `json:"createdAt"`
	CompletedAt      *time.Time              `json:"completedAt"`
	Signatures       []VerificationSignature `json:"signatures"`
}

type VerificationSignature struct {
	SignerName     string             `json:"signerName"`
	SignerPosition string             `json:"signerPosition"`
	HankoName      string             `json:"hankoName"`
	HankoType      constant.HankoType `json:"hankoType"`
	Timestamp      time.Time          `json:"timestamp"`
	Page           int                `json:"page"`
	IsValid        bool               `json:"isValid"`
}

// BuildVerificationView projects a loaded document onto its public shape.
// Signatures are expected preloaded and ordered by timestamp.
func BuildVerificationView(doc *model.Document) VerificationView {
	signatures := make([]VerificationSignature, 0, len(doc.Signatures))
	for _, sig := range doc.Signatures {
		signatures = append(signatures, VerificationSignature{
			SignerName:     sig.User.Name,
			SignerPosition: sig.User.Position,
			HankoName:      sig.Hanko.Name,
			HankoType:      sig.Hanko.Type,
			Timestamp:      sig.Timestamp,
			Page:           sig.Page,
			IsValid:        sig.IsValid,
		})
	}

	return VerificationView{
		ID:               doc.ID,
		VerificationCode: doc.VerificationCode,
		Title:            doc.Title,
		Description:      doc.Description,
		FileName:         doc.FileName,
		Status:           doc.Status,
		PageCount:        doc.PageCount,
		CreatedByName:    doc.CreatedBy.Name,
		CreatedByCompany: doc.CreatedBy.CompanyName,
		CreatedAt:        doc.CreatedAt,
		CompletedAt:      doc.CompletedAt,
		Signatures:       signatures,
	}
}
