package repository

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/hankosign/hankosign/internal/constant"
	"github.com/hankosign/hankosign/internal/model"
)

func TestBuildVerificationView(t *testing.T) {
	now := time.Now()
	doc := &model.Document{
		BaseModel:        model.BaseModel{ID: "doc-1", CreatedAt: &now},
		Title:            "業務委託契約書",
		FileURL:          "https://storage.internal/documents/user-1/contract.pdf",
		FileKey:          "documents/user-1/contract.pdf",
		FileName:         "contract.pdf",
		Status:           constant.DocumentStatusCompleted,
		PageCount:        3,
		VerificationCode: "AB12-CD34-EF56",
		CompletedAt:      &now,
		CreatedBy:        model.User{Name: "山田 太郎", Email: "taro@example.com", CompanyName: "株式会社山田商事"},
		Signatures: []model.Signature{
			{
				Timestamp: now,
				Page:      1,
				IsValid:   true,
				IPAddress: "203.0.113.7",
				UserAgent: "Mozilla/5.0",
				User:      model.User{Name: "佐藤 花子", Email: "hanako@example.com", Position: "経理部長"},
				Hanko:     model.Hanko{Name: "佐藤", Type: constant.HankoTypeMitomein},
			},
		},
	}

	view := BuildVerificationView(doc)

	if view.VerificationCode != "AB12-CD34-EF56" {
		t.Errorf("Expected verification code, got %s", view.VerificationCode)
	}
	if len(view.Signatures) != 1 {
		t.Fatalf("Expected 1 signature, got %d", len(view.Signatures))
	}
	if view.Signatures[0].SignerName != "佐藤 花子" {
		t.Errorf("Expected signer display name, got %s", view.Signatures[0].SignerName)
	}
	if view.Signatures[0].SignerPosition != "経理部長" {
		t.Errorf("Expected signer position, got %s", view.Signatures[0].SignerPosition)
	}
	if view.CreatedByCompany != "株式会社山田商事" {
		t.Errorf("Expected creator company, got %s", view.CreatedByCompany)
	}
	if view.FileName != "contract.pdf" {
		t.Errorf("Expected file name, got %s", view.FileName)
	}

	raw, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("Failed to marshal view: %v", err)
	}

	payload := string(raw)
	for _, forbidden := range []string{"ipAddress", "userAgent", "fileUrl", "fileKey", "203.0.113.7", "Mozilla", "storage.internal", "@example.com"} {
		if strings.Contains(payload, forbidden) {
			t.Errorf("Expected verification payload to not contain %q, got %s", forbidden, payload)
		}
	}
}

func TestBuildVerificationViewNoSignatures(t *testing.T) {
	view := BuildVerificationView(&model.Document{
		Status: constant.DocumentStatusDraft,
	})

	if view.Signatures == nil {
		t.Error("Expected empty signature slice, not nil")
	}
	if len(view.Signatures) != 0 {
		t.Errorf("Expected no signatures, got %d", len(view.Signatures))
	}
}
