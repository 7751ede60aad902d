package repository

import (
	"testing"
	"time"

	"github.com/hankosign/hankosign/internal/constant"
	"github.com/hankosign/hankosign/internal/model"
)

func TestNewUserRow(t *testing.T) {
	now := time.Now()
	row := newUserRow(model.User{
		BaseModel:        model.BaseModel{ID: "caller-chosen-id"},
		Email:            "taro@example.com",
		Password:         "$2a$12$hashedhashedhashedhashed",
		Name:             "山田 太郎",
		NameKana:         "ヤマダ タロウ",
		CompanyName:      "株式会社山田商事",
		CorporateNumber:  "1234567890123",
		Department:       "営業部",
		Position:         "部長",
		Role:             constant.RoleSuperAdmin,
		ResetTokenHash:   "deadbeef",
		ResetTokenExpiry: &now,
	})

	if row.CompanyName != "株式会社山田商事" {
		t.Errorf("Expected company name to survive registration, got %q", row.CompanyName)
	}
	if row.Department != "営業部" {
		t.Errorf("Expected department to survive registration, got %q", row.Department)
	}
	if row.Position != "部長" {
		t.Errorf("Expected position to survive registration, got %q", row.Position)
	}
	if row.NameKana != "ヤマダ タロウ" {
		t.Errorf("Expected name kana to survive registration, got %q", row.NameKana)
	}
	if row.CorporateNumber != "1234567890123" {
		t.Errorf("Expected corporate number to survive registration, got %q", row.CorporateNumber)
	}

	if row.Role != constant.RoleUser {
		t.Errorf("Expected new users to always start as USER, got %s", row.Role)
	}
	if row.ID != "" {
		t.Errorf("Expected caller-supplied id to be dropped, got %q", row.ID)
	}
	if row.ResetTokenHash != "" || row.ResetTokenExpiry != nil {
		t.Error("Expected caller-supplied reset token state to be dropped")
	}
}
