package main

import (
	"github.com/hankosign/hankosign/internal/config"
	"github.com/hankosign/hankosign/internal/constant"
	"github.com/hankosign/hankosign/internal/database"
	"github.com/hankosign/hankosign/internal/env"
	"github.com/hankosign/hankosign/internal/model"
	"github.com/hankosign/hankosign/internal/util"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func init() {
	env.LoadEnv()
}

// Demo accounts all share this password.
const seedPassword = "Password123"

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	hashed, err := util.HashPassword(seedPassword)
	if err != nil {
		logger.Panic(err)
	}

	users := []model.User{
		{
			Email:    "superadmin@hankosign.jp",
			Password: hashed,
			Name:     "管理 統括",
			NameKana: "カンリ トウカツ",
			Role:     constant.RoleSuperAdmin,
		},
		{
			Email:       "admin@hankosign.jp",
			Password:    hashed,
			Name:        "管理 太郎",
			NameKana:    "カンリ タロウ",
			Role:        constant.RoleAdmin,
			CompanyName: "株式会社ハンコサイン",
			Department:  "総務部",
		},
		{
			Email:           "taro@example.jp",
			Password:        hashed,
			Name:            "山田 太郎",
			NameKana:        "ヤマダ タロウ",
			Role:            constant.RoleUser,
			CompanyName:     "株式会社サンプル",
			CorporateNumber: "1234567890123",
			Department:      "営業部",
			Position:        "課長",
		},
		{
			Email:    "hanako@example.jp",
			Password: hashed,
			Name:     "佐藤 花子",
			NameKana: "サトウ ハナコ",
			Role:     constant.RoleUser,
		},
	}

	for i := range users {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&users[i]).Error; err != nil {
			logger.Panic(err)
		}
	}

	var taro model.User
	if err := db.Where("email = ?", "taro@example.jp").First(&taro).Error; err != nil {
		logger.Panic(err)
	}

	hankos := []model.Hanko{
		{
			UserID:    taro.ID,
			Name:      "山田",
			Type:      constant.HankoTypeMitomein,
			ImageURL:  "",
			ImageData: "data:image/svg+xml;base64,PHN2Zy8+",
			Font:      "serif",
			Size:      60,
		},
		{
			UserID:             taro.ID,
			Name:               "山田太郎之印",
			Type:               constant.HankoTypeJitsuin,
			ImageURL:           "",
			ImageData:          "data:image/svg+xml;base64,PHN2Zy8+",
			Font:               "tensho",
			Size:               80,
			IsRegistered:       true,
			RegistrationNumber: "JITSU-2024-0001",
		},
	}

	for i := range hankos {
		var count int64
		db.Model(&model.Hanko{}).Where("user_id = ? AND name = ?", hankos[i].UserID, hankos[i].Name).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&hankos[i]).Error; err != nil {
			logger.Panic(err)
		}
	}

	seedDocument(db, logger, taro)

	logger.Info("Seed complete")
}

func seedDocument(db *gorm.DB, logger *zap.SugaredLogger, owner model.User) {
	var count int64
	db.Model(&model.Document{}).Where("created_by_id = ?", owner.ID).Count(&count)
	if count > 0 {
		return
	}

	code, err := util.GenerateVerificationCode()
	if err != nil {
		logger.Panic(err)
	}

	doc := model.Document{
		Title:            "業務委託契約書（サンプル）",
		Description:      "デモ用のサンプル文書です。",
		FileURL:          "hankosign-documents/documents/seed/sample-contract.pdf",
		FileKey:          "documents/seed/sample-contract.pdf",
		FileName:         "sample-contract.pdf",
		FileSize:         102400,
		MimeType:         "application/pdf",
		PageCount:        3,
		Status:           constant.DocumentStatusDraft,
		VerificationCode: code,
		CreatedByID:      owner.ID,
	}

	if err := db.Create(&doc).Error; err != nil {
		logger.Panic(err)
	}
}
