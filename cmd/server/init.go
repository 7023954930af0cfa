package main

import (
	"context"

	"gki_content/config"
	authmodels "gki_content/internal/api/auth/models"
	contentmodels "gki_content/internal/api/content/models"
	"gki_content/internal/database"
	"gki_content/internal/global"
	"gki_content/internal/utility"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initFirebase()         // Khởi tạo Firebase
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Settings = "settings"
	global.MongoDB_ColNames.Schedules = "schedules"
	global.MongoDB_ColNames.News = "news"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, exists, upload_category)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Đảm bảo collection tồn tại rồi tạo index theo tag khai báo trên model
	ctx := context.TODO()
	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName)

	colModels := map[string]interface{}{
		global.MongoDB_ColNames.Users:     authmodels.User{},
		global.MongoDB_ColNames.Settings:  contentmodels.SiteSetting{},
		global.MongoDB_ColNames.Schedules: contentmodels.Schedule{},
		global.MongoDB_ColNames.News:      contentmodels.News{},
	}

	colNames := make([]string, 0, len(colModels))
	for name := range colModels {
		colNames = append(colNames, name)
	}
	if err := database.EnsureCollections(ctx, db, colNames); err != nil {
		logrus.Errorf("Failed to ensure collections: %v", err)
	}

	for name, model := range colModels {
		if err := database.CreateIndexes(ctx, db.Collection(name), model); err != nil {
			logrus.Errorf("Failed to create indexes for %s: %v", name, err)
		}
	}
	logrus.Info("Collection indexes ensured")
}

// initFirebase khởi tạo Firebase Admin SDK
func initFirebase() {
	cfg := global.MongoDB_ServerConfig

	if cfg.FirebaseProjectID == "" || cfg.FirebaseCredentialsPath == "" {
		logrus.Warn("Firebase config không đầy đủ, bỏ qua khởi tạo Firebase")
		return
	}

	err := utility.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath, cfg.FirebaseStorageBucket)
	if err != nil {
		// Không fatal để hệ thống vẫn chạy được các route public
		logrus.Errorf("Failed to initialize Firebase: %v", err)
		return
	}

	logrus.Info("Firebase initialized successfully")
}
