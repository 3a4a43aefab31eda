package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"vintique/config"
	authmodels "vintique/internal/api/auth/models"
	chatbotmodels "vintique/internal/api/chatbot/models"
	marketmodels "vintique/internal/api/market/models"
	"vintique/internal/database"
	"vintique/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "auth_users"

	// Module market (tiền tố market_)
	global.MongoDB_ColNames.Listings = "market_listings"
	global.MongoDB_ColNames.Orders = "market_orders"
	global.MongoDB_ColNames.OrderItems = "market_order_items"
	global.MongoDB_ColNames.Vouchers = "market_vouchers"

	// Log hội thoại chatbot
	global.MongoDB_ColNames.ChatbotMessages = "chatbot_messages"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (đăng ký custom validators: no_xss, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Listings), marketmodels.Listing{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Orders), marketmodels.Order{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.OrderItems), marketmodels.OrderItem{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Vouchers), marketmodels.Voucher{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.ChatbotMessages), chatbotmodels.ChatbotMessage{})
}
