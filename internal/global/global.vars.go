// Package global chứa các biến toàn cục dùng chung của ứng dụng:
// cấu hình server, phiên kết nối MongoDB, validator và các registry.
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"gki_content/config"
	"gki_content/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users     string // Tên collection cho người dùng quản trị
	Settings  string // Tên collection cho cấu hình trang chủ
	Schedules string // Tên collection cho lịch thờ phượng
	News      string // Tên collection cho tin tức
}

// Các biến toàn cục
var Validate *validator.Validate                                       // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                      // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                         // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = MongoDB_CollectionName{} // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
