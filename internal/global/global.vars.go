package global

import (
	"vintique/config"
	"vintique/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionNames chứa tên các collection trong MongoDB
type CollectionNames struct {
	Users           string // Tên collection cho người dùng
	Listings        string // Tên collection cho tin đăng bán
	Orders          string // Tên collection cho đơn hàng
	OrderItems      string // Tên collection cho các dòng hàng của đơn
	Vouchers        string // Tên collection cho voucher
	ChatbotMessages string // Tên collection cho log hội thoại chatbot
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var MongoDB_ColNames CollectionNames           // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
