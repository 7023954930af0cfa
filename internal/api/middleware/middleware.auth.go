package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authmodels "gki_content/internal/api/auth/models"
	"gki_content/internal/common"
	"gki_content/internal/global"
	"gki_content/internal/logger"
)

// findUserByToken tìm user sở hữu token trong collection users.
// Ưu tiên query field "token" (token mới nhất, được cập nhật mỗi lần login);
// nếu không tìm thấy, query trong array "tokens" theo hwid với dot notation.
func findUserByToken(ctx context.Context, token string) (*authmodels.User, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, common.NewError(common.ErrCodeDatabaseConnection, common.MsgDatabaseError, common.StatusInternalServerError, nil)
	}

	var user authmodels.User
	err := collection.FindOne(ctx, bson.M{"token": token}).Decode(&user)
	if err == nil {
		return &user, nil
	}

	err = collection.FindOne(ctx, bson.M{"tokens.jwtToken": token}).Decode(&user)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return &user, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// Các route admin chỉ cần đăng nhập hợp lệ, không có hệ thống phân quyền theo role.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		user, err := findUserByToken(c.Context(), token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token not found in database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra user có bị block không
		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", *user)

		return c.Next()
	}
}
