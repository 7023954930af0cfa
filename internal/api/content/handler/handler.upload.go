package contenthdl

import (
	"time"

	"gki_content/internal/api/middleware"
	"gki_content/internal/common"
	"gki_content/internal/global"
	"gki_content/internal/logger"
	"gki_content/internal/utility"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// UploadInput metadata của request upload, dùng để validate category.
type UploadInput struct {
	Category string `validate:"required,upload_category"`
}

// UploadHandler xử lý upload file (ảnh, PDF) lên Firebase Storage
type UploadHandler struct{}

// NewUploadHandler tạo instance mới của UploadHandler
func NewUploadHandler() (*UploadHandler, error) {
	return &UploadHandler{}, nil
}

// HandleUploadFile nhận multipart form với field "file" và "category",
// upload lên Firebase Storage và trả về URL công khai.
// File được upload trước, URL chỉ được ghi vào document ở bước lưu sau
// nên upload hỏng không để lại document trỏ tới file không tồn tại.
func (h *UploadHandler) HandleUploadFile(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		middleware.HandleErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "Thiếu file upload", common.StatusBadRequest, nil))
		return nil
	}

	input := UploadInput{Category: c.FormValue("category")}
	if err := global.Validate.Struct(&input); err != nil {
		middleware.HandleErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "Category không hợp lệ", common.StatusBadRequest, err.Error()))
		return nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleErrorResponse(c, common.NewError(common.ErrCodeValidationInput, "Không đọc được file upload", common.StatusBadRequest, nil))
		return nil
	}
	defer file.Close()

	objectPath := utility.BuildStoragePath(input.Category, fileHeader.Filename, time.Now())
	contentType := fileHeader.Header.Get("Content-Type")

	result, err := utility.UploadFile(c.Context(), objectPath, contentType, file)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"path":  objectPath,
			"error": err.Error(),
		}).Error("HandleUploadFile: Lỗi upload lên storage")
		middleware.HandleErrorResponse(c, common.NewError(common.ErrCodeStorage, "Gagal mengunggah file.", common.StatusInternalServerError, nil))
		return nil
	}

	logger.LogAction("upload_file", c, map[string]interface{}{
		"path": result.Path,
		"size": utility.FormatBytes(uint64(result.Size)),
	})

	return middleware.JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    result,
		"status":  "success",
	})
}
