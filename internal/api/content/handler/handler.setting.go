// Package contenthdl - các handler HTTP của domain content.
package contenthdl

import (
	"fmt"

	basehdl "gki_content/internal/api/base/handler"
	contentdto "gki_content/internal/api/content/dto"
	models "gki_content/internal/api/content/models"
	contentsvc "gki_content/internal/api/content/service"
	"gki_content/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// MsgSettingSaved thông báo lưu cấu hình thành công.
const MsgSettingSaved = "Pengaturan halaman utama berhasil disimpan!"

// SettingHandler xử lý request cấu hình trang chủ
type SettingHandler struct {
	*basehdl.BaseHandler[models.SiteSetting, contentdto.SettingUpsertInput, contentdto.SettingUpsertInput]
	settingService *contentsvc.SettingService
}

// NewSettingHandler tạo instance mới của SettingHandler
func NewSettingHandler() (*SettingHandler, error) {
	settingService, err := contentsvc.NewSettingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create setting service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.SiteSetting, contentdto.SettingUpsertInput, contentdto.SettingUpsertInput](settingService)
	return &SettingHandler{
		BaseHandler:    baseHandler,
		settingService: settingService,
	}, nil
}

// HandleGetHomePage trả về cấu hình trang chủ cho trang public.
// Chưa có document thì trả về giá trị mặc định, không báo lỗi.
func (h *SettingHandler) HandleGetHomePage(c fiber.Ctx) error {
	setting, err := h.settingService.GetHomePage(c.Context())
	h.HandleResponse(c, setting, err)
	return nil
}

// HandleGetAdminHomePage trả về cấu hình trang chủ cho trang quản trị,
// kèm thông báo khi document chưa tồn tại.
func (h *SettingHandler) HandleGetAdminHomePage(c fiber.Ctx) error {
	setting, err := h.settingService.GetHomePage(c.Context())
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if setting.ID.IsZero() {
		h.HandleResponseWithMessage(c, setting, contentsvc.MsgSettingNotFound, nil)
		return nil
	}
	h.HandleResponse(c, setting, nil)
	return nil
}

// HandleSaveHomePage lưu toàn bộ cấu hình trang chủ.
func (h *SettingHandler) HandleSaveHomePage(c fiber.Ctx) error {
	var input contentdto.SettingUpsertInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	setting, err := h.settingService.SaveHomePage(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogCRUD("upsert", "setting", models.SettingKeyHomePage, c, nil)
	h.HandleResponseWithMessage(c, setting, MsgSettingSaved, nil)
	return nil
}
