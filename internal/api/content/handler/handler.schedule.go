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

// Thông báo kết quả các thao tác trên lịch kebaktian.
const (
	MsgScheduleCreated  = "Jadwal baru berhasil ditambahkan!"
	MsgScheduleSavedAll = "Semua jadwal berhasil diperbarui!"
	MsgScheduleDeleted  = "Jadwal berhasil dihapus!"
)

// ScheduleHandler xử lý request lịch kebaktian
type ScheduleHandler struct {
	*basehdl.BaseHandler[models.Schedule, contentdto.ScheduleCreateInput, contentdto.ScheduleUpdateInput]
	scheduleService *contentsvc.ScheduleService
}

// NewScheduleHandler tạo instance mới của ScheduleHandler
func NewScheduleHandler() (*ScheduleHandler, error) {
	scheduleService, err := contentsvc.NewScheduleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Schedule, contentdto.ScheduleCreateInput, contentdto.ScheduleUpdateInput](scheduleService)
	return &ScheduleHandler{
		BaseHandler:     baseHandler,
		scheduleService: scheduleService,
	}, nil
}

// HandleListSchedules trả về toàn bộ lịch theo order tăng dần (public).
func (h *ScheduleHandler) HandleListSchedules(c fiber.Ctx) error {
	schedules, err := h.scheduleService.List(c.Context())
	h.HandleResponse(c, schedules, err)
	return nil
}

// HandleCreateSchedule thêm một dòng lịch mới.
func (h *ScheduleHandler) HandleCreateSchedule(c fiber.Ctx) error {
	var input contentdto.ScheduleCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	schedule, err := h.scheduleService.Create(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogCRUD("create", "schedule", schedule.ID.Hex(), c, nil)
	h.HandleResponseWithMessage(c, schedule, MsgScheduleCreated, nil)
	return nil
}

// HandleUpdateSchedule cập nhật một dòng lịch theo id.
func (h *ScheduleHandler) HandleUpdateSchedule(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	var input contentdto.ScheduleUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	schedule, err := h.scheduleService.Update(c.Context(), id, &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogCRUD("update", "schedule", id, c, nil)
	h.HandleResponse(c, schedule, nil)
	return nil
}

// HandleDeleteSchedule xóa một dòng lịch theo id.
func (h *ScheduleHandler) HandleDeleteSchedule(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	if err := h.scheduleService.Delete(c.Context(), id); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogCRUD("delete", "schedule", id, c, nil)
	h.HandleResponseWithMessage(c, nil, MsgScheduleDeleted, nil)
	return nil
}

// HandleSaveAllSchedules lưu toàn bộ danh sách lịch trong một lần.
// Trả về kết quả tổng hợp: số dòng lưu được và danh sách dòng lỗi.
func (h *ScheduleHandler) HandleSaveAllSchedules(c fiber.Ctx) error {
	var input contentdto.ScheduleSaveAllInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	result, err := h.scheduleService.SaveAll(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogCRUD("save_all", "schedule", "", c, map[string]interface{}{
		"saved":  result.Saved,
		"failed": len(result.Failed),
	})
	h.HandleResponseWithMessage(c, result, MsgScheduleSavedAll, nil)
	return nil
}
