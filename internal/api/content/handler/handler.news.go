package contenthdl

import (
	"fmt"
	"strconv"

	basehdl "gki_content/internal/api/base/handler"
	contentdto "gki_content/internal/api/content/dto"
	models "gki_content/internal/api/content/models"
	contentsvc "gki_content/internal/api/content/service"
	"gki_content/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// Thông báo kết quả các thao tác trên bài tin.
const (
	MsgNewsCreated = "Berita baru berhasil diterbitkan!"
	MsgNewsUpdated = "Berita berhasil diperbarui!"
	MsgNewsDeleted = "Berita berhasil dihapus!"
)

// NewsHandler xử lý request bài tin tức
type NewsHandler struct {
	*basehdl.BaseHandler[models.News, contentdto.NewsCreateInput, contentdto.NewsUpdateInput]
	newsService *contentsvc.NewsService
}

// NewNewsHandler tạo instance mới của NewsHandler
func NewNewsHandler() (*NewsHandler, error) {
	newsService, err := contentsvc.NewNewsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create news service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.News, contentdto.NewsCreateInput, contentdto.NewsUpdateInput](newsService)
	return &NewsHandler{
		BaseHandler: baseHandler,
		newsService: newsService,
	}, nil
}

// HandleListNews trả về các bài tin mới nhất (public).
// Query ?limit= giới hạn số bài, mặc định trả về tất cả;
// trang chủ truyền limit=3.
func (h *NewsHandler) HandleListNews(c fiber.Ctx) error {
	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err == nil && parsed > 0 {
			limit = parsed
		}
	}

	news, err := h.newsService.List(c.Context(), limit)
	h.HandleResponse(c, news, err)
	return nil
}

// HandleGetNewsById trả về một bài tin theo id (public).
func (h *NewsHandler) HandleGetNewsById(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	news, err := h.newsService.GetByID(c.Context(), id)
	h.HandleResponse(c, news, err)
	return nil
}

// HandleCreateNews đăng một bài tin mới.
func (h *NewsHandler) HandleCreateNews(c fiber.Ctx) error {
	var input contentdto.NewsCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	news, err := h.newsService.Create(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogCRUD("create", "news", news.ID.Hex(), c, nil)
	h.HandleResponseWithMessage(c, news, MsgNewsCreated, nil)
	return nil
}

// HandleUpdateNews chỉnh sửa bài tin theo id.
func (h *NewsHandler) HandleUpdateNews(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	var input contentdto.NewsUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	news, err := h.newsService.Update(c.Context(), id, &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogCRUD("update", "news", id, c, nil)
	h.HandleResponseWithMessage(c, news, MsgNewsUpdated, nil)
	return nil
}

// HandleDeleteNews xóa bài tin theo id.
// File ảnh và PDF trên storage được giữ lại.
func (h *NewsHandler) HandleDeleteNews(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	if err := h.newsService.Delete(c.Context(), id); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogCRUD("delete", "news", id, c, nil)
	h.HandleResponseWithMessage(c, nil, MsgNewsDeleted, nil)
	return nil
}
