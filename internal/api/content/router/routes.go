// Package router đăng ký các route thuộc domain content: settings, schedules, news, upload.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	contenthdl "gki_content/internal/api/content/handler"
	"gki_content/internal/api/middleware"
	apirouter "gki_content/internal/api/router"
)

// Register đăng ký các route content lên v1.
// Các route đọc là public, toàn bộ route /admin yêu cầu đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSettingRoutes(v1); err != nil {
		return err
	}
	if err := registerScheduleRoutes(v1, r); err != nil {
		return err
	}
	if err := registerNewsRoutes(v1, r); err != nil {
		return err
	}
	if err := registerUploadRoutes(v1); err != nil {
		return err
	}
	return nil
}

func registerSettingRoutes(router fiber.Router) error {
	settingHandler, err := contenthdl.NewSettingHandler()
	if err != nil {
		return fmt.Errorf("failed to create setting handler: %w", err)
	}

	router.Get("/settings", settingHandler.HandleGetHomePage)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/admin/setting", "GET", "/find-one", []fiber.Handler{authMiddleware}, settingHandler.HandleGetAdminHomePage)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/setting", "PUT", "/upsert-one", []fiber.Handler{authMiddleware}, settingHandler.HandleSaveHomePage)
	return nil
}

func registerScheduleRoutes(router fiber.Router, r *apirouter.Router) error {
	scheduleHandler, err := contenthdl.NewScheduleHandler()
	if err != nil {
		return fmt.Errorf("failed to create schedule handler: %w", err)
	}

	router.Get("/schedules", scheduleHandler.HandleListSchedules)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/admin/schedule", "POST", "/insert-one", []fiber.Handler{authMiddleware}, scheduleHandler.HandleCreateSchedule)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/schedule", "PUT", "/update-by-id/:id", []fiber.Handler{authMiddleware}, scheduleHandler.HandleUpdateSchedule)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/schedule", "DELETE", "/delete-by-id/:id", []fiber.Handler{authMiddleware}, scheduleHandler.HandleDeleteSchedule)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/schedule", "PUT", "/save-all", []fiber.Handler{authMiddleware}, scheduleHandler.HandleSaveAllSchedules)

	// Các route đọc generic cho trang quản trị (find, paginate, count...)
	r.RegisterCRUDRoutes(router, "/admin/schedule", scheduleHandler, apirouter.ReadOnlyConfig)
	return nil
}

func registerNewsRoutes(router fiber.Router, r *apirouter.Router) error {
	newsHandler, err := contenthdl.NewNewsHandler()
	if err != nil {
		return fmt.Errorf("failed to create news handler: %w", err)
	}

	router.Get("/news", newsHandler.HandleListNews)
	router.Get("/news/:id", newsHandler.HandleGetNewsById)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/admin/news", "POST", "/insert-one", []fiber.Handler{authMiddleware}, newsHandler.HandleCreateNews)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/news", "PUT", "/update-by-id/:id", []fiber.Handler{authMiddleware}, newsHandler.HandleUpdateNews)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/news", "DELETE", "/delete-by-id/:id", []fiber.Handler{authMiddleware}, newsHandler.HandleDeleteNews)

	r.RegisterCRUDRoutes(router, "/admin/news", newsHandler, apirouter.ReadOnlyConfig)
	return nil
}

func registerUploadRoutes(router fiber.Router) error {
	uploadHandler, err := contenthdl.NewUploadHandler()
	if err != nil {
		return fmt.Errorf("failed to create upload handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/admin/upload", "POST", "/file", []fiber.Handler{authMiddleware}, uploadHandler.HandleUploadFile)
	return nil
}
