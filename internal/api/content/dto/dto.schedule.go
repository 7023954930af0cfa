package contentdto

// ScheduleCreateInput đầu vào thêm một dòng lịch kebaktian.
// Order nil thì service mặc định 0.
type ScheduleCreateInput struct {
	Name  string `json:"name" validate:"no_xss"`
	Time  string `json:"time" validate:"no_xss"`
	Order *int   `json:"order" validate:"omitempty,min=0"`
}

// ScheduleUpdateInput đầu vào cập nhật một dòng lịch.
type ScheduleUpdateInput struct {
	Name  string `json:"name" validate:"omitempty,no_xss"`
	Time  string `json:"time" validate:"omitempty,no_xss"`
	Order *int   `json:"order" validate:"omitempty,min=0"`
}

// ScheduleSaveItem một dòng trong thao tác lưu tất cả.
type ScheduleSaveItem struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required,no_xss"`
	Time  string `json:"time" validate:"required,no_xss"`
	Order int    `json:"order" validate:"min=0"`
}

// ScheduleSaveAllInput đầu vào lưu toàn bộ danh sách lịch trong một lần.
type ScheduleSaveAllInput struct {
	Items []ScheduleSaveItem `json:"items" validate:"required,dive"`
}
