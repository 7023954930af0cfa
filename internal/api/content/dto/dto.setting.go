// Package contentdto - các DTO đầu vào của domain content.
package contentdto

// SettingUpsertInput đầu vào lưu cấu hình trang chủ.
// Toàn bộ nội dung được ghi đè trong một lần lưu.
type SettingUpsertInput struct {
	HeroTitle              string `json:"heroTitle" validate:"no_xss"`
	HeroImageURL           string `json:"heroImageUrl" validate:"omitempty,url"`
	Visi                   string `json:"visi" validate:"no_xss"`
	Misi                   string `json:"misi" validate:"no_xss"`
	GerejaIndukTitle       string `json:"gerejaIndukTitle" validate:"no_xss"`
	GerejaIndukDescription string `json:"gerejaIndukDescription" validate:"no_xss"`
	GerejaIndukImageURL    string `json:"gerejaIndukImageUrl" validate:"omitempty,url"`
}
