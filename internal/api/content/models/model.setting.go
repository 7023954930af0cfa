// Package models - các model nội dung trang web (settings, schedules, news).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SettingKeyHomePage là key của document cấu hình trang chủ duy nhất
// trong collection settings.
const SettingKeyHomePage = "homePage"

// SiteSetting định nghĩa nội dung có thể chỉnh sửa của trang chủ:
// hero, visi/misi và giới thiệu gereja induk (hội thánh mẹ).
type SiteSetting struct {
	ID                     primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Key                    string             `json:"-" bson:"key" index:"unique"`
	HeroTitle              string             `json:"heroTitle" bson:"heroTitle"`
	HeroImageURL           string             `json:"heroImageUrl" bson:"heroImageUrl"`
	Visi                   string             `json:"visi" bson:"visi"`
	Misi                   string             `json:"misi" bson:"misi"`
	GerejaIndukTitle       string             `json:"gerejaIndukTitle" bson:"gerejaIndukTitle"`
	GerejaIndukDescription string             `json:"gerejaIndukDescription" bson:"gerejaIndukDescription"`
	GerejaIndukImageURL    string             `json:"gerejaIndukImageUrl" bson:"gerejaIndukImageUrl"`
	CreatedAt              int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt              int64              `json:"updatedAt" bson:"updatedAt"`
}
