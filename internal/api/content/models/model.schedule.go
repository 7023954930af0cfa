package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Schedule định nghĩa một dòng lịch kebaktian (giờ lễ).
// Order quyết định thứ tự hiển thị, sắp xếp tăng dần.
type Schedule struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Time      string             `json:"time" bson:"time"`
	Order     int                `json:"order" bson:"order" index:"single:1"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
