package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// News định nghĩa một bài tin tức (berita).
// PublishedAt được gán lúc tạo và không đổi khi chỉnh sửa,
// UpdatedAt phản ánh lần chỉnh sửa gần nhất.
type News struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Body        string             `json:"body" bson:"body"`
	ImageURL    string             `json:"imageUrl" bson:"imageUrl"`
	PdfURL      string             `json:"pdfUrl,omitempty" bson:"pdfUrl,omitempty"`
	PublishedAt int64              `json:"publishedAt" bson:"publishedAt" index:"single,order:-1"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
