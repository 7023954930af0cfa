package contentdto

// NewsCreateInput đầu vào đăng một bài tin mới.
// ImageURL rỗng thì service gán ảnh placeholder.
type NewsCreateInput struct {
	Title    string `json:"title" validate:"required,no_xss"`
	Body     string `json:"body" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
	PdfURL   string `json:"pdfUrl" validate:"omitempty,url"`
}

// NewsUpdateInput đầu vào chỉnh sửa bài tin.
// Field rỗng giữ nguyên giá trị cũ (PdfURL rỗng không xóa PDF đã đính kèm).
type NewsUpdateInput struct {
	Title    string `json:"title" validate:"omitempty,no_xss"`
	Body     string `json:"body"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
	PdfURL   string `json:"pdfUrl" validate:"omitempty,url"`
}
