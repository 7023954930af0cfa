package utility

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"cloud.google.com/go/storage"
)

// UploadResult chứa thông tin file sau khi upload thành công
type UploadResult struct {
	URL  string `json:"url"`  // URL công khai để truy cập file
	Path string `json:"path"` // Đường dẫn object trong bucket
	Size int64  `json:"size"` // Kích thước file (bytes)
}

// BuildStoragePath tạo đường dẫn object theo dạng <category>/<unixMilli>_<filename>.
// Timestamp prefix tránh ghi đè khi hai file trùng tên.
func BuildStoragePath(category, filename string, now time.Time) string {
	return fmt.Sprintf("%s/%d_%s", category, now.UnixMilli(), filename)
}

// PublicStorageURL trả về URL công khai của object trong bucket.
// Escape từng segment riêng để giữ nguyên dấu "/" trong object path.
func PublicStorageURL(bucket, objectPath string) string {
	segments := strings.Split(objectPath, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, strings.Join(segments, "/"))
}

// UploadFile ghi nội dung từ reader vào Firebase Storage tại objectPath,
// đặt quyền đọc công khai và trả về thông tin file đã upload.
func UploadFile(ctx context.Context, objectPath, contentType string, reader io.Reader) (*UploadResult, error) {
	if storageBucket == nil {
		return nil, fmt.Errorf("firebase storage not initialized")
	}

	obj := storageBucket.Object(objectPath)

	writer := obj.NewWriter(ctx)
	writer.ContentType = contentType

	size, err := io.Copy(writer, reader)
	if err != nil {
		writer.Close()
		return nil, fmt.Errorf("failed to write object %s: %w", objectPath, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize object %s: %w", objectPath, err)
	}

	// File được client đọc trực tiếp qua URL, cần quyền đọc công khai
	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return nil, fmt.Errorf("failed to set public ACL on %s: %w", objectPath, err)
	}

	return &UploadResult{
		URL:  PublicStorageURL(storageBucketN, objectPath),
		Path: objectPath,
		Size: size,
	}, nil
}
