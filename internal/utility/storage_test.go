package utility

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestBuildStoragePath_Format(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	path := BuildStoragePath("news_images", "foto.jpg", now)

	want := fmt.Sprintf("news_images/%d_foto.jpg", now.UnixMilli())
	if path != want {
		t.Errorf("BuildStoragePath = %q, muốn %q", path, want)
	}
}

func TestBuildStoragePath_TimestampPrefixKhacNhau(t *testing.T) {
	a := BuildStoragePath("news_pdfs", "warta.pdf", time.UnixMilli(1))
	b := BuildStoragePath("news_pdfs", "warta.pdf", time.UnixMilli(2))
	if a == b {
		t.Error("hai file cùng tên upload khác thời điểm phải có path khác nhau")
	}
}

func TestPublicStorageURL(t *testing.T) {
	url := PublicStorageURL("my-project.appspot.com", "settings_images/1_hero.jpg")
	if !strings.HasPrefix(url, "https://storage.googleapis.com/my-project.appspot.com/") {
		t.Errorf("URL không đúng host/bucket: %q", url)
	}
	if !strings.HasSuffix(url, "/settings_images/1_hero.jpg") {
		t.Errorf("dấu '/' trong object path phải được giữ nguyên: %q", url)
	}
}

func TestPublicStorageURL_EscapeSegment(t *testing.T) {
	url := PublicStorageURL("b", "news_images/1_tên file.jpg")
	if strings.Contains(url, " ") {
		t.Errorf("ký tự đặc biệt trong tên file phải được escape: %q", url)
	}
	if !strings.Contains(url, "news_images/") {
		t.Errorf("segment category phải giữ nguyên: %q", url)
	}
}
