// Package global - Test các custom validator.
package global

import (
	"testing"
)

type noXSSInput struct {
	Text string `validate:"no_xss"`
}

type uploadCategoryInput struct {
	Category string `validate:"required,upload_category"`
}

func initTestValidator(t *testing.T) {
	t.Helper()
	if Validate == nil {
		InitValidator()
	}
}

func TestValidateNoXSS(t *testing.T) {
	initTestValidator(t)

	ok := []string{
		"Selamat Datang di GKI Alam Sutera",
		"Kebaktian Umum 08:00",
		"",
	}
	for _, s := range ok {
		if err := Validate.Struct(&noXSSInput{Text: s}); err != nil {
			t.Errorf("chuỗi an toàn %q bị từ chối: %v", s, err)
		}
	}

	bad := []string{
		"<script>alert(1)</script>",
		"javascript:alert(1)",
		"<img onerror=hack()>",
		"<iframe src=x>",
	}
	for _, s := range bad {
		if err := Validate.Struct(&noXSSInput{Text: s}); err == nil {
			t.Errorf("chuỗi nguy hiểm %q phải bị từ chối", s)
		}
	}
}

func TestValidateUploadCategory(t *testing.T) {
	initTestValidator(t)

	for _, c := range []string{"news_images", "news_pdfs", "settings_images"} {
		if err := Validate.Struct(&uploadCategoryInput{Category: c}); err != nil {
			t.Errorf("category hợp lệ %q bị từ chối: %v", c, err)
		}
	}

	for _, c := range []string{"", "avatars", "news_images/../etc"} {
		if err := Validate.Struct(&uploadCategoryInput{Category: c}); err == nil {
			t.Errorf("category không hợp lệ %q phải bị từ chối", c)
		}
	}
}
