// Package common - Test phân loại lỗi và chuyển đổi lỗi MongoDB.
package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestErrorIs_SentinelMatch(t *testing.T) {
	wrapped := fmt.Errorf("tầng ngoài: %w", ErrNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("errors.Is phải nhận ra sentinel ErrNotFound qua wrap")
	}
	if errors.Is(wrapped, ErrDuplicate) {
		t.Error("ErrNotFound không được match với ErrDuplicate")
	}
}

func TestErrorIs_SameCodeSameMessage(t *testing.T) {
	a := NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)
	if !errors.Is(a, ErrNotFound) {
		t.Error("lỗi cùng code và message phải match sentinel")
	}
	b := NewError(ErrCodeDatabaseQuery, "message khác", StatusNotFound, nil)
	if errors.Is(b, ErrNotFound) {
		t.Error("lỗi khác message không được match sentinel")
	}
}

func TestConvertMongoError_NotFoundPassthrough(t *testing.T) {
	if got := ConvertMongoError(ErrNotFound); !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNotFound phải được giữ nguyên, nhận: %v", got)
	}
}

func TestConvertMongoError_Nil(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("nil phải trả về nil, nhận: %v", got)
	}
}

func TestConvertMongoError_CommandErrorRanges(t *testing.T) {
	cases := []struct {
		code int32
		want error
	}{
		{150, ErrMongoConnection},
		{250, ErrMongoAuth},
		{350, ErrMongoQuery},
		{450, ErrMongoWrite},
		{550, ErrMongoSystem},
	}
	for _, c := range cases {
		err := mongo.CommandError{Code: c.code, Message: "x"}
		if got := ConvertMongoError(err); !errors.Is(got, c.want) {
			t.Errorf("code %d: nhận %v, muốn %v", c.code, got, c.want)
		}
	}
}

func TestConvertMongoError_GenericFallback(t *testing.T) {
	got := ConvertMongoError(errors.New("lỗi lạ"))
	var customErr *Error
	if !errors.As(got, &customErr) {
		t.Fatalf("lỗi không phân loại được phải wrap thành *Error, nhận: %T", got)
	}
	if customErr.StatusCode != StatusInternalServerError {
		t.Errorf("StatusCode = %d, muốn %d", customErr.StatusCode, StatusInternalServerError)
	}
}
