package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestString2ObjectID_Valid(t *testing.T) {
	id := primitive.NewObjectID()
	got := String2ObjectID(id.Hex())
	if got != id {
		t.Errorf("String2ObjectID(%q) = %v, muốn %v", id.Hex(), got, id)
	}
}

func TestString2ObjectID_Invalid(t *testing.T) {
	if got := String2ObjectID("not-an-object-id"); !got.IsZero() {
		t.Errorf("chuỗi không hợp lệ phải trả về NilObjectID, nhận %v", got)
	}
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   uint64
		want string
	}{
		{500, "500 B"},
		{1024, "1.0 KB"},
		{10 * 1024 * 1024, "10.0 MB"},
	}
	for _, c := range cases {
		if got := FormatBytes(c.in); got != c.want {
			t.Errorf("FormatBytes(%d) = %q, muốn %q", c.in, got, c.want)
		}
	}
}
