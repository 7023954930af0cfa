// Package basesvc - Test chuyển đổi dữ liệu update.
package basesvc

import (
	"testing"
)

func TestToUpdateData_PassthroughPointer(t *testing.T) {
	in := &UpdateData{Set: map[string]interface{}{"name": "a"}}
	out, err := ToUpdateData(in)
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if out != in {
		t.Error("ToUpdateData phải trả về nguyên pointer khi input đã là *UpdateData")
	}
}

func TestToUpdateData_PassthroughValue(t *testing.T) {
	in := UpdateData{
		Set:         map[string]interface{}{"name": "a"},
		SetOnInsert: map[string]interface{}{"createdAt": int64(1)},
	}
	out, err := ToUpdateData(in)
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if out.Set["name"] != "a" {
		t.Errorf("Set bị mất dữ liệu: %v", out.Set)
	}
	if out.SetOnInsert["createdAt"] != int64(1) {
		t.Errorf("SetOnInsert bị mất dữ liệu: %v", out.SetOnInsert)
	}
}

func TestToUpdateData_WrapStructInSet(t *testing.T) {
	in := struct {
		Name string `bson:"name"`
		Time string `bson:"time"`
	}{Name: "Kebaktian Umum", Time: "08:00"}

	out, err := ToUpdateData(in)
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if out.Set == nil {
		t.Fatal("struct thường phải được wrap trong $set")
	}
	if out.Set["name"] != "Kebaktian Umum" {
		t.Errorf("field name không được map đúng qua bson tag: %v", out.Set)
	}
	if out.Set["time"] != "08:00" {
		t.Errorf("field time không được map đúng qua bson tag: %v", out.Set)
	}
	if out.SetOnInsert != nil || out.Unset != nil {
		t.Error("các operator khác phải rỗng khi wrap struct thường")
	}
}

func TestToUpdateData_WrapMapInSet(t *testing.T) {
	in := map[string]interface{}{"order": 3}
	out, err := ToUpdateData(in)
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if out.Set == nil {
		t.Fatal("map thường phải được wrap trong $set")
	}
	if _, ok := out.Set["order"]; !ok {
		t.Errorf("Set thiếu key 'order': %v", out.Set)
	}
}
