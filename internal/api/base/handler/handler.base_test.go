// Package basehdl - Test transform DTO và build partial update.
package basehdl

import (
	"testing"

	basesvc "gki_content/internal/api/base/service"
)

type demoModel struct {
	Name     string `bson:"name"`
	Time     string `bson:"time"`
	Order    int    `bson:"order"`
	ImageURL string `bson:"imageUrl"`
}

type demoCreateInput struct {
	Name string
	Time string
}

type demoUpdateInput struct {
	Name  string
	Order int
}

func newDemoHandler() *BaseHandler[demoModel, demoCreateInput, demoUpdateInput] {
	var svc basesvc.BaseServiceMongo[demoModel]
	return NewBaseHandler[demoModel, demoCreateInput, demoUpdateInput](svc)
}

func TestTransformCreateInputToModel_CopySameNameFields(t *testing.T) {
	h := newDemoHandler()
	model, err := h.TransformCreateInputToModel(&demoCreateInput{Name: "Kebaktian Umum", Time: "08:00"})
	if err != nil {
		t.Fatalf("TransformCreateInputToModel trả về lỗi: %v", err)
	}
	if model.Name != "Kebaktian Umum" || model.Time != "08:00" {
		t.Errorf("field cùng tên không được copy: %+v", model)
	}
	if model.Order != 0 || model.ImageURL != "" {
		t.Errorf("field không có trong DTO phải giữ zero value: %+v", model)
	}
}

func TestTransformUpdateInputToModel_CopySameNameFields(t *testing.T) {
	h := newDemoHandler()
	model, err := h.TransformUpdateInputToModel(&demoUpdateInput{Name: "Sekolah Minggu", Order: 2})
	if err != nil {
		t.Fatalf("TransformUpdateInputToModel trả về lỗi: %v", err)
	}
	if model.Name != "Sekolah Minggu" || model.Order != 2 {
		t.Errorf("field cùng tên không được copy: %+v", model)
	}
}

func TestBuildPartialUpdate_OnlyNonZeroFields(t *testing.T) {
	update, err := BuildPartialUpdate(demoModel{Name: "Kebaktian Umum", Order: 0})
	if err != nil {
		t.Fatalf("BuildPartialUpdate trả về lỗi: %v", err)
	}
	if update.Set == nil {
		t.Fatal("BuildPartialUpdate phải trả về $set")
	}
	if update.Set["name"] != "Kebaktian Umum" {
		t.Errorf("$set thiếu field non-zero: %v", update.Set)
	}
	if _, ok := update.Set["order"]; ok {
		t.Error("field zero value không được đưa vào $set")
	}
	if _, ok := update.Set["time"]; ok {
		t.Error("field rỗng không được đưa vào $set")
	}
}

func TestBuildPartialUpdate_EmptyModel(t *testing.T) {
	update, err := BuildPartialUpdate(demoModel{})
	if err != nil {
		t.Fatalf("BuildPartialUpdate trả về lỗi: %v", err)
	}
	if len(update.Set) != 0 {
		t.Errorf("model rỗng phải cho $set rỗng, nhận: %v", update.Set)
	}
}
