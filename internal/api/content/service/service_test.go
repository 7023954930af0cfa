// Package contentsvc - Test phần logic thuần của các service nội dung
// (không cần kết nối database).
package contentsvc

import (
	"context"
	"errors"
	"testing"

	contentdto "gki_content/internal/api/content/dto"
	"gki_content/internal/common"
)

func TestNewScheduleFromInput(t *testing.T) {
	t.Run("OrderMacDinh0", func(t *testing.T) {
		input := &contentdto.ScheduleCreateInput{Name: "Kebaktian Umum", Time: "08:00 WIB"}
		schedule, err := newScheduleFromInput(input)
		if err != nil {
			t.Fatalf("Không mong đợi lỗi với input hợp lệ, nhận được: %v", err)
		}
		if schedule.Order != 0 {
			t.Errorf("Order không truyền phải mặc định 0, nhận được %d", schedule.Order)
		}
	})

	t.Run("OrderTruyenRo", func(t *testing.T) {
		order := 5
		input := &contentdto.ScheduleCreateInput{Name: "Sekolah Minggu", Time: "10:00 WIB", Order: &order}
		schedule, err := newScheduleFromInput(input)
		if err != nil {
			t.Fatalf("Không mong đợi lỗi với input hợp lệ, nhận được: %v", err)
		}
		if schedule.Order != 5 {
			t.Errorf("Order phải giữ giá trị truyền vào 5, nhận được %d", schedule.Order)
		}
	})

	t.Run("CatKhoangTrang", func(t *testing.T) {
		input := &contentdto.ScheduleCreateInput{Name: "  Kebaktian Umum  ", Time: " 08:00 WIB "}
		schedule, err := newScheduleFromInput(input)
		if err != nil {
			t.Fatalf("Không mong đợi lỗi với input hợp lệ, nhận được: %v", err)
		}
		if schedule.Name != "Kebaktian Umum" || schedule.Time != "08:00 WIB" {
			t.Errorf("Name/Time phải được trim, nhận được %q / %q", schedule.Name, schedule.Time)
		}
	})

	t.Run("ThieuNameHoacTime", func(t *testing.T) {
		cases := []*contentdto.ScheduleCreateInput{
			{Name: "", Time: "08:00 WIB"},
			{Name: "Kebaktian Umum", Time: ""},
			{Name: "   ", Time: "08:00 WIB"},
		}
		for _, input := range cases {
			_, err := newScheduleFromInput(input)
			if err == nil {
				t.Fatalf("Mong đợi lỗi với input thiếu field: %+v", input)
			}
			var customErr *common.Error
			if !errors.As(err, &customErr) {
				t.Fatalf("Mong đợi *common.Error, nhận được %T", err)
			}
			if customErr.Message != MsgScheduleEmptyFields {
				t.Errorf("Mong đợi message %q, nhận được %q", MsgScheduleEmptyFields, customErr.Message)
			}
		}
	})
}

func TestScheduleSaveOneValidation(t *testing.T) {
	s := &ScheduleService{}
	ctx := context.Background()

	err := s.saveOne(ctx, contentdto.ScheduleSaveItem{ID: "68b0c0ffee00000000000a01", Name: "", Time: "08:00 WIB"})
	if err == nil {
		t.Fatal("Mong đợi lỗi khi Name rỗng")
	}
	var customErr *common.Error
	if !errors.As(err, &customErr) || customErr.Message != MsgScheduleEmptyFields {
		t.Errorf("Mong đợi message %q, nhận được: %v", MsgScheduleEmptyFields, err)
	}

	err = s.saveOne(ctx, contentdto.ScheduleSaveItem{ID: "khong-phai-object-id", Name: "Kebaktian Umum", Time: "08:00 WIB"})
	if err == nil {
		t.Fatal("Mong đợi lỗi khi ID sai định dạng")
	}
	if !errors.Is(err, common.ErrInvalidFormat) {
		t.Errorf("Mong đợi ErrInvalidFormat, nhận được: %v", err)
	}
}

func TestScheduleSaveAllAggregation(t *testing.T) {
	s := &ScheduleService{}
	input := &contentdto.ScheduleSaveAllInput{
		Items: []contentdto.ScheduleSaveItem{
			{ID: "id-c", Name: "Kebaktian Umum", Time: ""},
			{ID: "id-a", Name: "", Time: "08:00 WIB"},
			{ID: "id-b", Name: "Sekolah Minggu", Time: "10:00 WIB"}, // ID sai định dạng
		},
	}

	result, err := s.SaveAll(context.Background(), input)
	if err != nil {
		t.Fatalf("SaveAll không được trả lỗi tổng khi từng dòng thất bại, nhận được: %v", err)
	}
	if result.Saved != 0 {
		t.Errorf("Mong đợi Saved = 0, nhận được %d", result.Saved)
	}
	if len(result.Failed) != 3 {
		t.Fatalf("Mong đợi 3 dòng thất bại, nhận được %d", len(result.Failed))
	}

	// Failed phải sắp xếp theo ID tăng dần để client hiển thị nhất quán
	wantIDs := []string{"id-a", "id-b", "id-c"}
	for i, want := range wantIDs {
		if result.Failed[i].ID != want {
			t.Errorf("Failed[%d].ID mong đợi %q, nhận được %q", i, want, result.Failed[i].ID)
		}
	}

	if result.Failed[0].Error != MsgScheduleEmptyFields {
		t.Errorf("Dòng thiếu Name phải báo %q, nhận được %q", MsgScheduleEmptyFields, result.Failed[0].Error)
	}
	if result.Failed[2].Error != MsgScheduleEmptyFields {
		t.Errorf("Dòng thiếu Time phải báo %q, nhận được %q", MsgScheduleEmptyFields, result.Failed[2].Error)
	}
	if result.Failed[1].Error != common.ErrInvalidFormat.Error() {
		t.Errorf("Dòng ID sai định dạng phải báo %q, nhận được %q", common.ErrInvalidFormat.Error(), result.Failed[1].Error)
	}
}

func TestResolveImageURL(t *testing.T) {
	if got := resolveImageURL(""); got != PlaceholderImageURL {
		t.Errorf("Ảnh rỗng phải dùng placeholder %q, nhận được %q", PlaceholderImageURL, got)
	}
	if got := resolveImageURL("   "); got != PlaceholderImageURL {
		t.Errorf("Ảnh toàn khoảng trắng phải dùng placeholder, nhận được %q", got)
	}
	custom := "https://storage.googleapis.com/bucket/news_images/foto.jpg"
	if got := resolveImageURL(custom); got != custom {
		t.Errorf("Ảnh có URL phải giữ nguyên, nhận được %q", got)
	}
	if got := resolveImageURL("  " + custom + "  "); got != custom {
		t.Errorf("URL phải được trim, nhận được %q", got)
	}
}

func TestNewsUpdateSet(t *testing.T) {
	t.Run("GiuNguyenFileKhiRong", func(t *testing.T) {
		input := &contentdto.NewsUpdateInput{Title: "Judul baru", Body: "Isi berita"}
		set := newsUpdateSet(input)
		if _, ok := set["imageUrl"]; ok {
			t.Error("ImageURL rỗng không được vào $set, ảnh đã đính kèm phải giữ nguyên")
		}
		if _, ok := set["pdfUrl"]; ok {
			t.Error("PdfURL rỗng không được vào $set, file PDF đã đính kèm phải giữ nguyên")
		}
		if set["title"] != "Judul baru" || set["body"] != "Isi berita" {
			t.Errorf("Title/Body phải vào $set, nhận được %v", set)
		}
	})

	t.Run("GhiDeKhiCoGiaTri", func(t *testing.T) {
		input := &contentdto.NewsUpdateInput{
			ImageURL: " https://storage.googleapis.com/bucket/news_images/moi.jpg ",
			PdfURL:   "https://storage.googleapis.com/bucket/news_pdfs/warta.pdf",
		}
		set := newsUpdateSet(input)
		if set["imageUrl"] != "https://storage.googleapis.com/bucket/news_images/moi.jpg" {
			t.Errorf("ImageURL phải được trim và vào $set, nhận được %v", set["imageUrl"])
		}
		if set["pdfUrl"] != "https://storage.googleapis.com/bucket/news_pdfs/warta.pdf" {
			t.Errorf("PdfURL phải vào $set, nhận được %v", set["pdfUrl"])
		}
	})

	t.Run("KhongCoFieldNao", func(t *testing.T) {
		set := newsUpdateSet(&contentdto.NewsUpdateInput{})
		if len(set) != 0 {
			t.Errorf("Input rỗng phải cho map rỗng, nhận được %v", set)
		}

		// publishedAt không bao giờ bị ghi đè qua update
		full := &contentdto.NewsUpdateInput{Title: "Judul", Body: "Isi", ImageURL: "x.jpg", PdfURL: "y.pdf"}
		if _, ok := newsUpdateSet(full)["publishedAt"]; ok {
			t.Error("publishedAt không được xuất hiện trong $set của update")
		}
	})
}
