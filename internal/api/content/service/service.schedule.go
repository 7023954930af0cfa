package contentsvc

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	basesvc "gki_content/internal/api/base/service"
	contentdto "gki_content/internal/api/content/dto"
	models "gki_content/internal/api/content/models"
	"gki_content/internal/common"
	"gki_content/internal/global"
	"gki_content/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MsgScheduleEmptyFields thông báo khi thiếu tên hoặc giờ lễ.
const MsgScheduleEmptyFields = "Nama dan waktu tidak boleh kosong."

// ScheduleSaveFailure một dòng lưu thất bại trong thao tác lưu tất cả.
type ScheduleSaveFailure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// ScheduleSaveAllResult kết quả tổng hợp của thao tác lưu tất cả.
type ScheduleSaveAllResult struct {
	Saved  int                   `json:"saved"`
	Failed []ScheduleSaveFailure `json:"failed"`
}

// ScheduleService quản lý lịch kebaktian.
type ScheduleService struct {
	*basesvc.BaseServiceMongoImpl[models.Schedule]
}

// NewScheduleService tạo mới ScheduleService
func NewScheduleService() (*ScheduleService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Schedules)
	if !exist {
		return nil, fmt.Errorf("failed to get schedules collection: %v", common.ErrNotFound)
	}
	return &ScheduleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Schedule](collection),
	}, nil
}

// List trả về toàn bộ lịch, sắp xếp theo order tăng dần.
func (s *ScheduleService) List(ctx context.Context) ([]models.Schedule, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{}, opts)
}

// newScheduleFromInput kiểm tra và chuyển input tạo mới thành model.
// Name và Time không được rỗng, Order không truyền thì mặc định 0
// (client gửi thứ tự hiển thị cụ thể khi cần xếp chỗ).
func newScheduleFromInput(input *contentdto.ScheduleCreateInput) (models.Schedule, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Time) == "" {
		return models.Schedule{}, common.NewError(common.ErrCodeValidationInput, MsgScheduleEmptyFields, common.StatusBadRequest, nil)
	}

	order := 0
	if input.Order != nil {
		order = *input.Order
	}

	return models.Schedule{
		Name:  strings.TrimSpace(input.Name),
		Time:  strings.TrimSpace(input.Time),
		Order: order,
	}, nil
}

// Create thêm một dòng lịch mới.
func (s *ScheduleService) Create(ctx context.Context, input *contentdto.ScheduleCreateInput) (*models.Schedule, error) {
	schedule, err := newScheduleFromInput(input)
	if err != nil {
		return nil, err
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, schedule)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update cập nhật một dòng lịch theo id, chỉ ghi các field có giá trị.
func (s *ScheduleService) Update(ctx context.Context, id string, input *contentdto.ScheduleUpdateInput) (*models.Schedule, error) {
	objID := utility.String2ObjectID(id)
	if objID.IsZero() {
		return nil, common.ErrInvalidFormat
	}

	set := make(map[string]interface{})
	if strings.TrimSpace(input.Name) != "" {
		set["name"] = strings.TrimSpace(input.Name)
	}
	if strings.TrimSpace(input.Time) != "" {
		set["time"] = strings.TrimSpace(input.Time)
	}
	if input.Order != nil {
		set["order"] = *input.Order
	}
	if len(set) == 0 {
		return nil, common.ErrInvalidInput
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, objID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete xóa một dòng lịch theo id.
func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	objID := utility.String2ObjectID(id)
	if objID.IsZero() {
		return common.ErrInvalidFormat
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, objID)
}

// SaveAll lưu toàn bộ danh sách lịch trong một lần, mỗi dòng độc lập.
// Các dòng được ghi song song, dòng lỗi không chặn các dòng còn lại,
// kết quả tổng hợp cho biết dòng nào thất bại.
func (s *ScheduleService) SaveAll(ctx context.Context, input *contentdto.ScheduleSaveAllInput) (*ScheduleSaveAllResult, error) {
	result := &ScheduleSaveAllResult{Failed: make([]ScheduleSaveFailure, 0)}

	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, item := range input.Items {
		wg.Add(1)
		go func(item contentdto.ScheduleSaveItem) {
			defer wg.Done()

			err := s.saveOne(ctx, item)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed = append(result.Failed, ScheduleSaveFailure{ID: item.ID, Error: err.Error()})
				return
			}
			result.Saved++
		}(item)
	}
	wg.Wait()

	// Thứ tự failed ổn định để client hiển thị nhất quán
	sort.Slice(result.Failed, func(i, j int) bool {
		return result.Failed[i].ID < result.Failed[j].ID
	})

	if len(result.Failed) > 0 {
		logrus.WithFields(logrus.Fields{
			"saved":  result.Saved,
			"failed": len(result.Failed),
		}).Warn("SaveAll: Một số dòng lịch lưu thất bại")
	}
	return result, nil
}

func (s *ScheduleService) saveOne(ctx context.Context, item contentdto.ScheduleSaveItem) error {
	if strings.TrimSpace(item.Name) == "" || strings.TrimSpace(item.Time) == "" {
		return common.NewError(common.ErrCodeValidationInput, MsgScheduleEmptyFields, common.StatusBadRequest, nil)
	}
	objID := utility.String2ObjectID(item.ID)
	if objID.IsZero() {
		return common.ErrInvalidFormat
	}
	set := map[string]interface{}{
		"name":  strings.TrimSpace(item.Name),
		"time":  strings.TrimSpace(item.Time),
		"order": item.Order,
	}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, objID, &basesvc.UpdateData{Set: set})
	return err
}
