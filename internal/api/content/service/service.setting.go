// Package contentsvc - service nội dung trang web (settings, schedules, news).
package contentsvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "gki_content/internal/api/base/service"
	contentdto "gki_content/internal/api/content/dto"
	models "gki_content/internal/api/content/models"
	"gki_content/internal/common"
	"gki_content/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// MsgSettingNotFound thông báo khi chưa có document cấu hình trang chủ.
const MsgSettingNotFound = "Document 'homePage' not found. Using default values."

// SettingService quản lý document cấu hình trang chủ (singleton theo key).
type SettingService struct {
	*basesvc.BaseServiceMongoImpl[models.SiteSetting]
}

// NewSettingService tạo mới SettingService
func NewSettingService() (*SettingService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Settings)
	if !exist {
		return nil, fmt.Errorf("failed to get settings collection: %v", common.ErrNotFound)
	}
	return &SettingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.SiteSetting](collection),
	}, nil
}

// GetHomePage lấy cấu hình trang chủ.
// Chưa có document thì trả về giá trị mặc định (toàn bộ field rỗng)
// để trang public vẫn render được.
func (s *SettingService) GetHomePage(ctx context.Context) (*models.SiteSetting, error) {
	setting, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"key": models.SettingKeyHomePage}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			logrus.Warn(MsgSettingNotFound)
			return &models.SiteSetting{Key: models.SettingKeyHomePage}, nil
		}
		return nil, err
	}
	return &setting, nil
}

// SaveHomePage ghi đè toàn bộ nội dung cấu hình trang chủ (tạo mới nếu chưa có).
func (s *SettingService) SaveHomePage(ctx context.Context, input *contentdto.SettingUpsertInput) (*models.SiteSetting, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"key":                    models.SettingKeyHomePage,
			"heroTitle":              input.HeroTitle,
			"heroImageUrl":           input.HeroImageURL,
			"visi":                   input.Visi,
			"misi":                   input.Misi,
			"gerejaIndukTitle":       input.GerejaIndukTitle,
			"gerejaIndukDescription": input.GerejaIndukDescription,
			"gerejaIndukImageUrl":    input.GerejaIndukImageURL,
		},
	}
	setting, err := s.BaseServiceMongoImpl.Upsert(ctx, bson.M{"key": models.SettingKeyHomePage}, updateData)
	if err != nil {
		logrus.WithError(err).Error("SaveHomePage: Lỗi khi lưu cấu hình trang chủ")
		return nil, err
	}
	return &setting, nil
}
