package contentsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	basesvc "gki_content/internal/api/base/service"
	contentdto "gki_content/internal/api/content/dto"
	models "gki_content/internal/api/content/models"
	"gki_content/internal/common"
	"gki_content/internal/global"
	"gki_content/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PlaceholderImageURL ảnh mặc định khi bài tin không có ảnh đính kèm.
const PlaceholderImageURL = "https://picsum.photos/600/400"

// resolveImageURL trả về ảnh placeholder khi bài tin không đính kèm ảnh.
func resolveImageURL(raw string) string {
	imageURL := strings.TrimSpace(raw)
	if imageURL == "" {
		return PlaceholderImageURL
	}
	return imageURL
}

// newsUpdateSet gom các field có giá trị của input cập nhật thành map $set.
// ImageURL/PdfURL rỗng không vào map nên file đã đính kèm được giữ nguyên,
// publishedAt không bao giờ nằm trong map.
func newsUpdateSet(input *contentdto.NewsUpdateInput) map[string]interface{} {
	set := make(map[string]interface{})
	if strings.TrimSpace(input.Title) != "" {
		set["title"] = strings.TrimSpace(input.Title)
	}
	if input.Body != "" {
		set["body"] = input.Body
	}
	if strings.TrimSpace(input.ImageURL) != "" {
		set["imageUrl"] = strings.TrimSpace(input.ImageURL)
	}
	if strings.TrimSpace(input.PdfURL) != "" {
		set["pdfUrl"] = strings.TrimSpace(input.PdfURL)
	}
	return set
}

// NewsService quản lý bài tin tức.
type NewsService struct {
	*basesvc.BaseServiceMongoImpl[models.News]
}

// NewNewsService tạo mới NewsService
func NewNewsService() (*NewsService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.News)
	if !exist {
		return nil, fmt.Errorf("failed to get news collection: %v", common.ErrNotFound)
	}
	return &NewsService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.News](collection),
	}, nil
}

// List trả về các bài tin mới nhất, sắp xếp theo publishedAt giảm dần.
// limit <= 0 thì trả về tất cả.
func (s *NewsService) List(ctx context.Context, limit int64) ([]models.News, error) {
	opts := options.Find().SetSort(bson.D{{Key: "publishedAt", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{}, opts)
}

// GetByID lấy một bài tin theo id.
func (s *NewsService) GetByID(ctx context.Context, id string) (*models.News, error) {
	objID := utility.String2ObjectID(id)
	if objID.IsZero() {
		return nil, common.ErrInvalidFormat
	}
	news, err := s.BaseServiceMongoImpl.FindOneById(ctx, objID)
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// Create đăng một bài tin mới. Không có ảnh thì dùng ảnh placeholder,
// publishedAt được gán tại thời điểm đăng.
func (s *NewsService) Create(ctx context.Context, input *contentdto.NewsCreateInput) (*models.News, error) {
	news := models.News{
		Title:       strings.TrimSpace(input.Title),
		Body:        input.Body,
		ImageURL:    resolveImageURL(input.ImageURL),
		PdfURL:      strings.TrimSpace(input.PdfURL),
		PublishedAt: time.Now().UnixMilli(),
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, news)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update chỉnh sửa bài tin theo id. Chỉ ghi các field có giá trị:
// ImageURL/PdfURL rỗng giữ nguyên file đã đính kèm, publishedAt không đổi.
func (s *NewsService) Update(ctx context.Context, id string, input *contentdto.NewsUpdateInput) (*models.News, error) {
	objID := utility.String2ObjectID(id)
	if objID.IsZero() {
		return nil, common.ErrInvalidFormat
	}

	set := newsUpdateSet(input)
	if len(set) == 0 {
		return nil, common.ErrInvalidInput
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, objID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete xóa một bài tin theo id.
// Chỉ xóa document, file trên storage được giữ lại.
func (s *NewsService) Delete(ctx context.Context, id string) error {
	objID := utility.String2ObjectID(id)
	if objID.IsZero() {
		return common.ErrInvalidFormat
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, objID)
}
