// Package basehdl cung cấp base handler cho các Fiber handler: parse và
// validate request, transform DTO sang model và các thao tác CRUD cơ bản.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "gki_content/internal/api/base/service"
	"gki_content/internal/common"
	"gki_content/internal/global"
	"gki_content/internal/utility"
)

// FilterOptions cấu hình validate cho filter từ query string
type FilterOptions struct {
	DeniedFields     []string // Các trường bị cấm filter
	AllowedOperators []string // Các operator MongoDB được phép
	MaxFields        int      // Số lượng field tối đa trong một filter
}

// BaseHandler là base handler cho các Fiber handler, cung cấp các chức năng
// CRUD cơ bản. Sử dụng Generic Type để tái sử dụng cho nhiều loại model.
//
// Type parameters:
// - T: Kiểu dữ liệu của model
// - CreateInput: Kiểu dữ liệu của input khi tạo mới
// - UpdateInput: Kiểu dữ liệu của input khi cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService   basesvc.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
	filterOptions FilterOptions               // Cấu hình validate filter
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp
func NewBaseHandler[T any, CreateInput any, UpdateInput any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
		filterOptions: FilterOptions{
			DeniedFields: []string{
				"password",
				"token",
				"secret",
				"key",
				"hash",
			},
			AllowedOperators: []string{
				"$eq",
				"$gt",
				"$gte",
				"$lt",
				"$lte",
				"$in",
				"$nin",
				"$exists",
			},
			MaxFields: 10,
		},
	}
}

// ValidateInput validate dữ liệu đầu vào với struct tag (validate, maxLength, min, max)
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	val := reflect.ValueOf(input)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if field.Kind() == reflect.String {
			if maxTag := fieldType.Tag.Get("maxLength"); maxTag != "" {
				maxLen, err := strconv.Atoi(maxTag)
				if err == nil && len(field.String()) > maxLen {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Trường %s vượt quá độ dài cho phép (%d ký tự)", fieldType.Name, maxLen),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}

		if field.Kind() == reflect.Int || field.Kind() == reflect.Int64 {
			if minTag := fieldType.Tag.Get("min"); minTag != "" {
				min, err := strconv.ParseInt(minTag, 10, 64)
				if err == nil && field.Int() < min {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Trường %s phải lớn hơn hoặc bằng %d", fieldType.Name, min),
						common.StatusBadRequest,
						nil,
					)
				}
			}
			if maxTag := fieldType.Tag.Get("max"); maxTag != "" {
				max, err := strconv.ParseInt(maxTag, 10, 64)
				if err == nil && field.Int() > max {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Trường %s phải nhỏ hơn hoặc bằng %d", fieldType.Name, max),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

// ParseRequestBody parse dữ liệu từ request body vào input.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return fmt.Errorf("request body rỗng")
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return err
	}

	return nil
}

// ProcessFilter đọc filter JSON từ query string (?filter=...), validate và
// normalize trước khi đưa vào MongoDB.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(c fiber.Ctx) (map[string]interface{}, error) {
	filter := make(map[string]interface{})

	raw := c.Query("filter", "")
	if raw == "" {
		return filter, nil
	}

	if err := json.Unmarshal([]byte(raw), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			"Filter không đúng định dạng JSON",
			common.StatusBadRequest,
			err,
		)
	}

	if err := h.validateFilter(filter); err != nil {
		return nil, err
	}

	return h.normalizeFilter(filter), nil
}

// validateFilter kiểm tra filter theo filterOptions
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilter(filter map[string]interface{}) error {
	if len(filter) > h.filterOptions.MaxFields {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Filter có quá nhiều field (tối đa %d)", h.filterOptions.MaxFields),
			common.StatusBadRequest,
			nil,
		)
	}

	for field, value := range filter {
		for _, denied := range h.filterOptions.DeniedFields {
			if field == denied {
				return common.NewError(
					common.ErrCodeValidationInput,
					fmt.Sprintf("Không được phép filter theo trường %s", field),
					common.StatusBadRequest,
					nil,
				)
			}
		}

		// Value dạng map là operator expression, kiểm tra operator được phép
		if opMap, ok := value.(map[string]interface{}); ok {
			for op := range opMap {
				allowed := false
				for _, allowedOp := range h.filterOptions.AllowedOperators {
					if op == allowedOp {
						allowed = true
						break
					}
				}
				if !allowed {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Operator %s không được phép trong filter", op),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

// normalizeFilter đổi key "id" thành "_id" và convert hex string sang ObjectID
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilter(filter map[string]interface{}) map[string]interface{} {
	normalized := make(map[string]interface{}, len(filter))
	for key, value := range filter {
		if key == "id" {
			key = "_id"
		}
		if key == "_id" {
			if strVal, ok := value.(string); ok && primitive.IsValidObjectID(strVal) {
				value = utility.String2ObjectID(strVal)
			}
		}
		normalized[key] = value
	}
	return normalized
}

// ParsePagination đọc page và limit từ query string với giá trị mặc định
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParsePagination(c fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page <= 0 {
		page = 1
	}

	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}

	return page, limit
}

// GetIDFromContext lấy ID từ URI params của request
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetIDFromContext(c fiber.Ctx) string {
	return c.Params("id")
}

// TransformCreateInputToModel transform CreateInput (DTO) sang Model (T).
// Các field cùng tên và cùng kiểu được copy từ DTO sang model.
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformCreateInputToModel(input *CreateInput) (*T, error) {
	model := new(T)
	if err := copySameNameFields(input, model); err != nil {
		return nil, err
	}
	return model, nil
}

// TransformUpdateInputToModel transform UpdateInput (DTO) sang Model (T)
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformUpdateInputToModel(input *UpdateInput) (*T, error) {
	model := new(T)
	if err := copySameNameFields(input, model); err != nil {
		return nil, err
	}
	return model, nil
}

// copySameNameFields copy các field cùng tên, cùng kiểu từ src struct sang dst struct
func copySameNameFields(src interface{}, dst interface{}) error {
	srcVal := reflect.ValueOf(src)
	if srcVal.Kind() == reflect.Ptr {
		srcVal = srcVal.Elem()
	}
	if srcVal.Kind() != reflect.Struct {
		return fmt.Errorf("input phải là struct hoặc pointer đến struct")
	}

	dstVal := reflect.ValueOf(dst)
	if dstVal.Kind() != reflect.Ptr || dstVal.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("model phải là pointer đến struct")
	}
	dstVal = dstVal.Elem()

	srcType := srcVal.Type()
	for i := 0; i < srcVal.NumField(); i++ {
		srcField := srcVal.Field(i)
		if !srcField.CanInterface() {
			continue
		}

		dstField := dstVal.FieldByName(srcType.Field(i).Name)
		if !dstField.IsValid() || !dstField.CanSet() {
			continue
		}

		if srcField.Type().AssignableTo(dstField.Type()) {
			dstField.Set(srcField)
		}
	}

	return nil
}
