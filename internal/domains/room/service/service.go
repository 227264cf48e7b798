package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/config"
	"resort/infras/otel"
	"resort/infras/s3"
	"resort/internal/domains/room/model"
	"resort/internal/domains/room/model/dto"
	"resort/internal/domains/room/repository"
	"resort/shared"
	"resort/shared/base64"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoomCategory    = "room_category:get"
	cacheGetAllRoomCategory = "room_category:gets"
	cacheCountRoomCategory  = "room_category:count"
)

var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpg":  "jpg",
	"image/jpeg": "jpg",
	"image/webp": "webp",
}

type RoomCategory interface {
	Create(ctx context.Context, req dto.CreateRoomCategoryRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomCategoriesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomCategoryResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomCategoryRequest, id string) error
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (string, error)
	DeleteImage(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.RoomCategory
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.RoomCategory, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) RoomCategory {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomCategoryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.BasePrice.IsNegative() || req.ExtraAdultPrice.IsNegative() || req.ExtraChildPrice.IsNegative() {
		return failure.BadRequestFromString("prices must not be negative")
	}

	if req.MaxAdults < req.BaseOccupancy {
		return failure.BadRequestFromString("max adults must not be below base occupancy")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomCategory)
		shared.InvalidateCaches(c, s.cache, cacheCountRoomCategory)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomCategoriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoomCategory, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room categories")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room categories")

		return res, fmt.Errorf("failed to count room categories: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room categories")

		return res, fmt.Errorf("failed to get room categories: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room categories to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoomCategory, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room categories")

		return res, fmt.Errorf("failed to count room categories: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room category count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomCategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoomCategory, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room category")

		return res, nil
	}

	category, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room category")

		return res, fmt.Errorf("failed to get room category: %w", err)
	}

	if category.ID == constant.Empty {
		return res, failure.NotFound("room category not found") // nolint:wrapcheck
	}

	res.FromModel(category)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room category to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomCategoryRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room category existence")

		return err
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room category not found")
	}

	if req.BasePrice != nil && req.BasePrice.IsNegative() {
		return failure.BadRequestFromString("prices must not be negative")
	}

	updatedFields := shared.TransformFields(req, user)

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room category")

		return fmt.Errorf("failed to update room category: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room category existence")

		return fmt.Errorf("failed to check room category existence: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room category not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room category")

		return fmt.Errorf("failed to delete room category: %w", err)
	}

	if current.Image != constant.Empty {
		bucketName := s.cfg.External.S3.BucketName
		objectName := s.s3.GetObjectNameFromURL(bucketName, current.Image)

		if objectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, objectName)
		}
	}

	s.invalidate(ctx, id)

	return nil
}

// UploadImage stores a base64 payload in S3 and points the category at the
// resulting public URL. The previous image object is removed on success.
func (s *serviceImpl) UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room category")

		return constant.Empty, fmt.Errorf("failed to get room category: %w", err)
	}

	if current.ID == constant.Empty {
		return constant.Empty, failure.NotFound("room category not found") // nolint:wrapcheck
	}

	contentType := base64.GetContentType(req.Image)

	fileData, err := base64.Decode(req.Image)
	if err != nil {
		return constant.Empty, failure.BadRequestFromString("invalid image payload")
	}

	filename := uuid.NewString()
	if ext, ok := imageExtensions[contentType]; ok {
		filename = fmt.Sprintf("%s.%s", filename, ext)
	}

	bucketName := s.cfg.External.S3.BucketName

	url, err = s.s3.UploadFileBytes(ctx, bucketName, model.EntityName, filename, contentType, fileData)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload image to S3")

		return constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	updatedFields := shared.TransformFields(struct {
		Image string `db:"image"`
	}{Image: url}, user)

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, filename)

		log.Error().Err(err).Msg("failed to update room category image")

		return constant.Empty, fmt.Errorf("failed to update room category image: %w", err)
	}

	if current.Image != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, current.Image)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObjectName)
		}
	}

	s.invalidate(ctx, id)

	return url, nil
}

func (s *serviceImpl) DeleteImage(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room category")

		return fmt.Errorf("failed to get room category: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room category not found") // nolint:wrapcheck
	}

	if current.Image == constant.Empty {
		return nil
	}

	updatedFields := shared.TransformFields(struct{}{}, user)
	updatedFields[model.FieldImage] = constant.Empty

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to clear room category image")

		return fmt.Errorf("failed to clear room category image: %w", err)
	}

	bucketName := s.cfg.External.S3.BucketName

	objectName := s.s3.GetObjectNameFromURL(bucketName, current.Image)
	if objectName != constant.Empty {
		_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, objectName)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoomCategory, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room category cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomCategory)
		shared.InvalidateCaches(c, s.cache, cacheCountRoomCategory)
	}()
}
