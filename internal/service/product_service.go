package service

import (
	"context"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/freshcart/commerce-service/internal/domain"
	"github.com/freshcart/commerce-service/internal/dto"
	"github.com/freshcart/commerce-service/internal/infrastructure/mediahost"
	"github.com/freshcart/commerce-service/internal/repository"
	"github.com/freshcart/commerce-service/pkg/errs"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

type ProductServiceImpl struct {
	repo  repository.ProductRepository
	media mediahost.MediaHost
}

func CreateProductService(repo repository.ProductRepository, media mediahost.MediaHost) ProductService {
	return &ProductServiceImpl{repo: repo, media: media}
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, payload dto.ProductRequest, filename string, file io.Reader) (product domain.Product, err error) {
	if payload.Name == "" || payload.Price == "" {
		return product, errs.ErrClient
	}
	if file == nil {
		return product, errs.ErrMissingImage
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExtensions[ext] {
		return product, errs.ErrNotAnImage
	}

	price, err := strconv.ParseFloat(payload.Price, 64)
	if err != nil {
		return product, errs.ErrClient
	}

	imageURL, err := s.media.Upload(ctx, filename, file)
	if err != nil {
		return product, errs.ErrMediaUnavailable
	}

	product = domain.Product{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       price,
		Category:    payload.Category,
		ImageURL:    imageURL,
		CreatedAt:   time.Now().Unix(),
	}

	id, err := s.repo.AddProduct(ctx, product)
	if err != nil {
		return product, err
	}

	product.ID = id

	return product, nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.GetProducts(ctx)
}
