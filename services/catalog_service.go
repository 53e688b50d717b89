package services

import "CityGuide/models"

type CatalogService struct{}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

func (s *CatalogService) GetCategories() []string {
	return append([]string(nil), models.Categories...)
}

func (s *CatalogService) GetTags() []string {
	return append([]string(nil), models.Tags...)
}
