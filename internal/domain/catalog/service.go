// Package catalog contains the Service aggregate: the shop's menu of
// offered work (oil change, brake job) with base prices in cents.
package catalog

import (
	"fmt"
	"time"
)

type Service struct {
	id             uint
	name           string
	description    string
	basePriceCents int64
	createdAt      time.Time
	updatedAt      time.Time
}

func NewService(name, description string, basePriceCents int64) (*Service, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if basePriceCents < 0 {
		return nil, fmt.Errorf("base price cannot be negative")
	}

	now := time.Now().UTC()
	return &Service{
		name:           name,
		description:    description,
		basePriceCents: basePriceCents,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructService(
	id uint,
	name, description string,
	basePriceCents int64,
	createdAt, updatedAt time.Time,
) (*Service, error) {
	if id == 0 {
		return nil, fmt.Errorf("service ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	return &Service{
		id:             id,
		name:           name,
		description:    description,
		basePriceCents: basePriceCents,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (s *Service) ID() uint              { return s.id }
func (s *Service) Name() string          { return s.name }
func (s *Service) Description() string   { return s.description }
func (s *Service) BasePriceCents() int64 { return s.basePriceCents }
func (s *Service) CreatedAt() time.Time  { return s.createdAt }
func (s *Service) UpdatedAt() time.Time  { return s.updatedAt }

func (s *Service) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("service ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("service ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Service) Update(name, description string, basePriceCents *int64) error {
	if name != "" {
		if len(name) > 100 {
			return fmt.Errorf("name exceeds maximum length of 100 characters")
		}
		s.name = name
	}
	if description != "" {
		s.description = description
	}
	if basePriceCents != nil {
		if *basePriceCents < 0 {
			return fmt.Errorf("base price cannot be negative")
		}
		s.basePriceCents = *basePriceCents
	}
	s.updatedAt = time.Now().UTC()
	return nil
}
