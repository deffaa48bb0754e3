// Package customer contains the Customer aggregate and its repository
// contract.
package customer

import (
	"fmt"
	"strings"
	"time"
)

type Customer struct {
	id           uint
	name         string
	email        string
	phone        string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCustomer(name, email, phone, passwordHash string) (*Customer, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 50 {
		return nil, fmt.Errorf("name exceeds maximum length of 50 characters")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &Customer{
		name:         name,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructCustomer(
	id uint,
	name, email, phone, passwordHash string,
	createdAt, updatedAt time.Time,
) (*Customer, error) {
	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	return &Customer{
		id:           id,
		name:         name,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (c *Customer) ID() uint              { return c.id }
func (c *Customer) Name() string          { return c.name }
func (c *Customer) Email() string         { return c.email }
func (c *Customer) Phone() string         { return c.phone }
func (c *Customer) PasswordHash() string  { return c.passwordHash }
func (c *Customer) CreatedAt() time.Time  { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time  { return c.updatedAt }

func (c *Customer) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("customer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}
	c.id = id
	return nil
}

// UpdateProfile changes the mutable profile fields. Empty arguments leave
// the current value in place.
func (c *Customer) UpdateProfile(name, email, phone string) error {
	if name != "" {
		if len(name) > 50 {
			return fmt.Errorf("name exceeds maximum length of 50 characters")
		}
		c.name = name
	}
	if email != "" {
		c.email = strings.ToLower(strings.TrimSpace(email))
	}
	if phone != "" {
		c.phone = phone
	}
	c.updatedAt = time.Now().UTC()
	return nil
}

func (c *Customer) ChangePasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash cannot be empty")
	}
	c.passwordHash = hash
	c.updatedAt = time.Now().UTC()
	return nil
}
