package entities

import "errors"

type DeliveryPerson struct {
	Restaurant string `validate:"required,max=128"`
	Name       string `validate:"required,max=64"`
	Phone      string `validate:"required,min=6,max=20"`
}

var (
	ErrDeliveryPersonExists   = errors.New("delivery person already exists")
	ErrDeliveryPersonNotFound = errors.New("delivery person not found")
)
