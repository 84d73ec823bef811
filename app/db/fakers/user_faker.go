package fakers

import (
	"log"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/tokosembilan/go-commerce/app/helpers"
	"github.com/tokosembilan/go-commerce/app/models"
)

func UserFaker() *models.User {
	password, err := helpers.HashPassword("password123")
	if err != nil {
		log.Fatal("failed to hash faker password:", err)
	}

	return &models.User{
		ID:        uuid.New().String(),
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Email:     faker.Email(),
		Phone:     faker.Phonenumber(),
		Password:  password,
		Role:      models.RoleCustomer,
	}
}
