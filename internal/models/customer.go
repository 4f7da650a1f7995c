package models

import "time"

type Customer struct {
	ID           string    `json:"id" bson:"id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Company      string    `json:"company,omitempty" bson:"company,omitempty"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

type CustomerRegister struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
}

type CustomerLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CustomerUpdate struct {
	Name    *string `json:"name,omitempty"`
	Company *string `json:"company,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}
