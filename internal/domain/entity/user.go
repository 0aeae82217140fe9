package entity

import "time"

// Roles de usuario. Un country_lead opera sobre su propio país; un
// global_lead puede consultar cualquier país.
const (
	RoleCountryLead = "country_lead"
	RoleGlobalLead  = "global_lead"
)

// User usuario de la aplicación.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Country      string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
